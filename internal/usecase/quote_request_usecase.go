package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"probuilder/internal/domain/entities"
	"probuilder/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingQuoteRequestField  = errors.New("missing quote request field")
	ErrInvalidQuoteRequestID     = errors.New("invalid quote request id")
	ErrQuoteRequestNotFound      = errors.New("quote request not found")
	ErrQuoteRequestImageNotFound = errors.New("quote request image not found")
	ErrInvalidStatusTransition   = errors.New("invalid quote request status transition")
	ErrProjectImageTooLarge      = errors.New("project image too large")
	ErrProjectImageNotImage      = errors.New("project image is not an image")
	ErrAdminNotAuthenticated     = errors.New("admin session not authenticated")
)

const (
	DefaultMaxProjectImageBytes int64 = 5 << 20
	projectImageKeyPrefix             = "quote-requests"
)

// SubmitQuoteRequestInput is the public form as received by the site.
type SubmitQuoteRequestInput struct {
	ContactName  string
	ContactEmail string
	Service      string
	Description  string
	Image        *ProjectImage
}

// ProjectImage is an optional photo of the place to be painted or remodeled.
type ProjectImage struct {
	Filename string
	Data     []byte
}

// IQuoteRequestUseCase exposes the quote request operations of the site.
//
//   - public form "Solicite um Orçamento" => Submit()
//   - admin panel listing => List()
//   - admin "Aceitar" / "Apagar" buttons => Accept() / Delete()
//
// Admin operations take the caller's AdminSession and refuse to touch the store
// unless it is authenticated.
type IQuoteRequestUseCase interface {
	Submit(ctx context.Context, in SubmitQuoteRequestInput) (entities.QuoteRequest, error)
	List(ctx context.Context, session entities.AdminSession) ([]entities.QuoteRequest, error)
	Accept(ctx context.Context, session entities.AdminSession, id string) (entities.QuoteRequest, error)
	Delete(ctx context.Context, session entities.AdminSession, id string) error
	OpenImage(ctx context.Context, session entities.AdminSession, id string) (io.ReadCloser, string, error)
}

type QuoteRequestUseCase struct {
	repo          interfaces.IQuoteRequestRepository
	images        interfaces.IImageStorage
	maxImageBytes int64
	now           func() time.Time
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

// NewQuoteRequestUseCase builds the use case. images may be nil when no object
// storage is configured; attached images are then ignored.
func NewQuoteRequestUseCase(repo interfaces.IQuoteRequestRepository, images interfaces.IImageStorage, maxImageBytes int64) *QuoteRequestUseCase {
	if maxImageBytes <= 0 {
		maxImageBytes = DefaultMaxProjectImageBytes
	}
	return &QuoteRequestUseCase{
		repo:          repo,
		images:        images,
		maxImageBytes: maxImageBytes,
		now:           time.Now,
	}
}

func (u *QuoteRequestUseCase) Submit(ctx context.Context, in SubmitQuoteRequestInput) (entities.QuoteRequest, error) {
	name := strings.TrimSpace(in.ContactName)
	email := strings.TrimSpace(in.ContactEmail)
	service := strings.TrimSpace(in.Service)
	description := strings.TrimSpace(in.Description)
	if name == "" || email == "" || service == "" || description == "" {
		return entities.QuoteRequest{}, ErrMissingQuoteRequestField
	}

	now := u.now().UTC()
	q := entities.QuoteRequest{
		ID:           uuid.NewString(),
		ContactName:  name,
		ContactEmail: email,
		Service:      entities.Service(service),
		Description:  description,
		Status:       entities.QuoteRequestStatusPendente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.attachImage(ctx, &q, in.Image); err != nil {
		return entities.QuoteRequest{}, err
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		if q.HasImage() {
			u.removeImage(ctx, q)
		}
		return entities.QuoteRequest{}, err
	}
	logrus.WithFields(logrus.Fields{"id": created.ID, "service": created.Service}).Info("[quote][usecase] request submitted")
	return created, nil
}

func (u *QuoteRequestUseCase) attachImage(ctx context.Context, q *entities.QuoteRequest, img *ProjectImage) error {
	if img == nil || len(img.Data) == 0 {
		return nil
	}
	if u.images == nil {
		logrus.WithField("id", q.ID).Warn("[quote][usecase] image storage not configured; ignoring project image")
		return nil
	}
	if int64(len(img.Data)) > u.maxImageBytes {
		return ErrProjectImageTooLarge
	}

	mt := mimetype.Detect(img.Data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return ErrProjectImageNotImage
	}

	key := fmt.Sprintf("%s/%s/%s%s", projectImageKeyPrefix, q.ID, uuid.NewString(), mt.Extension())
	if err := u.images.Put(ctx, key, mt.String(), img.Data); err != nil {
		return fmt.Errorf("store project image: %w", err)
	}
	q.ImageKey = key
	q.ImageContentType = mt.String()
	return nil
}

func (u *QuoteRequestUseCase) List(ctx context.Context, session entities.AdminSession) ([]entities.QuoteRequest, error) {
	if !session.IsAuthenticated() {
		return nil, ErrAdminNotAuthenticated
	}
	return u.repo.List(ctx)
}

func (u *QuoteRequestUseCase) Accept(ctx context.Context, session entities.AdminSession, id string) (entities.QuoteRequest, error) {
	if !session.IsAuthenticated() {
		return entities.QuoteRequest{}, ErrAdminNotAuthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if existing.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	if existing.Status == entities.QuoteRequestStatusAceite {
		return existing, nil
	}
	if !existing.Status.CanTransitionTo(entities.QuoteRequestStatusAceite) {
		return entities.QuoteRequest{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.QuoteRequestStatusAceite)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	logrus.WithField("id", id).Info("[quote][usecase] request accepted")
	return updated, nil
}

// Delete removes the request permanently. Deleting an unknown id is not an error.
func (u *QuoteRequestUseCase) Delete(ctx context.Context, session entities.AdminSession, id string) error {
	if !session.IsAuthenticated() {
		return ErrAdminNotAuthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteRequestID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		logrus.WithField("id", id).Info("[quote][usecase] delete of unknown request ignored")
		return nil
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	if existing.HasImage() {
		u.removeImage(ctx, existing)
	}
	logrus.WithField("id", id).Info("[quote][usecase] request deleted")
	return nil
}

func (u *QuoteRequestUseCase) OpenImage(ctx context.Context, session entities.AdminSession, id string) (io.ReadCloser, string, error) {
	if !session.IsAuthenticated() {
		return nil, "", ErrAdminNotAuthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, "", ErrInvalidQuoteRequestID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if q.ID == "" {
		return nil, "", ErrQuoteRequestNotFound
	}
	if !q.HasImage() || u.images == nil {
		return nil, "", ErrQuoteRequestImageNotFound
	}

	rc, err := u.images.Get(ctx, q.ImageKey)
	if err != nil {
		return nil, "", err
	}
	return rc, q.ImageContentType, nil
}

func (u *QuoteRequestUseCase) removeImage(ctx context.Context, q entities.QuoteRequest) {
	if u.images == nil {
		return
	}
	if err := u.images.Remove(ctx, q.ImageKey); err != nil {
		logrus.WithFields(logrus.Fields{"id": q.ID, "key": q.ImageKey}).WithError(err).Warn("[quote][usecase] failed removing project image")
	}
}
