package repository

import (
	"context"
	"errors"
	"time"

	"probuilder/internal/domain/entities"
	"probuilder/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type quoteRequestRecord struct {
	ID               string    `gorm:"primaryKey;size:36"`
	ContactName      string    `gorm:"not null"`
	ContactEmail     string    `gorm:"not null"`
	Service          string    `gorm:"size:32;not null"`
	Description      string    `gorm:"type:text;not null"`
	Status           string    `gorm:"size:16;not null;index"`
	ImageKey         string    `gorm:"size:255"`
	ImageContentType string    `gorm:"size:64"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// QuoteRequestGormRepository persists QuoteRequest entities in a relational
// database (postgres in production, sqlite locally and in tests).
type QuoteRequestGormRepository struct {
	db    *gorm.DB
	table string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestGormRepository)(nil)

func NewQuoteRequestGormRepository(db *gorm.DB, table string) *QuoteRequestGormRepository {
	if table == "" {
		table = DefaultQuoteRequestsTableName
	}
	return &QuoteRequestGormRepository{db: db, table: table}
}

// Migrate creates or updates the table schema.
func (r *QuoteRequestGormRepository) Migrate() error {
	return r.db.Table(r.table).AutoMigrate(&quoteRequestRecord{})
}

func (r *QuoteRequestGormRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	rec := toQuoteRequestRecord(q)
	if err := r.db.WithContext(ctx).Table(r.table).Create(&rec).Error; err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteRequestGormRepository) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	var recs []quoteRequestRecord
	if err := r.db.WithContext(ctx).Table(r.table).Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.QuoteRequest, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromQuoteRequestRecord(rec))
	}
	return out, nil
}

func (r *QuoteRequestGormRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	var rec quoteRequestRecord
	err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.QuoteRequest{}, nil
	}
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestRecord(rec), nil
}

func (r *QuoteRequestGormRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteRequestStatus) (entities.QuoteRequest, error) {
	res := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.QuoteRequest{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.QuoteRequest{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *QuoteRequestGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Delete(&quoteRequestRecord{}).Error
}

func toQuoteRequestRecord(q entities.QuoteRequest) quoteRequestRecord {
	return quoteRequestRecord{
		ID:               q.ID,
		ContactName:      q.ContactName,
		ContactEmail:     q.ContactEmail,
		Service:          string(q.Service),
		Description:      q.Description,
		Status:           string(q.Status),
		ImageKey:         q.ImageKey,
		ImageContentType: q.ImageContentType,
		CreatedAt:        q.CreatedAt.UTC(),
		UpdatedAt:        q.UpdatedAt.UTC(),
	}
}

func fromQuoteRequestRecord(rec quoteRequestRecord) entities.QuoteRequest {
	return entities.QuoteRequest{
		ID:               rec.ID,
		ContactName:      rec.ContactName,
		ContactEmail:     rec.ContactEmail,
		Service:          entities.Service(rec.Service),
		Description:      rec.Description,
		Status:           entities.QuoteRequestStatus(rec.Status),
		ImageKey:         rec.ImageKey,
		ImageContentType: rec.ImageContentType,
		CreatedAt:        rec.CreatedAt.UTC(),
		UpdatedAt:        rec.UpdatedAt.UTC(),
	}
}
