package interfaces

import (
	"context"

	"probuilder/internal/domain/entities"
)

// IQuoteRequestRepository abstracts the record store for QuoteRequest.
//
// The site must be able to:
//   - create a request when the public form is submitted
//   - list every request for the admin panel
//   - accept a request (status update by id)
//   - delete a request by id
//
// Lookups return a zero QuoteRequest (ID == "") when the record does not exist.
type IQuoteRequestRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteRequestStatus) (entities.QuoteRequest, error)
	Delete(ctx context.Context, id string) error
}
