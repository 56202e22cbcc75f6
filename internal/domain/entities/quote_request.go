package entities

import "time"

// QuoteRequestStatus represents the lifecycle of a quote request (pedido de orçamento).
//
// Domain notes:
//   - A request is created as Pendente by the public form.
//   - The only transition is Pendente -> Aceite, driven by an authenticated admin.
//   - Removal is not a status: a deleted request no longer exists in the store.
type QuoteRequestStatus string

const (
	QuoteRequestStatusPendente QuoteRequestStatus = "Pendente"
	QuoteRequestStatusAceite   QuoteRequestStatus = "Aceite"
)

// CanTransitionTo reports whether a request in status s may move to next.
func (s QuoteRequestStatus) CanTransitionTo(next QuoteRequestStatus) bool {
	return s == QuoteRequestStatusPendente && next == QuoteRequestStatusAceite
}

// Service is the kind of work the customer asks a quote for.
type Service string

const (
	ServicePintura     Service = "pintura"
	ServiceRemodelacao Service = "remodelacao"
	ServiceAmbos       Service = "ambos"
)

var serviceLabels = map[Service]string{
	ServicePintura:     "Pintura",
	ServiceRemodelacao: "Remodelação",
	ServiceAmbos:       "Ambos",
}

// Label returns the human readable name; unknown values are shown as submitted.
func (s Service) Label() string {
	if l, ok := serviceLabels[s]; ok {
		return l
	}
	return string(s)
}

// QuoteRequest is the customer inquiry persisted in the record store.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Content fields are written once at creation; only Status (and UpdatedAt) change afterwards.
type QuoteRequest struct {
	ID               string             `json:"id"`
	ContactName      string             `json:"contact_name"`
	ContactEmail     string             `json:"contact_email"`
	Service          Service            `json:"service"`
	Description      string             `json:"description"`
	Status           QuoteRequestStatus `json:"status"`
	ImageKey         string             `json:"image_key,omitempty"`
	ImageContentType string             `json:"image_content_type,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// HasImage reports whether a project image was attached at submission.
func (q QuoteRequest) HasImage() bool {
	return q.ImageKey != ""
}
