package response

import (
	"probuilder/internal/domain/entities"
)

// TimestampLayout is how submission times are shown in the admin panel.
const TimestampLayout = "2006-01-02 15:04:05"

// QuoteRequestView is one row of the admin panel.
type QuoteRequestView struct {
	Number       int
	ID           string
	ContactName  string
	ContactEmail string
	Service      string
	ServiceLabel string
	Description  string
	Status       string
	Accepted     bool
	HasImage     bool
	Timestamp    string
}

func FromQuoteRequest(number int, q entities.QuoteRequest) QuoteRequestView {
	ts := ""
	if !q.CreatedAt.IsZero() {
		ts = q.CreatedAt.UTC().Format(TimestampLayout)
	}
	return QuoteRequestView{
		Number:       number,
		ID:           q.ID,
		ContactName:  q.ContactName,
		ContactEmail: q.ContactEmail,
		Service:      string(q.Service),
		ServiceLabel: q.Service.Label(),
		Description:  q.Description,
		Status:       string(q.Status),
		Accepted:     q.Status == entities.QuoteRequestStatusAceite,
		HasImage:     q.HasImage(),
		Timestamp:    ts,
	}
}

// FromQuoteRequests numbers the rows from 1 in store order.
func FromQuoteRequests(list []entities.QuoteRequest) []QuoteRequestView {
	out := make([]QuoteRequestView, 0, len(list))
	for i, q := range list {
		out = append(out, FromQuoteRequest(i+1, q))
	}
	return out
}
