package response

import (
	"testing"
	"time"

	"probuilder/internal/domain/entities"
)

func TestFromQuoteRequests(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 5, 0, time.UTC)
	list := []entities.QuoteRequest{
		{ID: "q1", ContactName: "Ana", Service: entities.ServiceRemodelacao, Status: entities.QuoteRequestStatusPendente, CreatedAt: created},
		{ID: "q2", Service: "telhado", Status: entities.QuoteRequestStatusAceite, ImageKey: "quote-requests/q2/x.png"},
	}

	views := FromQuoteRequests(list)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	first := views[0]
	if first.Number != 1 || first.ID != "q1" || first.ServiceLabel != "Remodelação" {
		t.Fatalf("unexpected first view: %+v", first)
	}
	if first.Timestamp != "2024-05-01 10:30:05" {
		t.Fatalf("unexpected timestamp: %q", first.Timestamp)
	}
	if first.Accepted || first.HasImage {
		t.Fatalf("first view flags wrong: %+v", first)
	}

	second := views[1]
	if second.Number != 2 || second.ServiceLabel != "telhado" || !second.Accepted || !second.HasImage {
		t.Fatalf("unexpected second view: %+v", second)
	}
	if second.Timestamp != "" {
		t.Fatalf("expected empty timestamp, got %q", second.Timestamp)
	}
}

func TestFromQuoteRequests_Empty(t *testing.T) {
	views := FromQuoteRequests(nil)
	if views == nil || len(views) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", views)
	}
}
