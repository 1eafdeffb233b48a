package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
	"github.com/Internmain07/I-INTERN-sub000/pkg/log"
)

// stubClient replays a canned response and records the request.
type stubClient struct {
	status int
	body   string

	lastReq  *http.Request
	lastBody string
}

func (s *stubClient) Do(req *http.Request) (*http.Response, error) {
	s.lastReq = req
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		s.lastBody = string(b)
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     make(http.Header),
	}, nil
}

func newTestStore(stub *stubClient) *Store {
	client := NewClient(stub, "https://api.i-intern.example/", "test-key", log.NewNoopLogger())
	return NewStore(client)
}

func TestStore_Load(t *testing.T) {
	stub := &stubClient{status: http.StatusOK, body: `{
		"id": "app-1",
		"status": "Offer_Accepted",
		"applied_date": "2025-05-01T09:30:00Z",
		"offer_sent_date": "2025-05-03T09:30:00Z",
		"offer_response_date": "2025-05-04T09:30:00Z",
		"hired_date": null,
		"can_view_contact_details": true
	}`}
	store := newTestStore(stub)

	rec, err := store.Load(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.Status != domain.StatusOfferAccepted {
		t.Errorf("status = %s, want Offer Accepted", rec.Status)
	}
	if rec.OfferRespondedAt.IsZero() {
		t.Error("OfferRespondedAt not parsed")
	}
	if got := stub.lastReq.URL.Path; got != "/api/v1/applications/app-1" {
		t.Errorf("request path = %s", got)
	}
	if got := stub.lastReq.Header.Get("Authorization"); got != "Bearer test-key" {
		t.Errorf("auth header = %q", got)
	}
}

func TestStore_LoadUnknownStatusFallsBack(t *testing.T) {
	stub := &stubClient{status: http.StatusOK, body: `{
		"id": "app-2",
		"status": "ghosted",
		"applied_date": "2025-05-01T09:30:00Z"
	}`}
	store := newTestStore(stub)

	rec, err := store.Load(context.Background(), "app-2")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.Status != domain.StatusApplied {
		t.Errorf("fallback status = %s, want Applied", rec.Status)
	}
}

func TestStore_LoadNotFound(t *testing.T) {
	store := newTestStore(&stubClient{status: http.StatusNotFound, body: `{"detail":"Application not found"}`})

	_, err := store.Load(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestStore_SaveSendsExpectedStatus(t *testing.T) {
	stub := &stubClient{status: http.StatusOK, body: `{}`}
	store := newTestStore(stub)

	rec := domain.Record{ID: "app-1", Status: domain.StatusOffered}
	if err := store.Save(context.Background(), rec, domain.StatusUnderReview); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if stub.lastReq.Method != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", stub.lastReq.Method)
	}
	if got := stub.lastReq.URL.Path; got != "/api/v1/applications/app-1/status" {
		t.Errorf("request path = %s", got)
	}

	var update statusUpdate
	if err := json.Unmarshal([]byte(stub.lastBody), &update); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if update.Status != "offered" || update.ExpectedStatus != "under_review" {
		t.Errorf("body = %+v", update)
	}
}

func TestStore_SaveConflict(t *testing.T) {
	store := newTestStore(&stubClient{status: http.StatusConflict, body: `{"detail":"status changed"}`})

	rec := domain.Record{ID: "app-1", Status: domain.StatusOfferRejected}
	err := store.Save(context.Background(), rec, domain.StatusOffered)
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestNotifier_Dispatch(t *testing.T) {
	stub := &stubClient{status: http.StatusCreated, body: `{}`}
	client := NewClient(stub, "https://api.i-intern.example", "test-key", log.NewNoopLogger())
	notifier := NewNotifier(client)

	intent := domain.Intent{
		Kind:          "notify",
		Audience:      domain.AudienceCompany,
		TemplateID:    domain.TemplateOfferAccepted,
		ApplicationID: "app-1",
	}
	if err := notifier.Dispatch(context.Background(), intent); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	var payload notificationPayload
	if err := json.Unmarshal([]byte(stub.lastBody), &payload); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if payload.RecipientType != "company" || payload.TemplateID != "offer_accepted" || payload.RelatedID != "app-1" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestNotifier_DispatchServerError(t *testing.T) {
	client := NewClient(&stubClient{status: http.StatusBadGateway, body: "upstream down"}, "https://api.i-intern.example", "k", log.NewNoopLogger())
	notifier := NewNotifier(client)

	err := notifier.Dispatch(context.Background(), domain.Intent{Kind: "notify"})
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Errorf("error = %v, want 502 mention", err)
	}
}
