package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Internmain07/I-INTERN-sub000/internal/adapters/wire"
	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
	"github.com/Internmain07/I-INTERN-sub000/internal/ports"
)

const applicationsEndpoint = "/api/v1/applications"

// Store implements ports.Store over the backend REST API.
// The backend performs the optimistic status check server-side and answers
// 409 when the expected status no longer matches.
type Store struct {
	client *Client
}

// NewStore creates a REST-backed store.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// statusUpdate is the PATCH body for a status change.
type statusUpdate struct {
	Status         string `json:"status"`
	ExpectedStatus string `json:"expected_status"`
}

// Load retrieves the record with the given id.
func (s *Store) Load(ctx context.Context, id string) (domain.Record, error) {
	url := s.client.baseURL + applicationsEndpoint + "/" + id
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Record{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.do(req)
	if err != nil {
		return domain.Record{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.Record{}, domain.ErrNotFound
	case resp.StatusCode/100 != 2:
		return domain.Record{}, errorFromResponse(resp)
	}

	var payload wire.RecordPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Record{}, fmt.Errorf("decode application: %w", err)
	}

	rec, err := payload.ToRecord()
	if err != nil {
		if !errors.Is(err, domain.ErrUnknownStatus) {
			return domain.Record{}, err
		}
		// Data-integrity warning, not a failure: keep the Applied fallback.
		s.client.logger.Warn("unknown status from backend",
			ports.String("application_id", payload.ID),
			ports.String("status", payload.Status),
		)
	}
	return rec, nil
}

// Save pushes the record's new status. The previous status travels along so
// the backend can serialize concurrent transitions.
func (s *Store) Save(ctx context.Context, rec domain.Record, expect domain.Status) error {
	body, err := json.Marshal(statusUpdate{
		Status:         wire.FormatStatus(rec.Status),
		ExpectedStatus: wire.FormatStatus(expect),
	})
	if err != nil {
		return fmt.Errorf("marshal status update: %w", err)
	}

	url := s.client.baseURL + applicationsEndpoint + "/" + rec.ID + "/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return domain.ErrConflict
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode/100 != 2:
		return errorFromResponse(resp)
	}
	return nil
}
