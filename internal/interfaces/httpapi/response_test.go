package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	return body
}

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "not found", err: fmt.Errorf("%w: team not found", usecase.ErrNotFound), wantCode: http.StatusNotFound, wantStatus: "NOT_FOUND"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, wantCode: http.StatusUnauthorized, wantStatus: "UNAUTHENTICATED"},
		{name: "forbidden", err: fmt.Errorf("%w: not authorized for this matchup", usecase.ErrForbidden), wantCode: http.StatusForbidden, wantStatus: "PERMISSION_DENIED"},
		{name: "conflict", err: fmt.Errorf("%w: username taken", usecase.ErrConflict), wantCode: http.StatusConflict, wantStatus: "ALREADY_EXISTS"},
		{name: "dependency", err: fmt.Errorf("%w: weather down", usecase.ErrDependencyUnavailable), wantCode: http.StatusServiceUnavailable, wantStatus: "UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			body := decodeEnvelope(t, rec)
			errorObj, ok := body["error"].(map[string]any)
			if !ok {
				t.Fatalf("expected error object in response")
			}
			if got, _ := errorObj["status"].(string); got != tt.wantStatus {
				t.Fatalf("expected error status %s, got %v", tt.wantStatus, errorObj["status"])
			}
		})
	}
}

func TestWriteError_FieldErrorsCarryLocation(t *testing.T) {
	var errs validation.Errors
	errs.Add("home_goalie", "a goalie cannot be set when the status is Sub Needed")
	errs.Add("is_primary_goalie", "team already has a primary goalie")

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, errs.Err()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	items, _ := body["error"].(map[string]any)["errors"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 error items, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if first["location"] != "home_goalie" || first["reason"] != "invalidField" {
		t.Fatalf("unexpected first item: %v", first)
	}
}

func TestWriteError_BareFieldErrorMapsToBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, validation.NewFieldError("away_goalie", "invalid"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestWriteError_InternalHidesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: connection refused to 10.0.0.3"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	errorObj, _ := body["error"].(map[string]any)
	if got := errorObj["message"]; got != "internal server error" {
		t.Fatalf("expected generic message, got %v", got)
	}
}
