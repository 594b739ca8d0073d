package handlers

import (
	"net/http"
	"testing"

	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/models"
)

func TestNewRouter(t *testing.T) {
	r := NewRouter(NewSignupHandler(&mockAccountService{}, &mockAuditService{}))

	rec := doRequest(r, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "Backend is running!" {
		t.Errorf("unexpected root response %d %q", rec.Code, rec.Body.String())
	}

	rec = doRequest(r, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK || parseJSON(t, rec)["status"] != "ok" {
		t.Errorf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(r, http.MethodPost, "/api/signup", `{"phone":"5551234567","passwordHash":"123456"}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 from signup route, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header on API responses")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected request ID header")
	}
}

func TestNewRouter_PanicReturnsJSONError(t *testing.T) {
	accounts := &mockAccountService{
		createAccountFn: func(_, _, _ *string) (*models.Account, error) {
			panic("nil dereference in storage")
		},
	}
	r := NewRouter(NewSignupHandler(accounts, &mockAuditService{}))

	rec := doRequest(r, http.MethodPost, "/api/signup", `{"phone":"5551234567"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := parseJSON(t, rec)
	if body["error"] != apperrors.ErrInternalServer.Message || body["code"] != apperrors.ErrInternalServer.Code {
		t.Errorf("unexpected body %v", body)
	}
}
