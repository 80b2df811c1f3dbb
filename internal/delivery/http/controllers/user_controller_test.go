package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventlane/internal/domain"
)

type mockUserService struct {
	user *domain.User
	err  error
}

func (m *mockUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) Create(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestUserController_Get_NeverExposesPassword(t *testing.T) {
	svc := &mockUserService{user: &domain.User{
		ID:       "u1",
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "super-secret-hash",
	}}
	ctrl := NewUserController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1", nil)
	req.SetPathValue("id", "u1")
	w := httptest.NewRecorder()

	ctrl.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "super-secret-hash") {
		t.Fatalf("response leaked the password field: %s", body)
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if got["username"] != "jdoe" {
		t.Fatalf("expected username jdoe, got %v", got["username"])
	}
}

func TestUserController_Get_NotFound(t *testing.T) {
	ctrl := NewUserController(discardLogger(), &mockUserService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	ctrl.Get(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestUserController_Create_ValidationError(t *testing.T) {
	ctrl := NewUserController(discardLogger(), &mockUserService{})

	body := strings.NewReader(`{"username":"jdoe"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid user data") {
		t.Fatalf("expected validation message, got %s", w.Body.String())
	}
}

func TestUserController_Create_NeverExposesPassword(t *testing.T) {
	svc := &mockUserService{user: &domain.User{
		ID:       "u1",
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "super-secret-hash",
	}}
	ctrl := NewUserController(discardLogger(), svc)

	body := strings.NewReader(`{"username":"jdoe","email":"jdoe@example.com","password":"hunter22"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("response leaked the password field: %s", w.Body.String())
	}
}
