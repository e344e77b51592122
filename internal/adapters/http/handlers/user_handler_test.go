package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ymatsuda/todo-backend/internal/adapters/http/dto"
	"github.com/ymatsuda/todo-backend/internal/adapters/http/handlers"
	"github.com/ymatsuda/todo-backend/internal/domain"
	"github.com/ymatsuda/todo-backend/internal/ports"
	"github.com/ymatsuda/todo-backend/mocks"
)

func newUserHandler(t *testing.T) (*handlers.UserHandler, *mocks.MockUserService) {
	t.Helper()
	service := mocks.NewMockUserService(t)
	return handlers.NewUserHandler(service), service
}

// --- CreateUser ---

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	h, service := newUserHandler(t)

	service.EXPECT().CreateUser(mock.Anything, ports.CreateUserParams{
		Email: "alice@example.com",
		Name:  "alice",
	}).Return(validUserResult(), nil)

	body := jsonBody(t, map[string]string{
		"email": "alice@example.com",
		"name":  "alice",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	h.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.ID != testUserID {
		t.Errorf("ID = %q, want %q", resp.ID, testUserID)
	}
	if resp.Email != "alice@example.com" {
		t.Errorf("Email = %q, want alice@example.com", resp.Email)
	}
}

func TestCreateUser_MissingEmail(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	body := jsonBody(t, map[string]string{"name": "alice"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	h.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewBufferString("{not json"))
	h.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateUser_ServiceValidationError(t *testing.T) {
	t.Parallel()
	h, service := newUserHandler(t)

	verr := &domain.ValidationError{Fields: map[string]string{"email": "must match the address format"}}
	service.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, verr)

	body := jsonBody(t, map[string]string{"email": "not-an-address", "name": "alice"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	h.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.email" {
		t.Errorf("Errors = %+v, want single body.email entry", resp.Errors)
	}
}

// --- GetUser ---

func TestGetUser_Success(t *testing.T) {
	t.Parallel()
	h, service := newUserHandler(t)

	service.EXPECT().GetUser(mock.Anything, testUserID).Return(validUserResult(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID, nil)
	h.GetUser(rec, withChiParams(req, map[string]string{"id": testUserID}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.Name != "alice" {
		t.Errorf("Name = %q, want alice", resp.Name)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()
	h, service := newUserHandler(t)

	nferr := &domain.NotFoundError{Kind: "User", ID: testUserID}
	service.EXPECT().GetUser(mock.Anything, testUserID).Return(nil, nferr)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID, nil)
	h.GetUser(rec, withChiParams(req, map[string]string{"id": testUserID}))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateUser ---

func TestUpdateUser_Success(t *testing.T) {
	t.Parallel()
	h, service := newUserHandler(t)

	name := "alice-2"
	service.EXPECT().UpdateUser(mock.Anything, ports.UpdateUserParams{
		UserID: testUserID,
		Name:   &name,
	}).Return(validUserResult(), nil)

	body := jsonBody(t, map[string]string{"name": name})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/"+testUserID, body)
	h.UpdateUser(rec, withChiParams(req, map[string]string{"id": testUserID}))

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateUser_NotFound(t *testing.T) {
	t.Parallel()
	h, service := newUserHandler(t)

	nferr := &domain.NotFoundError{Kind: "User", ID: testUserID}
	service.EXPECT().UpdateUser(mock.Anything, mock.Anything).Return(nil, nferr)

	body := jsonBody(t, map[string]string{"email": "bob@example.com"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/"+testUserID, body)
	h.UpdateUser(rec, withChiParams(req, map[string]string{"id": testUserID}))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteUser ---

func TestDeleteUser_Success(t *testing.T) {
	t.Parallel()
	h, service := newUserHandler(t)

	service.EXPECT().DeleteUser(mock.Anything, testUserID).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+testUserID, nil)
	h.DeleteUser(rec, withChiParams(req, map[string]string{"id": testUserID}))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteUser_RepositoryError(t *testing.T) {
	t.Parallel()
	h, service := newUserHandler(t)

	service.EXPECT().DeleteUser(mock.Anything, testUserID).Return(errors.New("connection reset"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+testUserID, nil)
	h.DeleteUser(rec, withChiParams(req, map[string]string{"id": testUserID}))

	requireStatus(t, rec, http.StatusInternalServerError)
}
