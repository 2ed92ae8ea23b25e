package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "pokedex/internal/domain/auth"
	"pokedex/internal/domain/user"
)

// --- helpers ---

type fakeAuthService struct {
	registerUser  *user.User
	registerToken string
	registerErr   error

	loginToken string
	loginErr   error

	authUserID string
	authErr    error
}

func (f *fakeAuthService) Register(req domain.RegisterRequest) (*user.User, string, error) {
	if f.registerErr != nil {
		return nil, "", f.registerErr
	}
	return f.registerUser, f.registerToken, nil
}

func (f *fakeAuthService) Login(req domain.LoginRequest) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAuthService) Authenticate(token string) (string, error) {
	if f.authErr != nil {
		return "", f.authErr
	}
	return f.authUserID, nil
}

func postJSON(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// --- tests ---

func TestRegister_Created(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{
		registerUser:  &user.User{ID: "u-1", Pseudo: "ash", Email: "ash@x.com"},
		registerToken: "tok-123",
	})

	rec := postJSON(h.Register, "/api/register", `{"pseudo":"ash","email":"ash@x.com","password":"pikachu1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u-1", resp.ID)
	assert.Equal(t, "ash", resp.Pseudo)
	assert.Equal(t, "ash@x.com", resp.Email)
	assert.Equal(t, "tok-123", resp.Token)
}

func TestRegister_MissingFields(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})

	rec := postJSON(h.Register, "/api/register", `{"email":"ash@x.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})

	rec := postJSON(h.Register, "/api/register", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{registerErr: user.ErrUserAlreadyExists})

	rec := postJSON(h.Register, "/api/register", `{"pseudo":"ash","email":"ash@x.com","password":"pikachu1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User already exists", resp.Message)
}

func TestRegister_MethodNotAllowed(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/register", nil)
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLogin_ReturnsToken(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{loginToken: "tok-456"})

	rec := postJSON(h.Login, "/api/login", `{"email":"ash@x.com","password":"pikachu1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok-456", resp.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{loginErr: user.ErrInvalidCredentials})

	rec := postJSON(h.Login, "/api/login", `{"email":"ash@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email or password", resp.Message)
	assert.Empty(t, resp.Error)
}
