package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitkeep/fitkeep/internal/middleware"
)

const testUserID = 42

func testPasswordHash(t *testing.T, password string) string {
	t.Helper()
	// min cost keeps the test fast, the handler only compares
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashBytes)
}

func loginRequestBody(t *testing.T, username, password string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	require.NoError(t, err)
	return body
}

func TestHandler_HandleLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockusersRepo(ctrl)
	sessionsMock := NewMocksessionService(ctrl)
	h := NewHandler(repoMock, sessionsMock)

	passwordHash := testPasswordHash(t, "s3cr3t")
	user := &User{
		ID:           testUserID,
		Username:     "runner",
		PasswordHash: passwordHash,
		Active:       true,
	}

	repoMock.EXPECT().
		GetByUsername(gomock.Any(), "runner").
		Return(user, nil)
	sessionsMock.EXPECT().
		Login(gomock.Any(), testUserID, gomock.Any()).
		Return("tok3n", nil)
	repoMock.EXPECT().
		UpdateLastLogin(gomock.Any(), testUserID, gomock.Any()).
		Return(nil)

	req, err := http.NewRequest("POST", "/auth/login", bytes.NewReader(loginRequestBody(t, "runner", "s3cr3t")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"token": "tok3n"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Equal(t, "tok3n", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	t.Run("wrong password", func(t *testing.T) {
		repoMock.EXPECT().
			GetByUsername(gomock.Any(), "runner").
			Return(user, nil)

		req, err := http.NewRequest("POST", "/auth/login", bytes.NewReader(loginRequestBody(t, "runner", "nope")))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		h.HandleLogin(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		repoMock.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(nil, ErrUserNotFound)

		req, err := http.NewRequest("POST", "/auth/login", bytes.NewReader(loginRequestBody(t, "ghost", "s3cr3t")))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		h.HandleLogin(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("inactive user", func(t *testing.T) {
		repoMock.EXPECT().
			GetByUsername(gomock.Any(), "runner").
			Return(&User{ID: testUserID, Username: "runner", PasswordHash: passwordHash, Active: false}, nil)

		req, err := http.NewRequest("POST", "/auth/login", bytes.NewReader(loginRequestBody(t, "runner", "s3cr3t")))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		h.HandleLogin(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty username", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/auth/login", bytes.NewReader(loginRequestBody(t, "", "s3cr3t")))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		h.HandleLogin(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("form login", func(t *testing.T) {
		repoMock.EXPECT().
			GetByUsername(gomock.Any(), "runner").
			Return(user, nil)
		sessionsMock.EXPECT().
			Login(gomock.Any(), testUserID, gomock.Any()).
			Return("formtok3n", nil)
		repoMock.EXPECT().
			UpdateLastLogin(gomock.Any(), testUserID, gomock.Any()).
			Return(nil)

		req, err := http.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("username=runner&password=s3cr3t")))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		h.HandleLogin(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"token": "formtok3n"}`, rec.Body.String())
	})
}

func TestHandler_HandleLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockusersRepo(ctrl)
	sessionsMock := NewMocksessionService(ctrl)
	h := NewHandler(repoMock, sessionsMock)

	sessionsMock.EXPECT().
		Logout(gomock.Any(), "tok3n").
		Return(true, nil)

	req, err := http.NewRequest("POST", "/auth/logout", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.AuthTokenHeader, "tok3n")

	rec := httptest.NewRecorder()
	h.HandleLogout(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "logged-out", rec.Body.String())

	t.Run("token from cookie", func(t *testing.T) {
		sessionsMock.EXPECT().
			Logout(gomock.Any(), "cookietok3n").
			Return(true, nil)

		req, err := http.NewRequest("POST", "/auth/logout", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "cookietok3n"})

		rec := httptest.NewRecorder()
		h.HandleLogout(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/auth/logout", nil)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.HandleLogout(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		sessionsMock.EXPECT().
			Logout(gomock.Any(), "wat").
			Return(false, nil)

		req, err := http.NewRequest("POST", "/auth/logout", nil)
		require.NoError(t, err)
		req.Header.Set(middleware.AuthTokenHeader, "wat")

		rec := httptest.NewRecorder()
		h.HandleLogout(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_HandleMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockusersRepo(ctrl)
	h := NewHandler(repoMock, NewMocksessionService(ctrl))

	lastLogin := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	repoMock.EXPECT().
		Get(gomock.Any(), testUserID).
		Return(&User{
			ID:          testUserID,
			Username:    "runner",
			Email:       "runner@example.com",
			LastLoginAt: &lastLogin,
			Active:      true,
		}, nil)

	req, err := http.NewRequest("GET", "/auth/me", nil)
	require.NoError(t, err)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), testUserID))

	rec := httptest.NewRecorder()
	h.HandleMe(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var user User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "runner", user.Username)
	assert.Empty(t, user.PasswordHash)

	t.Run("missing user in context", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/auth/me", nil)
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		h.HandleMe(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
