package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginChecker_GetLoggedUserID(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	loginChecker := NewLoginChecker(time.Hour, db)
	require.NotNil(t, loginChecker)

	ctx := context.Background()

	mock.ExpectGet(sessionKeyPrefix + "invalid token").RedisNil()
	userID, err := loginChecker.GetLoggedUserID(ctx, "invalid token")
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, userID)

	testToken := "test-token"
	now := time.Now()
	sessionKey := sessionKeyPrefix + testToken

	mock.ExpectGet(sessionKey).SetVal(sessionValue(42, now))
	userID, err = loginChecker.GetLoggedUserID(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	mock.ExpectGet(sessionKey).SetVal(sessionValue(42, now))
	userID, err = loginChecker.GetLoggedUserID(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 42, userID) // idempotent
}

func TestLoginChecker_GetLoggedUserID_Expired(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	loginChecker := NewLoginChecker(time.Hour, db)

	testToken := "expired-token"
	sessionKey := sessionKeyPrefix + testToken
	mock.ExpectGet(sessionKey).SetVal(sessionValue(42, time.Now().Add(-2*time.Hour)))

	userID, err := loginChecker.GetLoggedUserID(context.Background(), testToken)
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, userID)
}
