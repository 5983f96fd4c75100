package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/token"
)

func TestCredentialsService_Register(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.credentialsService(token.NewMemoryRevocationStore())
	ctx := context.Background()

	ok, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Register(ctx, "alice", "other")
	require.NoError(t, err)
	assert.False(t, ok, "username taken")

	_, err = svc.Register(ctx, " ", "secret")
	requireCode(t, err, response.ErrCodeValidation)
	_, err = svc.Register(ctx, "bob", "")
	requireCode(t, err, response.ErrCodeValidation)
	_, err = svc.Register(ctx, "bob", strings.Repeat("x", 80))
	requireCode(t, err, response.ErrCodeValidation)

	user, err := env.repos.Users.FindByName(ctx, "alice")
	require.NoError(t, err)
	creds, err := env.repos.Users.FindCredentials(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", creds.PasswordHash)
	assert.True(t, strings.HasPrefix(creds.PasswordHash, "$2"))
}

func TestCredentialsService_Login(t *testing.T) {
	env := setupTestEnv(t)
	store := token.NewMemoryRevocationStore()
	svc := env.credentialsService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	tests := []struct {
		name      string
		username  string
		password  string
		wantToken bool
	}{
		{"성공: 올바른 비밀번호", "alice", "secret", true},
		{"실패: 틀린 비밀번호", "alice", "wrong", false},
		{"실패: 없는 사용자", "ghost", "secret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, tt.username, tt.password)
			require.NoError(t, err)
			if tt.wantToken {
				assert.NotEmpty(t, res.Token)
				assert.False(t, res.ExpiresAt.IsZero())
			} else {
				assert.Empty(t, res.Token)
			}
		})
	}

	assert.Equal(t, 1.0, counterValue(t, env.metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSuccess)))
	assert.Equal(t, 2.0, counterValue(t, env.metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginFailure)))
}

func TestCredentialsService_LogoutRevokesToken(t *testing.T) {
	env := setupTestEnv(t)
	store := token.NewMemoryRevocationStore()
	svc := env.credentialsService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	res, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	manager := token.NewManager("test-secret", "kitchen-planner", 0)
	claims, err := manager.Parse(res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.ID, claims.ExpiresAt.Time))

	_, err = token.NewValidator(manager, store).ValidateToken(ctx, res.Token)
	assert.ErrorIs(t, err, token.ErrRevokedToken)

	requireCode(t, svc.Logout(ctx, "", claims.ExpiresAt.Time), response.ErrCodeUnauthorized)
}
