package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/middleware"
	"kitchen-planner-api/internal/response"
)

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockService    func(*MockCredentialsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "성공: 회원 가입",
			body:           dto.AuthenticationRequest{Username: "alice", Password: "secret"},
			mockService:    func(m *MockCredentialsService) {},
			expectedStatus: http.StatusCreated,
			expectedBody:   "alice is registered",
		},
		{
			name: "실패: 이미 사용 중인 이름",
			body: dto.AuthenticationRequest{Username: "alice", Password: "secret"},
			mockService: func(m *MockCredentialsService) {
				m.RegisterFunc = func(ctx context.Context, username, password string) (bool, error) {
					return false, nil
				}
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "Username already taken, please try another",
		},
		{
			name: "실패: 빈 비밀번호",
			body: dto.AuthenticationRequest{Username: "alice"},
			mockService: func(m *MockCredentialsService) {
				m.RegisterFunc = func(ctx context.Context, username, password string) (bool, error) {
					return false, response.NewValidationError("Username and password must not be empty")
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Username and password must not be empty",
		},
		{
			name:           "실패: 잘못된 JSON",
			body:           "nope",
			mockService:    func(m *MockCredentialsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCredentialsService{}
			tt.mockService(svc)
			r := newTestRouter()
			r.POST("/auth/register", NewAuthHandler(svc).Register)

			w := performRequest(t, r, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &MockCredentialsService{
		LoginFunc: func(ctx context.Context, username, password string) (*dto.LoginResult, error) {
			switch password {
			case "secret":
				return &dto.LoginResult{Token: "jwt", ExpiresAt: time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)}, nil
			case "db-down":
				return nil, errors.New("connection refused")
			}
			return &dto.LoginResult{}, nil
		},
	}
	r := newTestRouter()
	r.POST("/auth/login", NewAuthHandler(svc).Login)

	w := performRequest(t, r, http.MethodPost, "/auth/login", dto.AuthenticationRequest{Username: "alice", Password: "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"jwt","expiresAt":"2024-10-08T00:00:00Z"}`, w.Body.String())

	w = performRequest(t, r, http.MethodPost, "/auth/login", dto.AuthenticationRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Wrong password/username", w.Body.String())

	w = performRequest(t, r, http.MethodPost, "/auth/login", dto.AuthenticationRequest{Username: "alice", Password: "db-down"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	var revoked string
	svc := &MockCredentialsService{
		LogoutFunc: func(ctx context.Context, tokenID string, expiresAt time.Time) error {
			revoked = tokenID
			assert.True(t, expires.Equal(expiresAt))
			return nil
		},
	}
	r := newTestRouter()
	r.POST("/auth/logout", func(c *gin.Context) {
		c.Set(middleware.TokenIDKey, "jti-1")
		c.Set(middleware.TokenExpiresAtKey, expires)
		c.Next()
	}, NewAuthHandler(svc).Logout)

	w := performRequest(t, r, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "jti-1", revoked)
}
