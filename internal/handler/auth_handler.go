package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/middleware"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/service"
)

type AuthHandler struct {
	credentialsService service.CredentialsService
}

func NewAuthHandler(credentialsService service.CredentialsService) *AuthHandler {
	return &AuthHandler{
		credentialsService: credentialsService,
	}
}

// Register godoc
// @Summary      회원 가입
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        request body dto.AuthenticationRequest true "사용자 이름과 비밀번호"
// @Success      201 {string} string "<user> is registered"
// @Failure      400 {string} string "잘못된 요청"
// @Failure      409 {string} string "이미 사용 중인 이름"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthenticationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	created, err := h.credentialsService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !created {
		response.SendError(c, http.StatusConflict, response.ErrCodeAlreadyExists, "Username already taken, please try another")
		return
	}

	response.SendText(c, http.StatusCreated, req.Username+" is registered")
}

// Login godoc
// @Summary      로그인
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.AuthenticationRequest true "사용자 이름과 비밀번호"
// @Success      200 {object} dto.LoginResult "발급된 토큰"
// @Failure      401 {string} string "잘못된 이름 또는 비밀번호"
// @Failure      429 {string} string "요청이 너무 많음"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthenticationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.credentialsService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if result.Token == "" {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Wrong password/username")
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// Logout godoc
// @Summary      로그아웃
// @Description  현재 토큰을 만료 시각까지 폐기합니다
// @Tags         auth
// @Success      204 "로그아웃 성공"
// @Failure      401 {string} string "인증 실패"
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.credentialsService.Logout(c.Request.Context(), middleware.GetTokenID(c), middleware.GetTokenExpiresAt(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
