package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchen-planner-api/internal/middleware"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/service"
)

type OrganisationHandler struct {
	organisationService service.OrganisationService
}

func NewOrganisationHandler(organisationService service.OrganisationService) *OrganisationHandler {
	return &OrganisationHandler{
		organisationService: organisationService,
	}
}

// JoinProject godoc
// @Summary      Project 참여
// @Description  호출자를 Project 참여자로 추가합니다. 이미 참여 중이면 아무 것도 하지 않습니다
// @Tags         organisation
// @Param        id path int true "Project ID"
// @Success      204 "참여 성공"
// @Failure      404 "Project 또는 사용자를 찾을 수 없음"
// @Router       /projects/{id}/join [post]
// @Security     BearerAuth
func (h *OrganisationHandler) JoinProject(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.organisationService.JoinProject(c.Request.Context(), projectID, middleware.GetUsername(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LeaveProject godoc
// @Summary      Project 나가기
// @Description  호출자를 참여자에서 제거합니다. 마지막 참여자가 나가면 Project가 삭제됩니다
// @Tags         organisation
// @Param        id path int true "Project ID"
// @Success      204 "나가기 성공"
// @Failure      404 "Project 또는 참여 정보를 찾을 수 없음"
// @Router       /projects/{id}/leave [post]
// @Security     BearerAuth
func (h *OrganisationHandler) LeaveProject(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.organisationService.LeaveProject(c.Request.Context(), projectID, middleware.GetUsername(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetInvitationLink godoc
// @Summary      초대 링크 발급
// @Description  참여자만 초대 링크를 만들 수 있습니다
// @Tags         organisation
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} dto.Invitation "초대 링크"
// @Failure      403 {string} string "참여자가 아님"
// @Failure      404 "Project를 찾을 수 없음"
// @Router       /projects/{id}/invitation [get]
// @Security     BearerAuth
func (h *OrganisationHandler) GetInvitationLink(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	invitation, err := h.organisationService.GetInvitationLink(c.Request.Context(), projectID, middleware.GetUsername(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invitation)
}

// JoinByInvitation godoc
// @Summary      초대 링크로 참여
// @Tags         organisation
// @Produce      json
// @Param        token path string true "초대 토큰"
// @Success      200 {integer} int64 "참여한 Project ID"
// @Failure      404 "토큰이 없거나 만료됨"
// @Router       /projects/join/{token} [post]
// @Security     BearerAuth
func (h *OrganisationHandler) JoinByInvitation(c *gin.Context) {
	projectID, err := h.organisationService.JoinByInvitation(c.Request.Context(), c.Param("token"), middleware.GetUsername(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, projectID)
}
