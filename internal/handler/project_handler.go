package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/middleware"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject godoc
// @Summary      Project 생성
// @Description  식사, 알레르기 인원, 레시피 슬롯, 단위 변환, 인원 변경을 포함한 Project를 생성합니다
// @Description  생성한 사용자는 자동으로 참여자로 등록됩니다
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.Project true "Project 생성 요청"
// @Success      201 {integer} int64 "생성된 Project ID"
// @Failure      400 {string} string "잘못된 요청"
// @Failure      404 "참조된 식사 또는 레시피를 찾을 수 없음"
// @Failure      500 {string} string "서버 에러"
// @Router       /projects/create [post]
// @Security     BearerAuth
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	id, err := h.projectService.CreateProject(c.Request.Context(), &req, middleware.GetUsername(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/create")+"/"+strconv.FormatInt(id, 10))
	response.SendSuccess(c, http.StatusCreated, id)
}

// GetProject godoc
// @Summary      Project 조회
// @Description  Project 전체 데이터를 조회합니다. 레시피 슬롯은 메인 레시피가 먼저 옵니다
// @Tags         projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} dto.Project "Project 조회 성공"
// @Failure      400 {string} string "잘못된 Project ID"
// @Failure      404 "Project를 찾을 수 없음"
// @Router       /projects/{id} [get]
// @Security     BearerAuth
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// UpdateProject godoc
// @Summary      Project 수정
// @Description  Project를 통째로 교체하고 새 데이터 버전을 반환합니다
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        request body dto.Project true "Project 수정 요청"
// @Success      200 {integer} int64 "새 데이터 버전"
// @Failure      400 {string} string "잘못된 요청 또는 ID 불일치"
// @Failure      404 "Project를 찾을 수 없음"
// @Failure      500 {string} string "서버 에러"
// @Router       /projects/{id} [put]
// @Security     BearerAuth
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	if req.ID != projectID {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Supplied project's ID did not match endpoint's ID")
		return
	}

	version, err := h.projectService.UpdateProject(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, version)
}

// ListProjectStubs godoc
// @Summary      참여 중인 Project 목록
// @Description  user 쿼리 파라미터의 사용자가 참여한 Project 목록을 반환합니다. 생략하면 호출자 기준입니다
// @Tags         projects
// @Produce      json
// @Param        user query string false "사용자 이름"
// @Success      200 {array} dto.ProjectStub "Project 목록"
// @Router       /projects/ [get]
// @Security     BearerAuth
func (h *ProjectHandler) ListProjectStubs(c *gin.Context) {
	username := c.Query("user")
	if username == "" {
		username = middleware.GetUsername(c)
	}

	stubs, err := h.projectService.ListProjectStubsForUser(c.Request.Context(), username)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stubs)
}

// GetProjectVersion godoc
// @Summary      Project 버전 조회
// @Tags         projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} dto.VersionNumbers "데이터/이미지 버전"
// @Failure      404 "Project를 찾을 수 없음"
// @Router       /projects/{id}/version [get]
// @Security     BearerAuth
func (h *ProjectHandler) GetProjectVersion(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	versions, err := h.projectService.GetProjectVersion(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, versions)
}
