package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/service"
)

type RecipeHandler struct {
	recipeService service.RecipeService
}

func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// CreateRecipe godoc
// @Summary      레시피 생성
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        request body dto.Recipe true "레시피 생성 요청"
// @Success      201 {integer} int64 "생성된 레시피 ID"
// @Failure      400 {string} string "잘못된 요청"
// @Router       /recipes/create [post]
// @Security     BearerAuth
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req dto.Recipe
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	id, err := h.recipeService.SaveNewRecipe(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/create")+"/"+strconv.FormatInt(id, 10))
	response.SendSuccess(c, http.StatusCreated, id)
}

// GetRecipe godoc
// @Summary      레시피 조회
// @Tags         recipes
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Success      200 {object} dto.Recipe "레시피"
// @Failure      404 "레시피를 찾을 수 없음"
// @Router       /recipes/{id} [get]
// @Security     BearerAuth
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), recipeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, recipe)
}

// UpdateRecipe godoc
// @Summary      레시피 수정
// @Description  레시피와 재료, 조리 순서, 알레르기 정보를 모두 교체하고 새 버전을 반환합니다
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Param        request body dto.Recipe true "레시피 수정 요청"
// @Success      200 {integer} int64 "새 데이터 버전"
// @Failure      400 {string} string "잘못된 요청 또는 ID 불일치"
// @Failure      404 "레시피를 찾을 수 없음"
// @Router       /recipes/{id} [put]
// @Security     BearerAuth
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.Recipe
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	if req.ID != recipeID {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Supplied recipe's ID did not match endpoint's ID")
		return
	}

	version, err := h.recipeService.UpdateRecipe(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, version)
}

// DeleteRecipe godoc
// @Summary      레시피 삭제
// @Description  레시피와 이를 사용하는 모든 Project 슬롯을 삭제합니다
// @Tags         recipes
// @Param        id path int true "Recipe ID"
// @Success      204 "삭제 성공"
// @Failure      404 "레시피를 찾을 수 없음"
// @Router       /recipes/{id} [delete]
// @Security     BearerAuth
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), recipeID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRecipeStubs godoc
// @Summary      레시피 목록
// @Tags         recipes
// @Produce      json
// @Success      200 {array} dto.RecipeStub "레시피 목록"
// @Router       /recipes/ [get]
// @Security     BearerAuth
func (h *RecipeHandler) ListRecipeStubs(c *gin.Context) {
	stubs, err := h.recipeService.ListRecipeStubs(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stubs)
}

// GetRecipeVersion godoc
// @Summary      레시피 버전 조회
// @Tags         recipes
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Success      200 {object} dto.VersionNumbers "데이터/이미지 버전"
// @Failure      404 "레시피를 찾을 수 없음"
// @Router       /recipes/{id}/version [get]
// @Security     BearerAuth
func (h *RecipeHandler) GetRecipeVersion(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	versions, err := h.recipeService.GetRecipeVersion(c.Request.Context(), recipeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, versions)
}
