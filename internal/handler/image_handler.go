package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/service"
)

// imageFormField is the multipart field carrying the uploaded file
const imageFormField = "image"

type ImageHandler struct {
	imageService   service.ImageService
	maxUploadBytes int64
}

func NewImageHandler(imageService service.ImageService, maxUploadBytes int64) *ImageHandler {
	return &ImageHandler{
		imageService:   imageService,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadProjectImage godoc
// @Summary      Project 이미지 업로드
// @Description  기존 이미지를 교체하고 새 이미지 버전을 반환합니다
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        image formData file true "이미지 파일"
// @Success      200 {integer} int64 "새 이미지 버전"
// @Failure      400 {string} string "image 파일 누락"
// @Failure      404 "Project를 찾을 수 없음"
// @Failure      500 {string} string "저장 실패"
// @Router       /media/projects/{id} [post]
// @Security     BearerAuth
func (h *ImageHandler) UploadProjectImage(c *gin.Context) {
	h.upload(c, h.imageService.SaveProjectImage)
}

// GetProjectImage godoc
// @Summary      Project 이미지 다운로드
// @Tags         media
// @Produce      octet-stream
// @Param        id path int true "Project ID"
// @Success      200 {file} binary "이미지"
// @Failure      404 "이미지를 찾을 수 없음"
// @Router       /media/projects/{id} [get]
// @Security     BearerAuth
func (h *ImageHandler) GetProjectImage(c *gin.Context) {
	h.download(c, h.imageService.GetProjectImage)
}

// DeleteProjectImage godoc
// @Summary      Project 이미지 삭제
// @Tags         media
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {integer} int64 "새 이미지 버전"
// @Failure      404 "이미지를 찾을 수 없음"
// @Router       /media/projects/{id} [delete]
// @Security     BearerAuth
func (h *ImageHandler) DeleteProjectImage(c *gin.Context) {
	h.remove(c, h.imageService.DeleteProjectImage)
}

// UploadRecipeImage godoc
// @Summary      레시피 이미지 업로드
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Param        image formData file true "이미지 파일"
// @Success      200 {integer} int64 "새 이미지 버전"
// @Failure      400 {string} string "image 파일 누락"
// @Failure      404 "레시피를 찾을 수 없음"
// @Failure      500 {string} string "저장 실패"
// @Router       /media/recipes/{id} [post]
// @Security     BearerAuth
func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	h.upload(c, h.imageService.SaveRecipeImage)
}

// GetRecipeImage godoc
// @Summary      레시피 이미지 다운로드
// @Tags         media
// @Produce      octet-stream
// @Param        id path int true "Recipe ID"
// @Success      200 {file} binary "이미지"
// @Failure      404 "이미지를 찾을 수 없음"
// @Router       /media/recipes/{id} [get]
// @Security     BearerAuth
func (h *ImageHandler) GetRecipeImage(c *gin.Context) {
	h.download(c, h.imageService.GetRecipeImage)
}

// DeleteRecipeImage godoc
// @Summary      레시피 이미지 삭제
// @Tags         media
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Success      200 {integer} int64 "새 이미지 버전"
// @Failure      404 "이미지를 찾을 수 없음"
// @Router       /media/recipes/{id} [delete]
// @Security     BearerAuth
func (h *ImageHandler) DeleteRecipeImage(c *gin.Context) {
	h.remove(c, h.imageService.DeleteRecipeImage)
}

func (h *ImageHandler) upload(c *gin.Context, save func(ctx context.Context, id int64, filename string, r io.Reader) (int64, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	header, err := c.FormFile(imageFormField)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Multipart file 'image' is missing or too large")
		return
	}
	file, err := header.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	version, err := save(c.Request.Context(), id, header.Filename, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, version)
}

func (h *ImageHandler) download(c *gin.Context, load func(ctx context.Context, id int64) ([]byte, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	data, err := load(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}

func (h *ImageHandler) remove(c *gin.Context, del func(ctx context.Context, id int64) (int64, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	version, err := del(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, version)
}
