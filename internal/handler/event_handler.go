package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kitchen-planner-api/internal/middleware"
	"kitchen-planner-api/internal/realtime"
	"kitchen-planner-api/internal/service"
)

type EventHandler struct {
	projectService service.ProjectService
	hub            *realtime.Hub
	upgrader       websocket.Upgrader
	logger         *zap.Logger
}

// NewEventHandler creates the websocket endpoint. allowedOrigins follows the
// CORS setting; "*" accepts any origin.
func NewEventHandler(projectService service.ProjectService, hub *realtime.Hub, allowedOrigins []string, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		projectService: projectService,
		hub:            hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			// non-browser clients
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Subscribe godoc
// @Summary      Project 변경 이벤트 구독
// @Description  웹소켓으로 업그레이드한 뒤 Project 수정, 이미지 변경, 삭제 이벤트를 JSON으로 전달합니다
// @Description  브라우저는 access_token 쿼리 파라미터로 토큰을 전달할 수 있습니다
// @Tags         projects
// @Param        id path int true "Project ID"
// @Success      101 {object} dto.ProjectEvent "웹소켓 연결, 이후 이벤트 메시지"
// @Failure      404 "Project를 찾을 수 없음"
// @Router       /projects/{id}/events [get]
// @Security     BearerAuth
func (h *EventHandler) Subscribe(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.projectService.GetProjectVersion(c.Request.Context(), projectID); err != nil {
		handleServiceError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response
		h.logger.Warn("Websocket upgrade failed", zap.Int64("project_id", projectID), zap.Error(err))
		return
	}

	h.hub.Serve(projectID, middleware.GetUsername(c), conn)
}
