/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 구조체와 라우트 등록
* Workflow: 		목록, 작성, 수정, 삭제, 상세 페이지 + JSON API + 변경 알림 WebSocket
 */
package handler

import (
	"BlogCMS_Server/internal/events"
	"BlogCMS_Server/internal/models"
	"BlogCMS_Server/internal/posts"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const notFoundMessage = "Entry not found"

type postService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int) (models.Post, error)
	Create(ctx context.Context, fields models.PostFields, image posts.Upload) ([]models.Post, error)
	Update(ctx context.Context, id int, fields models.PostFields, image *posts.Upload) (models.Post, error)
	Delete(ctx context.Context, id int) error
}

type eventSubscriber interface {
	Subscribe() (<-chan events.Event, func())
}

type Handler struct {
	posts          postService
	events         eventSubscriber
	maxUploadBytes int64
}

func New(svc postService, sub eventSubscriber, maxUploadBytes int64) *Handler {
	return &Handler{
		posts:          svc,
		events:         sub,
		maxUploadBytes: maxUploadBytes,
	}
}

// Register mounts every page, API and websocket route. mutationMiddleware
// runs in front of the create/update/delete routes only.
func (h *Handler) Register(router gin.IRouter, mutationMiddleware ...gin.HandlerFunc) {
	router.GET("/", h.Index)
	router.GET("/create", h.CreateForm)
	router.GET("/edit", h.EditForm)
	router.GET("/manage", h.Manage)
	router.GET("/readmore/create", h.CreateForm)
	router.GET("/readmore/manage", h.Manage)
	router.GET("/readmore/:id", h.ReadMore)

	mutations := router.Group("/", mutationMiddleware...)
	{
		mutations.POST("/submit", h.Submit)
		mutations.PATCH("/update/:id", h.Update)
		mutations.DELETE("/delete/:id", h.Delete)
	}

	api := router.Group("/api")
	{
		api.GET("/posts", h.ListPostsJSON)
		api.GET("/posts/:id", h.GetPostJSON)
	}

	router.GET("/ws/posts", h.StreamPostEvents)
}

// 파싱 불가능한 id는 "없는 id"와 같이 취급한다
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
