package handler

import (
	"BlogCMS_Server/internal/models"
	"BlogCMS_Server/internal/posts"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"Entry not found"`
}

type PostListResponse struct {
	Posts []models.Post `json:"posts"`
}

// ListPostsJSON godoc
// @Summary      게시글 목록 (JSON)
// @Tags         API
// @Produce      json
// @Success      200 {object} handler.PostListResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/posts [get]
func (h *Handler) ListPostsJSON(c *gin.Context) {
	all, err := h.posts.List(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] ListPostsJSON: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read posts"})
		return
	}
	c.JSON(http.StatusOK, PostListResponse{Posts: all})
}

// GetPostJSON godoc
// @Summary      게시글 조회 (JSON)
// @Tags         API
// @Produce      json
// @Param        id path int true "게시글 id"
// @Success      200 {object} models.Post
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/posts/{id} [get]
func (h *Handler) GetPostJSON(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
			return
		}
		log.Printf("[ERROR] GetPostJSON: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read posts"})
		return
	}
	c.JSON(http.StatusOK, post)
}
