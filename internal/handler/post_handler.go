package handler

import (
	"BlogCMS_Server/internal/models"
	"BlogCMS_Server/internal/posts"
	"BlogCMS_Server/internal/views"
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index godoc
// @Summary      게시글 목록 페이지
// @Description  저장된 모든 게시글을 카드 형태로 렌더링합니다.
// @Tags         Pages
// @Produce      html
// @Success      200 {string} string "HTML"
// @Failure      500 {string} string "데이터 파일 읽기 실패"
// @Router       / [get]
func (h *Handler) Index(c *gin.Context) {
	all, err := h.posts.List(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] Index: failed to read posts: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, views.IndexPage, gin.H{"Messages": all})
}

// CreateForm godoc
// @Summary      게시글 작성 폼
// @Tags         Pages
// @Produce      html
// @Success      200 {string} string "HTML"
// @Router       /create [get]
func (h *Handler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.CreatePage, gin.H{"Entry": models.Post{}, "PageTitle": "Write"})
}

// EditForm godoc
// @Summary      게시글 수정 폼
// @Tags         Pages
// @Produce      html
// @Param        id query int true "게시글 id"
// @Success      200 {string} string "HTML"
// @Failure      404 {string} string "Entry not found"
// @Router       /edit [get]
func (h *Handler) EditForm(c *gin.Context) {
	entry, ok := h.lookup(c, c.Query("id"))
	if !ok {
		return
	}
	c.HTML(http.StatusOK, views.EditPage, gin.H{"Entry": entry, "PageTitle": "Edit"})
}

// Manage godoc
// @Summary      게시글 관리 페이지
// @Description  수정/삭제 링크가 있는 목록. /ws/posts 로 변경을 구독해 자동 새로고침합니다.
// @Tags         Pages
// @Produce      html
// @Success      200 {string} string "HTML"
// @Router       /manage [get]
func (h *Handler) Manage(c *gin.Context) {
	all, err := h.posts.List(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] Manage: failed to read posts: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, views.ManagePage, gin.H{"Messages": all, "PageTitle": "Manage"})
}

// ReadMore godoc
// @Summary      게시글 상세 페이지
// @Tags         Pages
// @Produce      html
// @Param        id path int true "게시글 id"
// @Success      200 {string} string "HTML"
// @Failure      404 {string} string "Entry not found"
// @Router       /readmore/{id} [get]
func (h *Handler) ReadMore(c *gin.Context) {
	entry, ok := h.lookup(c, c.Param("id"))
	if !ok {
		return
	}
	c.HTML(http.StatusOK, views.ReadMorePage, gin.H{"Entry": entry, "PageTitle": entry.Title})
}

// Submit godoc
// @Summary      게시글 작성
// @Description  텍스트 필드와 이미지 한 장을 받아 새 게시글을 만들고 목록 페이지를 렌더링합니다.
// @Tags         Posts
// @Accept       multipart/form-data
// @Produce      html
// @Param        title       formData string false "제목"
// @Param        description formData string false "요약"
// @Param        authorname  formData string false "작성자"
// @Param        blogtitle   formData string false "블로그 이름"
// @Param        paragraph   formData string false "본문 (markdown)"
// @Param        image       formData file   true  "이미지"
// @Success      200 {string} string "HTML"
// @Failure      400 {string} string "이미지 누락"
// @Failure      413 {string} string "업로드 크기 초과"
// @Failure      429 {string} string "요청 과다"
// @Failure      500 {string} string "업로드 실패 (원본 에러)"
// @Router       /submit [post]
func (h *Handler) Submit(c *gin.Context) {
	h.limitBody(c)

	var fields models.PostFields
	if err := c.ShouldBind(&fields); err != nil {
		h.badForm(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		if isTooLarge(err) {
			c.String(http.StatusRequestEntityTooLarge, "Upload too large")
			return
		}
		c.String(http.StatusBadRequest, "No image uploaded")
		return
	}

	upload, closeFile, err := openUpload(fileHeader)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	defer closeFile()

	all, err := h.posts.Create(c.Request.Context(), fields, upload)
	if err != nil {
		log.Printf("[ERROR] Submit: failed to create post: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, views.IndexPage, gin.H{"Messages": all})
}

// Update godoc
// @Summary      게시글 수정
// @Description  보낸 필드만 덮어씁니다. 새 이미지가 오면 기존 이미지 파일을 지우고 교체합니다.
// @Description  HTML 폼은 POST /update/{id}?_method=PATCH 로 보낼 수 있습니다.
// @Tags         Posts
// @Accept       multipart/form-data
// @Param        id          path     int    true  "게시글 id"
// @Param        title       formData string false "제목"
// @Param        description formData string false "요약"
// @Param        authorname  formData string false "작성자"
// @Param        blogtitle   formData string false "블로그 이름"
// @Param        paragraph   formData string false "본문 (markdown)"
// @Param        image       formData file   false "새 이미지"
// @Success      303 "Redirect to /manage"
// @Failure      404 {string} string "Entry not found"
// @Failure      500 {string} string "업로드 실패 (원본 에러)"
// @Router       /update/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, notFoundMessage)
		return
	}
	h.limitBody(c)

	var fields models.PostFields
	if err := c.ShouldBind(&fields); err != nil {
		h.badForm(c, err)
		return
	}

	var image *posts.Upload
	fileHeader, err := c.FormFile("image")
	switch {
	case err == nil:
		upload, closeFile, err := openUpload(fileHeader)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		defer closeFile()
		image = &upload
	case isTooLarge(err):
		c.String(http.StatusRequestEntityTooLarge, "Upload too large")
		return
	}

	if _, err := h.posts.Update(c.Request.Context(), id, fields, image); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.String(http.StatusNotFound, notFoundMessage)
			return
		}
		log.Printf("[ERROR] Update: failed to update post %d: %v", id, err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/manage")
}

// Delete godoc
// @Summary      게시글 삭제
// @Description  게시글을 지우고 연결된 이미지 파일도 삭제합니다 (실패해도 무시).
// @Description  HTML 폼은 POST /delete/{id}?_method=DELETE 로 보낼 수 있습니다.
// @Tags         Posts
// @Param        id path int true "게시글 id"
// @Success      303 "Redirect to /manage"
// @Failure      404 {string} string "Entry not found"
// @Router       /delete/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, notFoundMessage)
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.String(http.StatusNotFound, notFoundMessage)
			return
		}
		log.Printf("[ERROR] Delete: failed to delete post %d: %v", id, err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/manage")
}

// lookup writes the 404/500 response itself when it returns false.
func (h *Handler) lookup(c *gin.Context, rawID string) (models.Post, bool) {
	id, ok := parseID(rawID)
	if !ok {
		c.String(http.StatusNotFound, notFoundMessage)
		return models.Post{}, false
	}
	entry, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.String(http.StatusNotFound, notFoundMessage)
		} else {
			c.String(http.StatusInternalServerError, err.Error())
		}
		return models.Post{}, false
	}
	return entry, true
}

func (h *Handler) limitBody(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
}

func (h *Handler) badForm(c *gin.Context, err error) {
	if isTooLarge(err) {
		c.String(http.StatusRequestEntityTooLarge, "Upload too large")
		return
	}
	c.String(http.StatusBadRequest, "Invalid form: "+err.Error())
}

func openUpload(fh *multipart.FileHeader) (posts.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return posts.Upload{}, nil, err
	}
	return posts.Upload{Name: fh.Filename, Body: f}, func() { f.Close() }, nil
}
