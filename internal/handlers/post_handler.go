package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ganapathi9191/Social-media-sub000/internal/auth"
	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/services"
)

const maxUploadBytes = 32 << 20

type PostHandler struct {
	postService     *services.PostService
	userService     *services.UserService
	downloadService *services.DownloadService
}

func NewPostHandler(postService *services.PostService, userService *services.UserService, downloadService *services.DownloadService) *PostHandler {
	return &PostHandler{
		postService:     postService,
		userService:     userService,
		downloadService: downloadService,
	}
}

// requirePostID parses the :postID route parameter.
func requirePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("postID"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return 0, false
	}
	return uint(id), true
}

// Create accepts a multipart upload with a caption and an optional media
// file
func (h *PostHandler) Create(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	caption := c.PostForm("caption")
	mediaType := models.MediaType(c.DefaultPostForm("media_type", string(models.MediaImage)))

	var filename string
	var data []byte
	file, err := c.FormFile("media")
	if err == nil {
		if file.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
			return
		}
		opened, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
			return
		}
		defer opened.Close()

		data, err = io.ReadAll(opened)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
			return
		}
		filename = file.Filename
	}

	post, err := h.postService.CreatePost(c.Request.Context(), userID, caption, mediaType, filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    post,
	})
}

// Get returns a single post, subject to the owner's visibility
func (h *PostHandler) Get(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postID, ok := requirePostID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

// ListByUser returns another user's posts, subject to visibility
func (h *PostHandler) ListByUser(c *gin.Context) {
	viewerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	owner, err := h.userService.GetUserByUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	posts, err := h.postService.ListUserPosts(c.Request.Context(), viewerID, owner.ID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    posts,
		"count":   len(posts),
	})
}

// Feed returns recent posts from the caller and the users they follow
func (h *PostHandler) Feed(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	posts, err := h.postService.Feed(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    posts,
		"count":   len(posts),
	})
}

// Like records a like on a post
func (h *PostHandler) Like(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postID, ok := requirePostID(c)
	if !ok {
		return
	}

	if err := h.postService.LikePost(userID, postID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post liked",
	})
}

// Unlike removes a like from a post
func (h *PostHandler) Unlike(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postID, ok := requirePostID(c)
	if !ok {
		return
	}

	if err := h.postService.UnlikePost(userID, postID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Like removed",
	})
}

// Comment adds a comment to a post
func (h *PostHandler) Comment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postID, ok := requirePostID(c)
	if !ok {
		return
	}

	var req struct {
		Body string `json:"body" binding:"required,max=1000"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.postService.CommentPost(userID, postID, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    comment,
	})
}

// ListComments returns a post's comments
func (h *PostHandler) ListComments(c *gin.Context) {
	if _, exists := auth.GetUserID(c); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postID, ok := requirePostID(c)
	if !ok {
		return
	}

	comments, err := h.postService.ListComments(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    comments,
		"count":   len(comments),
	})
}

// Download charges the per-media-type price and returns the media URL
func (h *PostHandler) Download(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postID, ok := requirePostID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		respondError(c, err)
		return
	}

	charged, err := h.downloadService.ChargeForDownload(userID, postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"media_url": post.MediaURL,
		"charged":   charged,
	})
}
