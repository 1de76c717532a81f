package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/model"
)

// PostHandler handles HTTP requests for posts, the feed and likes.
type PostHandler struct {
	Posts domain.PostService
	Likes domain.LikeService
	Feed  domain.FeedService
	log   *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts domain.PostService, likes domain.LikeService, feed domain.FeedService, log *slog.Logger) *PostHandler {
	return &PostHandler{Posts: posts, Likes: likes, Feed: feed, log: log}
}

// GetPosts handles GET /api/posts. Returns the caller's feed, newest first.
func (h *PostHandler) GetPosts(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	feed, err := h.Feed.AssembleFeed(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.FeedResponse{Posts: feed})
}

// CreatePost handles POST /api/posts.
func (h *PostHandler) CreatePost(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	post, err := h.Posts.CreatePost(c.Request.Context(), uid, req.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, model.PostResponse{Message: "Post created successfully", Post: post})
}

// ToggleLike handles POST /api/posts/:postId/like.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil || postID == 0 {
		respondBadRequest(c, "Invalid post id")
		return
	}
	liked, err := h.Likes.ToggleLike(c.Request.Context(), uid, uint(postID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	c.JSON(http.StatusOK, model.LikeResponse{Message: message, IsLiked: liked})
}
