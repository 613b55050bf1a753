package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/poofware/blog-api/internal/dtos"
	"github.com/poofware/blog-api/internal/models"
	"github.com/poofware/blog-api/internal/services"
	"github.com/poofware/blog-api/internal/utils"
)

type BlogController struct {
	blogService services.BlogService
	validate    *validator.Validate
}

func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
		validate:    validator.New(),
	}
}

// POST /api/v1/posts
func (c *BlogController) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := getClaims(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", err)
		return
	}

	// The owner always comes from the token, never from the payload.
	post, err := c.blogService.CreatePost(r.Context(), claims.UserID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, post)
}

// GET /api/v1/posts
func (c *BlogController) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := c.blogService.ListPosts(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// GET /api/v1/posts/{id}
func (c *BlogController) GetPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	post, err := c.blogService.GetPost(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// GET /api/v1/posts/mine
func (c *BlogController) MyPostsHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := getClaims(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	posts, err := c.blogService.ListMyPosts(r.Context(), claims.UserID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// PUT /api/v1/posts
func (c *BlogController) UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := getClaims(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", err)
		return
	}

	post, err := c.blogService.UpdatePost(r.Context(), claims.UserID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// DELETE /api/v1/posts/{id}
func (c *BlogController) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := getClaims(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	id, err := parsePathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	if err := c.blogService.DeletePost(r.Context(), claims.UserID, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.DeletePostResponse{Message: "Post successfully deleted"})
}
