package services

import (
	"context"
	"net/http"

	"github.com/poofware/blog-api/internal/dtos"
	"github.com/poofware/blog-api/internal/models"
	"github.com/poofware/blog-api/internal/repositories"
	"github.com/poofware/blog-api/internal/utils"
)

type BlogService interface {
	CreatePost(ctx context.Context, userID int64, req dtos.CreatePostRequest) (*models.BlogPost, error)
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPost(ctx context.Context, id int64) (*models.BlogPost, error)
	ListMyPosts(ctx context.Context, userID int64) ([]models.BlogPost, error)
	UpdatePost(ctx context.Context, userID int64, req dtos.UpdatePostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, userID, id int64) error
}

type blogService struct {
	postRepo repositories.BlogPostRepository
}

func NewBlogService(postRepo repositories.BlogPostRepository) BlogService {
	return &blogService{postRepo: postRepo}
}

func (s *blogService) CreatePost(ctx context.Context, userID int64, req dtos.CreatePostRequest) (*models.BlogPost, error) {
	p := &models.BlogPost{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	}
	if err := s.postRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *blogService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	return s.postRepo.List(ctx)
}

func (s *blogService) GetPost(ctx context.Context, id int64) (*models.BlogPost, error) {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, postNotFoundError()
	}
	return p, nil
}

func (s *blogService) ListMyPosts(ctx context.Context, userID int64) ([]models.BlogPost, error) {
	return s.postRepo.ListByUserID(ctx, userID)
}

func (s *blogService) UpdatePost(ctx context.Context, userID int64, req dtos.UpdatePostRequest) (*models.BlogPost, error) {
	p, err := s.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, postNotFoundError()
	}
	if !CanMutate(userID, p.UserID) {
		return nil, notOwnerError()
	}

	// The owner id stays in the UPDATE's WHERE clause, so the check and
	// the write are atomic against concurrent mutations.
	updated, err := s.postRepo.UpdateOwned(ctx, req.ID, userID, req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Deleted between the read and the write.
		return nil, postNotFoundError()
	}
	return updated, nil
}

func (s *blogService) DeletePost(ctx context.Context, userID, id int64) error {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return postNotFoundError()
	}
	if !CanMutate(userID, p.UserID) {
		return notOwnerError()
	}

	deleted, err := s.postRepo.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return postNotFoundError()
	}
	return nil
}

func postNotFoundError() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Post does not exist",
	}
}

func notOwnerError() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusForbidden,
		Code:       utils.ErrCodeForbidden,
		Message:    "Only the owner may modify this post",
	}
}
