package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/poofware/blog-api/internal/models"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	args := m.Called(ctx, identifier)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

type MockTokenRepository struct{ mock.Mock }

func (m *MockTokenRepository) BlacklistToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return m.Called(ctx, tokenID, expiresAt).Error(0)
}

func (m *MockTokenRepository) IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) CleanupExpiredBlacklistedTokens(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockBlogPostRepository struct{ mock.Mock }

func (m *MockBlogPostRepository) Create(ctx context.Context, p *models.BlogPost) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockBlogPostRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.BlogPost)
	return p, args.Error(1)
}

func (m *MockBlogPostRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]models.BlogPost)
	return posts, args.Error(1)
}

func (m *MockBlogPostRepository) ListByUserID(ctx context.Context, userID int64) ([]models.BlogPost, error) {
	args := m.Called(ctx, userID)
	posts, _ := args.Get(0).([]models.BlogPost)
	return posts, args.Error(1)
}

func (m *MockBlogPostRepository) UpdateOwned(ctx context.Context, id, ownerID int64, title, content string) (*models.BlogPost, error) {
	args := m.Called(ctx, id, ownerID, title, content)
	p, _ := args.Get(0).(*models.BlogPost)
	return p, args.Error(1)
}

func (m *MockBlogPostRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}
