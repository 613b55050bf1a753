package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/poofware/blog-api/internal/models"
)

// BlogPostRepository persists posts. The owner-scoped mutations take the
// owner id in the WHERE clause so the ownership check and the write are a
// single atomic statement under concurrent edits.
type BlogPostRepository interface {
	Create(ctx context.Context, p *models.BlogPost) error
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	List(ctx context.Context) ([]models.BlogPost, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.BlogPost, error)

	// UpdateOwned mutates title/content iff the post exists and belongs to
	// ownerID. Returns nil when no matching row was updated.
	UpdateOwned(ctx context.Context, id, ownerID int64, title, content string) (*models.BlogPost, error)

	// DeleteOwned removes the post iff it belongs to ownerID. Returns
	// whether a row was deleted.
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)
}

type blogPostRepo struct {
	db DB
}

func NewBlogPostRepository(db DB) BlogPostRepository {
	return &blogPostRepo{db: db}
}

func baseSelectPost() string {
	return `SELECT id, title, content, user_id, created_at, updated_at FROM blog_posts`
}

func (r *blogPostRepo) scanPost(row pgx.Row) (*models.BlogPost, error) {
	var p models.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *blogPostRepo) Create(ctx context.Context, p *models.BlogPost) error {
	query := `
        INSERT INTO blog_posts (title, content, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING id, created_at, updated_at
    `
	return r.db.QueryRow(ctx, query, p.Title, p.Content, p.UserID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *blogPostRepo) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	row := r.db.QueryRow(ctx, baseSelectPost()+` WHERE id=$1`, id)
	return r.scanPost(row)
}

func (r *blogPostRepo) List(ctx context.Context) ([]models.BlogPost, error) {
	return r.listWhere(ctx, ` ORDER BY id`)
}

func (r *blogPostRepo) ListByUserID(ctx context.Context, userID int64) ([]models.BlogPost, error) {
	return r.listWhere(ctx, ` WHERE user_id=$1 ORDER BY id`, userID)
}

func (r *blogPostRepo) listWhere(ctx context.Context, clause string, args ...interface{}) ([]models.BlogPost, error) {
	rows, err := r.db.Query(ctx, baseSelectPost()+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *blogPostRepo) UpdateOwned(ctx context.Context, id, ownerID int64, title, content string) (*models.BlogPost, error) {
	query := `
        UPDATE blog_posts
        SET title=$3, content=$4, updated_at=NOW()
        WHERE id=$1 AND user_id=$2
        RETURNING id, title, content, user_id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, id, ownerID, title, content)
	return r.scanPost(row)
}

func (r *blogPostRepo) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1 AND user_id=$2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
