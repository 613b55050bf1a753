package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/poofware/blog-api/internal/models"
	"github.com/poofware/blog-api/internal/utils"
)

// UserRepository is the credential store: users are created at registration
// and looked up by id or by either unique identifier at login.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByUsernameOrEmail matches the identifier against both unique
	// columns; the login endpoint accepts either.
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func baseSelectUser() string {
	return `SELECT id, name, username, email, password, created_at FROM users`
}

func (r *userRepo) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Password, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	query := `
        INSERT INTO users (name, username, email, password, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, u.Name, u.Username, u.Email, u.Password).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		// Map constraint races that slip past the service-level pre-check.
		if isUniqueViolation(err, "users_username_key") {
			return utils.ErrUsernameExists
		}
		if isUniqueViolation(err, "users_email_key") {
			return utils.ErrEmailExists
		}
		if isUniqueViolation(err, "") {
			return utils.ErrUsernameExists
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+` WHERE id=$1`, id)
	return r.scanUser(row)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+` WHERE username=$1`, username)
	return r.scanUser(row)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+` WHERE email=$1`, email)
	return r.scanUser(row)
}

func (r *userRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+` WHERE username=$1 OR email=$1`, identifier)
	return r.scanUser(row)
}

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser()+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Password, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
