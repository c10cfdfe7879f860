package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/apiflux/blogapi/internal/common"
)

var (
	ErrDuplicateUser = errors.New("user with this email or username already exists")
	ErrNotFound      = errors.New("user not found")
)

func newUserModel(db *sql.DB) *DBModel {
	return &DBModel{db: db}
}

func (m *DBModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, email, password, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	args := []any{
		u.Username,
		u.Email,
		u.Password.hash,
		u.FullName,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "users_username_key"):
			return ErrDuplicateUser
		case common.UniqueViolation(err, "users_email_key"):
			return ErrDuplicateUser
		default:
			return err
		}
	}
	return nil
}

// exists reports whether any user already holds the given email or
// username. The unique constraints remain the final authority; this
// pre-check only gives the common case a friendlier path.
func (m *DBModel) exists(ctx context.Context, email, username string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`

	var found bool
	err := m.db.QueryRowContext(ctx, query, email, username).Scan(&found)
	if err != nil {
		return false, err
	}

	return found, nil
}

func (m *DBModel) getByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, username, email, password, full_name, created_at, updated_at
		FROM users
		WHERE email = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Username, &u.Email, &u.Password.hash, &u.FullName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *DBModel) getByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, username, email, full_name, created_at, updated_at
		FROM users
		WHERE id = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}
