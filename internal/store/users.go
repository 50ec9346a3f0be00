package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/marketplace/internal/models"
)

// UserStore defines user persistence operations.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, email, hash string) error
	MigrateRoles(ctx context.Context, moves []RoleMove) ([]RoleMoveResult, error)
}

// RoleMove rewrites every user holding From to To.
type RoleMove struct {
	From models.Role
	To   models.Role
}

type RoleMoveResult struct {
	RoleMove
	Updated int64
}

type userStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) UserStore {
	return &userStore{db: db}
}

const userColumns = `id, email, password_hash, name, role, image, email_verified, created_at, updated_at`

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *userStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &u, nil
}

// Create inserts user and fills in the generated id and timestamps.
func (s *userStore) Create(ctx context.Context, user *models.User) error {
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, user.Email, user.Password, user.Name, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userStore) UpdatePassword(ctx context.Context, email, hash string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET password_hash=$1, updated_at=NOW()
		WHERE email=$2
	`, hash, email)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MigrateRoles applies every move in one transaction.
func (s *userStore) MigrateRoles(ctx context.Context, moves []RoleMove) ([]RoleMoveResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("migrate roles: begin: %w", err)
	}
	defer tx.Rollback()

	results := make([]RoleMoveResult, 0, len(moves))
	for _, m := range moves {
		res, err := tx.ExecContext(ctx, `
			UPDATE users SET role=$1, updated_at=NOW()
			WHERE role=$2
		`, m.To, m.From)
		if err != nil {
			return nil, fmt.Errorf("migrate roles %s -> %s: %w", m.From, m.To, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("migrate roles %s -> %s: %w", m.From, m.To, err)
		}
		results = append(results, RoleMoveResult{RoleMove: m, Updated: n})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("migrate roles: commit: %w", err)
	}
	return results, nil
}
