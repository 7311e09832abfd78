package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contactbook/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines methods for interacting with user storage.
type RepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByToken(ctx context.Context, token string) (*models.User, error)
	UpdateToken(ctx context.Context, username string, token *string) error
	Update(ctx context.Context, username string, name, passwordHash *string) (*models.User, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// uniqueViolation is the SQLSTATE for a duplicate key. Relying on the
// primary key instead of a prior SELECT keeps concurrent registrations of
// the same username from both succeeding.
const uniqueViolation = "23505"

func (r *Repository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, password, name) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, user.Username, user.PasswordHash, user.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.ErrConflict
		}
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT username, password, name, token FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.Username, &user.PasswordHash, &user.Name, &user.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByUsername: %w", err)
	}
	return user, nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT username, password, name, token FROM users WHERE token = $1`
	err := r.db.QueryRow(ctx, query, token).Scan(
		&user.Username, &user.PasswordHash, &user.Name, &user.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByToken: %w", err)
	}
	return user, nil
}

// UpdateToken stores a new session token, or clears it when token is nil.
func (r *Repository) UpdateToken(ctx context.Context, username string, token *string) error {
	query := `UPDATE users SET token = $1 WHERE username = $2`
	cmdTag, err := r.db.Exec(ctx, query, token, username)
	if err != nil {
		return fmt.Errorf("repository.UpdateToken: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, username string, name, passwordHash *string) (*models.User, error) {
	var setClauses []string
	var args []interface{}
	argIdx := 1

	if name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *name)
		argIdx++
	}
	if passwordHash != nil {
		setClauses = append(setClauses, fmt.Sprintf("password = $%d", argIdx))
		args = append(args, *passwordHash)
		argIdx++
	}

	if len(setClauses) == 0 {
		return r.FindByUsername(ctx, username)
	}

	args = append(args, username)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING username, password, name, token`,
		strings.Join(setClauses, ", "), argIdx)

	updated := &models.User{}
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&updated.Username, &updated.PasswordHash, &updated.Name, &updated.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.Update: %w", err)
	}
	return updated, nil
}
