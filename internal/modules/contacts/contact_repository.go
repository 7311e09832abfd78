package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contactbook/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines methods for interacting with contact storage.
// Every query is scoped by the owning username; a row owned by someone else
// behaves exactly like a row that does not exist.
type RepositoryInterface interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	FindByID(ctx context.Context, id int64, username string) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id int64, username string) error
	Search(ctx context.Context, username string, req models.SearchContactRequest) ([]models.Contact, int, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
        INSERT INTO contacts (first_name, last_name, email, phone, username)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.Username,
	).Scan(&contact.ID)
	if err != nil {
		return nil, fmt.Errorf("repository.Create: %w", err)
	}
	return contact, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64, username string) (*models.Contact, error) {
	contact := &models.Contact{}
	query := `
        SELECT id, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, ''), username
        FROM contacts WHERE id = $1 AND username = $2`
	err := r.db.QueryRow(ctx, query, id, username).Scan(
		&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone, &contact.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return contact, nil
}

// Update replaces the editable fields in one statement scoped by owner, so
// the existence check and the write cannot interleave with a delete.
func (r *Repository) Update(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
        UPDATE contacts
        SET first_name = $1, last_name = $2, email = $3, phone = $4
        WHERE id = $5 AND username = $6
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID, contact.Username,
	).Scan(&contact.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.Update: %w", err)
	}
	return contact, nil
}

func (r *Repository) Delete(ctx context.Context, id int64, username string) error {
	query := `DELETE FROM contacts WHERE id = $1 AND username = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, username)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Search applies the conjunctive filters and the paging window, returning
// the matching page and the total match count.
func (r *Repository) Search(ctx context.Context, username string, req models.SearchContactRequest) ([]models.Contact, int, error) {
	where := []string{"username = $1"}
	args := []interface{}{username}
	argIdx := 2

	if req.Name != "" {
		where = append(where, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+req.Name+"%")
		argIdx++
	}
	if req.Phone != "" {
		where = append(where, fmt.Sprintf("phone ILIKE $%d", argIdx))
		args = append(args, "%"+req.Phone+"%")
		argIdx++
	}
	if req.Email != "" {
		where = append(where, fmt.Sprintf("email ILIKE $%d", argIdx))
		args = append(args, "%"+req.Email+"%")
		argIdx++
	}

	clause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT count(*) FROM contacts WHERE ` + clause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository.Search.Count: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT id, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, ''), username
        FROM contacts WHERE %s
        ORDER BY id
        LIMIT $%d OFFSET $%d`, clause, argIdx, argIdx+1)
	args = append(args, req.Size, (req.Page-1)*req.Size)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.Search: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, req.Size)
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(
			&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone, &contact.Username,
		); err != nil {
			return nil, 0, fmt.Errorf("repository.Search.Scan: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository.Search.Rows: %w", err)
	}

	return contacts, total, nil
}
