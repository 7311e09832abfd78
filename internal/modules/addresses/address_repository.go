package addresses

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines methods for interacting with address storage.
// Queries are scoped by (id, contact_id); verifying that the contact itself
// belongs to the caller is the service layer's job.
type RepositoryInterface interface {
	Create(ctx context.Context, address *models.Address) (*models.Address, error)
	FindByID(ctx context.Context, id, contactID int64) (*models.Address, error)
	Update(ctx context.Context, address *models.Address) (*models.Address, error)
	Delete(ctx context.Context, id, contactID int64) error
	ListByContact(ctx context.Context, contactID int64) ([]models.Address, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, address *models.Address) (*models.Address, error) {
	query := `
        INSERT INTO addresses (street, city, province, country, postal_code, contact_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		address.Street, address.City, address.Province, address.Country, address.PostalCode, address.ContactID,
	).Scan(&address.ID)
	if err != nil {
		return nil, fmt.Errorf("repository.Create: %w", err)
	}
	return address, nil
}

func (r *Repository) FindByID(ctx context.Context, id, contactID int64) (*models.Address, error) {
	address := &models.Address{}
	query := `
        SELECT id, COALESCE(street, ''), COALESCE(city, ''), COALESCE(province, ''), country, postal_code, contact_id
        FROM addresses WHERE id = $1 AND contact_id = $2`
	err := r.db.QueryRow(ctx, query, id, contactID).Scan(
		&address.ID, &address.Street, &address.City, &address.Province,
		&address.Country, &address.PostalCode, &address.ContactID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return address, nil
}

func (r *Repository) Update(ctx context.Context, address *models.Address) (*models.Address, error) {
	query := `
        UPDATE addresses
        SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
        WHERE id = $6 AND contact_id = $7
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		address.Street, address.City, address.Province, address.Country, address.PostalCode,
		address.ID, address.ContactID,
	).Scan(&address.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.Update: %w", err)
	}
	return address, nil
}

func (r *Repository) Delete(ctx context.Context, id, contactID int64) error {
	query := `DELETE FROM addresses WHERE id = $1 AND contact_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, contactID)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) ListByContact(ctx context.Context, contactID int64) ([]models.Address, error) {
	query := `
        SELECT id, COALESCE(street, ''), COALESCE(city, ''), COALESCE(province, ''), country, postal_code, contact_id
        FROM addresses WHERE contact_id = $1
        ORDER BY id`
	rows, err := r.db.Query(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListByContact: %w", err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		var address models.Address
		if err := rows.Scan(
			&address.ID, &address.Street, &address.City, &address.Province,
			&address.Country, &address.PostalCode, &address.ContactID,
		); err != nil {
			return nil, fmt.Errorf("repository.ListByContact.Scan: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.ListByContact.Rows: %w", err)
	}

	return addresses, nil
}
