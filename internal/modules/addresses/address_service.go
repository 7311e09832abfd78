package addresses

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/models"
)

// ContactChecker verifies that a contact exists and belongs to a user. The
// contacts service satisfies it.
type ContactChecker interface {
	CheckContactMustExist(ctx context.Context, username string, contactID int64) error
}

// ServiceInterface defines methods for address business logic. Every method
// re-verifies contact ownership before touching address rows; the address
// query being scoped by contact_id is not enough on its own, since the
// contact_id in the URL says nothing about who owns that contact.
type ServiceInterface interface {
	Create(ctx context.Context, user *models.User, contactID int64, req models.CreateAddressRequest) (*models.AddressResponse, error)
	Get(ctx context.Context, user *models.User, contactID, addressID int64) (*models.AddressResponse, error)
	Update(ctx context.Context, user *models.User, contactID, addressID int64, req models.UpdateAddressRequest) (*models.AddressResponse, error)
	Delete(ctx context.Context, user *models.User, contactID, addressID int64) error
	List(ctx context.Context, user *models.User, contactID int64) ([]models.AddressResponse, error)
}

type Service struct {
	repo       RepositoryInterface
	contactSvc ContactChecker
}

func NewService(repo RepositoryInterface, contactSvc ContactChecker) ServiceInterface {
	return &Service{
		repo:       repo,
		contactSvc: contactSvc,
	}
}

func (s *Service) Create(ctx context.Context, user *models.User, contactID int64, req models.CreateAddressRequest) (*models.AddressResponse, error) {
	if err := s.contactSvc.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	address := &models.Address{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		ContactID:  contactID,
	}
	created, err := s.repo.Create(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}

	resp := models.ToAddressResponse(created)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, user *models.User, contactID, addressID int64) (*models.AddressResponse, error) {
	if err := s.contactSvc.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	address, err := s.repo.FindByID(ctx, addressID, contactID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.Get: %w", err)
	}

	resp := models.ToAddressResponse(address)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, user *models.User, contactID, addressID int64, req models.UpdateAddressRequest) (*models.AddressResponse, error) {
	if err := s.contactSvc.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	address := &models.Address{
		ID:         addressID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		ContactID:  contactID,
	}
	updated, err := s.repo.Update(ctx, address)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.Update: %w", err)
	}

	resp := models.ToAddressResponse(updated)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, user *models.User, contactID, addressID int64) error {
	if err := s.contactSvc.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, addressID, contactID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("service.Delete: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, user *models.User, contactID int64) ([]models.AddressResponse, error) {
	if err := s.contactSvc.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.repo.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("service.List: %w", err)
	}

	responses := make([]models.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, models.ToAddressResponse(&addresses[i]))
	}
	return responses, nil
}
