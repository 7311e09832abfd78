package contacts

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/models"
)

// ServiceInterface defines methods for contact business logic.
// CheckContactMustExist is also used by the addresses module, which must
// re-verify contact ownership before touching any address row.
type ServiceInterface interface {
	Create(ctx context.Context, user *models.User, req models.CreateContactRequest) (*models.ContactResponse, error)
	Get(ctx context.Context, user *models.User, contactID int64) (*models.ContactResponse, error)
	Update(ctx context.Context, user *models.User, contactID int64, req models.UpdateContactRequest) (*models.ContactResponse, error)
	Delete(ctx context.Context, user *models.User, contactID int64) error
	Search(ctx context.Context, user *models.User, req models.SearchContactRequest) ([]models.ContactResponse, *models.Paging, error)
	CheckContactMustExist(ctx context.Context, username string, contactID int64) error
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) ServiceInterface {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, user *models.User, req models.CreateContactRequest) (*models.ContactResponse, error) {
	contact := &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Username:  user.Username,
	}
	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}

	resp := models.ToContactResponse(created)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, user *models.User, contactID int64) (*models.ContactResponse, error) {
	contact, err := s.repo.FindByID(ctx, contactID, user.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.Get: %w", err)
	}

	resp := models.ToContactResponse(contact)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, user *models.User, contactID int64, req models.UpdateContactRequest) (*models.ContactResponse, error) {
	contact := &models.Contact{
		ID:        contactID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Username:  user.Username,
	}
	updated, err := s.repo.Update(ctx, contact)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.Update: %w", err)
	}

	resp := models.ToContactResponse(updated)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, user *models.User, contactID int64) error {
	if err := s.repo.Delete(ctx, contactID, user.Username); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("service.Delete: %w", err)
	}
	return nil
}

func (s *Service) Search(ctx context.Context, user *models.User, req models.SearchContactRequest) ([]models.ContactResponse, *models.Paging, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Size < 1 {
		req.Size = 10
	}

	contacts, total, err := s.repo.Search(ctx, user.Username, req)
	if err != nil {
		return nil, nil, fmt.Errorf("service.Search: %w", err)
	}

	responses := make([]models.ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, models.ToContactResponse(&contacts[i]))
	}

	return responses, models.NewPaging(req.Page, req.Size, total), nil
}

// CheckContactMustExist fails with ErrNotFound unless the contact exists and
// is owned by username.
func (s *Service) CheckContactMustExist(ctx context.Context, username string, contactID int64) error {
	_, err := s.repo.FindByID(ctx, contactID, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("service.CheckContactMustExist: %w", err)
	}
	return nil
}
