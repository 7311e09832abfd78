package models

// Contact belongs to exactly one user and is only ever visible through that
// user; every repository query is scoped by username.
type Contact struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name,omitempty" db:"last_name"`
	Email     string `json:"email,omitempty" db:"email"`
	Phone     string `json:"phone,omitempty" db:"phone"`
	Username  string `json:"-" db:"username"`
}

type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// UpdateContactRequest replaces all editable fields; PUT semantics.
type UpdateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// SearchContactRequest holds the optional filters and paging window for
// contact search. Defaults (page 1, size 10) are applied by the handler.
type SearchContactRequest struct {
	Name  string `query:"name" validate:"omitempty,max=100"`
	Email string `query:"email" validate:"omitempty,max=100"`
	Phone string `query:"phone" validate:"omitempty,max=20"`
	Page  int    `query:"page" validate:"min=1"`
	Size  int    `query:"size" validate:"min=1"`
}

type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func ToContactResponse(contact *Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
