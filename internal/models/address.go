package models

// Address hangs off a contact. Ownership is transitive: an address is only
// reachable through a contact owned by the caller, and the contact check is
// repeated on every address operation because contact_id alone proves
// nothing about who is asking.
type Address struct {
	ID         int64  `json:"id" db:"id"`
	Street     string `json:"street" db:"street"`
	City       string `json:"city" db:"city"`
	Province   string `json:"province" db:"province"`
	Country    string `json:"country" db:"country"`
	PostalCode string `json:"postal_code" db:"postal_code"`
	ContactID  int64  `json:"contact_id" db:"contact_id"`
}

type CreateAddressRequest struct {
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// UpdateAddressRequest replaces all fields; PUT semantics.
type UpdateAddressRequest struct {
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	ContactID  int64  `json:"contact_id"`
}

func ToAddressResponse(address *Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
		ContactID:  address.ContactID,
	}
}
