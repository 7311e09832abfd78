package models

// User is the account row. The token column holds the opaque session token;
// at most one token is active per user and it stays valid until the next
// login overwrites it or logout clears it.
type User struct {
	Username     string  `json:"username" db:"username"`
	Name         string  `json:"name" db:"name"`
	PasswordHash string  `json:"-" db:"password"`
	Token        *string `json:"-" db:"token"`
}

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest carries a partial profile update. Only fields present in
// the request body are applied.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=100"`
}

// UserResponse is the public profile. Token is set only by login.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func ToUserResponse(user *User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
