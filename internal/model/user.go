package model

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

type User struct {
	ID             string
	Name           string
	Email          string
	Role           UserRole
	HashedPassword string
	IsActive       bool
	IsVerified     bool
	IsDeleted      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// UserDTO is the outward shape of a user. The password hash never leaves
// the service layer.
type UserDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       UserRole  `json:"role"`
	IsActive   bool      `json:"isActive"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToUserDTO(u *User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

type CreateUserRequest struct {
	Name     string   `json:"name" binding:"required,max=255"`
	Email    string   `json:"email" binding:"required,email,max=255"`
	Password string   `json:"password" binding:"required,min=8,max=128"`
	Role     UserRole `json:"role"`
}

type UpdateUserRequest struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Role       *UserRole `json:"role"`
	IsActive   *bool     `json:"isActive"`
	IsVerified *bool     `json:"isVerified"`
}

type UserList struct {
	Data       []UserDTO `json:"data"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
