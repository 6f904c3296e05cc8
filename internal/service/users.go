package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bidfair/backend/internal/db"
	"github.com/bidfair/backend/internal/model"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Details returns the calling user's own profile.
func (s *UserService) Details(ctx context.Context, callerID string) (*model.UserDTO, error) {
	return s.Get(ctx, callerID)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.UserDTO, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	dto := model.ToUserDTO(user)
	return &dto, nil
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.UserDTO, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleCustomer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		Role:           role,
		HashedPassword: string(hash),
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	dto := model.ToUserDTO(user)
	return &dto, nil
}

func (s *UserService) List(ctx context.Context, params model.PageParams) (*model.UserList, error) {
	total, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.users.ListUsers(ctx, params.Offset(), params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	dtos := make([]model.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, model.ToUserDTO(&users[i]))
	}

	return &model.UserList{
		Data:       dtos,
		Page:       params.Page,
		PageSize:   params.Limit,
		TotalPages: model.TotalPages(total, params.Limit),
	}, nil
}

func (s *UserService) Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.UserDTO, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		user.Name = *req.Name
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *req.Role)
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	updated, err := s.users.UpdateUser(ctx, user)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}

	dto := model.ToUserDTO(updated)
	return &dto, nil
}

// Remove deactivates and soft-deletes a user account.
func (s *UserService) Remove(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.users.SoftDeleteUser(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}
