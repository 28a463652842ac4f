package user

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/presensia/presensi-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo user.UserRepository
}

func NewUserService(repo user.UserRepository) user.UserService {
	return &UserServiceImpl{repo: repo}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, user.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return user.User{}, err
	}

	created.PasswordHash = ""
	return created, nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	u.PasswordHash = ""
	return u, nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, page, limit int) (user.ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	users, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return user.ListResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	for i := range users {
		users[i].PasswordHash = ""
	}

	return user.ListResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Users:      users,
	}, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return user.User{}, err
	}

	if req.Username != nil {
		current.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		current.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		current.PasswordHash = string(hash)
	}
	if req.Role != nil {
		current.Role = user.Role(*req.Role)
	}
	if req.EmployeeID != nil {
		current.EmployeeID = req.EmployeeID
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return user.User{}, err
	}

	current.PasswordHash = ""
	return current, nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
