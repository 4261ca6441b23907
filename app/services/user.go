package services

import (
	"context"

	"github.com/taskdesk/taskdesk/app/models"
)

// UserService is the directory facade over the roster owned by AuthService:
// listing, role filtering, and registration helpers. It holds no roster
// copy of its own, so there is no second cache to keep in sync.
type UserService struct {
	auth *AuthService
}

func NewUserService(auth *AuthService) *UserService {
	return &UserService{auth: auth}
}

// All returns every user in load order.
func (s *UserService) All() []models.User {
	return s.auth.Users()
}

// Employees returns users with the Employee role, order preserved.
func (s *UserService) Employees() []models.User {
	var employees []models.User
	for _, u := range s.auth.Users() {
		if u.Role == models.RoleEmployee {
			employees = append(employees, u)
		}
	}
	return employees
}

// RegisterEmployee creates a new user with the Employee role.
func (s *UserService) RegisterEmployee(ctx context.Context, login, rawPassword string) (*models.User, error) {
	return s.auth.CreateUser(ctx, login, rawPassword, models.RoleEmployee)
}

// RegisterManager creates a new user with the Manager role. Used on first
// run when the roster is empty.
func (s *UserService) RegisterManager(ctx context.Context, login, rawPassword string) (*models.User, error) {
	return s.auth.CreateUser(ctx, login, rawPassword, models.RoleManager)
}
