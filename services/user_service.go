package services

import (
	"strings"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService administers dashboard accounts
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{userRepo: repositories.NewUserRepository(db)}
}

// ListUsers returns a page of users
func (s *UserService) ListUsers(page dto.PageRequest) ([]models.User, int64, error) {
	return s.userRepo.FindPage(page)
}

// CreateUser registers a new account
func (s *UserService) CreateUser(req dto.CreateUserRequest) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, conflictf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		Email:    email,
		Password: string(hashed),
		Name:     req.Name,
		Role:     models.RoleUser,
		IsActive: true,
	}
	if req.IsAdmin {
		user.Role = models.RoleAdmin
	}
	if err := s.userRepo.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser changes name, password, role or active flag. An admin cannot
// demote or deactivate their own account.
func (s *UserService) UpdateUser(actor Actor, id string, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, notFound(err, "user")
	}

	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.Password = string(hashed)
	}
	if req.IsAdmin != nil {
		if user.ID == actor.UserID && !*req.IsAdmin {
			return models.User{}, validationf("you cannot remove your own admin role")
		}
		user.Role = models.RoleUser
		if *req.IsAdmin {
			user.Role = models.RoleAdmin
		}
	}
	if req.IsActive != nil {
		if user.ID == actor.UserID && !*req.IsActive {
			return models.User{}, validationf("you cannot deactivate your own account")
		}
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes an account other than the caller's
func (s *UserService) DeleteUser(actor Actor, id string) error {
	if id == actor.UserID {
		return validationf("you cannot delete your own account")
	}
	return notFound(s.userRepo.Delete(id), "user")
}
