package application

import (
	"time"

	"github.com/femfund/femfund/internal/api/middleware"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input user.RegisterInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   string(hashed),
		Role:       string(user.RoleUser),
		IsVerified: true,
	}

	if err := s.Repos.User.CreateUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) LoginUser(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Email, usr.IsAdmin(), usr.IsVerified, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (s *UserService) UpdateProfile(id uint, input user.UpdateProfileInput) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}

	if input.Email != nil && *input.Email != usr.Email {
		_, err := s.Repos.User.GetUserByEmail(*input.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return user.User{}, err
		}
		if err == nil {
			return user.User{}, ErrEmailTaken
		}
		usr.Email = *input.Email
	}
	if input.Name != nil {
		usr.Name = *input.Name
	}

	if err := s.Repos.User.UpdateUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) ChangePassword(id uint, input user.ChangePasswordInput) error {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.OldPassword)); err != nil {
		return ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	usr.Password = string(hashed)
	return s.Repos.User.UpdateUser(&usr)
}
