package application

import (
	"testing"
	"time"

	"github.com/femfund/femfund/internal/api/middleware"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/internal/repository"
	"github.com/femfund/femfund/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}
	return NewUserService(repos), mockUser
}

func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := user.RegisterInput{
		Name:     "Ada",
		Email:    "ada@test.com",
		Password: "123456",
	}

	mockUser.EXPECT().GetUserByEmail("ada@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, "user", u.Role)
		assert.True(t, u.IsVerified)
		assert.NotEqual(t, "123456", u.Password)
		u.UID = 1
		return nil
	})

	usr, err := svc.RegisterUser(input)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), usr.UID)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ada@test.com").Return(user.User{UID: 1}, nil)

	_, err := svc.RegisterUser(user.RegisterInput{Name: "Ada", Email: "ada@test.com", Password: "123456"})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{UID: 1, Email: "ada@test.com", Password: string(hashed), IsVerified: true}

	mockUser.EXPECT().GetUserByEmail("ada@test.com").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, email string, isAdmin, verified bool, exp time.Duration) (string, error) {
		assert.Equal(t, uint(1), uid)
		assert.True(t, verified)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	got, token, err := svc.LoginUser("ada@test.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "ada@test.com", got.Email)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{UID: 1, Email: "ada@test.com", Password: string(hashed)}

	mockUser.EXPECT().GetUserByEmail("ada@test.com").Return(usr, nil)

	_, _, err := svc.LoginUser("ada@test.com", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ghost@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser("ghost@test.com", "123456")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Email: "ada@test.com"}, nil)
	mockUser.EXPECT().GetUserByEmail("taken@test.com").Return(user.User{UID: 2}, nil)

	email := "taken@test.com"
	_, err := svc.UpdateProfile(1, user.UpdateProfileInput{Email: &email})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestChangePassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	stored := user.User{UID: 1, Password: string(hashed)}

	mockUser.EXPECT().GetUserByID(uint(1)).Return(stored, nil)
	mockUser.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpass")))
		return nil
	})

	err := svc.ChangePassword(1, user.ChangePasswordInput{OldPassword: "oldpass", NewPassword: "newpass"})
	assert.NoError(t, err)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(stored, nil)
	err = svc.ChangePassword(1, user.ChangePasswordInput{OldPassword: "wrong", NewPassword: "newpass"})
	assert.Equal(t, ErrIncorrectPassword, err)
}
