package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/storage/memory"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/pkg/test/factory"
)

type UserServiceTestSuite struct {
	suite.Suite
	Service  *service.UserService
	UserRepo port.UserRepository
}

func (s *UserServiceTestSuite) SetupTest() {
	s.UserRepo = memory.NewUserRepository(nil)
	s.Service = service.NewUserService(s.UserRepo, nil)
}

func TestUserServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreate_Success() {
	params := factory.NewCreateUserRequest(map[string]any{
		"Name":  "Test User",
		"Email": "test@example.com",
	})

	user, err := s.Service.Create(context.Background(), params)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Test User", user.Name())
	assert.Equal(s.T(), "test@example.com", user.Email().String())

	stored, _ := s.UserRepo.FindByID(context.Background(), user.ID())
	assert.NotNil(s.T(), stored)
}

func (s *UserServiceTestSuite) TestCreate_DuplicateEmail() {
	params := factory.NewCreateUserRequest(map[string]any{"Email": "dup@example.com"})

	_, err := s.Service.Create(context.Background(), params)
	assert.NoError(s.T(), err)

	_, err = s.Service.Create(context.Background(), factory.NewCreateUserRequest(map[string]any{
		"Name":  "Someone Else",
		"Email": "dup@example.com",
	}))

	assert.ErrorIs(s.T(), err, domain.ErrEmailAlreadyRegistered)

	users, _ := s.UserRepo.FindAll(context.Background())
	Expect(users).To(HaveLen(1))
}

func (s *UserServiceTestSuite) TestCreate_ConflictWinsOverInvalidName() {
	_, err := s.Service.Create(context.Background(), factory.NewCreateUserRequest(map[string]any{"Email": "dup@example.com"}))
	assert.NoError(s.T(), err)

	_, err = s.Service.Create(context.Background(), request.CreateUserRequest{
		Name:  "X",
		Email: "dup@example.com",
	})

	assert.ErrorIs(s.T(), err, domain.ErrEmailAlreadyRegistered)
}

func (s *UserServiceTestSuite) TestCreate_CaseSensitiveEmails() {
	_, err := s.Service.Create(context.Background(), factory.NewCreateUserRequest(map[string]any{"Email": "case@example.com"}))
	assert.NoError(s.T(), err)

	_, err = s.Service.Create(context.Background(), factory.NewCreateUserRequest(map[string]any{"Email": "Case@example.com"}))

	assert.NoError(s.T(), err)
}

func (s *UserServiceTestSuite) TestCreate_InvalidEmail() {
	_, err := s.Service.Create(context.Background(), request.CreateUserRequest{
		Name:  "Test User",
		Email: "broken",
	})

	assert.Error(s.T(), err)
	assert.True(s.T(), domain.IsValidationError(err))

	users, _ := s.UserRepo.FindAll(context.Background())
	Expect(users).To(BeEmpty())
}

func (s *UserServiceTestSuite) TestGetByID_NotFound() {
	_, err := s.Service.GetByID(context.Background(), "missing")

	assert.ErrorIs(s.T(), err, domain.ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestList_PreservesInsertionOrder() {
	first, _ := s.Service.Create(context.Background(), factory.NewCreateUserRequest())
	second, _ := s.Service.Create(context.Background(), factory.NewCreateUserRequest())

	users, err := s.Service.List(context.Background())

	assert.NoError(s.T(), err)
	Expect(users).To(HaveLen(2))
	assert.True(s.T(), users[0].ID().Equals(first.ID()))
	assert.True(s.T(), users[1].ID().Equals(second.ID()))
}

func (s *UserServiceTestSuite) TestUpdate_PartialFields() {
	user, _ := s.Service.Create(context.Background(), factory.NewCreateUserRequest(map[string]any{
		"Name":  "Original Name",
		"Email": "original@example.com",
	}))

	name := "Updated Name"
	updated, err := s.Service.Update(context.Background(), user.ID().String(), request.UpdateUserRequest{
		Name: &name,
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Updated Name", updated.Name())
	assert.Equal(s.T(), "original@example.com", updated.Email().String())
}

func (s *UserServiceTestSuite) TestUpdate_NotFound() {
	name := "Updated Name"
	_, err := s.Service.Update(context.Background(), "missing", request.UpdateUserRequest{Name: &name})

	assert.ErrorIs(s.T(), err, domain.ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestUpdate_InvalidEmailKeepsUser() {
	user, _ := s.Service.Create(context.Background(), factory.NewCreateUserRequest(map[string]any{"Email": "keep@example.com"}))

	email := "broken"
	_, err := s.Service.Update(context.Background(), user.ID().String(), request.UpdateUserRequest{Email: &email})

	assert.Error(s.T(), err)

	stored, _ := s.Service.GetByID(context.Background(), user.ID().String())
	assert.Equal(s.T(), "keep@example.com", stored.Email().String())
}

func (s *UserServiceTestSuite) TestDelete_Success() {
	user, _ := s.Service.Create(context.Background(), factory.NewCreateUserRequest())

	err := s.Service.Delete(context.Background(), user.ID().String())

	assert.NoError(s.T(), err)

	_, err = s.Service.GetByID(context.Background(), user.ID().String())
	assert.ErrorIs(s.T(), err, domain.ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestDelete_NotFound() {
	err := s.Service.Delete(context.Background(), "missing")

	assert.ErrorIs(s.T(), err, domain.ErrUserNotFound)
}
