package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserInactive(ctx context.Context, userID string, deactivatedAt time.Time, deactivatedBy string) error {
	args := m.Called(ctx, userID, deactivatedAt, deactivatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

// --- CreateUser ---

func (suite *UserServiceTestSuite) TestCreateUser_SelfServiceCustomer() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "maria",
		Name:     "Maria Silva",
		Password: "secret123",
		Role:     "CUSTOMER",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "maria" &&
			u.Role == domain.RoleCustomer &&
			u.IsActive &&
			u.UserID != "" &&
			u.CreatedBy == u.UserID && // self-registered users are their own creator
			utils.CheckPasswordHash("secret123", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().NoError(err)
	suite.Equal("maria", user.Username)
	suite.Equal(domain.RoleCustomer, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_SelfServiceStaffForbidden() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "eve",
		Name:     "Eve",
		Password: "secret123",
		Role:     "STAFF",
	}

	user, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_AdminCreatesStaff() {
	ctx := context.Background()
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, IsActive: true}
	req := dto.CreateUserRequest{
		Username: "joao",
		Name:     "Joao Souza",
		Password: "secret123",
		Role:     "STAFF",
	}

	suite.mockRepo.On("FindUserByID", ctx, "admin-1").Return(admin, nil).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleStaff && u.CreatedBy == "admin-1"
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleStaff, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_StaffCannotCreateStaff() {
	ctx := context.Background()
	staff := &domain.User{UserID: "staff-1", Role: domain.RoleStaff, IsActive: true}
	req := dto.CreateUserRequest{
		Username: "joao",
		Name:     "Joao Souza",
		Password: "secret123",
		Role:     "STAFF",
	}

	suite.mockRepo.On("FindUserByID", ctx, "staff-1").Return(staff, nil).Once()

	user, err := suite.service.CreateUser(ctx, req, "staff-1")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_ShortPassword() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "maria",
		Name:     "Maria Silva",
		Password: "12345",
		Role:     "CUSTOMER",
	}

	user, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "maria",
		Name:     "Maria Silva",
		Password: "secret123",
		Role:     "CUSTOMER",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       "user-1",
		Username:     "maria",
		PasswordHash: mustHash(suite.T(), "secret123"),
		Role:         domain.RoleStaff,
		IsActive:     true,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "maria").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "maria", "secret123")

	suite.Require().NoError(err)
	suite.Equal("user-1", got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       "user-1",
		Username:     "maria",
		PasswordHash: mustHash(suite.T(), "secret123"),
		IsActive:     true,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "maria").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "maria", "wrong-pass")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	// Unknown usernames and wrong passwords are indistinguishable.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- ChangePassword ---

func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       "user-1",
		Username:     "maria",
		PasswordHash: mustHash(suite.T(), "oldsecret"),
		IsActive:     true,
	}

	suite.mockRepo.On("FindUserByID", ctx, "user-1").Return(user, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return utils.CheckPasswordHash("newsecret", u.PasswordHash) && u.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, "user-1", dto.ChangePasswordRequest{
		CurrentPassword: "oldsecret",
		NewPassword:     "newsecret",
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrent() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       "user-1",
		PasswordHash: mustHash(suite.T(), "oldsecret"),
		IsActive:     true,
	}

	suite.mockRepo.On("FindUserByID", ctx, "user-1").Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, "user-1", dto.ChangePasswordRequest{
		CurrentPassword: "not-it",
		NewPassword:     "newsecret",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_ShortNew() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       "user-1",
		PasswordHash: mustHash(suite.T(), "oldsecret"),
		IsActive:     true,
	}

	suite.mockRepo.On("FindUserByID", ctx, "user-1").Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, "user-1", dto.ChangePasswordRequest{
		CurrentPassword: "oldsecret",
		NewPassword:     "short",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- EnsureAdminUser ---

func (suite *UserServiceTestSuite) TestEnsureAdminUser_SeedsWhenNoAdmin() {
	ctx := context.Background()
	staffOnly := []domain.User{{UserID: "staff-1", Role: domain.RoleStaff, IsActive: true}}

	suite.mockRepo.On("ListUsers", ctx).Return(staffOnly, nil).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" &&
			u.Role == domain.RoleAdmin &&
			u.CreatedBy == "system" &&
			utils.CheckPasswordHash("admin123", u.PasswordHash)
	})).Return(nil).Once()

	err := suite.service.EnsureAdminUser(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_SkipsWhenAdminExists() {
	ctx := context.Background()
	users := []domain.User{{UserID: "admin-1", Role: domain.RoleAdmin, IsActive: true}}

	suite.mockRepo.On("ListUsers", ctx).Return(users, nil).Once()

	err := suite.service.EnsureAdminUser(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- FindOrCreateGoogleUser ---

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ProvisionsCustomer() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "google-123", Email: "maria@gmail.com", Name: "Maria Silva"}

	suite.mockRepo.On("FindUserByGoogleID", ctx, "google-123").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByUsername", ctx, "maria@gmail.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "maria@gmail.com" &&
			u.GoogleID == "google-123" &&
			u.Role == domain.RoleCustomer &&
			u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal("google-123", user.GoogleID)
	suite.Equal(domain.RoleCustomer, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksExistingAccount() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Username: "maria@gmail.com", Role: domain.RoleStaff, IsActive: true}
	info := domain.GoogleUserInfo{ID: "google-123", Email: "maria@gmail.com"}

	suite.mockRepo.On("FindUserByGoogleID", ctx, "google-123").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByUsername", ctx, "maria@gmail.com").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "user-1" && u.GoogleID == "google-123" && u.Email == "maria@gmail.com"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.Equal(domain.RoleStaff, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_AlreadyLinked() {
	ctx := context.Background()
	linked := &domain.User{UserID: "user-1", GoogleID: "google-123", IsActive: true}

	suite.mockRepo.On("FindUserByGoogleID", ctx, "google-123").Return(linked, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{ID: "google-123", Email: "maria@gmail.com"})

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- DeactivateUser ---

func (suite *UserServiceTestSuite) TestDeactivateUser_Success() {
	ctx := context.Background()
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, IsActive: true}

	suite.mockRepo.On("FindUserByID", ctx, "admin-1").Return(admin, nil).Once()
	suite.mockRepo.On("MarkUserInactive", ctx, "user-2", mock.AnythingOfType("time.Time"), "admin-1").
		Return(nil).Once()

	err := suite.service.DeactivateUser(ctx, "user-2", "admin-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeactivateUser_OwnAccountBlocked() {
	ctx := context.Background()
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, IsActive: true}

	suite.mockRepo.On("FindUserByID", ctx, "admin-1").Return(admin, nil).Once()

	err := suite.service.DeactivateUser(ctx, "admin-1", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserInactive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateUser ---

func (suite *UserServiceTestSuite) TestUpdateUser_RoleChangeNeedsAdmin() {
	ctx := context.Background()
	staff := &domain.User{UserID: "staff-1", Role: domain.RoleStaff, IsActive: true}
	newRole := "ADMIN"

	// Looked up twice: once as the target, once for the admin check.
	suite.mockRepo.On("FindUserByID", ctx, "staff-1").Return(staff, nil).Twice()

	user, err := suite.service.UpdateUser(ctx, "staff-1", dto.UpdateUserRequest{Role: &newRole}, "staff-1")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
