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
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) MarkClientInactive(ctx context.Context, clientID string, deactivatedAt time.Time, deactivatedBy string) error {
	args := m.Called(ctx, clientID, deactivatedAt, deactivatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockClientRepository
	mockUsers *MockUserReader
	service   portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.mockUsers = new(MockUserReader)
	suite.service = services.NewClientService(suite.mockRepo, suite.mockUsers)
}

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		Phone: " 11 99999-0000 ",
	}

	suite.mockRepo.On("FindClientByEmail", ctx, "maria@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	stored := domain.Client{ClientID: "CLI001", Name: "Maria Silva", Email: "maria@example.com", IsActive: true}
	suite.mockRepo.On("CreateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Maria Silva" &&
			c.Email == "maria@example.com" &&
			c.Phone == "11 99999-0000" &&
			c.IsActive &&
			c.CreatedBy == "user-1"
	})).Return(&stored, nil).Once()

	client, err := suite.service.CreateClient(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("CLI001", client.ClientID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_NoEmailSkipsUniquenessCheck() {
	ctx := context.Background()
	req := dto.CreateClientRequest{Name: "Maria Silva"}

	stored := domain.Client{ClientID: "CLI001", Name: "Maria Silva", IsActive: true}
	suite.mockRepo.On("CreateClient", ctx, mock.AnythingOfType("domain.Client")).
		Return(&stored, nil).Once()

	client, err := suite.service.CreateClient(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("CLI001", client.ClientID)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindClientByEmail", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_DuplicateEmail() {
	ctx := context.Background()
	taken := domain.Client{ClientID: "CLI009", Email: "maria@example.com"}
	req := dto.CreateClientRequest{Name: "Maria Silva", Email: "maria@example.com"}

	suite.mockRepo.On("FindClientByEmail", ctx, "maria@example.com").Return(&taken, nil).Once()

	client, err := suite.service.CreateClient(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_BlankName() {
	ctx := context.Background()

	client, err := suite.service.CreateClient(ctx, dto.CreateClientRequest{Name: "  "}, "user-1")

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_KeepingOwnEmail() {
	ctx := context.Background()
	existing := domain.Client{ClientID: "CLI001", Name: "Maria Silva", Email: "maria@example.com", IsActive: true}
	sameEmail := "MARIA@example.com"

	suite.mockRepo.On("FindClientByID", ctx, "CLI001").Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Email == sameEmail && c.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	client, err := suite.service.UpdateClient(ctx, "CLI001", dto.UpdateClientRequest{Email: &sameEmail}, "user-2")

	suite.Require().NoError(err)
	suite.Equal(sameEmail, client.Email)
	// The client's own address never trips the uniqueness check.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindClientByEmail", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NewEmailMustBeFree() {
	ctx := context.Background()
	existing := domain.Client{ClientID: "CLI001", Name: "Maria Silva", Email: "maria@example.com", IsActive: true}
	taken := domain.Client{ClientID: "CLI002", Email: "jose@example.com"}
	newEmail := "jose@example.com"

	suite.mockRepo.On("FindClientByID", ctx, "CLI001").Return(&existing, nil).Once()
	suite.mockRepo.On("FindClientByEmail", ctx, "jose@example.com").Return(&taken, nil).Once()

	client, err := suite.service.UpdateClient(ctx, "CLI001", dto.UpdateClientRequest{Email: &newEmail}, "user-2")

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestListClients_NameSearch() {
	ctx := context.Background()
	stored := []domain.Client{
		{ClientID: "CLI001", Name: "Maria Silva"},
		{ClientID: "CLI002", Name: "Jose Santos"},
	}

	suite.mockRepo.On("ListClients", ctx).Return(stored, nil).Once()

	clients, err := suite.service.ListClients(ctx, "santos")

	suite.Require().NoError(err)
	suite.Require().Len(clients, 1)
	suite.Equal("CLI002", clients[0].ClientID)
}

func (suite *ClientServiceTestSuite) TestDeactivateClient_RequiresAdmin() {
	ctx := context.Background()

	suite.mockUsers.On("GetUserByID", ctx, "staff-1").
		Return(&domain.User{UserID: "staff-1", Role: domain.RoleStaff}, nil).Once()

	err := suite.service.DeactivateClient(ctx, "CLI001", "staff-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkClientInactive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
