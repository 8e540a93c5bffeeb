package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/services"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context, kind domain.LedgerKind) ([]domain.Category, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByCode(ctx context.Context, kind domain.LedgerKind, code string) (*domain.Category, error) {
	args := m.Called(ctx, kind, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, kind domain.LedgerKind, categories []domain.Category) error {
	args := m.Called(ctx, kind, categories)
	return args.Error(0)
}

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestListCategories_Success() {
	ctx := context.Background()
	stored := []domain.Category{
		{Code: "rent", Kind: domain.KindPayable, DisplayName: "Rent", Nature: domain.NatureFixed},
		{Code: "supplier", Kind: domain.KindPayable, DisplayName: "Suppliers", Nature: domain.NatureVariable},
	}

	suite.mockRepo.On("FindCategories", ctx, domain.KindPayable).Return(stored, nil).Once()

	categories, err := suite.service.ListCategories(ctx, domain.KindPayable)

	suite.Require().NoError(err)
	suite.Require().Len(categories, 2)
	suite.Equal("rent", categories[0].Code)
	suite.Equal("supplier", categories[1].Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestListCategories_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategories", ctx, domain.KindReceivable).
		Return(([]domain.Category)(nil), nil).Once()

	categories, err := suite.service.ListCategories(ctx, domain.KindReceivable)

	suite.Require().NoError(err)
	suite.NotNil(categories)
	suite.Empty(categories)
}

func (suite *CategoryServiceTestSuite) TestResolveCategory_Success() {
	ctx := context.Background()
	rent := &domain.Category{Code: "rent", Kind: domain.KindPayable, DisplayName: "Rent"}

	suite.mockRepo.On("FindCategoryByCode", ctx, domain.KindPayable, "rent").Return(rent, nil).Once()

	category, err := suite.service.ResolveCategory(ctx, domain.KindPayable, "rent")

	suite.Require().NoError(err)
	suite.Equal("rent", category.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestResolveCategory_Unknown() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryByCode", ctx, domain.KindPayable, "fuel").
		Return(nil, apperrors.ErrUnknownCategory).Once()

	category, err := suite.service.ResolveCategory(ctx, domain.KindPayable, "fuel")

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrUnknownCategory)
}

func (suite *CategoryServiceTestSuite) TestEnsureDefaultCategories_SeedsEmptySides() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategories", ctx, domain.KindPayable).
		Return([]domain.Category{}, nil).Once()
	suite.mockRepo.On("FindCategories", ctx, domain.KindReceivable).
		Return([]domain.Category{}, nil).Once()
	suite.mockRepo.On("SaveCategories", ctx, domain.KindPayable, domain.DefaultCategories(domain.KindPayable)).
		Return(nil).Once()
	suite.mockRepo.On("SaveCategories", ctx, domain.KindReceivable, domain.DefaultCategories(domain.KindReceivable)).
		Return(nil).Once()

	err := suite.service.EnsureDefaultCategories(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestEnsureDefaultCategories_LeavesExistingAlone() {
	ctx := context.Background()
	custom := []domain.Category{{Code: "fuel", Kind: domain.KindPayable, DisplayName: "Fuel"}}

	suite.mockRepo.On("FindCategories", ctx, domain.KindPayable).Return(custom, nil).Once()
	suite.mockRepo.On("FindCategories", ctx, domain.KindReceivable).
		Return(domain.DefaultCategories(domain.KindReceivable), nil).Once()

	err := suite.service.EnsureDefaultCategories(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategories", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
