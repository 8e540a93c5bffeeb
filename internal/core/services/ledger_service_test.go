package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

// Ensure MockLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, kind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, kind, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, kind domain.LedgerKind) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) CreateEntry(ctx context.Context, kind domain.LedgerKind, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, kind, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) UpdateEntry(ctx context.Context, kind domain.LedgerKind, entry domain.LedgerEntry) error {
	args := m.Called(ctx, kind, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) MarkEntryInactive(ctx context.Context, kind domain.LedgerKind, entryID string, deactivatedAt time.Time, deactivatedBy string) error {
	args := m.Called(ctx, kind, entryID, deactivatedAt, deactivatedBy)
	return args.Error(0)
}

// --- Mock CategoryReaderSvc ---
type MockCategoryReader struct {
	mock.Mock
}

// Ensure MockCategoryReader implements portssvc.CategoryReaderSvc
var _ portssvc.CategoryReaderSvc = (*MockCategoryReader)(nil)

func (m *MockCategoryReader) ListCategories(ctx context.Context, kind domain.LedgerKind) ([]domain.Category, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryReader) ResolveCategory(ctx context.Context, kind domain.LedgerKind, code string) (*domain.Category, error) {
	args := m.Called(ctx, kind, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// --- Mock UserReaderSvc ---
type MockUserReader struct {
	mock.Mock
}

// Ensure MockUserReader implements portssvc.UserReaderSvc
var _ portssvc.UserReaderSvc = (*MockUserReader)(nil)

func (m *MockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockLedgerRepository
	mockCategories *MockCategoryReader
	mockUsers      *MockUserReader
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.mockCategories = new(MockCategoryReader)
	suite.mockUsers = new(MockUserReader)
	suite.service = services.NewLedgerService(suite.mockRepo, suite.mockCategories, suite.mockUsers)
}

func makeEntry(kind domain.LedgerKind, id string, dueDate time.Time, status domain.SettlementStatus) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:     id,
		Kind:        kind,
		Counterpart: "Counterpart " + id,
		Description: "Description " + id,
		Category:    "other",
		Amount:      decimal.NewFromInt(100),
		DueDate:     dueDate,
		Status:      status,
		IsActive:    true,
	}
}

// --- CreateEntry ---

func (suite *LedgerServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	creatorUserID := "user-1"
	dueDate := time.Now().UTC().AddDate(0, 0, 30)
	req := dto.CreateLedgerEntryRequest{
		Counterpart: "Energy Co",
		Description: "March power bill",
		Category:    "electricity",
		Amount:      decimal.NewFromFloat(420.50),
		DueDate:     dueDate.Format("2006-01-02"),
	}

	suite.mockCategories.On("ResolveCategory", ctx, domain.KindPayable, "electricity").
		Return(&domain.Category{Code: "electricity", Kind: domain.KindPayable}, nil).Once()

	stored := makeEntry(domain.KindPayable, "PAY001", dueDate, domain.SettlementPending)
	suite.mockRepo.On("CreateEntry", ctx, domain.KindPayable, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Counterpart == req.Counterpart &&
			e.Description == req.Description &&
			e.Category == req.Category &&
			e.Amount.Equal(req.Amount) &&
			e.Status == domain.SettlementPending &&
			e.IsActive &&
			e.CreatedBy == creatorUserID &&
			e.LastUpdatedBy == creatorUserID
	})).Return(&stored, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, domain.KindPayable, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("PAY001", entry.EntryID)
	suite.Equal(domain.UrgencyOnTrack, entry.Urgency)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCategories.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_TrimsWhitespace() {
	ctx := context.Background()
	dueDate := time.Now().UTC().AddDate(0, 0, 10)
	req := dto.CreateLedgerEntryRequest{
		Counterpart: "  Energy Co  ",
		Description: " March power bill ",
		Category:    "electricity",
		Amount:      decimal.NewFromInt(100),
		DueDate:     dueDate.Format("2006-01-02"),
	}

	suite.mockCategories.On("ResolveCategory", ctx, domain.KindPayable, "electricity").
		Return(&domain.Category{Code: "electricity"}, nil).Once()

	stored := makeEntry(domain.KindPayable, "PAY002", dueDate, domain.SettlementPending)
	suite.mockRepo.On("CreateEntry", ctx, domain.KindPayable, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Counterpart == "Energy Co" && e.Description == "March power bill"
	})).Return(&stored, nil).Once()

	_, err := suite.service.CreateEntry(ctx, domain.KindPayable, req, "user-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_BlankCounterpart() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Counterpart: "   ",
		Description: "Something",
		Category:    "other",
		Amount:      decimal.NewFromInt(10),
		DueDate:     "2025-04-01",
	}

	entry, err := suite.service.CreateEntry(ctx, domain.KindPayable, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_NonPositiveAmount() {
	ctx := context.Background()
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		req := dto.CreateLedgerEntryRequest{
			Counterpart: "Energy Co",
			Description: "Bill",
			Category:    "other",
			Amount:      amount,
			DueDate:     "2025-04-01",
		}

		entry, err := suite.service.CreateEntry(ctx, domain.KindReceivable, req, "user-1")

		suite.Require().Error(err)
		suite.Nil(entry)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_MalformedDueDate() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Counterpart: "Energy Co",
		Description: "Bill",
		Category:    "other",
		Amount:      decimal.NewFromInt(10),
		DueDate:     "01/04/2025",
	}

	entry, err := suite.service.CreateEntry(ctx, domain.KindPayable, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Counterpart: "Energy Co",
		Description: "Bill",
		Category:    "fuel",
		Amount:      decimal.NewFromInt(10),
		DueDate:     "2025-04-01",
	}

	suite.mockCategories.On("ResolveCategory", ctx, domain.KindPayable, "fuel").
		Return(nil, apperrors.ErrUnknownCategory).Once()

	entry, err := suite.service.CreateEntry(ctx, domain.KindPayable, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrUnknownCategory)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_RepoError() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Counterpart: "Energy Co",
		Description: "Bill",
		Category:    "other",
		Amount:      decimal.NewFromInt(10),
		DueDate:     "2025-04-01",
	}
	expectedErr := assert.AnError

	suite.mockCategories.On("ResolveCategory", ctx, domain.KindPayable, "other").
		Return(&domain.Category{Code: "other"}, nil).Once()
	suite.mockRepo.On("CreateEntry", ctx, domain.KindPayable, mock.AnythingOfType("domain.LedgerEntry")).
		Return(nil, expectedErr).Once()

	entry, err := suite.service.CreateEntry(ctx, domain.KindPayable, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, expectedErr)
}

// --- GetEntryByID ---

func (suite *LedgerServiceTestSuite) TestGetEntryByID_DerivesUrgency() {
	ctx := context.Background()
	overdue := makeEntry(domain.KindPayable, "PAY001", time.Now().UTC().AddDate(0, 0, -3), domain.SettlementPending)

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindPayable, "PAY001").Return(&overdue, nil).Once()

	entry, err := suite.service.GetEntryByID(ctx, domain.KindPayable, "PAY001")

	suite.Require().NoError(err)
	suite.Equal(domain.UrgencyOverdue, entry.Urgency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindReceivable, "REC999").
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, domain.KindReceivable, "REC999")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListEntries ---

func (suite *LedgerServiceTestSuite) TestListEntries_FiltersByStatusAndUrgency() {
	ctx := context.Background()
	now := time.Now().UTC()

	overdue := makeEntry(domain.KindPayable, "PAY001", now.AddDate(0, 0, -5), domain.SettlementPending)
	onTrack := makeEntry(domain.KindPayable, "PAY002", now.AddDate(0, 0, 30), domain.SettlementPending)
	settled := makeEntry(domain.KindPayable, "PAY003", now.AddDate(0, 0, -5), domain.SettlementSettled)

	suite.mockRepo.On("ListEntries", ctx, domain.KindPayable).
		Return([]domain.LedgerEntry{overdue, onTrack, settled}, nil).Times(3)

	got, err := suite.service.ListEntries(ctx, domain.KindPayable, dto.LedgerEntryFilters{Urgency: "OVERDUE"})
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("PAY001", got[0].EntryID)

	got, err = suite.service.ListEntries(ctx, domain.KindPayable, dto.LedgerEntryFilters{Status: "SETTLED"})
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("PAY003", got[0].EntryID)

	got, err = suite.service.ListEntries(ctx, domain.KindPayable, dto.LedgerEntryFilters{})
	suite.Require().NoError(err)
	suite.Len(got, 3)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListEntries_SearchIsCaseInsensitive() {
	ctx := context.Background()
	now := time.Now().UTC()

	matching := makeEntry(domain.KindReceivable, "REC001", now, domain.SettlementPending)
	matching.Counterpart = "Maria Silva"
	other := makeEntry(domain.KindReceivable, "REC002", now, domain.SettlementPending)
	other.Counterpart = "Jose Santos"
	other.Description = "Weekly delivery"

	suite.mockRepo.On("ListEntries", ctx, domain.KindReceivable).
		Return([]domain.LedgerEntry{matching, other}, nil).Once()

	got, err := suite.service.ListEntries(ctx, domain.KindReceivable, dto.LedgerEntryFilters{Search: "maria"})

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("REC001", got[0].EntryID)
}

func (suite *LedgerServiceTestSuite) TestListEntries_DueWindow() {
	ctx := context.Background()

	early := makeEntry(domain.KindPayable, "PAY001", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), domain.SettlementPending)
	inside := makeEntry(domain.KindPayable, "PAY002", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), domain.SettlementPending)
	late := makeEntry(domain.KindPayable, "PAY003", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), domain.SettlementPending)

	suite.mockRepo.On("ListEntries", ctx, domain.KindPayable).
		Return([]domain.LedgerEntry{early, inside, late}, nil).Once()

	got, err := suite.service.ListEntries(ctx, domain.KindPayable, dto.LedgerEntryFilters{
		DueFrom: "2025-03-10",
		DueTo:   "2025-03-31",
	})

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("PAY002", got[0].EntryID)
}

func (suite *LedgerServiceTestSuite) TestListEntries_MalformedDueWindow() {
	ctx := context.Background()

	suite.mockRepo.On("ListEntries", ctx, domain.KindPayable).
		Return([]domain.LedgerEntry{}, nil).Once()

	got, err := suite.service.ListEntries(ctx, domain.KindPayable, dto.LedgerEntryFilters{DueFrom: "soon"})

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetDueAlerts ---

func (suite *LedgerServiceTestSuite) TestGetDueAlerts_GroupsByUrgency() {
	ctx := context.Background()
	now := time.Now().UTC()

	overdue := makeEntry(domain.KindPayable, "PAY001", now.AddDate(0, 0, -1), domain.SettlementPending)
	dueToday := makeEntry(domain.KindPayable, "PAY002", now, domain.SettlementPending)
	dueSoon := makeEntry(domain.KindPayable, "PAY003", now.AddDate(0, 0, 3), domain.SettlementPending)
	onTrack := makeEntry(domain.KindPayable, "PAY004", now.AddDate(0, 0, 60), domain.SettlementPending)
	settled := makeEntry(domain.KindPayable, "PAY005", now.AddDate(0, 0, -10), domain.SettlementSettled)

	suite.mockRepo.On("ListEntries", ctx, domain.KindPayable).
		Return([]domain.LedgerEntry{overdue, dueToday, dueSoon, onTrack, settled}, nil).Once()

	alerts, err := suite.service.GetDueAlerts(ctx, domain.KindPayable)

	suite.Require().NoError(err)
	suite.Require().Len(alerts.Overdue, 1)
	suite.Equal("PAY001", alerts.Overdue[0].EntryID)
	suite.Require().Len(alerts.DueToday, 1)
	suite.Equal("PAY002", alerts.DueToday[0].EntryID)
	suite.Require().Len(alerts.DueSoon, 1)
	suite.Equal("PAY003", alerts.DueSoon[0].EntryID)
}

// --- UpdateEntry ---

func (suite *LedgerServiceTestSuite) TestUpdateEntry_Success() {
	ctx := context.Background()
	existing := makeEntry(domain.KindPayable, "PAY001", time.Now().UTC().AddDate(0, 0, 5), domain.SettlementPending)
	newAmount := decimal.NewFromFloat(999.99)

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindPayable, "PAY001").Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, domain.KindPayable, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.EntryID == "PAY001" && e.Amount.Equal(newAmount) && e.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, domain.KindPayable, "PAY001", dto.UpdateLedgerEntryRequest{
		Amount: &newAmount,
	}, "user-2")

	suite.Require().NoError(err)
	suite.True(entry.Amount.Equal(newAmount))
	suite.Equal(domain.UrgencyDueSoon, entry.Urgency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_SettledIsFrozen() {
	ctx := context.Background()
	settled := makeEntry(domain.KindPayable, "PAY001", time.Now().UTC(), domain.SettlementSettled)
	newAmount := decimal.NewFromInt(1)

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindPayable, "PAY001").Return(&settled, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, domain.KindPayable, "PAY001", dto.UpdateLedgerEntryRequest{
		Amount: &newAmount,
	}, "user-2")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrAlreadySettled)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_UnknownCategory() {
	ctx := context.Background()
	existing := makeEntry(domain.KindPayable, "PAY001", time.Now().UTC(), domain.SettlementPending)
	category := "fuel"

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindPayable, "PAY001").Return(&existing, nil).Once()
	suite.mockCategories.On("ResolveCategory", ctx, domain.KindPayable, "fuel").
		Return(nil, apperrors.ErrUnknownCategory).Once()

	entry, err := suite.service.UpdateEntry(ctx, domain.KindPayable, "PAY001", dto.UpdateLedgerEntryRequest{
		Category: &category,
	}, "user-2")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrUnknownCategory)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_NoFieldsIsNoOp() {
	ctx := context.Background()
	existing := makeEntry(domain.KindPayable, "PAY001", time.Now().UTC().AddDate(0, 0, 20), domain.SettlementPending)

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindPayable, "PAY001").Return(&existing, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, domain.KindPayable, "PAY001", dto.UpdateLedgerEntryRequest{}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("PAY001", entry.EntryID)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything, mock.Anything)
}

// --- SettleEntry ---

func (suite *LedgerServiceTestSuite) TestSettleEntry_DefaultsToToday() {
	ctx := context.Background()
	pending := makeEntry(domain.KindReceivable, "REC001", time.Now().UTC().AddDate(0, 0, -2), domain.SettlementPending)

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindReceivable, "REC001").Return(&pending, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, domain.KindReceivable, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return e.Status == domain.SettlementSettled &&
			e.SettledAt != nil && e.SettledAt.Equal(today) &&
			e.SettledBy == "user-3"
	})).Return(nil).Once()

	entry, err := suite.service.SettleEntry(ctx, domain.KindReceivable, "REC001", dto.SettleLedgerEntryRequest{}, "user-3")

	suite.Require().NoError(err)
	suite.True(entry.IsSettled())
	suite.Equal(domain.UrgencyNone, entry.Urgency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSettleEntry_ExplicitDate() {
	ctx := context.Background()
	pending := makeEntry(domain.KindPayable, "PAY001", time.Now().UTC(), domain.SettlementPending)
	settledAt := "2025-02-28"

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindPayable, "PAY001").Return(&pending, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, domain.KindPayable, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.SettledAt != nil && e.SettledAt.Equal(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	entry, err := suite.service.SettleEntry(ctx, domain.KindPayable, "PAY001", dto.SettleLedgerEntryRequest{
		SettledAt: &settledAt,
	}, "user-3")

	suite.Require().NoError(err)
	suite.True(entry.IsSettled())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSettleEntry_AlreadySettled() {
	ctx := context.Background()
	settled := makeEntry(domain.KindPayable, "PAY001", time.Now().UTC(), domain.SettlementSettled)

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindPayable, "PAY001").Return(&settled, nil).Once()

	entry, err := suite.service.SettleEntry(ctx, domain.KindPayable, "PAY001", dto.SettleLedgerEntryRequest{}, "user-3")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrAlreadySettled)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSettleEntry_MalformedDate() {
	ctx := context.Background()
	pending := makeEntry(domain.KindPayable, "PAY001", time.Now().UTC(), domain.SettlementPending)
	settledAt := "yesterday"

	suite.mockRepo.On("FindEntryByID", ctx, domain.KindPayable, "PAY001").Return(&pending, nil).Once()

	entry, err := suite.service.SettleEntry(ctx, domain.KindPayable, "PAY001", dto.SettleLedgerEntryRequest{
		SettledAt: &settledAt,
	}, "user-3")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- DeactivateEntry ---

func (suite *LedgerServiceTestSuite) TestDeactivateEntry_AdminOnly() {
	ctx := context.Background()
	adminID := "admin-1"

	suite.mockUsers.On("GetUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, Role: domain.RoleAdmin}, nil).Once()
	suite.mockRepo.On("MarkEntryInactive", ctx, domain.KindPayable, "PAY001", mock.AnythingOfType("time.Time"), adminID).
		Return(nil).Once()

	err := suite.service.DeactivateEntry(ctx, domain.KindPayable, "PAY001", adminID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeactivateEntry_StaffForbidden() {
	ctx := context.Background()
	staffID := "staff-1"

	suite.mockUsers.On("GetUserByID", ctx, staffID).
		Return(&domain.User{UserID: staffID, Role: domain.RoleStaff}, nil).Once()

	err := suite.service.DeactivateEntry(ctx, domain.KindPayable, "PAY001", staffID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkEntryInactive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeactivateEntry_UnknownActorForbidden() {
	ctx := context.Background()

	suite.mockUsers.On("GetUserByID", ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateEntry(ctx, domain.KindPayable, "PAY001", "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Run Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
