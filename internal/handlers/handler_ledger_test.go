package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/handlers"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetEntryByID(ctx context.Context, kind domain.LedgerKind, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, kind, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, kind domain.LedgerKind, filters dto.LedgerEntryFilters) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, kind, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) GetDueAlerts(ctx context.Context, kind domain.LedgerKind) (*domain.DueAlerts, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueAlerts), args.Error(1)
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, kind domain.LedgerKind, req dto.CreateLedgerEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, kind, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) UpdateEntry(ctx context.Context, kind domain.LedgerKind, entryID string, req dto.UpdateLedgerEntryRequest, updaterUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, kind, entryID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) SettleEntry(ctx context.Context, kind domain.LedgerKind, entryID string, req dto.SettleLedgerEntryRequest, settlerUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, kind, entryID, req, settlerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) DeactivateEntry(ctx context.Context, kind domain.LedgerKind, entryID string, requestingUserID string) error {
	args := m.Called(ctx, kind, entryID, requestingUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *LedgerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "sgc-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) doRequest(method, url, userID string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == nil {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBuffer(body)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleEntry(kind domain.LedgerKind, entryID string) *domain.LedgerEntry {
	due := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	return &domain.LedgerEntry{
		EntryID:     entryID,
		Kind:        kind,
		Counterpart: "Supplier A",
		Description: "Monthly restock",
		Category:    "supplier",
		Amount:      decimal.RequireFromString("150.75"),
		DueDate:     due,
		Status:      domain.SettlementPending,
		Urgency:     domain.UrgencyOnTrack,
		IsActive:    true,
	}
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateEntry_Success() {
	userID := "user-1"
	expected := sampleEntry(domain.KindPayable, "PAY001")

	suite.mockLedgerService.On("CreateEntry",
		mock.AnythingOfType("*context.valueCtx"),
		domain.KindPayable,
		mock.MatchedBy(func(req dto.CreateLedgerEntryRequest) bool {
			return req.Counterpart == "Supplier A" &&
				req.Category == "supplier" &&
				req.DueDate == "2025-05-20" &&
				req.Amount.Equal(decimal.RequireFromString("150.75"))
		}),
		userID,
	).Return(expected, nil).Once()

	body := []byte(`{
		"counterpart": "Supplier A",
		"description": "Monthly restock",
		"category": "supplier",
		"amount": 150.75,
		"dueDate": "2025-05-20"
	}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/payables", userID, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("PAY001", resp.EntryID)
	suite.Equal("PAYABLE", resp.Kind)
	suite.Equal("2025-05-20", resp.DueDate)
	suite.Equal(string(domain.UrgencyOnTrack), resp.Urgency)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_MissingToken() {
	body := []byte(`{"counterpart":"Supplier A","description":"x","category":"supplier","amount":10,"dueDate":"2025-05-20"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/payables", "", body)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_UnknownCategory() {
	userID := "user-1"

	suite.mockLedgerService.On("CreateEntry",
		mock.Anything, domain.KindPayable, mock.Anything, userID,
	).Return(nil, apperrors.ErrUnknownCategory).Once()

	body := []byte(`{"counterpart":"Supplier A","description":"x","category":"nope","amount":10,"dueDate":"2025-05-20"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/payables", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_MalformedDueDate() {
	// The binding tag rejects non ISO dates before the service is reached.
	body := []byte(`{"counterpart":"Supplier A","description":"x","category":"supplier","amount":10,"dueDate":"20/05/2025"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/payables", "user-1", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestListEntries_FiltersPassedThrough() {
	userID := "user-2"
	entries := []domain.LedgerEntry{
		*sampleEntry(domain.KindReceivable, "REC001"),
		*sampleEntry(domain.KindReceivable, "REC002"),
	}

	suite.mockLedgerService.On("ListEntries",
		mock.AnythingOfType("*context.valueCtx"),
		domain.KindReceivable,
		mock.MatchedBy(func(f dto.LedgerEntryFilters) bool {
			return f.Status == "PENDING" && f.Search == "maria"
		}),
	).Return(entries, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/receivables?status=PENDING&search=maria", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListLedgerEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Count)
	suite.Len(resp.Entries, 2)
	suite.True(resp.TotalAmount.Equal(decimal.RequireFromString("301.50")))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListEntries_RejectsUnknownStatus() {
	w := suite.doRequest(http.MethodGet, "/api/v1/payables?status=PAID", "user-2", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetEntry_NotFound() {
	suite.mockLedgerService.On("GetEntryByID",
		mock.Anything, domain.KindPayable, "PAY999",
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/payables/PAY999", "user-1", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestSettleEntry_AlreadySettled() {
	userID := "user-1"

	suite.mockLedgerService.On("SettleEntry",
		mock.Anything, domain.KindReceivable, "REC001", mock.Anything, userID,
	).Return(nil, apperrors.ErrAlreadySettled).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/receivables/REC001/settle", userID, []byte(`{}`))

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestSettleEntry_ExplicitDate() {
	userID := "user-1"
	settled := sampleEntry(domain.KindReceivable, "REC001")
	settledAt := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	settled.Status = domain.SettlementSettled
	settled.Urgency = domain.UrgencyNone
	settled.SettledAt = &settledAt
	settled.SettledBy = userID

	suite.mockLedgerService.On("SettleEntry",
		mock.Anything, domain.KindReceivable, "REC001",
		mock.MatchedBy(func(req dto.SettleLedgerEntryRequest) bool {
			return req.SettledAt != nil && *req.SettledAt == "2025-02-28"
		}),
		userID,
	).Return(settled, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/receivables/REC001/settle", userID, []byte(`{"settledAt":"2025-02-28"}`))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.SettlementSettled), resp.Status)
	suite.Require().NotNil(resp.SettledAt)
	suite.Equal("2025-02-28", *resp.SettledAt)
	suite.Empty(resp.Urgency)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestDeactivateEntry_Forbidden() {
	userID := "staff-1"

	suite.mockLedgerService.On("DeactivateEntry",
		mock.Anything, domain.KindPayable, "PAY001", userID,
	).Return(apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/payables/PAY001", userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestDeactivateEntry_Success() {
	userID := "admin-1"

	suite.mockLedgerService.On("DeactivateEntry",
		mock.Anything, domain.KindReceivable, "REC001", userID,
	).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/receivables/REC001", userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
