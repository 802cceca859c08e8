package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/handlers"
	"github.com/SscSPs/counterparty_portal/internal/platform/config"
	"github.com/SscSPs/counterparty_portal/internal/utils"
	"github.com/SscSPs/counterparty_portal/internal/validators"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

var testNow = time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	balanceSheets *MockBalanceSheetService
	rates         *MockExchangeRateService
	notifications *MockNotificationService
	dueDiligence  *MockDueDiligenceService
	referenceData *MockReferenceDataService
	userID        string
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(validators.RegisterWithGin())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.balanceSheets = new(MockBalanceSheetService)
	suite.rates = new(MockExchangeRateService)
	suite.notifications = new(MockNotificationService)
	suite.dueDiligence = new(MockDueDiligenceService)
	suite.referenceData = new(MockReferenceDataService)
	suite.userID = uuid.NewString()

	cfg := &config.Config{
		JWTSecret:      testSecret,
		LoginRateLimit: "100-M",
		APIRateLimit:   "1000-M",
		IsProduction:   true,
	}
	services := &portssvc.ServiceContainer{
		BalanceSheet:  suite.balanceSheets,
		ExchangeRate:  suite.rates,
		Notification:  suite.notifications,
		DueDiligence:  suite.dueDiligence,
		ReferenceData: suite.referenceData,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services, handlers.RouteDeps{Clock: lifecycle.FixedClock(testNow)})
}

func (suite *HandlerTestSuite) token(isStaff bool) string {
	tok, err := utils.GenerateJWT(suite.userID, isStaff, testSecret, time.Hour, "portal-test")
	suite.Require().NoError(err)
	return tok
}

func (suite *HandlerTestSuite) do(method, url string, body any, isStaff bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.token(isStaff))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var res dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func (suite *HandlerTestSuite) actor(isStaff bool) domain.Actor {
	return domain.Actor{UserID: suite.userID, IsStaff: isStaff}
}

// --- Authentication ---

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.notifications.AssertNotCalled(suite.T(), "ListNotifications")
}

func (suite *HandlerTestSuite) TestHealthIsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

// --- Balance sheets ---

func (suite *HandlerTestSuite) TestSummarize_Success() {
	sheetID := uuid.NewString()
	summary := &domain.BalanceSheetSummary{
		BalanceSheet:     domain.BalanceSheet{BalanceSheetID: sheetID, Year: 2024, ReferenceOnly: true},
		TotalAssets:      decimal.RequireFromString("350.50"),
		TotalLiabilities: decimal.RequireFromString("80.00"),
		TotalEquity:      decimal.RequireFromString("270.50"),
	}
	suite.balanceSheets.On("Summarize", mock.Anything, sheetID).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/balance-sheets/"+sheetID+"/summary", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.BalanceSheetSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Balanced)
	suite.Equal(sheetID, res.BalanceSheet.BalanceSheetID)
	suite.True(decimal.RequireFromString("350.50").Equal(res.TotalAssets.Amount))
	suite.Equal(domain.ReferenceCurrency, res.TotalAssets.CurrencyCode)
	suite.balanceSheets.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateBalanceSheet_InvalidYearReturnsFields() {
	w := suite.do(http.MethodPost, "/api/v1/counterparties/"+uuid.NewString()+"/balance-sheets",
		map[string]any{"year": 1800, "referenceOnly": true}, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w).Fields, "year")
	suite.balanceSheets.AssertNotCalled(suite.T(), "CreateBalanceSheet")
}

func (suite *HandlerTestSuite) TestCreateBalanceSheet_DuplicateYear() {
	cpID := uuid.NewString()
	suite.balanceSheets.On("CreateBalanceSheet", mock.Anything, cpID, mock.Anything, suite.actor(false)).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "a balance sheet for 2024 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/counterparties/"+cpID+"/balance-sheets",
		map[string]any{"year": 2024, "referenceOnly": true}, false)

	suite.Equal(http.StatusConflict, w.Code)
	suite.balanceSheets.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestConvert_ReferenceOnlySheet() {
	sheetID := uuid.NewString()
	suite.balanceSheets.On("ConvertToLocal", mock.Anything, sheetID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(100))
	})).Return(decimal.Zero, nil, apperrors.ErrConversionUnavailable).Once()

	w := suite.do(http.MethodPost, "/api/v1/balance-sheets/"+sheetID+"/convert", map[string]any{"amountRef": "100.00"}, false)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.balanceSheets.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestConvert_Success() {
	sheetID := uuid.NewString()
	rate := &domain.ExchangeRate{ExchangeRateID: "rate-1", CurrencyCode: "COP", RateToReference: decimal.RequireFromString("0.00024")}
	suite.balanceSheets.On("ConvertToLocal", mock.Anything, sheetID, mock.Anything).
		Return(decimal.RequireFromString("416666.67"), rate, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/balance-sheets/"+sheetID+"/convert", map[string]any{"amountRef": "100.00"}, false)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("COP", res.AmountLocal.CurrencyCode)
	suite.Equal("rate-1", res.ExchangeRateID)
	suite.True(decimal.RequireFromString("416666.67").Equal(res.AmountLocal.Amount))
}

func (suite *HandlerTestSuite) TestCategoryTotal() {
	sheetID := uuid.NewString()
	suite.balanceSheets.On("TotalForCategory", mock.Anything, sheetID, domain.CategoryAssets).
		Return(decimal.RequireFromString("350.50"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/balance-sheets/"+sheetID+"/totals?category=assets", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.CategoryTotalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("assets", res.Category)
	suite.True(decimal.RequireFromString("350.50").Equal(res.TotalRef.Amount))
}

func (suite *HandlerTestSuite) TestCategoryTotal_UnknownCategory() {
	w := suite.do(http.MethodGet, "/api/v1/balance-sheets/"+uuid.NewString()+"/totals?category=income", nil, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w).Fields, "category")
}

func (suite *HandlerTestSuite) TestUpdateItem_NotOwner() {
	itemID := uuid.NewString()
	suite.balanceSheets.On("UpdateItem", mock.Anything, itemID, mock.Anything, suite.actor(false)).
		Return(nil, apperrors.ErrPermissionDenied).Once()

	w := suite.do(http.MethodPatch, "/api/v1/balance-sheet-items/"+itemID, map[string]any{"description": "Cash"}, false)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.balanceSheets.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeactivateBalanceSheet() {
	sheetID := uuid.NewString()
	suite.balanceSheets.On("DeactivateBalanceSheet", mock.Anything, sheetID, suite.actor(false)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/balance-sheets/"+sheetID, nil, false)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestListItems_IncludeInactive() {
	sheetID := uuid.NewString()
	suite.balanceSheets.On("ListItems", mock.Anything, sheetID, domain.IncludeInactive).
		Return([]domain.BalanceSheetItem{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/balance-sheets/"+sheetID+"/items?includeInactive=true", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.balanceSheets.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUnexpectedErrorIsHidden() {
	sheetID := uuid.NewString()
	suite.balanceSheets.On("GetBalanceSheet", mock.Anything, sheetID).
		Return(nil, errors.New("connection reset by peer")).Once()

	w := suite.do(http.MethodGet, "/api/v1/balance-sheets/"+sheetID, nil, false)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to retrieve balance sheet", suite.errorBody(w).Error)
}

// --- Exchange rates ---

func (suite *HandlerTestSuite) TestLookupRate_NotFound() {
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	suite.rates.On("GetRate", mock.Anything, "COP", asOf, true).Return(nil, apperrors.ErrRateNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/COP?asOf=2024-06-15&exact=true", nil, false)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.rates.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestLookupRate_DefaultsToToday() {
	rate := &domain.ExchangeRate{ExchangeRateID: "r", CurrencyCode: "COP", RateToReference: decimal.RequireFromString("0.00024")}
	suite.rates.On("GetRate", mock.Anything, "COP", testNow, false).Return(rate, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/COP", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.rates.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestLookupRate_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/COP?asOf=15/06/2024", nil, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w).Fields, "asOf")
	suite.rates.AssertNotCalled(suite.T(), "GetRate")
}

// --- Notifications ---

func (suite *HandlerTestSuite) TestListNotifications() {
	actor := suite.actor(false)
	list := []domain.Notification{{NotificationID: "n1", RecipientID: suite.userID, Kind: domain.NotifyDocumentExpiring}}
	suite.notifications.On("ListNotifications", mock.Anything, actor, true, 50).Return(list, nil).Once()
	suite.notifications.On("CountUnread", mock.Anything, actor).Return(3, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/notifications?unreadOnly=true", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListNotificationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Notifications, 1)
	suite.Equal(3, res.UnreadCount)
	suite.notifications.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestMarkRead_OtherRecipient() {
	suite.notifications.On("MarkRead", mock.Anything, suite.actor(false), "n1").Return(nil, apperrors.ErrPermissionDenied).Once()

	w := suite.do(http.MethodPost, "/api/v1/notifications/n1/read", nil, false)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestMarkAllRead() {
	suite.notifications.On("MarkAllRead", mock.Anything, suite.actor(false)).Return(4, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/notifications/read-all", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"updated":4}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestUpdateSettings_WarningDaysOutOfRange() {
	w := suite.do(http.MethodPut, "/api/v1/notifications/settings", map[string]any{"ddWarningDays": 0}, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w).Fields, "ddWarningDays")
}

// --- Due diligence ---

func (suite *HandlerTestSuite) TestWebhook_RequiresStaff() {
	w := suite.do(http.MethodPost, "/api/v1/webhooks/due-diligence",
		map[string]any{"dueDiligenceID": "dd1", "state": "completed"}, false)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.dueDiligence.AssertNotCalled(suite.T(), "RecordResult")
}

func (suite *HandlerTestSuite) TestWebhook_RecordsResult() {
	expected := dto.DueDiligenceResultRequest{DueDiligenceID: "dd1", State: "completed", Summary: "No matches"}
	suite.dueDiligence.On("RecordResult", mock.Anything, expected).
		Return(&domain.DueDiligence{DueDiligenceID: "dd1", State: domain.DDCompleted}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/webhooks/due-diligence",
		map[string]any{"dueDiligenceID": "dd1", "state": "completed", "summary": "No matches"}, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.dueDiligence.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestWebhook_NeedsAnIdentifier() {
	w := suite.do(http.MethodPost, "/api/v1/webhooks/due-diligence", map[string]any{"state": "completed"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestApprove_WithoutBody() {
	actor := suite.actor(true)
	approved := true
	suite.dueDiligence.On("Approve", mock.Anything, "dd1", "", actor).
		Return(&domain.DueDiligence{DueDiligenceID: "dd1", Approved: &approved}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/due-diligence/dd1/approve", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.dueDiligence.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestReject_WithComments() {
	actor := suite.actor(true)
	suite.dueDiligence.On("Reject", mock.Anything, "dd1", "Adverse media", actor).
		Return(&domain.DueDiligence{DueDiligenceID: "dd1"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/due-diligence/dd1/reject", map[string]any{"comments": "Adverse media"}, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.dueDiligence.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListByMember_EmptyIsArray() {
	suite.dueDiligence.On("ListByMember", mock.Anything, "m1").Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/members/m1/due-diligence", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

// --- Reference data ---

func (suite *HandlerTestSuite) TestCreateCounterpartyType() {
	req := dto.ReferenceDataRequest{Code: "bank", Name: "Bank"}
	suite.referenceData.On("SaveCounterpartyType", mock.Anything, "", req, suite.actor(true)).
		Return(&domain.CounterpartyType{TypeID: "t1", Code: "bank", Name: "Bank", IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reference/counterparty-types", req, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.referenceData.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateRater_ForbiddenForNonStaff() {
	suite.referenceData.On("SaveRater", mock.Anything, "r1", mock.Anything, suite.actor(false)).
		Return(nil, apperrors.ErrPermissionDenied).Once()

	w := suite.do(http.MethodPut, "/api/v1/reference/raters/r1", map[string]any{"name": "Fitch"}, false)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestListOutlooks_EmptyIsArray() {
	suite.referenceData.On("ListOutlooks", mock.Anything, domain.ActiveOnly).Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reference/outlooks", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
