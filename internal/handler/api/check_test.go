//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"code-lookup/internal/handler/api"
	resdto "code-lookup/internal/handler/dto/response"
	"code-lookup/internal/pkg/errs"
	"code-lookup/internal/pkg/i18n"
	"code-lookup/internal/usecase/queries"
	"code-lookup/tests/common/httptest"
	queriesmock "code-lookup/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockLookupQueries
	handler     *api.CheckHandler
}

func (s *CheckHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLookupQueries(s.mockCtrl)
	s.handler = api.NewCheckHandler(s.mockQueries, tr)

	s.router.POST("/api/check", s.handler.Check)
}

func (s *CheckHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckHandlerTestSuite))
}

func (s *CheckHandlerTestSuite) TestCheck_Found() {
	msg := "hello"
	s.mockQueries.EXPECT().
		CheckCode(gomock.Any(), "  promo1 ", "192.0.2.1").
		Return(&queries.CheckResult{Found: true, Message: &msg}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check", map[string]string{"code": "  promo1 "}, nil)

	var res resdto.CheckResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.True(res.Success)
	s.Require().NotNil(res.Message)
	s.Equal("hello", *res.Message)
}

func (s *CheckHandlerTestSuite) TestCheck_NotFoundHasNullMessage() {
	s.mockQueries.EXPECT().
		CheckCode(gomock.Any(), "unknown", gomock.Any()).
		Return(&queries.CheckResult{Found: false}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check", map[string]string{"code": "unknown"}, nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":false,"message":null}`, w.Body.String())
}

func (s *CheckHandlerTestSuite) TestCheck_UsesForwardedClientKey() {
	s.mockQueries.EXPECT().
		CheckCode(gomock.Any(), "X", "198.51.100.9").
		Return(&queries.CheckResult{Found: false}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check", map[string]string{"code": "X"},
		map[string]string{"X-Forwarded-For": " 198.51.100.9 , 10.0.0.1"})

	s.Equal(http.StatusOK, w.Code)
}

func (s *CheckHandlerTestSuite) TestCheck_RateLimited() {
	s.mockQueries.EXPECT().
		CheckCode(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &queries.RateLimitError{RetryAfter: 42})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check", map[string]string{"code": "X"}, nil)

	s.Equal(http.StatusTooManyRequests, w.Code)
	httptest.AssertHeaders(s.T(), w, map[string]string{"Retry-After": "42"})
	s.JSONEq(`{"success":false,"message":"Too many attempts. Wait 42 sec.","retry_after":42}`, w.Body.String())
}

func (s *CheckHandlerTestSuite) TestCheck_EmptyCode() {
	s.mockQueries.EXPECT().
		CheckCode(gomock.Any(), "   ", gomock.Any()).
		Return(nil, queries.ErrCodeRequired)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check", map[string]string{"code": "   "}, nil)

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Code is required")
}

func (s *CheckHandlerTestSuite) TestCheck_MalformedBody() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check", "{not json", nil)

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
}

func (s *CheckHandlerTestSuite) TestCheck_StoreFailure() {
	s.mockQueries.EXPECT().
		CheckCode(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.Wrap(errs.ErrDatabaseOperationFailed, "lookup"))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check", map[string]string{"code": "X"}, nil)

	httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
}
