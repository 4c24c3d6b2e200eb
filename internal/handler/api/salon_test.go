//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/handler/api"
	resdto "salon-loyalty/internal/handler/dto/response"
	"salon-loyalty/internal/pkg/errs"
	"salon-loyalty/internal/usecase/commands"
	"salon-loyalty/internal/usecase/queries"
	"salon-loyalty/tests/common/builder"
	"salon-loyalty/tests/common/httptest"
	commandsmock "salon-loyalty/tests/mock/commands"
	queriesmock "salon-loyalty/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SalonHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSalonCommands
	mockQueries  *queriesmock.MockSalonQueries
	salon        *builder.SalonBuilder
}

func (s *SalonHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSalonCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSalonQueries(s.mockCtrl)
	s.salon = builder.NewSalonBuilder().WithOwner(testUserID)

	h := api.NewSalonHandler(s.mockCommands, s.mockQueries)
	group := s.router.Group("/owner", asUser(profile.RoleSalonOwner))
	group.GET("/salon", h.GetSalon)
	group.PUT("/salon", h.SaveSalon)
	group.GET("/salon/stats", h.GetStats)
	group.GET("/salon/qr", h.GetQR)
}

func (s *SalonHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSalonHandlerSuite(t *testing.T) {
	suite.Run(t, new(SalonHandlerTestSuite))
}

func (s *SalonHandlerTestSuite) TestGetSalon() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetOwnerSalon(gomock.Any(), testUserID).Return(s.salon.BuildReadModel(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/salon", nil, "")

		var response resdto.SalonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.salon.ID, response.ID)
		s.Equal(s.salon.QRCode, response.QRCode)
	})

	s.Run("error: 404 when the owner has no salon", func() {
		s.mockQueries.EXPECT().GetOwnerSalon(gomock.Any(), testUserID).Return(nil, queries.ErrSalonNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/salon", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Salon not found")
	})
}

func (s *SalonHandlerTestSuite) TestSaveSalon() {
	body := map[string]any{"name": "Sharp Cuts", "loyalty_threshold": 5}
	threshold := int32(5)
	expectedInput := commands.SaveSalonInput{Name: "Sharp Cuts", LoyaltyThreshold: &threshold}

	s.Run("success: 201 on first save", func() {
		domainSalon, err := s.salon.BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().SaveSalon(gomock.Any(), testUserID, expectedInput).
			Return(&commands.SaveSalonResult{Salon: domainSalon, Created: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/owner/salon", body, "")

		var response resdto.SalonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(s.salon.Name, response.Name)
		s.Equal(testUserID, response.OwnerID)
	})

	s.Run("success: 200 on update", func() {
		domainSalon, err := s.salon.BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().SaveSalon(gomock.Any(), testUserID, expectedInput).
			Return(&commands.SaveSalonResult{Salon: domainSalon, Created: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/owner/salon", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when binding fails", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/owner/salon",
			map[string]any{"name": "Sharp Cuts", "loyalty_threshold": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on domain validation", func() {
		s.mockCommands.EXPECT().SaveSalon(gomock.Any(), testUserID, gomock.Any()).
			Return(nil, errs.Mark(errors.New("reward description is required"), commands.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/owner/salon", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "reward description is required")
	})
}

func (s *SalonHandlerTestSuite) TestGetStats() {
	s.Run("success: revenue rendered with two decimals", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any(), testUserID).Return(&queries.SalonStatsView{
			TotalCustomers:    3,
			TotalVisits:       7,
			TotalRevenueCents: 18450,
			RewardsRedeemed:   1,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/salon/stats", nil, "")

		var response resdto.SalonStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.SalonStatsResponse{
			TotalCustomers:  3,
			TotalVisits:     7,
			TotalRevenue:    "184.50",
			RewardsRedeemed: 1,
		}, response)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any(), testUserID).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/salon/stats", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *SalonHandlerTestSuite) TestGetQR() {
	s.mockQueries.EXPECT().GetOwnerSalon(gomock.Any(), testUserID).Return(s.salon.BuildReadModel(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/salon/qr", nil, "")

	var response resdto.QRResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(s.salon.QRCode, response.Payload)
}
