//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/handler/api"
	resdto "salon-loyalty/internal/handler/dto/response"
	"salon-loyalty/internal/usecase/queries"
	"salon-loyalty/tests/common/httptest"
	queriesmock "salon-loyalty/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCustomers *queriesmock.MockCustomerQueries
	mockUsers     *queriesmock.MockUserQueries
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCustomers = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)

	h := api.NewCustomerHandler(s.mockCustomers, s.mockUsers)
	group := s.router.Group("", asUser(profile.RoleCustomer))
	group.GET("/me/cards", h.ListCards)
	group.GET("/me/visits", h.RecentVisits)
	group.GET("/barbers", h.ListBarbers)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestListCards() {
	card := queries.CardView{
		ID:               uuid.New(),
		SalonID:          uuid.New(),
		SalonName:        "Sharp Cuts",
		LoyaltyThreshold: 10,
		TotalVisits:      3,
		TotalPoints:      75,
		VisitsNeeded:     7,
		ProgressPercent:  30,
	}
	s.mockCustomers.EXPECT().ListCards(gomock.Any(), testUserID).Return([]queries.CardView{card}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/cards", nil, "")

	var response []resdto.CardResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal(card.ID, response[0].ID)
	s.Equal(int32(7), response[0].VisitsNeeded)
	s.Equal(int32(30), response[0].ProgressPercent)
	s.False(response[0].RewardReady)
}

func (s *CustomerHandlerTestSuite) TestRecentVisits() {
	barberName := "Sam Barber"
	visit := queries.VisitView{
		ID:           uuid.New(),
		SalonID:      uuid.New(),
		SalonName:    "Sharp Cuts",
		BarberName:   &barberName,
		ServiceType:  "Haircut",
		AmountCents:  950,
		PointsEarned: 9,
		VisitDate:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	s.Run("default limit", func() {
		s.mockCustomers.EXPECT().RecentVisits(gomock.Any(), testUserID, 5).Return([]queries.VisitView{visit}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/visits", nil, "")

		var response []resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("9.50", response[0].Amount)
		s.Equal(barberName, *response[0].BarberName)
	})

	s.Run("explicit limit is passed through", func() {
		s.mockCustomers.EXPECT().RecentVisits(gomock.Any(), testUserID, 20).Return([]queries.VisitView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/visits?limit=20", nil, "")

		var response []resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 on a bad limit", func() {
		for _, q := range []string{"abc", "0", "-3"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/visits?limit="+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "limit must be a positive integer")
		}
	})
}

func (s *CustomerHandlerTestSuite) TestListBarbers() {
	s.mockUsers.EXPECT().ListBarbers(gomock.Any()).Return([]queries.BarberView{}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/barbers", nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	s.JSONEq("[]", rec.Body.String())
}
