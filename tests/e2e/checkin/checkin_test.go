//go:build e2e

package checkin_test

import (
	"net/http"
	"sync"
	"testing"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/domain/salon"
	resdto "salon-loyalty/internal/handler/dto/response"
	"salon-loyalty/tests/common/authtest"
	"salon-loyalty/tests/common/builder"
	"salon-loyalty/tests/common/dbtest"
	"salon-loyalty/tests/common/httptest"
	"salon-loyalty/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type checkinSuite struct {
	e2e.SharedSuite
	ownerToken    string
	customerID    uuid.UUID
	customerToken string
	qrPayload     string
}

func TestCheckinSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkinSuite))
}

// setup creates an owner with a salon and a customer, both logged in.
func (s *checkinSuite) setup() {
	_, s.ownerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", profile.RoleSalonOwner)
	s.customerID, s.customerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "customer@example.com", profile.RoleCustomer)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/owner/salon",
		map[string]any{"name": "Sharp Cuts", "loyalty_threshold": 10}, s.ownerToken)
	var created resdto.SalonResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	s.qrPayload = created.QRCode
}

func (s *checkinSuite) checkin(amount string) *resdto.CheckinResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkins",
		builder.NewCheckinBuilder(s.qrPayload).WithAmount(amount).BuildDTO(), s.customerToken)
	var res resdto.CheckinResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res
}

func (s *checkinSuite) TestCheckinFlow() {
	s.Run("first and second visit accrue one card", func() {
		s.setup()

		first := s.checkin("25.00")
		s.True(first.CardCreated)
		s.Equal(int32(1), first.Card.TotalVisits)
		s.Equal(int64(25), first.Card.TotalPoints)

		second := s.checkin("9.50")
		s.False(second.CardCreated)
		s.Equal(int32(2), second.Card.TotalVisits)
		s.Equal(int64(34), second.Card.TotalPoints)
		s.Equal(first.Card.ID, second.Card.ID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me/cards", nil, s.customerToken)
		var cards []resdto.CardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cards)
		require.Len(s.T(), cards, 1)
		expected := resdto.CardResponse{
			SalonName:         "Sharp Cuts",
			LoyaltyThreshold:  10,
			RewardDescription: salon.DefaultRewardDescription,
			TotalVisits:       2,
			TotalPoints:       34,
			VisitsNeeded:      8,
			ProgressPercent:   20,
		}
		opts := cmp.Options{cmpopts.IgnoreFields(resdto.CardResponse{}, "ID", "SalonID", "UpdatedAt")}
		if diff := cmp.Diff(expected, cards[0], opts...); diff != "" {
			s.T().Errorf("card mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me/visits", nil, s.customerToken)
		var visits []resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &visits)
		require.Len(s.T(), visits, 2)
		s.Equal("9.50", visits[0].Amount)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/salon/stats", nil, s.ownerToken)
		var stats resdto.SalonStatsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &stats)
		s.Equal(resdto.SalonStatsResponse{TotalCustomers: 1, TotalVisits: 2, TotalRevenue: "34.50"}, stats)
	})

	s.Run("large point totals do not overflow", func() {
		s.setup()
		s.checkin("1.00")
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE loyalty_cards SET total_points = 2147483000 WHERE customer_id = $1", s.customerID)
		require.NoError(s.T(), err)

		res := s.checkin("99999999.00")
		s.Equal(int64(2147483000)+99_999_999, res.Card.TotalPoints)
	})

	s.Run("unknown salon writes nothing", func() {
		s.setup()

		payload := qrcode.Encode(s.Config.QR.PublicOrigin, uuid.New().String())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkins",
			builder.NewCheckinBuilder(payload).BuildDTO(), s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Invalid or unknown QR code")

		s.Zero(dbtest.CountRows(s.T(), s.DB, "visits", s.customerID))
		s.Zero(dbtest.CountRows(s.T(), s.DB, "loyalty_cards", s.customerID))
	})

	s.Run("owners cannot check in", func() {
		s.setup()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkins",
			builder.NewCheckinBuilder(s.qrPayload).BuildDTO(), s.ownerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("concurrent check-ins share one card", func() {
		s.setup()

		const n = 8
		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkins",
					builder.NewCheckinBuilder(s.qrPayload).WithAmount("10.00").BuildDTO(), s.customerToken)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		for _, code := range codes {
			s.Equal(http.StatusCreated, code)
		}
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "loyalty_cards", s.customerID))
		s.Equal(n, dbtest.CountRows(s.T(), s.DB, "visits", s.customerID))

		var (
			visits int32
			points int64
		)
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT total_visits, total_points FROM loyalty_cards WHERE customer_id = $1", s.customerID).Scan(&visits, &points)
		require.NoError(s.T(), err)
		s.Equal(int32(n), visits)
		s.Equal(int64(n*10), points)
	})
}

func (s *checkinSuite) TestScanAndJoin() {
	s.Run("scan preview then join creates an empty card once", func() {
		s.setup()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/scan/resolve",
			map[string]any{"payload": s.qrPayload}, s.customerToken)
		var scan resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &scan)
		s.Equal("Sharp Cuts", scan.Salon.Name)

		url := "/api/salons/" + scan.Salon.ID.String() + "/cards"
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, s.customerToken)
		var joined resdto.JoinResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &joined)
		s.Equal(int32(0), joined.Card.TotalVisits)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, s.customerToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "loyalty_cards", s.customerID))
	})

	s.Run("malformed payload is a 400", func() {
		s.setup()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/scan/resolve",
			map[string]any{"payload": "https://app.example/"}, s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid QR code")
	})
}
