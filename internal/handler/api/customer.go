package api

import (
	"net/http"
	"strconv"

	resdto "salon-loyalty/internal/handler/dto/response"
	"salon-loyalty/internal/handler/httperr"
	"salon-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultVisitLimit = 5

// CustomerHandler serves the customer dashboard and the barber list.
type CustomerHandler struct {
	customers queries.CustomerQueries
	users     queries.UserQueries
}

func NewCustomerHandler(customers queries.CustomerQueries, users queries.UserQueries) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		users:     users,
	}
}

// @Summary List own loyalty cards
// @Tags customer
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CardResponse
// @Router /me/cards [get]
func (h *CustomerHandler) ListCards(c *gin.Context) {
	customerID, ok := currentUser(c)
	if !ok {
		return
	}

	cards, err := h.customers.ListCards(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCardViews(cards))
}

// @Summary Recent visits
// @Tags customer
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum visits to return (default 5, max 50)"
// @Success 200 {array} resdto.VisitResponse
// @Failure 400 {object} httperr.Response
// @Router /me/visits [get]
func (h *CustomerHandler) RecentVisits(c *gin.Context) {
	customerID, ok := currentUser(c)
	if !ok {
		return
	}

	limit := defaultVisitLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "limit must be a positive integer", nil)
			return
		}
		limit = n
	}

	visits, err := h.customers.RecentVisits(c.Request.Context(), customerID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVisitViews(visits))
}

// @Summary List barbers
// @Tags customer
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BarberResponse
// @Router /barbers [get]
func (h *CustomerHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.users.ListBarbers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBarberViews(barbers))
}
