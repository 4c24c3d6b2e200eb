package api

import (
	"net/http"

	reqdto "salon-loyalty/internal/handler/dto/request"
	resdto "salon-loyalty/internal/handler/dto/response"
	"salon-loyalty/internal/handler/httperr"
	"salon-loyalty/internal/pkg/errs"
	"salon-loyalty/internal/usecase/commands"
	"salon-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckinHandler struct {
	commands commands.CheckinCommands
	queries  queries.SalonQueries
}

func NewCheckinHandler(cmds commands.CheckinCommands, q queries.SalonQueries) *CheckinHandler {
	return &CheckinHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Check in
// @Description Records a visit at the salon behind the QR payload and accrues the customer's card
// @Tags checkins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckinRequest true "Check-in"
// @Success 201 {object} resdto.CheckinResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /checkins [post]
func (h *CheckinHandler) CheckIn(c *gin.Context) {
	customerID, ok := currentUser(c)
	if !ok {
		return
	}

	var req reqdto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.commands.CheckIn(c.Request.Context(), customerID, commands.CheckinInput{
		QRPayload:   req.QRPayload,
		ServiceType: req.ServiceType,
		Amount:      req.Amount.String(),
		BarberID:    req.BarberID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckinResult(result))
}

// @Summary Preview a scanned QR code
// @Tags checkins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ScanRequest true "Scanned payload"
// @Success 200 {object} resdto.ScanResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /scan/resolve [post]
func (h *CheckinHandler) ResolveScan(c *gin.Context) {
	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.queries.ResolveScan(c.Request.Context(), req.Payload)
	if err != nil {
		if errs.Is(err, queries.ErrSalonNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgUnknownQR, nil)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScanView(view))
}

// @Summary Join a salon's loyalty program
// @Description Creates an empty card for the customer if none exists
// @Tags checkins
// @Security BearerAuth
// @Produce json
// @Param id path string true "Salon ID"
// @Success 200 {object} resdto.JoinResponse
// @Success 201 {object} resdto.JoinResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /salons/{id}/cards [post]
func (h *CheckinHandler) JoinSalon(c *gin.Context) {
	customerID, ok := currentUser(c)
	if !ok {
		return
	}

	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid salon ID format", nil)
		return
	}

	result, err := h.commands.JoinSalon(c.Request.Context(), customerID, salonID)
	if err != nil {
		if errs.Is(err, commands.ErrUnknownSalon) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Salon not found", nil)
			return
		}
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromJoinResult(result))
}
