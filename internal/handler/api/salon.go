package api

import (
	"net/http"

	reqdto "salon-loyalty/internal/handler/dto/request"
	resdto "salon-loyalty/internal/handler/dto/response"
	"salon-loyalty/internal/handler/httperr"
	"salon-loyalty/internal/usecase/commands"
	"salon-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

// SalonHandler serves the owner's own salon.
type SalonHandler struct {
	commands commands.SalonCommands
	queries  queries.SalonQueries
}

func NewSalonHandler(cmds commands.SalonCommands, q queries.SalonQueries) *SalonHandler {
	return &SalonHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Get own salon
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SalonResponse
// @Failure 404 {object} httperr.Response
// @Router /owner/salon [get]
func (h *SalonHandler) GetSalon(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.queries.GetOwnerSalon(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSalonView(view))
}

// @Summary Create or update own salon
// @Description Creates the salon on first save. Later saves update it in place and keep its QR payload.
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SaveSalonRequest true "Salon details"
// @Success 200 {object} resdto.SalonResponse
// @Success 201 {object} resdto.SalonResponse
// @Failure 400 {object} httperr.Response
// @Router /owner/salon [put]
func (h *SalonHandler) SaveSalon(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	var req reqdto.SaveSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	var in commands.SaveSalonInput
	if err := copier.Copy(&in, &req); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}

	result, err := h.commands.SaveSalon(c.Request.Context(), ownerID, in)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromSalon(result.Salon))
}

// @Summary Salon statistics
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SalonStatsResponse
// @Failure 404 {object} httperr.Response
// @Router /owner/salon/stats [get]
func (h *SalonHandler) GetStats(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.queries.Stats(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}

// @Summary Salon QR payload
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.QRResponse
// @Failure 404 {object} httperr.Response
// @Router /owner/salon/qr [get]
func (h *SalonHandler) GetQR(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.queries.GetOwnerSalon(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.QRResponse{Payload: view.QRCode})
}
