package api

import (
	"errors"
	"net/http"

	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/handler/httperr"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/pkg/errs"
	"salon-loyalty/internal/usecase/commands"
	"salon-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInternal       = "Internal server error"
	msgInvalidRequest = "Invalid request format"
	msgInvalidQR      = "Invalid QR code"
	msgUnknownQR      = "Invalid or unknown QR code"
)

// respondError maps usecase and infrastructure errors to the HTTP taxonomy.
// Handler-specific cases are matched by the caller before falling back here.
func respondError(c *gin.Context, err error) {
	var decodeErr *qrcode.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidQR, gin.H{"kind": decodeErr.Kind})
	case errs.Is(err, commands.ErrUnknownSalon):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgUnknownQR, nil)
	case errs.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, queries.ErrSalonNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Salon not found", nil)
	case errs.Is(err, queries.ErrProfileNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errs.Is(err, commands.ErrCheckinWriteFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record visit", nil)
	case infra.IsNotFound(err):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}
