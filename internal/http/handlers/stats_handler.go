// Statistics HTTP handlers.
//
// This file exposes the reporting endpoint over the injury audit trail:
//   - GET /api/statistics/user/injury-history
//
// Each row is one assignment interval: startDate when the injury was assigned
// and endDate when it was removed (null while still open).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InjuryHistory godoc
// @ID          injuryHistory
// @Summary     Get own injury history
// @Description Returns the caller's injury assignment intervals, most recent first.
// @Tags        Statistics
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   repo.HistoryRow
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /statistics/user/injury-history [get]
func (h *Handlers) InjuryHistory(c *gin.Context) {
	rows, err := h.statsSvc.InjuryHistory(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}
