package api

import (
	"errors"
	"net/http"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/httperr"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type GateHandler struct {
	gateCommands commands.GateCommands
}

func NewGateHandler(gateCommands commands.GateCommands) *GateHandler {
	return &GateHandler{
		gateCommands: gateCommands,
	}
}

// @Summary Enter parking
// @Description Redeem a scheduled reservation at the gate, or enter as a walk-in
// @Tags gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EnterRequest true "Entry request"
// @Success 200 {object} resdto.EntryTicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /gate/enter [post]
func (h *GateHandler) Enter(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.EnterRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ticket, err := h.gateCommands.Enter(c.Request.Context(), clientID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrParkingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Parking not found",
			})
		case errors.Is(err, commands.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Client account not found",
			})
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another client",
			})
		case errors.Is(err, commands.ErrReservationNotStarted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation window has not started",
			})
		case errors.Is(err, commands.ErrReservationExpired):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation window has lapsed",
			})
		case errors.Is(err, commands.ErrAlreadyEntered):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation already entered",
			})
		case errors.Is(err, commands.ErrReservationClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already closed",
			})
		case errors.Is(err, commands.ErrClientNotEnabled):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Client account is not enabled",
			})
		case errors.Is(err, commands.ErrNoAvailableSector):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No sector with free places",
			})
		case errors.Is(err, commands.ErrNoAvailablePlace):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No available place in the sector",
			})
		case errors.Is(err, commands.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Concurrent update, please retry",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEntryTicket(ticket))
}

// @Summary Exit parking
// @Description Redeem the one-time entry code on the way out
// @Tags gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExitRequest true "Exit request"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /gate/exit [post]
func (h *GateHandler) Exit(c *gin.Context) {
	var req reqdto.ExitRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	receipt, err := h.gateCommands.Exit(c.Request.Context(), req.ReservationID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCannotExitParking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot exit with this code",
			})
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Concurrent update, please retry",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReceipt(receipt))
}
