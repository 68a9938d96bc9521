package api

import (
	"errors"
	"net/http"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/httperr"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a parking place for a future time window
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reservationID, err := h.reservationCommands.Create(c.Request.Context(), clientID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrParkingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Parking not found",
			})
		case errors.Is(err, commands.ErrSectorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Sector not found",
			})
		case errors.Is(err, commands.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Client account not found",
			})
		case errors.Is(err, commands.ErrInvalidTimeframe):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation timeframe",
			})
		case errors.Is(err, commands.ErrExceedsMaximumDuration):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation exceeds maximum duration",
			})
		case errors.Is(err, commands.ErrOverlappingReservation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Window overlaps one of your reservations",
			})
		case errors.Is(err, commands.ErrSectorNonActive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Sector is not active for the requested window",
			})
		case errors.Is(err, commands.ErrClientLimitExceeded):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Active reservation limit reached",
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

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{ID: reservationID})
}

// @Summary Get reservation
// @Description Get reservation by ID, with its gate events
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Get own reservations
// @Description List all reservations of the authenticated client
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetMyReservations(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromReservationView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Cancel reservation
// @Description Cancel a scheduled reservation before the cutoff
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	clientID, ok := middleware.GetClientID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, ok := middleware.GetClientRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id, clientID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to cancel this reservation",
			})
		case errors.Is(err, commands.ErrCancellationTooLate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cancellation cutoff has passed",
			})
		case errors.Is(err, commands.ErrAlreadyEntered):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation already entered",
			})
		case errors.Is(err, commands.ErrReservationClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already closed",
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

	c.Status(http.StatusNoContent)
}

// @Summary Expire reservation
// @Description Mark a lapsed scheduled reservation as expired (sweep entry point)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/expire [post]
func (h *ReservationHandler) ExpireReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationCommands.Expire(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrExpiryNotDue):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation window has not lapsed",
			})
		case errors.Is(err, commands.ErrReservationClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already closed",
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

	c.Status(http.StatusNoContent)
}
