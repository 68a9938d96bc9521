package api

import (
	"errors"
	"net/http"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/httperr"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SectorHandler struct {
	sectorCommands commands.SectorCommands
	sectorQueries  queries.SectorQueries
}

func NewSectorHandler(sectorCommands commands.SectorCommands, sectorQueries queries.SectorQueries) *SectorHandler {
	return &SectorHandler{
		sectorCommands: sectorCommands,
		sectorQueries:  sectorQueries,
	}
}

// @Summary List sectors
// @Description List sector availability for a parking
// @Tags sectors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking ID"
// @Success 200 {array} resdto.SectorAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /parkings/{id}/sectors [get]
func (h *SectorHandler) ListSectors(c *gin.Context) {
	parkingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid parking ID format",
		})
		return
	}

	views, err := h.sectorQueries.ListByParking(c.Request.Context(), parkingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.SectorAvailabilityResponse, 0, len(views))
	for _, view := range views {
		item, mapErr := resdto.FromSectorAvailabilityView(view)
		if mapErr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, mapErr, "Internal server error", nil)
			return
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Activate sector
// @Description Bring a sector back into service
// @Tags sectors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sector ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sectors/{id}/activate [post]
func (h *SectorHandler) ActivateSector(c *gin.Context) {
	sectorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sector ID format",
		})
		return
	}

	if err := h.sectorCommands.Activate(c.Request.Context(), sectorID); err != nil {
		h.renderSectorError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate sector
// @Description Close a sector immediately (must be empty) or schedule a closure
// @Tags sectors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sector ID"
// @Param request body reqdto.DeactivateSectorRequest false "Deactivation schedule"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sectors/{id}/deactivate [post]
func (h *SectorHandler) DeactivateSector(c *gin.Context) {
	sectorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sector ID format",
		})
		return
	}

	var req reqdto.DeactivateSectorRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	if err := h.sectorCommands.Deactivate(c.Request.Context(), sectorID, req.When); err != nil {
		h.renderSectorError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SectorHandler) renderSectorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSectorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Sector not found",
		})
	case errors.Is(err, commands.ErrSectorAlreadyActive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Sector is already active",
		})
	case errors.Is(err, commands.ErrSectorAlreadyInactive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Sector is already inactive",
		})
	case errors.Is(err, commands.ErrSectorStillOccupied):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Sector still has open reservations",
		})
	case errors.Is(err, commands.ErrDeactivationNotFuture):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Scheduled deactivation must be in the future",
		})
	case errors.Is(err, commands.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Concurrent update, please retry",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
