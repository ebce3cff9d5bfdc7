package controllers

import (
	"github.com/gin-gonic/gin"

	"travo/internal/services"
	"travo/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListDestinations godoc
// @Summary List catalog destinations
// @Description List all destinations, optionally filtered by category
// @Tags Destinations
// @Produce json
// @Param category query string false "beach | mountain | spiritual | adventure | heritage"
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	category := c.Query("category")

	destinations, err := d.destinationService.ListDestinations(c.Request.Context(), category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations retrieved")
}

// GetDestination godoc
// @Summary Get one destination
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	destination, err := d.destinationService.GetDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination retrieved")
}

// GetSuggestions godoc
// @Summary Related destination suggestions
// @Description Up to four destinations related by region, then state
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id}/suggestions [get]
func (d *DestinationController) GetSuggestions(c *gin.Context) {
	suggestions, err := d.destinationService.SmartSuggestions(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions retrieved")
}
