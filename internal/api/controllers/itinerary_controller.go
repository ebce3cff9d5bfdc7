package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travo/internal/models/request_models"
	"travo/internal/services"
	"travo/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// ListItineraries godoc
// @Summary List saved itineraries
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries retrieved")
}

// GetItinerary godoc
// @Summary Get one itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary retrieved")
}

// CreateItinerary godoc
// @Summary Save an itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.CreateItinerary(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary created")
}

// GenerateItinerary godoc
// @Summary Generate an itinerary from catalog destinations
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryPrompt true "Generation prompt"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var prompt request_models.ItineraryPrompt
	if err := c.ShouldBindJSON(&prompt); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), c.GetString("user_id"), prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated")
}
