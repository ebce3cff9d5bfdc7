package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travo/internal/models/request_models"
	"travo/internal/services"
	"travo/pkg/memcache"
	"travo/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	handoffStore   memcache.TripHandoffStore
}

func NewPlannerController(plannerService services.PlannerServiceInterface, handoffStore memcache.TripHandoffStore) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		handoffStore:   handoffStore,
	}
}

// GeneratePlan godoc
// @Summary Generate a day-by-day travel plan
// @Description Build a full travel plan from the planner form fields
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/plan [post]
func (p *PlannerController) GeneratePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.StartCity == "" {
		utils.RespondError(c, http.StatusBadRequest, "start_city is required")
		return
	}
	if len(req.Destinations) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "at least one destination is required")
		return
	}
	if len(req.Interests) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "at least one interest is required")
		return
	}
	if req.StartDate == "" {
		utils.RespondError(c, http.StatusBadRequest, "start_date is required")
		return
	}

	plan := p.plannerService.GeneratePlan(c.Request.Context(), req)
	utils.RespondSuccess(c, plan, "Plan generated")
}

// ConsumeHandoff godoc
// @Summary Consume chat trip parameters
// @Description Fetch the trip captured by the chat dialog for this session. Single use.
// @Tags Planner
// @Produce json
// @Param sessionId path string true "Chat session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /planner/handoff/{sessionId} [get]
func (p *PlannerController) ConsumeHandoff(c *gin.Context) {
	sessionID := c.Param("sessionId")

	trip, ok := p.handoffStore.Consume(sessionID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrHandoffNotFound)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"trip": trip,
		"plan": request_models.PlanRequestFromTrip(trip),
	}, "Trip parameters retrieved")
}
