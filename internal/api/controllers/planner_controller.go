package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// GenerateRoutes godoc
// @Summary Generate structural route options
// @Description Build 3-5 deterministic route skeletons for the trip
// @Tags Planner
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.GenerateRoutesRequest true "Optional flight anchors"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/routes/generate [post]
func (p *PlannerController) GenerateRoutes(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.GenerateRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	routes, err := p.plannerService.GenerateForTrip(c.Request.Context(), c.GetString("user_id"), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, routes, "Routes generated successfully")
}

// RankRoutes godoc
// @Summary Rank generated routes
// @Description Rank the trip's route options using caller-supplied metrics
// @Tags Planner
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.RankRoutesRequest true "Metrics payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/routes/rank [post]
func (p *PlannerController) RankRoutes(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.RankRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	options, err := p.plannerService.RankForTrip(c.Request.Context(), c.GetString("user_id"), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Routes ranked successfully")
}

// AcceptRoute godoc
// @Summary Accept a route option
// @Description Materialize one generated route as the trip's accepted route
// @Tags Planner
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AcceptRouteRequest true "Accept payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/routes/accept [post]
func (p *PlannerController) AcceptRoute(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.AcceptRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := p.plannerService.AcceptRoute(c.Request.Context(), c.GetString("user_id"), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Route accepted successfully")
}

// DiffRoutes godoc
// @Summary Compare a candidate route against a booked one
// @Description Return traveler-facing impact cards for the differences
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.DiffRoutesRequest true "Routes to compare"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /routes/diff [post]
func (p *PlannerController) DiffRoutes(c *gin.Context) {
	var req request_models.DiffRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	diff, err := p.plannerService.DiffRoutes(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, diff, "Routes compared successfully")
}
