package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DecisionController struct {
	decisionService services.DecisionSupportServiceInterface
}

func NewDecisionController(decisionService services.DecisionSupportServiceInterface) *DecisionController {
	return &DecisionController{
		decisionService: decisionService,
	}
}

// EvaluateActivity godoc
// @Summary Evaluate an activity placement
// @Description Check a candidate activity against the trip's schedule and return options
// @Tags Decisions
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.EvaluateActivityRequest true "Candidate payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/activities/evaluate [post]
func (d *DecisionController) EvaluateActivity(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.EvaluateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := d.decisionService.EvaluateActivity(c.Request.Context(), c.GetString("user_id"), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Activity evaluated successfully")
}

// EvaluateHotel godoc
// @Summary Evaluate a hotel selection
// @Description Check a hotel pick against its stay window and return options
// @Tags Decisions
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.EvaluateHotelRequest true "Hotel payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/hotels/evaluate [post]
func (d *DecisionController) EvaluateHotel(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.EvaluateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := d.decisionService.EvaluateHotel(c.Request.Context(), c.GetString("user_id"), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Hotel evaluated successfully")
}
