package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type NarrativeController struct {
	narrativeService services.NarrativeServiceInterface
}

func NewNarrativeController(narrativeService services.NarrativeServiceInterface) *NarrativeController {
	return &NarrativeController{
		narrativeService: narrativeService,
	}
}

// Summarize godoc
// @Summary Summarize a route
// @Description Render short narrative prose for one generated route
// @Tags Narrative
// @Accept json
// @Produce json
// @Param request body request_models.SummarizeRouteRequest true "Route payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /narrative/summarize [post]
func (n *NarrativeController) Summarize(c *gin.Context) {
	var req request_models.SummarizeRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	narrative, err := n.narrativeService.SummarizeRoute(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, narrative, "Narrative generated successfully")
}
