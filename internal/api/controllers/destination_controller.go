package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// Suggest godoc
// @Summary Suggest destinations
// @Description Semantic destination lookup for free-text queries
// @Tags Destinations
// @Produce json
// @Param q query string true "Free-text query"
// @Param limit query int false "Max results" default(5) maximum(15)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /destinations/suggest [get]
func (d *DestinationController) Suggest(c *gin.Context) {
	query := c.Query("q")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	suggestions, err := d.destinationService.Suggest(c.Request.Context(), query, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Destinations fetched successfully")
}

// Upsert godoc
// @Summary Upsert a destination
// @Description Create or refresh a destination and its embedding
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.UpsertDestinationRequest true "Destination payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations [post]
func (d *DestinationController) Upsert(c *gin.Context) {
	var req request_models.UpsertDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := d.destinationService.UpsertDestination(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination saved successfully")
}
