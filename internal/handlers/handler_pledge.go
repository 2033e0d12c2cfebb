package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
	"github.com/jumuiya-app/jumuiya_backend/internal/middleware"
)

// pledgeHandler handles HTTP requests related to pledges.
type pledgeHandler struct {
	pledgeService portssvc.PledgeSvcFacade
}

// registerPledgeRoutes registers routes related to pledges.
func registerPledgeRoutes(rg *gin.RouterGroup, pledgeService portssvc.PledgeSvcFacade) {
	h := &pledgeHandler{pledgeService: pledgeService}

	pledges := rg.Group("/pledges")
	{
		pledges.POST("", h.createPledge)
		pledges.GET("", h.listPledges)
		pledges.GET("/:id", h.getPledge)
		pledges.PUT("/:id", h.updatePledge)
		pledges.POST("/:id/settle", h.settlePledge)
		pledges.POST("/:id/settlements/:postingID/reverse", h.reverseSettlement)
	}
}

// createPledge godoc
// @Summary Create a pledge
// @Tags pledges
// @Accept json
// @Produce json
// @Param pledge body dto.CreatePledgeRequest true "Pledge details"
// @Success 201 {object} dto.PledgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pledges [post]
func (h *pledgeHandler) createPledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPledge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	pledge, err := h.pledgeService.CreatePledge(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Pledge created", slog.String("pledge_id", pledge.PledgeID))
	c.JSON(http.StatusCreated, dto.ToPledgeResponse(pledge, time.Now()))
}

// getPledge godoc
// @Summary Get a pledge by ID
// @Tags pledges
// @Produce json
// @Param id path string true "Pledge ID"
// @Success 200 {object} dto.PledgeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pledges/{id} [get]
func (h *pledgeHandler) getPledge(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	pledge, err := h.pledgeService.GetPledgeByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPledgeResponse(pledge, time.Now()))
}

// listPledges godoc
// @Summary List pledges
// @Tags pledges
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListPledgesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pledges [get]
func (h *pledgeHandler) listPledges(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListPledgesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	pledges, nextToken, err := h.pledgeService.ListPledges(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListPledgesResponse{
		Pledges:   dto.ToPledgeResponses(pledges, time.Now()),
		NextToken: nextToken,
	})
}

// updatePledge godoc
// @Summary Update a pledge
// @Tags pledges
// @Accept json
// @Produce json
// @Param id path string true "Pledge ID"
// @Param pledge body dto.UpdatePledgeRequest true "Fields to update"
// @Success 200 {object} dto.PledgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pledges/{id} [put]
func (h *pledgeHandler) updatePledge(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	pledge, err := h.pledgeService.UpdatePledge(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPledgeResponse(pledge, time.Now()))
}

// settlePledge godoc
// @Summary Settle a pledge
// @Description Records a payment against the pledge and credits the receiving account. Payments above the remaining balance are rejected.
// @Tags pledges
// @Accept json
// @Produce json
// @Param id path string true "Pledge ID"
// @Param settlement body dto.SettlePledgeRequest true "Settlement details"
// @Success 200 {object} dto.PledgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Pledge already fully paid"
// @Failure 422 {object} ErrorResponse "Payment exceeds remaining balance"
// @Security BearerAuth
// @Router /pledges/{id}/settle [post]
func (h *pledgeHandler) settlePledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SettlePledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for settlePledge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	pledge, err := h.pledgeService.SettlePledge(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Pledge settled", slog.String("pledge_id", pledge.PledgeID))
	c.JSON(http.StatusOK, dto.ToPledgeResponse(pledge, time.Now()))
}

// reverseSettlement godoc
// @Summary Reverse a settlement
// @Description Deletes a settlement's credit posting and restores the pledge's outstanding balance
// @Tags pledges
// @Produce json
// @Param id path string true "Pledge ID"
// @Param postingID path string true "Credit posting ID"
// @Success 200 {object} dto.PledgeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /pledges/{id}/settlements/{postingID}/reverse [post]
func (h *pledgeHandler) reverseSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	pledge, err := h.pledgeService.ReverseSettlement(c.Request.Context(), c.Param("id"), c.Param("postingID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Settlement reversed",
		slog.String("pledge_id", pledge.PledgeID),
		slog.String("posting_id", c.Param("postingID")))
	c.JSON(http.StatusOK, dto.ToPledgeResponse(pledge, time.Now()))
}
