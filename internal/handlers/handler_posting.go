package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
	"github.com/jumuiya-app/jumuiya_backend/internal/middleware"
)

// postingHandler serves one posting kind; the same handler code backs the
// income, expenditure and petty cash route groups.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
	kind           domain.PostingKind
}

// registerPostingRoutes registers the three posting ledgers.
func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	groups := map[string]domain.PostingKind{
		"/postings/income":      domain.Income,
		"/postings/expenditure": domain.Expenditure,
		"/postings/pettycash":   domain.PettyCash,
	}
	for path, kind := range groups {
		h := &postingHandler{postingService: postingService, kind: kind}
		g := rg.Group(path)
		{
			g.POST("", h.createPosting)
			g.GET("", h.listPostings)
			g.GET("/:id", h.getPosting)
			g.DELETE("/:id", h.deletePosting)
		}
	}
}

// createPosting godoc
// @Summary Record a posting
// @Description Records a dated entry on this ledger and applies it to the target account balance
// @Tags postings
// @Accept json
// @Produce json
// @Param posting body dto.CreatePostingRequest true "Posting details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /postings/income [post]
func (h *postingHandler) createPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPosting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	posting, err := h.postingService.RecordPosting(c.Request.Context(), h.kind, req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Posting recorded",
		slog.String("posting_id", posting.PostingID),
		slog.String("kind", string(h.kind)))
	c.JSON(http.StatusCreated, dto.ToPostingResponse(posting))
}

// getPosting godoc
// @Summary Get a posting by ID
// @Tags postings
// @Produce json
// @Param id path string true "Posting ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /postings/income/{id} [get]
func (h *postingHandler) getPosting(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	posting, err := h.postingService.GetPostingByID(c.Request.Context(), h.kind, c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostingResponse(posting))
}

// listPostings godoc
// @Summary List postings
// @Description Lists this ledger's postings newest first with cursor pagination
// @Tags postings
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListPostingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /postings/income [get]
func (h *postingHandler) listPostings(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListPostingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	postings, nextToken, err := h.postingService.ListPostings(c.Request.Context(), h.kind, userID, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListPostingsResponse{
		Postings:  dto.ToPostingResponses(postings),
		NextToken: nextToken,
	})
}

// deletePosting godoc
// @Summary Delete a posting
// @Description Deletes a posting and reverses its effect on the account balance
// @Tags postings
// @Produce json
// @Param id path string true "Posting ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /postings/income/{id} [delete]
func (h *postingHandler) deletePosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.postingService.DeletePosting(c.Request.Context(), h.kind, c.Param("id"), userID); err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Posting deleted", slog.String("posting_id", c.Param("id")), slog.String("kind", string(h.kind)))
	c.Status(http.StatusNoContent)
}
