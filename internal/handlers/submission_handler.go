package handlers

import (
	"context"
	"net/http"

	"hunt-service/internal/models"
	"hunt-service/internal/service"

	"github.com/gin-gonic/gin"
)

// submitRequest uses pointer fields so a missing teamId or answer is
// distinguishable from a zero value; a type mismatch fails the bind. Either
// way the request is rejected before the store is touched.
type submitRequest struct {
	TeamID *int    `json:"teamId"`
	Answer *string `json:"answer"`
}

type SubmissionHandler struct {
	Service *service.SubmissionService
}

func NewSubmissionHandler(s *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: s}
}

func outcomeStatus(o service.Outcome) int {
	switch o {
	case service.OutcomeInvalidPayload, service.OutcomeInvalidTeam:
		return http.StatusBadRequest
	case service.OutcomeAlreadyAnswered:
		return http.StatusConflict
	default:
		return http.StatusOK
	}
}

func outcomeBody(o service.Outcome) gin.H {
	return gin.H{"result": o.Code(), "message": o.Message()}
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TeamID == nil || req.Answer == nil {
		c.JSON(outcomeStatus(service.OutcomeInvalidPayload), outcomeBody(service.OutcomeInvalidPayload))
		return
	}

	outcome, err := h.Service.Submit(context.Background(), *req.TeamID, *req.Answer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.Set("outcome", outcome.Code())
	c.JSON(outcomeStatus(outcome), outcomeBody(outcome))
}

func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.Service.List(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	c.JSON(http.StatusOK, subs)
}

func (h *SubmissionHandler) ResetSubmissions(c *gin.Context) {
	deleted, err := h.Service.Reset(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database reset successful", "deleted": deleted})
}
