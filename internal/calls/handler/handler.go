package handler

import (
	"errors"
	"net/http"
	"time"

	"call-insights-server/internal/apierrors"
	"call-insights-server/internal/calls/processor"
	"call-insights-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CallProcessor
	logger    *observability.Logger
}

func New(processor processor.CallProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CallCompletedRequest is the notification Five9 posts when a call finishes.
type CallCompletedRequest struct {
	ContactID   string `json:"contactId" binding:"required"`
	RecordingID string `json:"recordingId" binding:"required"`
	AgentID     string `json:"agentId" binding:"required"`
}

// HandleCallCompletedWebhook handles POST /webhook/five9. The caller gets a
// generic failure on any pipeline error; retrying is its decision, not ours.
func (h *Handler) HandleCallCompletedWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var req CallCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	outcome, err := h.processor.ProcessCallEvent(ctx, req.ContactID, req.AgentID, req.RecordingID)
	if err != nil {
		h.logger.Error(ctx, "call event pipeline failed", err)
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"outcome": outcome,
	})
}

// ContactSummaryResponse is the dashboard's view of a contact's latest state.
type ContactSummaryResponse struct {
	Sentiment       string    `json:"sentiment"`
	Score           int       `json:"score"`
	Tags            []string  `json:"tags"`
	Tip             string    `json:"tip"`
	LastInteraction time.Time `json:"lastInteraction"`
}

// HandleGetContactSummary handles GET /api/client-summary/:contactId.
// An unseen contact is a 404; a store failure is a 503, never conflated.
func (h *Handler) HandleGetContactSummary(c *gin.Context) {
	ctx := c.Request.Context()
	contactID := c.Param("contactId")

	summary, err := h.processor.GetContactSummary(ctx, contactID)
	if err != nil {
		if errors.Is(err, processor.ErrContactNotFound) {
			apierrors.NotFound(c, "No data for this contact")
			return
		}
		apierrors.ServiceUnavailable(c, "STORE_UNAVAILABLE", "Contact summary is temporarily unavailable", err)
		return
	}

	c.JSON(http.StatusOK, ContactSummaryResponse{
		Sentiment:       summary.LastSentiment,
		Score:           summary.LastScore,
		Tags:            summary.LastTags,
		Tip:             summary.LastTip,
		LastInteraction: summary.LastInteraction,
	})
}

// HandleGetContactHistory handles GET /api/client-history/:contactId.
// A contact with no calls gets an empty array, not an error.
func (h *Handler) HandleGetContactHistory(c *gin.Context) {
	ctx := c.Request.Context()
	contactID := c.Param("contactId")

	events, err := h.processor.GetContactHistory(ctx, contactID)
	if err != nil {
		apierrors.ServiceUnavailable(c, "STORE_UNAVAILABLE", "Call history is temporarily unavailable", err)
		return
	}

	c.JSON(http.StatusOK, events)
}
