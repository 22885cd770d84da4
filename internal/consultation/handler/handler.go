package handler

import (
	"errors"
	"net/http"

	"clientbridge-server/internal/apierrors"
	"clientbridge-server/internal/consultation/processor"
	"clientbridge-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor *processor.Processor
	logger    *observability.Logger
}

func New(processor *processor.Processor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SubmitRequest represents the HTTP request for a consultation submission.
// Every field is individually optional; the processor decides whether the
// payload resolves to a form submission, a voice session, or neither.
type SubmitRequest struct {
	FullName      string  `json:"fullName"`
	Email         string  `json:"email" binding:"omitempty,email"`
	ABN           string  `json:"abn"`
	BusinessGoals string  `json:"businessGoals"`
	Budget        float64 `json:"budget" binding:"omitempty,gte=0"`
	ContactMethod string  `json:"contactMethod" binding:"omitempty,oneof=Email Phone"`
	Transcript    string  `json:"transcript"`
	AgentResponse string  `json:"agentResponse"`
}

// SubmitResponse reports each delivery attempt independently so callers can
// see a partial success.
type SubmitResponse struct {
	Success      bool     `json:"success"`
	ClientSent   bool     `json:"clientSent"`
	InternalSent bool     `json:"internalSent"`
	Errors       []string `json:"errors,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// HandleSubmit handles POST /api/submit
func (h *Handler) HandleSubmit(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind submission request", err)
		apierrors.ValidationError(c, err)
		return
	}

	submission := processor.Submission{
		FullName:      req.FullName,
		Email:         req.Email,
		ABN:           req.ABN,
		BusinessGoals: req.BusinessGoals,
		Budget:        req.Budget,
		ContactMethod: req.ContactMethod,
		Transcript:    req.Transcript,
		AgentResponse: req.AgentResponse,
	}

	result, err := h.processor.Notify(ctx, submission)
	if err != nil {
		if errors.Is(err, processor.ErrDeliveryFailed) {
			// Partial outcomes stay visible even when the request fails.
			c.JSON(http.StatusInternalServerError, SubmitResponse{
				Success:      false,
				ClientSent:   result.ClientSent,
				InternalSent: result.InternalSent,
				Errors:       result.Errors,
				Error:        err.Error(),
			})
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Success:      true,
		ClientSent:   result.ClientSent,
		InternalSent: result.InternalSent,
	})
}
