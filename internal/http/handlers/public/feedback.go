package public

import (
	handlershared "github.com/resto-next/internal/http/handlers/shared"
	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitFeedbackRequest 提交评价请求
type SubmitFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// SubmitFeedback 提交评价
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	view, err := h.FeedbackService.Submit(service.SubmitFeedbackInput{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Message: req.Message,
	})
	if err != nil {
		handlershared.RespondMapped(c, err, feedbackErrorRules, response.CodeInternal, "error.feedback_create_failed")
		return
	}
	response.SuccessWithMsg(c, handlershared.Message(c, "success.feedback_submitted"), view)
}
