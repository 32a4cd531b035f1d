package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/repository"
	"github.com/resto-next/internal/service"

	"github.com/gin-gonic/gin"
)

// MarkFeedbackRequest 批量标记请求
type MarkFeedbackRequest struct {
	IDs    []uint `json:"ids" binding:"required"`
	IsRead bool   `json:"is_read"`
}

// ListFeedback 评价列表
func (h *Handler) ListFeedback(c *gin.Context) {
	page, pageSize := parsePage(c)
	rating, _ := strconv.Atoi(c.DefaultQuery("rating", "0"))
	filter := repository.FeedbackListFilter{Page: page, PageSize: pageSize, Rating: rating}
	if raw := strings.TrimSpace(c.Query("is_read")); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		filter.IsRead = &isRead
	}

	rows, total, err := h.FeedbackService.List(filter)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackRatingInvalid) {
			respondError(c, response.CodeBadRequest, "error.feedback_rating_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.feedback_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, rows, response.NewPagination(page, pageSize, total))
}

// MarkFeedback 批量标记已读/未读
func (h *Handler) MarkFeedback(c *gin.Context) {
	var req MarkFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	affected, err := h.FeedbackService.MarkRead(req.IDs, req.IsRead)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackInvalid) {
			respondError(c, response.CodeBadRequest, "error.feedback_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.feedback_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"updated": affected})
}

// FeedbackUnreadCount 未读评价数量
func (h *Handler) FeedbackUnreadCount(c *gin.Context) {
	count, err := h.FeedbackService.CountUnread()
	if err != nil {
		respondError(c, response.CodeInternal, "error.feedback_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"unread": count})
}
