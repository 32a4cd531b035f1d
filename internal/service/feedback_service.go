package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/resto-next/internal/constants"
	"github.com/resto-next/internal/logger"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/repository"
)

const (
	feedbackNameMaxLen    = 100
	feedbackMessageMaxLen = 2000
)

// SubmitFeedbackInput 提交评价输入
type SubmitFeedbackInput struct {
	Name    string
	Email   string
	Rating  int
	Message string
}

// FeedbackView 评价展示（附带分值文案与星级）
type FeedbackView struct {
	models.Feedback
	RatingLabel string `json:"rating_label"`
	Stars       string `json:"stars"`
}

// FeedbackService 顾客评价服务
type FeedbackService struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService 创建评价服务
func NewFeedbackService(repo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// Submit 提交评价
func (s *FeedbackService) Submit(input SubmitFeedbackInput) (*FeedbackView, error) {
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	if name == "" || message == "" {
		return nil, ErrFeedbackInvalid
	}
	if utf8.RuneCountInString(name) > feedbackNameMaxLen || utf8.RuneCountInString(message) > feedbackMessageMaxLen {
		return nil, ErrFeedbackInvalid
	}
	email, err := normalizeFeedbackEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if input.Rating < constants.FeedbackRatingMin || input.Rating > constants.FeedbackRatingMax {
		return nil, ErrFeedbackRatingInvalid
	}

	feedback := &models.Feedback{
		Name:    name,
		Email:   email,
		Rating:  input.Rating,
		Message: message,
	}
	if err := s.repo.Create(feedback); err != nil {
		logger.Errorw("feedback_create_failed", "error", err)
		return nil, ErrFeedbackCreateFailed
	}
	logger.Infow("feedback_submitted", "feedback_id", feedback.ID, "rating", feedback.Rating)
	view := NewFeedbackView(*feedback)
	return &view, nil
}

// List 后台评价列表
func (s *FeedbackService) List(filter repository.FeedbackListFilter) ([]FeedbackView, int64, error) {
	if filter.Rating != 0 && (filter.Rating < constants.FeedbackRatingMin || filter.Rating > constants.FeedbackRatingMax) {
		return nil, 0, ErrFeedbackRatingInvalid
	}
	rows, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]FeedbackView, 0, len(rows))
	for _, row := range rows {
		views = append(views, NewFeedbackView(row))
	}
	return views, total, nil
}

// MarkRead 批量标记已读/未读
func (s *FeedbackService) MarkRead(ids []uint, isRead bool) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrFeedbackInvalid
	}
	return s.repo.MarkRead(ids, isRead)
}

// CountUnread 未读数量
func (s *FeedbackService) CountUnread() (int64, error) {
	return s.repo.CountUnread()
}

// NewFeedbackView 组装评价展示
func NewFeedbackView(feedback models.Feedback) FeedbackView {
	return FeedbackView{
		Feedback:    feedback,
		RatingLabel: constants.FeedbackRatingLabels[feedback.Rating],
		Stars:       ratingStars(feedback.Rating),
	}
}

func ratingStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > constants.FeedbackRatingMax {
		rating = constants.FeedbackRatingMax
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", constants.FeedbackRatingMax-rating)
}

func normalizeFeedbackEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrFeedbackEmailInvalid
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return "", ErrFeedbackEmailInvalid
	}
	return normalized, nil
}
