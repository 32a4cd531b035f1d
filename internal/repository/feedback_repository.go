package repository

import (
	"github.com/resto-next/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository 评价数据访问接口
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	List(filter FeedbackListFilter) ([]models.Feedback, int64, error)
	MarkRead(ids []uint, isRead bool) (int64, error)
	CountUnread() (int64, error)
}

// GormFeedbackRepository GORM 实现
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建评价仓库
func NewFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// Create 新增评价
func (r *GormFeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// List 评价列表（最新在前）
func (r *GormFeedbackRepository) List(filter FeedbackListFilter) ([]models.Feedback, int64, error) {
	query := r.db.Model(&models.Feedback{})
	if filter.Rating > 0 {
		query = query.Where("rating = ?", filter.Rating)
	}
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.Feedback
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// MarkRead 批量设置已读状态
func (r *GormFeedbackRepository) MarkRead(ids []uint, isRead bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Feedback{}).Where("id IN ?", ids).Update("is_read", isRead)
	return result.RowsAffected, result.Error
}

// CountUnread 未读评价数量
func (r *GormFeedbackRepository) CountUnread() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Feedback{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
