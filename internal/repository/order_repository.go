package repository

import (
	"errors"
	"strings"

	"github.com/resto-next/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndSession(id uint, sessionKey string) (*models.Order, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string) error
	LatestMeta() (OrderLatestMeta, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withLines(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("SpecialMeals", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("SpecialMeals.Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

// Create 创建订单及全部行（嵌套关联一并写入）
func (r *GormOrderRepository) Create(order *models.Order) error {
	if order == nil {
		return nil
	}
	return r.db.Create(order).Error
}

// GetByID 获取订单详情（不存在返回 nil）
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withLines(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndSession 获取当前会话下的订单
func (r *GormOrderRepository) GetByIDAndSession(id uint, sessionKey string) (*models.Order, error) {
	var order models.Order
	err := r.withLines(r.db).Where("id = ? AND session_key = ?", id, sessionKey).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListAdmin 后台订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if phone := strings.TrimSpace(filter.Phone); phone != "" {
		query = query.Where("customer_phone = ?", phone)
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		condition, args := buildLikeCondition(r.db, []string{"customer_name", "customer_phone", "customer_address"}, keyword)
		query = query.Where(condition, args...)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := r.withLines(query).Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

// LatestMeta 最新订单 ID 与订单总数
func (r *GormOrderRepository) LatestMeta() (OrderLatestMeta, error) {
	var meta OrderLatestMeta
	if err := r.db.Model(&models.Order{}).Count(&meta.Count).Error; err != nil {
		return meta, err
	}
	if meta.Count == 0 {
		return meta, nil
	}
	var latest models.Order
	if err := r.db.Select("id").Order("id desc").First(&latest).Error; err != nil {
		return meta, err
	}
	meta.LastID = latest.ID
	return meta, nil
}
