package service

import (
	"strings"

	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/repository"
)

// ProductService 菜品管理
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建菜品服务
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo}
}

// ProductInput 创建/更新菜品输入
type ProductInput struct {
	CategoryID  uint
	Name        string
	Description string
	Image       string
	Price       models.Money
	IsAvailable bool
	IsFeatured  bool
	SortOrder   int
}

// List 后台菜品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// Get 获取菜品
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建菜品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	product := &models.Product{}
	applyProductInput(product, input)
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	invalidateCatalogCache()
	return product, nil
}

// Update 更新菜品；价格变动不影响已下单的快照
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	applyProductInput(product, input)
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	invalidateCatalogCache()
	return product, nil
}

// Delete 删除菜品
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	invalidateCatalogCache()
	return nil
}

func (s *ProductService) validate(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrCatalogNameRequired
	}
	if input.Price.IsNegative() {
		return ErrCatalogPriceInvalid
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func applyProductInput(product *models.Product, input ProductInput) {
	product.CategoryID = input.CategoryID
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Image = strings.TrimSpace(input.Image)
	product.Price = models.NewMoney(input.Price.Decimal)
	product.IsAvailable = input.IsAvailable
	product.IsFeatured = input.IsFeatured
	product.SortOrder = input.SortOrder
}
