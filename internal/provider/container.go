package provider

import (
	"time"

	"github.com/resto-next/internal/cache"
	"github.com/resto-next/internal/config"
	"github.com/resto-next/internal/logger"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/queue"
	"github.com/resto-next/internal/repository"
	"github.com/resto-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CategoryRepo    repository.CategoryRepository
	ProductRepo     repository.ProductRepository
	IngredientRepo  repository.IngredientRepository
	SpecialMealRepo repository.SpecialMealRepository
	CartRepo        repository.CartRepository
	OrderRepo       repository.OrderRepository
	FeedbackRepo    repository.FeedbackRepository

	// Services
	CartLocker         *service.CartLocker
	CatalogService     *service.CatalogService
	CategoryService    *service.CategoryService
	ProductService     *service.ProductService
	IngredientService  *service.IngredientService
	SpecialMealService *service.SpecialMealService
	CartService        *service.CartService
	OrderService       *service.OrderService
	FeedbackService    *service.FeedbackService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.IngredientRepo = repository.NewIngredientRepository(db)
	c.SpecialMealRepo = repository.NewSpecialMealRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.FeedbackRepo = repository.NewFeedbackRepository(db)
}

func (c *Container) initServices() {
	// 购物车与下单共用同一把会话锁
	c.CartLocker = service.NewCartLocker()

	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.ProductRepo, c.SpecialMealRepo, service.CatalogServiceOptions{
		CacheTTL:      time.Duration(c.Config.Menu.CacheTTLSeconds) * time.Second,
		FeaturedLimit: c.Config.Menu.FeaturedLimit,
	})
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.IngredientService = service.NewIngredientService(c.IngredientRepo)
	c.SpecialMealService = service.NewSpecialMealService(c.SpecialMealRepo, c.IngredientRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.SpecialMealRepo, c.IngredientRepo, c.CartLocker, service.CartServiceOptions{
		EnforceIngredientLimits: c.Config.Cart.EnforceIngredientLimits,
	})
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.ProductRepo, c.SpecialMealRepo, c.IngredientRepo, c.QueueClient, c.CartLocker, service.OrderServiceOptions{
		Currency: c.Config.Order.Currency,
	})
	c.FeedbackService = service.NewFeedbackService(c.FeedbackRepo)
}
