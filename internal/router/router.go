package router

import (
	"github.com/resto-next/internal/cache"
	"github.com/resto-next/internal/config"
	adminhandlers "github.com/resto-next/internal/http/handlers/admin"
	publichandlers "github.com/resto-next/internal/http/handlers/public"
	"github.com/resto-next/internal/logger"
	"github.com/resto-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        cache.BuildKey("rate:checkout"),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
		MessageKey:    "error.rate_limited",
		CartResponse:  true,
	}
	feedbackRule := RateLimitRule{
		Prefix:        cache.BuildKey("rate:feedback"),
		WindowSeconds: cfg.Security.FeedbackRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.FeedbackRateLimit.MaxRequests,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	api := r.Group("/api/v1")
	{
		// 前台接口：所有请求绑定访客会话
		public := api.Group("")
		public.Use(SessionMiddleware(cfg.Session))
		{
			public.GET("/menu", publicHandler.GetMenu)
			public.GET("/special-meals", publicHandler.ListSpecialMeals)
			public.GET("/special-meals/:id", publicHandler.GetSpecialMeal)

			cart := public.Group("/cart")
			{
				cart.GET("", publicHandler.GetCart)
				cart.POST("/products", publicHandler.AddProduct)
				cart.POST("/special-meals", publicHandler.AddSpecialMeal)
				cart.PUT("/lines/:type/:id", publicHandler.UpdateCartLine)
				cart.DELETE("/lines/:type/:id", publicHandler.RemoveCartLine)
			}

			public.POST("/orders", RateLimitMiddleware(redisClient, checkoutRule, KeyBySessionAndIP), publicHandler.PlaceOrder)
			public.GET("/orders/:id", publicHandler.GetOrder)

			public.POST("/feedback", RateLimitMiddleware(redisClient, feedbackRule, KeyByIP), publicHandler.SubmitFeedback)
		}

		if cfg.Server.AdminEnabled {
			admin := api.Group("/admin")
			{
				// 菜品分类与单品
				admin.GET("/categories", adminHandler.ListCategories)
				admin.POST("/categories", adminHandler.CreateCategory)
				admin.PUT("/categories/:id", adminHandler.UpdateCategory)
				admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
				admin.GET("/products", adminHandler.ListProducts)
				admin.GET("/products/:id", adminHandler.GetProduct)
				admin.POST("/products", adminHandler.CreateProduct)
				admin.PUT("/products/:id", adminHandler.UpdateProduct)
				admin.DELETE("/products/:id", adminHandler.DeleteProduct)

				// 配料
				admin.GET("/ingredient-categories", adminHandler.ListIngredientCategories)
				admin.POST("/ingredient-categories", adminHandler.CreateIngredientCategory)
				admin.PUT("/ingredient-categories/:id", adminHandler.UpdateIngredientCategory)
				admin.DELETE("/ingredient-categories/:id", adminHandler.DeleteIngredientCategory)
				admin.GET("/ingredients", adminHandler.ListIngredients)
				admin.POST("/ingredients", adminHandler.CreateIngredient)
				admin.PUT("/ingredients/:id", adminHandler.UpdateIngredient)
				admin.DELETE("/ingredients/:id", adminHandler.DeleteIngredient)

				// 定制套餐
				admin.GET("/special-meals", adminHandler.ListSpecialMeals)
				admin.GET("/special-meals/:id", adminHandler.GetSpecialMeal)
				admin.POST("/special-meals", adminHandler.CreateSpecialMeal)
				admin.PUT("/special-meals/:id", adminHandler.UpdateSpecialMeal)
				admin.DELETE("/special-meals/:id", adminHandler.DeleteSpecialMeal)
				admin.PUT("/special-meals/:id/ingredients", adminHandler.UpsertMealIngredient)
				admin.DELETE("/special-meals/:id/ingredients/:ingredient_id", adminHandler.RemoveMealIngredient)

				// 订单
				admin.GET("/orders", adminHandler.ListOrders)
				admin.GET("/orders/latest", adminHandler.LatestOrderMeta)
				admin.GET("/orders/statuses", adminHandler.ListOrderStatuses)
				admin.GET("/orders/:id", adminHandler.GetOrder)
				admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

				// 顾客评价
				admin.GET("/feedback", adminHandler.ListFeedback)
				admin.GET("/feedback/unread-count", adminHandler.FeedbackUnreadCount)
				admin.PATCH("/feedback/read", adminHandler.MarkFeedback)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
