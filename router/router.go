package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/config"
	"github.com/lin-avraham/Pizza2/controllers"
	"github.com/lin-avraham/Pizza2/kds"
	"github.com/lin-avraham/Pizza2/middlewares"
	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/lin-avraham/Pizza2/services"
	"github.com/lin-avraham/Pizza2/templates"
	"github.com/lin-avraham/Pizza2/utils"
	"gorm.io/gorm"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	tmpl, err := templates.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to parse templates: %v", err)
	}
	r.SetHTMLTemplate(tmpl)

	// Repositories & services
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := services.NewAuthService(userRepo, utils.NewSessionTokens(cfg.SecretKey))
	catalogService := services.NewCatalogService(repository.NewDishRepository(db), dishCache(cfg), cfg.DishCacheTTL)
	reviewService := services.NewReviewService(repository.NewReviewRepository(db), cfg.UploadFolder)
	hub := kds.NewHub()
	whatsApp := services.NewWhatsAppService(cfg.Twilio, orderRepo)
	orderService := services.NewOrderService(orderRepo, whatsApp, hub)

	if cfg.RequestsPerSec > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RequestsPerSec, time.Second).RateLimit())
	}
	r.Use(middlewares.SessionAuth(authService))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())

	// uploaded review images, image files only
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") && !isImagePath(c.Request.URL.Path) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	})
	r.Static("/uploads", cfg.UploadFolder)

	// Controllers
	userCtrl := controllers.NewUserController(authService)
	menuCtrl := controllers.NewMenuController(catalogService, reviewService)
	orderCtrl := controllers.NewOrderController(orderService, services.NewTicketRenderer(cfg.TicketFont))
	reviewCtrl := controllers.NewReviewController(reviewService)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/", controllers.Index)
	r.GET("/about", controllers.About)
	r.GET("/menu", controllers.Menu)
	r.GET("/login", userCtrl.LoginPage)
	r.POST("/login", userCtrl.Login)
	r.GET("/logout", userCtrl.Logout)

	// ----------------------------------------------------------------
	//                      ADMIN
	// ----------------------------------------------------------------
	admin := r.Group("/admin", middlewares.RequireCapability(models.CapManageCatalog))
	admin.GET("", menuCtrl.AdminPage)
	admin.POST("/add_dish", menuCtrl.AddDish)

	// ----------------------------------------------------------------
	//                      CUSTOMER
	// ----------------------------------------------------------------
	r.GET("/customer", middlewares.RequireCapability(models.CapPlaceOrder), controllers.CustomerHome)

	ordering := r.Group("/", middlewares.RequireCapability(models.CapPlaceOrder))
	ordering.GET("/customer_order", menuCtrl.CustomerOrderPage)
	ordering.POST("/customer_order", orderCtrl.CreateOrder)

	reviewing := r.Group("/", middlewares.RequireCapability(models.CapWriteReview))
	reviewing.GET("/customer_review", controllers.CustomerReviewPage)
	reviewing.POST("/submit_review", reviewCtrl.SubmitReview)

	// ----------------------------------------------------------------
	//                      OPERATOR
	// ----------------------------------------------------------------
	operator := r.Group("/", middlewares.RequireCapability(models.CapFulfilOrders))
	operator.GET("/operator", orderCtrl.OperatorPage)
	operator.GET("/operator/ws", hub.ServeWS)
	operator.GET("/operator/orders/:order_id/ticket", orderCtrl.Ticket)
	operator.POST("/close_order/:order_id", orderCtrl.CloseOrder)
	operator.POST("/send_whatsapp/:order_id", middlewares.NotificationRateLimiter(cfg.NotifyPerMin), orderCtrl.SendWhatsApp)

	return r
}

func isImagePath(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// dishCache returns a redis cache when REDIS_ADDR is set and reachable.
func dishCache(cfg *config.Config) services.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}
	cache := utils.NewRedisCache(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		utils.ErrorLogger.Printf("Redis unavailable at %s, dish cache disabled: %v", cfg.RedisAddr, err)
		return nil
	}
	utils.InfoLogger.Printf("Dish cache enabled on redis %s", cfg.RedisAddr)
	return cache
}
