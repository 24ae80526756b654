package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/wildwest-grill/controllers"
	"github.com/yeremiapane/wildwest-grill/middlewares"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/gorm"
)

type Options struct {
	StaticDir        string
	CORSAllowOrigins []string
	TrustedProxies   []string
	RateLimitRPS     float64
	RateLimitBurst   int
}

func DefaultOptions() Options {
	return Options{
		StaticDir:        "frontend",
		CORSAllowOrigins: []string{"*"},
	}
}

func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	r := gin.New()
	// nil: X-Forwarded-For diabaikan, rate limit memakai alamat koneksi
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		utils.ErrorLogger.Errorf("Invalid trusted proxies %v: %v", opts.TrustedProxies, err)
	}
	r.Use(gin.Recovery())

	// Apply middlewares
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares(opts.CORSAllowOrigins))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).RateLimit())

	// Inisialisasi controller
	healthCtrl := controllers.NewHealthController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	reservationCtrl := controllers.NewReservationController(db)
	inventoryCtrl := controllers.NewInventoryController(db)
	reviewCtrl := controllers.NewReviewController(db)
	customerCtrl := controllers.NewCustomerController(db)

	r.GET("/ping", healthCtrl.Ping)

	api := r.Group("/api")
	{
		api.GET("/health", healthCtrl.Health)

		api.GET("/menu", menuCtrl.GetAllMenus)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.GET("/orders/summary", orderCtrl.GetOrderSummary)
		api.DELETE("/orders/:orderId", orderCtrl.DeleteOrder)

		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.GET("/reservations", reservationCtrl.GetAllReservations)

		api.POST("/inventory", inventoryCtrl.UpsertInventoryItem)
		api.GET("/inventory", inventoryCtrl.GetAllInventory)

		api.POST("/reviews", reviewCtrl.CreateReview)
		api.GET("/reviews", reviewCtrl.GetAllReviews)

		api.GET("/customers", customerCtrl.GetAllCustomers)
		api.POST("/customers", customerCtrl.CreateCustomer)
	}

	mountFrontend(r, opts.StaticDir)

	return r
}

// mountFrontend melayani file statis: "/" -> index.html, path lain yang tidak
// cocok dengan route API dicari di staticDir.
func mountFrontend(r *gin.Engine, staticDir string) {
	if staticDir == "" {
		staticDir = "frontend"
	}
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		utils.ErrorLogger.Warnf("Frontend path not found: %s", staticDir)
	}

	index := filepath.Join(staticDir, "index.html")
	r.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	files := http.FileServer(http.Dir(staticDir))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
			utils.RespondStatusError(c, http.StatusNotFound, "Not found")
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}
