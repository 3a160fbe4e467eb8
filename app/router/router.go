package router

import (
	"net/http"

	"myShopStack/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupOperationalRoutes mounts the health probe and Prometheus scrape
// endpoint on the server root.
func SetupOperationalRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func SetupCustomerRoutes(api *echo.Group, handler *rest.CustomerHandler) {
	api.POST("/register", handler.Register)
	api.GET("/all", handler.GetAll)
	api.GET("/:username", handler.GetByUsername)
	api.PUT("/update/:username", handler.Update)
	api.DELETE("/delete/:username", handler.Delete)
	api.POST("/charge/:username", handler.ChargeWallet)
	api.POST("/deduct/:username", handler.DeductWallet)
}

func SetupInventoryRoutes(api *echo.Group, handler *rest.InventoryHandler) {
	api.POST("/add", handler.AddGoods)
	api.POST("/deduct/:product_id", handler.DeductGoods)
	api.PUT("/update/:product_id", handler.UpdateGoods)
	api.GET("/:product_id", handler.GetProduct)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler) {
	api.POST("/submit", handler.Submit)
	api.PUT("/update/:review_id", handler.Update)
	api.PUT("/moderate/:review_id", handler.Moderate)
	api.DELETE("/delete/:review_id", handler.Delete)
	api.GET("/product/:product_id", handler.GetProductReviews)
	api.GET("/customer/:customer_id", handler.GetCustomerReviews)
	api.GET("/:review_id", handler.GetByID)
}

func SetupSaleRoutes(api *echo.Group, handler *rest.SaleHandler) {
	api.POST("/submit", handler.Submit)
	api.PUT("/update/:sale_id", handler.Update)
	api.DELETE("/delete/:sale_id", handler.Delete)
	api.GET("/customer/:customer_id", handler.GetCustomerSales)
	api.GET("/goods", handler.GetAvailableGoods)
}
