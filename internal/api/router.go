package api

import (
	"sales-analytics/internal/api/handler"
	"sales-analytics/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router, h *handler.ReportHandler) {
	r.GET("/api/v1/report/overview", h.GetOverview)
	r.GET("/api/v1/report/trends", h.GetTrends)
	r.GET("/api/v1/report/categories", h.GetCategories)
	r.GET("/api/v1/report/performance", h.GetPerformance)
	r.GET("/api/v1/report/customers", h.GetCustomers)
	r.GET("/api/v1/report/products", h.GetProducts)
	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
