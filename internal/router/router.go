// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicaksn/gostore/internal/handler"
	"github.com/wicaksn/gostore/internal/middleware"
	"github.com/wicaksn/gostore/internal/server"
)

// New builds the Echo instance: global middlewares, the error funnel,
// and every route group.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: recover first so panics in later middleware are
	// caught, request id and tracing before the context enhancer so
	// the request logger can pick both up.
	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}

// registerAPIRoutes wires the /api business routes.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := e.Group("/api")

	// Per-IP token bucket; generous enough for normal storefront use.
	api.Use(m.RateLimit.Limit(20, 40))

	// Auth is wired but off by default; flip GOSTORE_AUTH_ENABLED to
	// protect the whole API surface.
	if m.Auth.Enabled() {
		api.Use(m.Auth.RequireAuth)
	}

	users := api.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.List, http.StatusOK, &handler.ListUsersRequest{}))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated, &handler.CreateUserRequest{}))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK, &handler.GetUserRequest{}))
	users.PUT("/:id", handler.Handle(h.Users.Handler, h.Users.Update, http.StatusOK, &handler.UpdateUserRequest{}))
	users.DELETE("/:id", handler.HandleNoContent(h.Users.Handler, h.Users.Delete, http.StatusNoContent, &handler.DeleteUserRequest{}))

	products := api.Group("/products")
	products.GET("", handler.Handle(h.Products.Handler, h.Products.List, http.StatusOK, &handler.ListProductsRequest{}))
	products.POST("", handler.Handle(h.Products.Handler, h.Products.Create, http.StatusCreated, &handler.CreateProductRequest{}))
	products.GET("/:id", handler.Handle(h.Products.Handler, h.Products.Get, http.StatusOK, &handler.GetProductRequest{}))
	products.PUT("/:id", handler.Handle(h.Products.Handler, h.Products.Update, http.StatusOK, &handler.UpdateProductRequest{}))
	products.DELETE("/:id", handler.HandleNoContent(h.Products.Handler, h.Products.Delete, http.StatusNoContent, &handler.DeleteProductRequest{}))

	orders := api.Group("/orders")
	orders.GET("", handler.Handle(h.Orders.Handler, h.Orders.List, http.StatusOK, &handler.ListOrdersRequest{}))
	orders.POST("", handler.Handle(h.Orders.Handler, h.Orders.Create, http.StatusCreated, &handler.CreateOrderRequest{}))
	orders.GET("/:id", handler.Handle(h.Orders.Handler, h.Orders.Get, http.StatusOK, &handler.GetOrderRequest{}))
	orders.DELETE("/:id", handler.HandleNoContent(h.Orders.Handler, h.Orders.Delete, http.StatusNoContent, &handler.DeleteOrderRequest{}))

	// Cart and payment flows are addressed by user rather than order
	// id: a user has at most one open cart at a time.
	orders.GET("/user/:userId/cart", handler.Handle(h.Orders.Handler, h.Orders.GetCart, http.StatusOK, &handler.GetCartRequest{}))
	orders.POST("/product/:productId/order/:orderId/quantity/:quantity/cart", handler.Handle(h.Orders.Handler, h.Orders.AddToCart, http.StatusOK, &handler.AddToCartRequest{}))
	orders.DELETE("/user/:userId/products/:productId", handler.Handle(h.Orders.Handler, h.Orders.RemoveFromCart, http.StatusOK, &handler.RemoveFromCartRequest{}))
	orders.POST("/user/:userId/process-payment", handler.Handle(h.Orders.Handler, h.Orders.ProcessPayment, http.StatusCreated, &handler.ProcessPaymentRequest{}))
	orders.GET("/user/:userId/orders", handler.Handle(h.Orders.Handler, h.Orders.ListUserOrders, http.StatusOK, &handler.ListUserOrdersRequest{}))

	reports := api.Group("/reports")
	reports.GET("/monthly-sales", handler.Handle(h.Reports.Handler, h.Reports.MonthlySales, http.StatusOK, &handler.ReportRequest{}))
	reports.GET("/monthly-sales/export", handler.HandleFile(h.Reports.Handler, h.Reports.ExportMonthlySales, http.StatusOK, &handler.ReportRequest{}, "monthly_sales.csv", "text/csv"))
	reports.GET("/board-stats", handler.Handle(h.Reports.Handler, h.Reports.BoardStats, http.StatusOK, &handler.ReportRequest{}))
	reports.GET("/top-products", handler.Handle(h.Reports.Handler, h.Reports.TopProducts, http.StatusOK, &handler.ReportRequest{}))
	reports.GET("/low-stock", handler.Handle(h.Reports.Handler, h.Reports.LowStock, http.StatusOK, &handler.ReportRequest{}))
	reports.GET("/top-spenders", handler.Handle(h.Reports.Handler, h.Reports.TopSpenders, http.StatusOK, &handler.ReportRequest{}))
}
