// Package handler is the HTTP layer. It parses requests, validates
// input with the validation package, and calls the appropriate
// service. Nothing in here touches the database directly.
package handler

import (
	"github.com/wicaksn/gostore/internal/server"
	"github.com/wicaksn/gostore/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Users    *UserHandler
	Products *ProductHandler
	Orders   *OrderHandler
	Reports  *ReportHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Users:    NewUserHandler(s, services.Users),
		Products: NewProductHandler(s, services.Products),
		Orders:   NewOrderHandler(s, services.Orders),
		Reports:  NewReportHandler(s, services.Reports),
	}
}
