// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handler, performs business operations, and
// calls repository methods to interact with the data.
package service

import (
	"github.com/wicaksn/gostore/internal/lib/job"
	"github.com/wicaksn/gostore/internal/repository"
	"github.com/wicaksn/gostore/internal/server"
)

// Services is the container for all business services.
type Services struct {
	Users    *UserService
	Products *ProductService
	Orders   *OrderService
	Reports  *ReportService
	Job      *job.JobService
}

// NewServices wires services to the repositories and the background
// job queue.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	store := NewStore(repos)

	return &Services{
		Users:    NewUserService(store),
		Products: NewProductService(store),
		Orders:   NewOrderService(store, s.Job, s.Logger),
		Reports:  NewReportService(store, s.Config.Store.LowStockThreshold),
		Job:      s.Job,
	}, nil
}
