// Package handler is the HTTP layer. It binds and validates requests with
// the validation package, calls the service layer, and shapes responses.
package handler

import (
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health   *HealthHandler
	Company  *CompanyHandler
	Invoice  *InvoiceHandler
	Industry *IndustryHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s, s.DB),
		Company:  NewCompanyHandler(s, services.Company),
		Invoice:  NewInvoiceHandler(s, services.Invoice),
		Industry: NewIndustryHandler(s, services.Industry),
	}
}
