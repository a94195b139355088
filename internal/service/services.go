// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated payloads from the handler, applies the BizTime rules, and
// turns "no such row" from the store into the resource's 404.
package service

import (
	"github.com/deppfellow/biztime/internal/repository"
	"github.com/deppfellow/biztime/internal/server"
)

type Services struct {
	Company  *CompanyService
	Invoice  *InvoiceService
	Industry *IndustryService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Company:  NewCompanyService(repos.Company),
		Invoice:  NewInvoiceService(repos.Invoice),
		Industry: NewIndustryService(repos.Industry),
	}, nil
}
