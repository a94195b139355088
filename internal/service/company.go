package service

import (
	"context"
	"errors"
	"strings"

	"github.com/deppfellow/biztime/internal/errs"
	"github.com/deppfellow/biztime/internal/middleware"
	"github.com/deppfellow/biztime/internal/model/company"
	"github.com/jackc/pgx/v5"
)

// CompanyStore is the persistence CompanyService needs.
type CompanyStore interface {
	ListCompanies(ctx context.Context) ([]company.Summary, error)
	GetCompany(ctx context.Context, code string) (*company.Company, error)
	GetCompanyInvoiceIDs(ctx context.Context, code string) ([]int, error)
	GetCompanyIndustries(ctx context.Context, code string) ([]string, error)
	CreateCompany(ctx context.Context, c company.Company) (*company.Company, error)
	UpdateCompany(ctx context.Context, code string, name, description *string) (*company.Company, error)
	DeleteCompany(ctx context.Context, code string) error
}

type CompanyService struct {
	store CompanyStore
}

func NewCompanyService(store CompanyStore) *CompanyService {
	return &CompanyService{store: store}
}

func companyNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Cannot find company", nil)
	}
	return err
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]company.Summary, error) {
	companies, err := s.store.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []company.Summary{}
	}
	return companies, nil
}

// GetCompany returns code with its invoice ids and industry names.
func (s *CompanyService) GetCompany(ctx context.Context, code string) (*company.Detail, error) {
	c, err := s.store.GetCompany(ctx, code)
	if err != nil {
		return nil, companyNotFound(err)
	}

	invoices, err := s.store.GetCompanyInvoiceIDs(ctx, code)
	if err != nil {
		return nil, err
	}

	industries, err := s.store.GetCompanyIndustries(ctx, code)
	if err != nil {
		return nil, err
	}

	return &company.Detail{
		Company:    *c,
		Invoices:   invoices,
		Industries: industries,
	}, nil
}

// CreateCompany inserts a company, deriving its code from the name when
// the payload carries none.
func (s *CompanyService) CreateCompany(ctx context.Context, payload *company.CreateCompanyPayload) (*company.Company, error) {
	code := payload.ResolvedCode()
	if payload.Code == nil || strings.TrimSpace(*payload.Code) == "" {
		middleware.LoggerFromContext(ctx).Debug().
			Str("code", code).
			Str("name", payload.Name).
			Msg("derived company code from name")
	}

	return s.store.CreateCompany(ctx, company.Company{
		Code:        code,
		Name:        payload.Name,
		Description: payload.Description,
	})
}

func (s *CompanyService) UpdateCompany(ctx context.Context, payload *company.UpdateCompanyPayload) (*company.Company, error) {
	updated, err := s.store.UpdateCompany(ctx, payload.Code, payload.Name, payload.Description)
	if err != nil {
		return nil, companyNotFound(err)
	}
	return updated, nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, code string) error {
	return companyNotFound(s.store.DeleteCompany(ctx, code))
}
