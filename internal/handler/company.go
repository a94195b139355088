package handler

import (
	"net/http"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/model/company"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
	"github.com/labstack/echo/v4"
)

type CompanyHandler struct {
	Handler
	service *service.CompanyService
}

func NewCompanyHandler(s *server.Server, svc *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *CompanyHandler) ListCompanies(c echo.Context) error {
	return Handle(h.listCompanies, http.StatusOK, &company.ListCompaniesPayload{})(c)
}

func (h *CompanyHandler) GetCompany(c echo.Context) error {
	return Handle(h.getCompany, http.StatusOK, &company.GetCompanyPayload{})(c)
}

func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	return Handle(h.createCompany, http.StatusCreated, &company.CreateCompanyPayload{})(c)
}

// UpdateCompany answers 201, not 200, for compatibility with existing
// clients.
func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	return Handle(h.updateCompany, http.StatusCreated, &company.UpdateCompanyPayload{})(c)
}

func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	return Handle(h.deleteCompany, http.StatusOK, &company.DeleteCompanyPayload{})(c)
}

func (h *CompanyHandler) listCompanies(c echo.Context, _ *company.ListCompaniesPayload) (*company.ListResponse, error) {
	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &company.ListResponse{Companies: companies}, nil
}

func (h *CompanyHandler) getCompany(c echo.Context, p *company.GetCompanyPayload) (*company.DetailResponse, error) {
	detail, err := h.service.GetCompany(c.Request().Context(), p.Code)
	if err != nil {
		return nil, err
	}
	return &company.DetailResponse{Company: detail}, nil
}

func (h *CompanyHandler) createCompany(c echo.Context, p *company.CreateCompanyPayload) (*company.Response, error) {
	created, err := h.service.CreateCompany(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &company.Response{Company: created}, nil
}

func (h *CompanyHandler) updateCompany(c echo.Context, p *company.UpdateCompanyPayload) (*company.Response, error) {
	updated, err := h.service.UpdateCompany(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &company.Response{Company: updated}, nil
}

func (h *CompanyHandler) deleteCompany(c echo.Context, p *company.DeleteCompanyPayload) (*model.DeletedResponse, error) {
	if err := h.service.DeleteCompany(c.Request().Context(), p.Code); err != nil {
		return nil, err
	}
	return &model.Deleted, nil
}
