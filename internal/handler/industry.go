package handler

import (
	"net/http"

	"github.com/deppfellow/biztime/internal/model/industry"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
	"github.com/labstack/echo/v4"
)

type IndustryHandler struct {
	Handler
	service *service.IndustryService
}

func NewIndustryHandler(s *server.Server, svc *service.IndustryService) *IndustryHandler {
	return &IndustryHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *IndustryHandler) ListIndustries(c echo.Context) error {
	return Handle(h.listIndustries, http.StatusOK, &industry.ListIndustriesPayload{})(c)
}

func (h *IndustryHandler) CreateIndustry(c echo.Context) error {
	return Handle(h.createIndustry, http.StatusCreated, &industry.CreateIndustryPayload{})(c)
}

// AddCompany answers 200 with the association wrapped in a one-element
// array, the shape existing clients expect.
func (h *IndustryHandler) AddCompany(c echo.Context) error {
	return Handle(h.addCompany, http.StatusOK, &industry.AddCompanyPayload{})(c)
}

func (h *IndustryHandler) listIndustries(c echo.Context, _ *industry.ListIndustriesPayload) (*industry.ListResponse, error) {
	industries, err := h.service.ListIndustries(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &industry.ListResponse{Industries: industries}, nil
}

func (h *IndustryHandler) createIndustry(c echo.Context, p *industry.CreateIndustryPayload) (*industry.CreatedResponse, error) {
	created, err := h.service.CreateIndustry(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &industry.CreatedResponse{Created: created}, nil
}

func (h *IndustryHandler) addCompany(c echo.Context, p *industry.AddCompanyPayload) (*industry.AssociationResponse, error) {
	assoc, err := h.service.AddCompany(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &industry.AssociationResponse{IndustryAndCompany: []industry.Association{*assoc}}, nil
}
