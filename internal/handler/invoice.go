package handler

import (
	"net/http"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/model/invoice"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
	"github.com/labstack/echo/v4"
)

type InvoiceHandler struct {
	Handler
	service *service.InvoiceService
}

func NewInvoiceHandler(s *server.Server, svc *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	return Handle(h.listInvoices, http.StatusOK, &invoice.ListInvoicesPayload{})(c)
}

func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	return Handle(h.getInvoice, http.StatusOK, &invoice.GetInvoicePayload{})(c)
}

func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	return Handle(h.createInvoice, http.StatusCreated, &invoice.CreateInvoicePayload{})(c)
}

func (h *InvoiceHandler) UpdateInvoice(c echo.Context) error {
	return Handle(h.updateInvoice, http.StatusOK, &invoice.UpdateInvoicePayload{})(c)
}

func (h *InvoiceHandler) DeleteInvoice(c echo.Context) error {
	return Handle(h.deleteInvoice, http.StatusOK, &invoice.DeleteInvoicePayload{})(c)
}

func (h *InvoiceHandler) listInvoices(c echo.Context, _ *invoice.ListInvoicesPayload) (*invoice.ListResponse, error) {
	invoices, err := h.service.ListInvoices(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &invoice.ListResponse{Invoices: invoices}, nil
}

func (h *InvoiceHandler) getInvoice(c echo.Context, p *invoice.GetInvoicePayload) (*invoice.DetailResponse, error) {
	detail, err := h.service.GetInvoice(c.Request().Context(), p.ID)
	if err != nil {
		return nil, err
	}
	return &invoice.DetailResponse{Invoice: detail}, nil
}

func (h *InvoiceHandler) createInvoice(c echo.Context, p *invoice.CreateInvoicePayload) (*invoice.Response, error) {
	created, err := h.service.CreateInvoice(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &invoice.Response{Invoice: created}, nil
}

func (h *InvoiceHandler) updateInvoice(c echo.Context, p *invoice.UpdateInvoicePayload) (*invoice.Response, error) {
	updated, err := h.service.UpdateInvoice(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &invoice.Response{Invoice: updated}, nil
}

func (h *InvoiceHandler) deleteInvoice(c echo.Context, p *invoice.DeleteInvoicePayload) (*model.DeletedResponse, error) {
	if err := h.service.DeleteInvoice(c.Request().Context(), p.ID); err != nil {
		return nil, err
	}
	return &model.Deleted, nil
}
