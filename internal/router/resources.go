package router

import (
	"github.com/deppfellow/biztime/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerCompanyRoutes(r *echo.Echo, h *handler.CompanyHandler) {
	companies := r.Group("/companies")
	companies.GET("", h.ListCompanies)
	companies.POST("", h.CreateCompany)
	companies.GET("/:code", h.GetCompany)
	companies.PUT("/:code", h.UpdateCompany)
	companies.DELETE("/:code", h.DeleteCompany)
}

func registerInvoiceRoutes(r *echo.Echo, h *handler.InvoiceHandler) {
	invoices := r.Group("/invoices")
	invoices.GET("", h.ListInvoices)
	invoices.POST("", h.CreateInvoice)
	invoices.GET("/:id", h.GetInvoice)
	invoices.PUT("/:id", h.UpdateInvoice)
	invoices.DELETE("/:id", h.DeleteInvoice)
}

func registerIndustryRoutes(r *echo.Echo, h *handler.IndustryHandler) {
	industries := r.Group("/industries")
	industries.GET("", h.ListIndustries)
	industries.POST("", h.CreateIndustry)
	industries.POST("/add-company", h.AddCompany)
}
