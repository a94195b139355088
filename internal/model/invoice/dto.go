package invoice

import (
	"math"

	"github.com/deppfellow/biztime/internal/model"
)

// MaxID is the largest id the serial column can hold. Larger path ids are
// rejected as a bad request.
const MaxID = math.MaxInt32

type ListInvoicesPayload struct{}

func (p *ListInvoicesPayload) Validate() error {
	return nil
}

type GetInvoicePayload struct {
	ID int `param:"id" json:"-" validate:"max=2147483647"`
}

func (p *GetInvoicePayload) Validate() error {
	return model.Validate.Struct(p)
}

type CreateInvoicePayload struct {
	CompCode string   `json:"comp_code" validate:"required"`
	Amt      *float64 `json:"amt" validate:"required,gt=0"`
}

func (p *CreateInvoicePayload) Validate() error {
	return model.Validate.Struct(p)
}

// UpdateInvoicePayload changes the amount and optionally the paid flag.
// A nil Paid leaves the paid state as it is.
type UpdateInvoicePayload struct {
	ID   int      `param:"id" json:"-" validate:"max=2147483647"`
	Amt  *float64 `json:"amt" validate:"required,gt=0"`
	Paid *bool    `json:"paid"`
}

func (p *UpdateInvoicePayload) Validate() error {
	return model.Validate.Struct(p)
}

type DeleteInvoicePayload struct {
	ID int `param:"id" json:"-" validate:"max=2147483647"`
}

func (p *DeleteInvoicePayload) Validate() error {
	return model.Validate.Struct(p)
}

type ListResponse struct {
	Invoices []Summary `json:"invoices"`
}

type Response struct {
	Invoice *Invoice `json:"invoice"`
}

type DetailResponse struct {
	Invoice *Detail `json:"invoice"`
}
