package invoice

import (
	"github.com/deppfellow/biztime/internal/model/company"
	"github.com/jackc/pgx/v5/pgtype"
)

// Invoice is a row of the invoices table. Dates marshal as "YYYY-MM-DD" or
// null.
type Invoice struct {
	ID       int         `json:"id"`
	CompCode string      `json:"comp_code"`
	Amt      float64     `json:"amt"`
	Paid     bool        `json:"paid"`
	AddDate  pgtype.Date `json:"add_date"`
	PaidDate pgtype.Date `json:"paid_date"`
}

// Summary is the list projection of an invoice.
type Summary struct {
	ID       int    `json:"id"`
	CompCode string `json:"comp_code"`
}

// Detail is an invoice with its company nested in place of comp_code.
type Detail struct {
	ID       int             `json:"id"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  pgtype.Date     `json:"add_date"`
	PaidDate pgtype.Date     `json:"paid_date"`
	Company  company.Company `json:"company"`
}

// Payment is the paid state of an invoice.
type Payment struct {
	Paid     bool
	PaidDate pgtype.Date
}

// NextPaidDate computes the paid date after an update:
//   - unpaid and paid=true requested: today
//   - paid=false requested: null
//   - otherwise (still paid, or paid omitted): unchanged
//
// today is the database's CURRENT_DATE, the same clock that fills add_date.
func NextPaidDate(current pgtype.Date, requested *bool, today pgtype.Date) pgtype.Date {
	switch {
	case !current.Valid && requested != nil && *requested:
		return today
	case requested != nil && !*requested:
		return pgtype.Date{}
	default:
		return current
	}
}

// Apply returns the payment state after an update requesting paid (nil when
// omitted) on day today.
func (p Payment) Apply(requested *bool, today pgtype.Date) Payment {
	paid := p.Paid
	if requested != nil {
		paid = *requested
	}

	return Payment{
		Paid:     paid,
		PaidDate: NextPaidDate(p.PaidDate, requested, today),
	}
}
