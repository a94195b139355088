package service

import (
	"context"
	"errors"

	"github.com/deppfellow/biztime/internal/errs"
	"github.com/deppfellow/biztime/internal/middleware"
	"github.com/deppfellow/biztime/internal/model/invoice"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// InvoiceStore is the persistence InvoiceService needs. UpdateInvoice must
// call decide with the locked current payment state and the store's date.
type InvoiceStore interface {
	ListInvoices(ctx context.Context) ([]invoice.Summary, error)
	GetInvoiceDetail(ctx context.Context, id int) (*invoice.Detail, error)
	CreateInvoice(ctx context.Context, compCode string, amt float64) (*invoice.Invoice, error)
	UpdateInvoice(ctx context.Context, id int, amt float64, decide func(invoice.Payment, pgtype.Date) invoice.Payment) (*invoice.Invoice, error)
	DeleteInvoice(ctx context.Context, id int) error
}

type InvoiceService struct {
	store InvoiceStore
}

func NewInvoiceService(store InvoiceStore) *InvoiceService {
	return &InvoiceService{store: store}
}

func invoiceNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Cannot find invoice", nil)
	}
	return err
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]invoice.Summary, error) {
	invoices, err := s.store.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []invoice.Summary{}
	}
	return invoices, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id int) (*invoice.Detail, error) {
	detail, err := s.store.GetInvoiceDetail(ctx, id)
	if err != nil {
		return nil, invoiceNotFound(err)
	}
	return detail, nil
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, payload *invoice.CreateInvoicePayload) (*invoice.Invoice, error) {
	return s.store.CreateInvoice(ctx, payload.CompCode, *payload.Amt)
}

// UpdateInvoice sets the amount and moves the invoice through the paid
// state machine (see invoice.NextPaidDate).
func (s *InvoiceService) UpdateInvoice(ctx context.Context, payload *invoice.UpdateInvoicePayload) (*invoice.Invoice, error) {
	updated, err := s.store.UpdateInvoice(ctx, payload.ID, *payload.Amt, func(current invoice.Payment, today pgtype.Date) invoice.Payment {
		next := current.Apply(payload.Paid, today)
		if next.Paid != current.Paid {
			middleware.LoggerFromContext(ctx).Info().
				Int("invoice_id", payload.ID).
				Bool("paid", next.Paid).
				Msg("invoice payment state changed")
		}
		return next
	})
	if err != nil {
		return nil, invoiceNotFound(err)
	}
	return updated, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int) error {
	return invoiceNotFound(s.store.DeleteInvoice(ctx, id))
}
