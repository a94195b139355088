package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/biztime/internal/database"
	"github.com/deppfellow/biztime/internal/model/invoice"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

type InvoiceRepository struct {
	db database.DBTX
}

func NewInvoiceRepository(db database.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) ListInvoices(ctx context.Context) ([]invoice.Summary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, comp_code FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (invoice.Summary, error) {
		var s invoice.Summary
		err := row.Scan(&s.ID, &s.CompCode)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}

	return invoices, nil
}

// GetInvoiceDetail returns invoice id joined to its company.
func (r *InvoiceRepository) GetInvoiceDetail(ctx context.Context, id int) (*invoice.Detail, error) {
	row := r.db.QueryRow(ctx, `
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date, c.code, c.name, c.description
		FROM invoices AS i
		JOIN companies AS c ON c.code = i.comp_code
		WHERE i.id = $1`, id)

	var d invoice.Detail
	err := row.Scan(
		&d.ID, &d.Amt, &d.Paid, &d.AddDate, &d.PaidDate,
		&d.Company.Code, &d.Company.Name, &d.Company.Description,
	)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *InvoiceRepository) CreateInvoice(ctx context.Context, compCode string, amt float64) (*invoice.Invoice, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING `+invoiceColumns,
		compCode, amt)

	return scanInvoice(row)
}

// UpdateInvoice sets amt on invoice id and replaces its payment state with
// decide(current, today), where today is the database's CURRENT_DATE. The
// row is locked from the read until commit, so two concurrent updates cannot
// both see the invoice as unpaid.
func (r *InvoiceRepository) UpdateInvoice(
	ctx context.Context,
	id int,
	amt float64,
	decide func(current invoice.Payment, today pgtype.Date) invoice.Payment,
) (*invoice.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	var (
		current invoice.Payment
		today   pgtype.Date
	)
	err = tx.QueryRow(ctx, `SELECT paid, paid_date, CURRENT_DATE FROM invoices WHERE id = $1 FOR UPDATE`, id).
		Scan(&current.Paid, &current.PaidDate, &today)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	next := decide(current, today)

	row := tx.QueryRow(ctx, `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING `+invoiceColumns,
		amt, next.Paid, next.PaidDate, id)

	updated, err := scanInvoice(row)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit invoice update: %w", err)
	}

	return updated, nil
}

func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
