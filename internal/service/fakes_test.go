package service

import (
	"context"
	"sort"

	"github.com/deppfellow/biztime/internal/model/company"
	"github.com/deppfellow/biztime/internal/model/industry"
	"github.com/deppfellow/biztime/internal/model/invoice"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// fakeStore keeps the three tables in memory and mirrors the repository
// contract: missing rows come back as pgx.ErrNoRows and duplicate keys as
// a unique violation. today stands in for the database's CURRENT_DATE.
type fakeStore struct {
	today        pgtype.Date
	companies    map[string]company.Company
	invoices     map[int]invoice.Invoice
	industries   []industry.Industry
	associations []industry.Association
	nextID       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies: map[string]company.Company{},
		invoices:  map[int]invoice.Invoice{},
		nextID:    1,
		today:     paidOn,
	}
}

func uniqueViolation(table string) error {
	return &pgconn.PgError{Code: "23505", TableName: table}
}

func (f *fakeStore) ListCompanies(_ context.Context) ([]company.Summary, error) {
	var out []company.Summary
	for _, c := range f.companies {
		out = append(out, company.Summary{Code: c.Code, Name: c.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (f *fakeStore) GetCompany(_ context.Context, code string) (*company.Company, error) {
	c, ok := f.companies[code]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (f *fakeStore) GetCompanyInvoiceIDs(_ context.Context, code string) ([]int, error) {
	ids := []int{}
	for id, inv := range f.invoices {
		if inv.CompCode == code {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (f *fakeStore) GetCompanyIndustries(_ context.Context, code string) ([]string, error) {
	var names []string
	for _, a := range f.associations {
		if a.CompCode != code {
			continue
		}
		for _, ind := range f.industries {
			if ind.Code == a.IndustryCode {
				names = append(names, ind.Industry)
			}
		}
	}
	return names, nil
}

func (f *fakeStore) CreateCompany(_ context.Context, c company.Company) (*company.Company, error) {
	if _, ok := f.companies[c.Code]; ok {
		return nil, uniqueViolation("companies")
	}
	f.companies[c.Code] = c
	return &c, nil
}

func (f *fakeStore) UpdateCompany(_ context.Context, code string, name, description *string) (*company.Company, error) {
	c, ok := f.companies[code]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if name == nil {
		return nil, &pgconn.PgError{Code: "23502", TableName: "companies", ColumnName: "name"}
	}
	c.Name = *name
	c.Description = description
	f.companies[code] = c
	return &c, nil
}

func (f *fakeStore) DeleteCompany(_ context.Context, code string) error {
	if _, ok := f.companies[code]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.companies, code)
	return nil
}

func (f *fakeStore) ListInvoices(_ context.Context) ([]invoice.Summary, error) {
	var out []invoice.Summary
	for id, inv := range f.invoices {
		out = append(out, invoice.Summary{ID: id, CompCode: inv.CompCode})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetInvoiceDetail(_ context.Context, id int) (*invoice.Detail, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	c := f.companies[inv.CompCode]
	return &invoice.Detail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company:  c,
	}, nil
}

func (f *fakeStore) CreateInvoice(_ context.Context, compCode string, amt float64) (*invoice.Invoice, error) {
	if _, ok := f.companies[compCode]; !ok {
		return nil, &pgconn.PgError{Code: "23503", TableName: "invoices", ConstraintName: "invoices_comp_code_fkey"}
	}
	inv := invoice.Invoice{ID: f.nextID, CompCode: compCode, Amt: amt, AddDate: addDate}
	f.invoices[inv.ID] = inv
	f.nextID++
	return &inv, nil
}

func (f *fakeStore) UpdateInvoice(_ context.Context, id int, amt float64, decide func(invoice.Payment, pgtype.Date) invoice.Payment) (*invoice.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	next := decide(invoice.Payment{Paid: inv.Paid, PaidDate: inv.PaidDate}, f.today)
	inv.Amt = amt
	inv.Paid = next.Paid
	inv.PaidDate = next.PaidDate
	f.invoices[id] = inv
	return &inv, nil
}

func (f *fakeStore) DeleteInvoice(_ context.Context, id int) error {
	if _, ok := f.invoices[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.invoices, id)
	return nil
}

func (f *fakeStore) ListIndustries(_ context.Context) ([]industry.Industry, error) {
	return f.industries, nil
}

func (f *fakeStore) CreateIndustry(_ context.Context, in industry.Industry) (*industry.Industry, error) {
	for _, existing := range f.industries {
		if existing.Code == in.Code {
			return nil, uniqueViolation("industries")
		}
	}
	f.industries = append(f.industries, in)
	return &in, nil
}

func (f *fakeStore) AddCompany(_ context.Context, a industry.Association) (*industry.Association, error) {
	if _, ok := f.companies[a.CompCode]; !ok {
		return nil, &pgconn.PgError{Code: "23503", TableName: "industries_companies", ConstraintName: "industries_companies_comp_code_fkey"}
	}
	f.associations = append(f.associations, a)
	return &a, nil
}
