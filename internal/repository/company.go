package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/biztime/internal/database"
	"github.com/deppfellow/biztime/internal/model/company"
	"github.com/jackc/pgx/v5"
)

type CompanyRepository struct {
	db database.DBTX
}

func NewCompanyRepository(db database.DBTX) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]company.Summary, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (company.Summary, error) {
		var c company.Summary
		err := row.Scan(&c.Code, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	return companies, nil
}

func (r *CompanyRepository) GetCompany(ctx context.Context, code string) (*company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT code, name, description FROM companies WHERE code = $1`, code)

	var c company.Company
	if err := row.Scan(&c.Code, &c.Name, &c.Description); err != nil {
		return nil, err
	}

	return &c, nil
}

// GetCompanyInvoiceIDs returns the ids of code's invoices, oldest first.
// The slice is empty, never nil, when there are none.
func (r *CompanyRepository) GetCompanyInvoiceIDs(ctx context.Context, code string) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list company invoices: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to scan company invoices: %w", err)
	}
	if ids == nil {
		ids = []int{}
	}

	return ids, nil
}

// GetCompanyIndustries returns the names of the industries code belongs
// to, or nil when it belongs to none.
func (r *CompanyRepository) GetCompanyIndustries(ctx context.Context, code string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.industry
		FROM industries AS i
		JOIN industries_companies AS ic ON i.code = ic.industry_code
		WHERE ic.comp_code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list company industries: %w", err)
	}

	industries, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan company industries: %w", err)
	}
	if len(industries) == 0 {
		return nil, nil
	}

	return industries, nil
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, c company.Company) (*company.Company, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description`,
		c.Code, c.Name, c.Description)

	var created company.Company
	if err := row.Scan(&created.Code, &created.Name, &created.Description); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateCompany overwrites name and description. A nil name is passed
// through so the NOT NULL constraint reports it.
func (r *CompanyRepository) UpdateCompany(ctx context.Context, code string, name, description *string) (*company.Company, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description`,
		name, description, code)

	var updated company.Company
	if err := row.Scan(&updated.Code, &updated.Name, &updated.Description); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
