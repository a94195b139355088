package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/biztime/internal/database"
	"github.com/deppfellow/biztime/internal/model/industry"
	"github.com/jackc/pgx/v5"
)

type IndustryRepository struct {
	db database.DBTX
}

func NewIndustryRepository(db database.DBTX) *IndustryRepository {
	return &IndustryRepository{db: db}
}

func (r *IndustryRepository) ListIndustries(ctx context.Context) ([]industry.Industry, error) {
	rows, err := r.db.Query(ctx, `SELECT code, industry FROM industries`)
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}

	industries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (industry.Industry, error) {
		var i industry.Industry
		err := row.Scan(&i.Code, &i.Industry)
		return i, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan industries: %w", err)
	}

	return industries, nil
}

func (r *IndustryRepository) CreateIndustry(ctx context.Context, in industry.Industry) (*industry.Industry, error) {
	var created industry.Industry
	err := r.db.QueryRow(ctx, `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry`,
		in.Code, in.Industry).Scan(&created.Code, &created.Industry)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// AddCompany associates a company with an industry.
func (r *IndustryRepository) AddCompany(ctx context.Context, a industry.Association) (*industry.Association, error) {
	var created industry.Association
	err := r.db.QueryRow(ctx, `
		INSERT INTO industries_companies (industry_code, comp_code)
		VALUES ($1, $2)
		RETURNING industry_code, comp_code`,
		a.IndustryCode, a.CompCode).Scan(&created.IndustryCode, &created.CompCode)
	if err != nil {
		return nil, err
	}

	return &created, nil
}
