package service

import (
	"context"

	"github.com/deppfellow/biztime/internal/model/industry"
)

type IndustryStore interface {
	ListIndustries(ctx context.Context) ([]industry.Industry, error)
	CreateIndustry(ctx context.Context, in industry.Industry) (*industry.Industry, error)
	AddCompany(ctx context.Context, a industry.Association) (*industry.Association, error)
}

type IndustryService struct {
	store IndustryStore
}

func NewIndustryService(store IndustryStore) *IndustryService {
	return &IndustryService{store: store}
}

func (s *IndustryService) ListIndustries(ctx context.Context) ([]industry.Industry, error) {
	industries, err := s.store.ListIndustries(ctx)
	if err != nil {
		return nil, err
	}
	if industries == nil {
		industries = []industry.Industry{}
	}
	return industries, nil
}

func (s *IndustryService) CreateIndustry(ctx context.Context, payload *industry.CreateIndustryPayload) (*industry.Industry, error) {
	return s.store.CreateIndustry(ctx, industry.Industry{Code: payload.Code, Industry: payload.Industry})
}

// AddCompany associates a company with an industry. Unknown codes surface
// as foreign key violations from the store.
func (s *IndustryService) AddCompany(ctx context.Context, payload *industry.AddCompanyPayload) (*industry.Association, error) {
	return s.store.AddCompany(ctx, industry.Association{
		IndustryCode: payload.IndustryCode,
		CompCode:     payload.CompCode,
	})
}
