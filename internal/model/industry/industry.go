package industry

import "github.com/deppfellow/biztime/internal/model"

// Industry is a row of the industries table.
type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// Association is a row of the industries_companies join table.
type Association struct {
	IndustryCode string `json:"industry_code"`
	CompCode     string `json:"comp_code"`
}

type ListIndustriesPayload struct{}

func (p *ListIndustriesPayload) Validate() error {
	return nil
}

type CreateIndustryPayload struct {
	Code     string `json:"code" validate:"required,max=64"`
	Industry string `json:"industry" validate:"required,max=255"`
}

func (p *CreateIndustryPayload) Validate() error {
	return model.Validate.Struct(p)
}

type AddCompanyPayload struct {
	IndustryCode string `json:"industry_code" validate:"required"`
	CompCode     string `json:"comp_code" validate:"required"`
}

func (p *AddCompanyPayload) Validate() error {
	return model.Validate.Struct(p)
}

type CreatedResponse struct {
	Created *Industry `json:"created"`
}

type ListResponse struct {
	Industries []Industry `json:"industries"`
}

// AssociationResponse wraps the single inserted association in an array.
type AssociationResponse struct {
	IndustryAndCompany []Association `json:"industry_and_company"`
}
