package company

import (
	"strings"

	"github.com/deppfellow/biztime/internal/model"
)

type ListCompaniesPayload struct{}

func (p *ListCompaniesPayload) Validate() error {
	return nil
}

type GetCompanyPayload struct {
	Code string `param:"code" json:"-" validate:"required"`
}

func (p *GetCompanyPayload) Validate() error {
	return model.Validate.Struct(p)
}

// CreateCompanyPayload creates a company. Code is derived from Name when
// omitted or blank.
type CreateCompanyPayload struct {
	Code        *string `json:"code" validate:"omitempty,max=64"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

func (p *CreateCompanyPayload) Validate() error {
	if err := model.Validate.Struct(p); err != nil {
		return err
	}

	if p.ResolvedCode() == "" {
		return model.CustomValidationErrors{
			{Field: "code", Message: "is required when it cannot be derived from name"},
		}
	}

	return nil
}

// ResolvedCode is the explicit code, or the slug of Name when the code is
// omitted or blank.
func (p *CreateCompanyPayload) ResolvedCode() string {
	if p.Code != nil {
		if code := strings.TrimSpace(*p.Code); code != "" {
			return code
		}
	}
	return Slugify(p.Name)
}

// UpdateCompanyPayload replaces name and description. Neither is required
// here so a missing company reports 404 before the store rejects a null name.
type UpdateCompanyPayload struct {
	Code        string  `param:"code" json:"-" validate:"required"`
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
}

func (p *UpdateCompanyPayload) Validate() error {
	return model.Validate.Struct(p)
}

type DeleteCompanyPayload struct {
	Code string `param:"code" json:"-" validate:"required"`
}

func (p *DeleteCompanyPayload) Validate() error {
	return model.Validate.Struct(p)
}

type ListResponse struct {
	Companies []Summary `json:"companies"`
}

type Response struct {
	Company *Company `json:"company"`
}

type DetailResponse struct {
	Company *Detail `json:"company"`
}
