package company

import (
	"strings"

	"github.com/gosimple/slug"
)

// Company is a row of the companies table.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Summary is the list projection of a company.
type Summary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Detail is a company with its invoice ids and industry names attached.
// Industries is nil (JSON null) when the company has no industries.
type Detail struct {
	Company
	Invoices   []int    `json:"invoices"`
	Industries []string `json:"industries"`
}

// stripped are removed from a name before it is turned into a code.
var stripped = strings.NewReplacer(
	"*", "", "+", "", "~", "", ".", "", "(", "", ")", "",
	"'", "", `"`, "", "!", "", ":", "", "@", "",
)

// Slugify derives a company code from its display name:
// "Puma Inc." -> "puma-inc".
func Slugify(name string) string {
	return slug.Make(stripped.Replace(name))
}
