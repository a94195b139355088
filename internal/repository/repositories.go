// Package repository handles all interactions with the database.
//
// It contains the raw SQL for each resource. Lookups that match no row
// return pgx.ErrNoRows so the service layer can tell "missing" apart from
// store failures.
package repository

import (
	"github.com/deppfellow/biztime/internal/database"
	"github.com/deppfellow/biztime/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Company  *CompanyRepository
	Invoice  *InvoiceRepository
	Industry *IndustryRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on db. Tests pass a pgxmock pool here.
func New(db database.DBTX) *Repositories {
	return &Repositories{
		Company:  NewCompanyRepository(db),
		Invoice:  NewInvoiceRepository(db),
		Industry: NewIndustryRepository(db),
	}
}
