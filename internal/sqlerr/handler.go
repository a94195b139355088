package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/biztime/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// entityNames maps BizTime tables to the singular noun used in messages.
var entityNames = map[string]string{
	"companies":            "company",
	"invoices":             "invoice",
	"industries":           "industry",
	"industries_companies": "industry association",
}

// referenceColumns maps foreign key columns to the entity they point at.
var referenceColumns = map[string]string{
	"comp_code":     "company",
	"industry_code": "industry",
}

// primaryKeyColumns names the single-column primary key of a table, used to
// phrase duplicate-key messages.
var primaryKeyColumns = map[string]string{
	"companies":  "code",
	"industries": "code",
}

var (
	uniqueConstraintRe  = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	foreignConstraintRe = regexp.MustCompile(`^(?:invoices|industries_companies)_(.+)_fkey$`)
)

// ConvertPgError converts a pgconn.PgError into our custom sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates "<DOMAIN>_<ACTION>" codes from DB errors,
// e.g. companies + UniqueViolation => COMPANY_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	domain := strings.ToUpper(strings.ReplaceAll(getEntityName(tableName), " ", "_"))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation, NumericValueOutOfRange:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message for sqlErr.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		if referenced := extractReferencedEntity(sqlErr.ConstraintName); referenced != "" {
			return fmt.Sprintf("The referenced %s does not exist", referenced)
		}
		return fmt.Sprintf("A record referenced by this %s does not exist", entityName)

	case UniqueViolation:
		column := extractColumnForUniqueViolation(sqlErr.TableName, sqlErr.ConstraintName)
		if column == "" {
			return fmt.Sprintf("This %s already exists", entityName)
		}
		return fmt.Sprintf("A %s with this %s already exists", entityName, strings.ReplaceAll(column, "_", " "))

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidTextRepresentation, NumericValueOutOfRange:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName returns the singular noun for a table. Unknown tables fall
// back to a crude singularization, and an empty table to "record".
func getEntityName(tableName string) string {
	if tableName == "" {
		return "record"
	}
	if name, ok := entityNames[tableName]; ok {
		return name
	}
	switch {
	case strings.HasSuffix(tableName, "ies"):
		return strings.TrimSuffix(tableName, "ies") + "y"
	case strings.HasSuffix(tableName, "s") && len(tableName) > 1:
		return strings.TrimSuffix(tableName, "s")
	}
	return strings.ReplaceAll(tableName, "_", " ")
}

// humanizeText converts snake_case into Title Case ("comp_code" -> "Comp Code").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractReferencedEntity infers the referenced entity from a foreign key
// constraint name such as "invoices_comp_code_fkey".
func extractReferencedEntity(constraintName string) string {
	matches := foreignConstraintRe.FindStringSubmatch(constraintName)
	if len(matches) < 2 {
		return ""
	}
	return referenceColumns[matches[1]]
}

// extractColumnForUniqueViolation infers the offending column from a unique
// constraint name. Primary key constraints ("<table>_pkey") resolve through
// primaryKeyColumns; otherwise it supports "unique_<table>_<column>" and
// "<table>_<column>_(key|ukey)".
func extractColumnForUniqueViolation(tableName, constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasSuffix(constraintName, "_pkey") {
		return primaryKeyColumns[tableName]
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueConstraintRe.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - pgconn.PgError: 409 for duplicates, 400 for other constraint/format
//     violations, 500 otherwise
//   - ErrNoRows: 404
//   - anything else: 500
func HandleError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case UniqueViolation:
			return errs.NewConflictError(userMessage, &errorCode)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, &errorCode, fieldErrors)

		case ForeignKeyViolation, CheckViolation, InvalidTextRepresentation, NumericValueOutOfRange:
			return errs.NewBadRequestError(userMessage, &errorCode, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewInternalServerError()
}
