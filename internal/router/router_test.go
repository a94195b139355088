package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/biztime/internal/config"
	"github.com/deppfellow/biztime/internal/handler"
	"github.com/deppfellow/biztime/internal/metrics"
		"github.com/deppfellow/biztime/internal/repository"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addDate     = pgtype.Date{Time: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	dbToday     = pgtype.Date{Time: time.Date(2018, 2, 3, 0, 0, 0, 0, time.UTC), Valid: true}
	description = "Makers of oly"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

type testApp struct {
	router *echo.Echo
	mock   pgxmock.PgxPoolIface
}

func newTestApp(t *testing.T, env string, pinger handler.Pinger) *testApp {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: env},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger:  &logger,
		Metrics: metrics.New(),
	}

	repos := repository.New(mock)

	h := &handler.Handlers{
		Health:   handler.NewHealthHandler(s, pinger),
		Company:  handler.NewCompanyHandler(s, service.NewCompanyService(repos.Company)),
		Invoice:  handler.NewInvoiceHandler(s, service.NewInvoiceService(repos.Invoice)),
		Industry: handler.NewIndustryHandler(s, service.NewIndustryService(repos.Industry)),
	}

	return &testApp{router: NewRouter(s, h), mock: mock}
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) expectCompany(code string) {
	a.mock.ExpectQuery(regexp.QuoteMeta(`FROM companies WHERE code = $1`)).
		WithArgs(code).
		WillReturnRows(pgxmock.NewRows([]string{"code", "name", "description"}).
			AddRow("oly", "oloye tech", &description))
}

// expectLockedPayment expects the locking read of invoice id's payment state,
// answered with the database date dbToday.
func (a *testApp) expectLockedPayment(id int, paid bool, paidDate pgtype.Date) {
	a.mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"paid", "paid_date", "current_date"}).
			AddRow(paid, paidDate, dbToday))
}

func TestCompanyRoutes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`SELECT code, name FROM companies`)).
			WillReturnRows(pgxmock.NewRows([]string{"code", "name"}).AddRow("oly", "oloye tech"))

		rec := app.do(http.MethodGet, "/companies", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"companies":[{"code":"oly","name":"oloye tech"}]}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("trailing slash", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`SELECT code, name FROM companies`)).
			WillReturnRows(pgxmock.NewRows([]string{"code", "name"}))

		rec := app.do(http.MethodGet, "/companies/", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"companies":[]}`, rec.Body.String())
	})

	t.Run("get with invoices and no industries", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.expectCompany("oly")
		app.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM invoices WHERE comp_code = $1`)).
			WithArgs("oly").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
		app.mock.ExpectQuery(regexp.QuoteMeta(`SELECT i.industry`)).
			WithArgs("oly").
			WillReturnRows(pgxmock.NewRows([]string{"industry"}))

		rec := app.do(http.MethodGet, "/companies/oly", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"company":{
			"code":"oly","name":"oloye tech","description":"Makers of oly",
			"invoices":[1],"industries":null
		}}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("get missing", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`FROM companies WHERE code = $1`)).
			WithArgs("nope").
			WillReturnError(pgx.ErrNoRows)

		rec := app.do(http.MethodGet, "/companies/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot find company","status":404}`, rec.Body.String())
	})

	t.Run("create derives code", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		desc := "Maker of shoes"
		app.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO companies`)).
			WithArgs("puma-inc", "Puma Inc.", &desc).
			WillReturnRows(pgxmock.NewRows([]string{"code", "name", "description"}).
				AddRow("puma-inc", "Puma Inc.", &desc))

		rec := app.do(http.MethodPost, "/companies", `{"name":"Puma Inc.","description":"Maker of shoes"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"company":{"code":"puma-inc","name":"Puma Inc.","description":"Maker of shoes"}}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("create duplicate is a conflict", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO companies`)).
			WithArgs("oly", "oloye tech", pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				TableName:      "companies",
				ConstraintName: "companies_pkey",
				Message:        `duplicate key value violates unique constraint "companies_pkey"`,
			})

		rec := app.do(http.MethodPost, "/companies", `{"code":"oly","name":"oloye tech"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":409`)
	})

	t.Run("create with a name already in use", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		for _, code := range []string{"a", "b"} {
			app.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO companies`)).
				WithArgs(code, "X", (*string)(nil)).
				WillReturnRows(pgxmock.NewRows([]string{"code", "name", "description"}).
					AddRow(code, "X", (*string)(nil)))
		}

		rec := app.do(http.MethodPost, "/companies", `{"code":"a","name":"X"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec = app.do(http.MethodPost, "/companies", `{"code":"b","name":"X"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"company":{"code":"b","name":"X","description":null}}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("create with underivable code", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})

		rec := app.do(http.MethodPost, "/companies", `{"name":"!!!"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"error":"Validation failed","status":400,
			"errors":[{"field":"code","error":"is required when it cannot be derived from name"}]
		}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("create without name", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})

		rec := app.do(http.MethodPost, "/companies", `{"description":"nameless"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"error":"Validation failed","status":400,
			"errors":[{"field":"name","error":"is required"}]
		}`, rec.Body.String())
	})

	t.Run("update answers 201", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		name := "Oloye"
		app.mock.ExpectQuery(regexp.QuoteMeta(`UPDATE companies`)).
			WithArgs(&name, &description, "oly").
			WillReturnRows(pgxmock.NewRows([]string{"code", "name", "description"}).
				AddRow("oly", "Oloye", &description))

		rec := app.do(http.MethodPut, "/companies/oly", `{"name":"Oloye","description":"Makers of oly"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"company":{"code":"oly","name":"Oloye","description":"Makers of oly"}}`, rec.Body.String())
	})

	t.Run("update missing", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`UPDATE companies`)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "nope").
			WillReturnError(pgx.ErrNoRows)

		rec := app.do(http.MethodPut, "/companies/nope", `{"name":"x"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot find company","status":404}`, rec.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM companies`)).
			WithArgs("oly").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		app.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM companies`)).
			WithArgs("oly").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		rec := app.do(http.MethodDelete, "/companies/oly", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"deleted"}`, rec.Body.String())

		rec = app.do(http.MethodDelete, "/companies/oly", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot find company","status":404}`, rec.Body.String())
	})
}

func TestInvoiceRoutes(t *testing.T) {
	invoiceColumns := []string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}

	t.Run("list", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, comp_code FROM invoices`)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "comp_code"}).AddRow(1, "oly"))

		rec := app.do(http.MethodGet, "/invoices", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"invoices":[{"id":1,"comp_code":"oly"}]}`, rec.Body.String())
	})

	t.Run("get joins company", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`JOIN companies AS c`)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "amt", "paid", "add_date", "paid_date", "code", "name", "description",
			}).AddRow(1, 100.0, false, addDate, pgtype.Date{}, "oly", "oloye tech", &description))

		rec := app.do(http.MethodGet, "/invoices/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"invoice":{
			"id":1,"amt":100,"paid":false,"add_date":"2018-01-01","paid_date":null,
			"company":{"code":"oly","name":"oloye tech","description":"Makers of oly"}
		}}`, rec.Body.String())
	})

	t.Run("get missing", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`JOIN companies AS c`)).
			WithArgs(0).
			WillReturnError(pgx.ErrNoRows)

		rec := app.do(http.MethodGet, "/invoices/0", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot find invoice","status":404}`, rec.Body.String())
	})

	t.Run("non-integer id", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})

		rec := app.do(http.MethodGet, "/invoices/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":400`)
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("create", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO invoices`)).
			WithArgs("oly", 200.0).
			WillReturnRows(pgxmock.NewRows(invoiceColumns).
				AddRow(2, "oly", 200.0, false, addDate, pgtype.Date{}))

		rec := app.do(http.MethodPost, "/invoices", `{"comp_code":"oly","amt":200}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"invoice":{
			"id":2,"comp_code":"oly","amt":200,"paid":false,"add_date":"2018-01-01","paid_date":null
		}}`, rec.Body.String())
	})

	t.Run("create without amt", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})

		rec := app.do(http.MethodPost, "/invoices", `{"comp_code":"oly"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"error":"Validation failed","status":400,
			"errors":[{"field":"amt","error":"is required"}]
		}`, rec.Body.String())
	})

	t.Run("create for unknown company", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO invoices`)).
			WithArgs("nope", 200.0).
			WillReturnError(&pgconn.PgError{
				Code:           "23503",
				TableName:      "invoices",
				ConstraintName: "invoices_comp_code_fkey",
			})

		rec := app.do(http.MethodPost, "/invoices", `{"comp_code":"nope","amt":200}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update marks paid", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		paidDate := dbToday

		app.mock.ExpectBegin()
		app.expectLockedPayment(1, false, pgtype.Date{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`UPDATE invoices`)).
			WithArgs(300.0, true, paidDate, 1).
			WillReturnRows(pgxmock.NewRows(invoiceColumns).
				AddRow(1, "oly", 300.0, true, addDate, paidDate))
		app.mock.ExpectCommit()

		rec := app.do(http.MethodPut, "/invoices/1", `{"amt":300,"paid":true}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"invoice":{
			"id":1,"comp_code":"oly","amt":300,"paid":true,"add_date":"2018-01-01","paid_date":"2018-02-03"
		}}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("update missing", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectBegin()
		app.mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
			WithArgs(0).
			WillReturnError(pgx.ErrNoRows)
		app.mock.ExpectRollback()

		rec := app.do(http.MethodPut, "/invoices/0", `{"amt":300}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot find invoice","status":404}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("update marks unpaid", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		paidDate := pgtype.Date{Time: time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC), Valid: true}

		app.mock.ExpectBegin()
		app.expectLockedPayment(1, true, paidDate)
		app.mock.ExpectQuery(regexp.QuoteMeta(`UPDATE invoices`)).
			WithArgs(300.0, false, pgtype.Date{}, 1).
			WillReturnRows(pgxmock.NewRows(invoiceColumns).
				AddRow(1, "oly", 300.0, false, addDate, pgtype.Date{}))
		app.mock.ExpectCommit()

		rec := app.do(http.MethodPut, "/invoices/1", `{"amt":300,"paid":false}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"invoice":{
			"id":1,"comp_code":"oly","amt":300,"paid":false,"add_date":"2018-01-01","paid_date":null
		}}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("update with paid omitted keeps unpaid state", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})

		app.mock.ExpectBegin()
		app.expectLockedPayment(1, false, pgtype.Date{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`UPDATE invoices`)).
			WithArgs(250.0, false, pgtype.Date{}, 1).
			WillReturnRows(pgxmock.NewRows(invoiceColumns).
				AddRow(1, "oly", 250.0, false, addDate, pgtype.Date{}))
		app.mock.ExpectCommit()

		rec := app.do(http.MethodPut, "/invoices/1", `{"amt":250}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"invoice":{
			"id":1,"comp_code":"oly","amt":250,"paid":false,"add_date":"2018-01-01","paid_date":null
		}}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("update with paid omitted keeps paid date", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		paidDate := pgtype.Date{Time: time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC), Valid: true}

		app.mock.ExpectBegin()
		app.expectLockedPayment(1, true, paidDate)
		app.mock.ExpectQuery(regexp.QuoteMeta(`UPDATE invoices`)).
			WithArgs(250.0, true, paidDate, 1).
			WillReturnRows(pgxmock.NewRows(invoiceColumns).
				AddRow(1, "oly", 250.0, true, addDate, paidDate))
		app.mock.ExpectCommit()

		rec := app.do(http.MethodPut, "/invoices/1", `{"amt":250}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"paid_date":"2018-01-15"`)
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("id beyond column range", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})

		for _, tc := range []struct{ method, body string }{
			{http.MethodGet, ""},
			{http.MethodPut, `{"amt":300}`},
			{http.MethodDelete, ""},
		} {
			rec := app.do(tc.method, "/invoices/3000000000", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, tc.method)
			assert.JSONEq(t, `{
				"error":"Validation failed","status":400,
				"errors":[{"field":"id","error":"must not exceed 2147483647"}]
			}`, rec.Body.String())
		}
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})

	t.Run("delete then delete again", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM invoices`)).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		app.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM invoices`)).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		rec := app.do(http.MethodDelete, "/invoices/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"deleted"}`, rec.Body.String())

		rec = app.do(http.MethodDelete, "/invoices/1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot find invoice","status":404}`, rec.Body.String())
		assert.NoError(t, app.mock.ExpectationsWereMet())
	})
}

func TestIndustryRoutes(t *testing.T) {
	app := newTestApp(t, "test", fakePinger{})

	app.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO industries (code, industry)`)).
		WithArgs("tech", "Technology").
		WillReturnRows(pgxmock.NewRows([]string{"code", "industry"}).AddRow("tech", "Technology"))
	app.mock.ExpectQuery(regexp.QuoteMeta(`SELECT code, industry FROM industries`)).
		WillReturnRows(pgxmock.NewRows([]string{"code", "industry"}).AddRow("tech", "Technology"))
	app.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO industries_companies`)).
		WithArgs("tech", "oly").
		WillReturnRows(pgxmock.NewRows([]string{"industry_code", "comp_code"}).AddRow("tech", "oly"))

	rec := app.do(http.MethodPost, "/industries", `{"code":"tech","industry":"Technology"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"created":{"code":"tech","industry":"Technology"}}`, rec.Body.String())

	rec = app.do(http.MethodGet, "/industries", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"industries":[{"code":"tech","industry":"Technology"}]}`, rec.Body.String())

	rec = app.do(http.MethodPost, "/industries/add-company", `{"industry_code":"tech","comp_code":"oly"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"industry_and_company":[{"industry_code":"tech","comp_code":"oly"}]}`, rec.Body.String())

	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestUnmatchedRoutes(t *testing.T) {
	app := newTestApp(t, "test", fakePinger{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodPatch, "/companies"},
		{http.MethodDelete, "/industries"},
	} {
		rec := app.do(tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"error":"Not Found","status":404}`, rec.Body.String())
	}
}

func TestInternalErrorMessage(t *testing.T) {
	storeDown := errors.New("connection refused")

	t.Run("development shows cause", func(t *testing.T) {
		app := newTestApp(t, "development", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`SELECT code, name FROM companies`)).WillReturnError(storeDown)

		rec := app.do(http.MethodGet, "/companies", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"failed to list companies: connection refused","status":500}`, rec.Body.String())
	})

	t.Run("production hides cause", func(t *testing.T) {
		app := newTestApp(t, "production", fakePinger{})
		app.mock.ExpectQuery(regexp.QuoteMeta(`SELECT code, name FROM companies`)).WillReturnError(storeDown)

		rec := app.do(http.MethodGet, "/companies", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error","status":500}`, rec.Body.String())
	})
}

func TestSystemRoutes(t *testing.T) {
	t.Run("status healthy", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})

		rec := app.do(http.MethodGet, "/status", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	})

	t.Run("status unhealthy", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{err: errors.New("db down")})

		rec := app.do(http.MethodGet, "/status", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
		assert.Contains(t, rec.Body.String(), "db down")
	})

	t.Run("metrics count requests", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})
		app.do(http.MethodGet, "/status", "")

		rec := app.do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `biztime_http_requests_total{method="GET",path="/status",status="200"} 1`)
	})

	t.Run("request id", func(t *testing.T) {
		app := newTestApp(t, "test", fakePinger{})

		rec := app.do(http.MethodGet, "/status", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}
