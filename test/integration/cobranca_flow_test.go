package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kaminoclone/cobranca/internal/boleto"
	"github.com/kaminoclone/cobranca/internal/config"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/eventbus"
	"github.com/kaminoclone/cobranca/internal/handler"
	"github.com/kaminoclone/cobranca/internal/importer"
	"github.com/kaminoclone/cobranca/internal/middleware"
	"github.com/kaminoclone/cobranca/internal/retention"
	"github.com/kaminoclone/cobranca/internal/server"
	"github.com/kaminoclone/cobranca/internal/service"
	"github.com/kaminoclone/cobranca/internal/storage"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tenant = "tenant-integration"

func setupTestServer(t *testing.T) *httptest.Server {
	srv, _ := setupTestServerWithBus(t)
	return srv
}

func setupTestServerWithBus(t *testing.T) (*httptest.Server, eventbus.EventBus) {
	env := setupTestEnv(t)
	return env.srv, env.bus
}

type testEnv struct {
	srv     *httptest.Server
	bus     eventbus.EventBus
	charges service.ChargeService
}

func setupTestEnv(t *testing.T) *testEnv {
	log := logger.NewNop()
	repo := storage.NewMemoryStore()

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: 100,
		MaxRetries:    3,
		RetryDelay:    10 * time.Millisecond,
	}
	bus := eventbus.New(log, eventBusCfg)

	auditConsumer := eventbus.NewAuditConsumer(repo, log, 2)
	err := bus.Subscribe(eventbus.EventTypeAudit, auditConsumer)
	require.NoError(t, err)

	err = bus.Start(context.Background())
	require.NoError(t, err)

	audit := eventbus.NewAuditPublisher(bus, log)
	calculator := retention.NewCalculator(repo)
	issuer := boleto.NewIssuer(repo)
	reconciler := importer.NewReconciler(log, importer.WithRowTimeout(time.Second))

	importService := service.NewImportService(reconciler, log,
		importer.NewCustomerTarget(repo, repo, audit),
		importer.NewChargeTarget(repo, repo, calculator, issuer, audit),
	)
	chargeService := service.NewChargeService(repo, repo, calculator, issuer, audit, log)

	handlers := server.Handlers{
		Health:         handler.NewHealthHandler(config.StorageMemory, bus),
		Import:         handler.NewImportHandler(importService, domain.ImportModeUpsert, log),
		Charge:         handler.NewChargeHandler(chargeService, log),
		Customer:       handler.NewCustomerHandler(service.NewCustomerService(repo, repo, audit, log), log),
		ServiceInvoice: handler.NewServiceInvoiceHandler(service.NewServiceInvoiceService(repo, repo, chargeService, audit, log), log),
		TaxCategory:    handler.NewTaxCategoryHandler(service.NewTaxCategoryService(repo, audit, log), log),
		Invoice: handler.NewInvoiceHandler(
			service.NewInvoiceService(repo, repo, log),
			service.NewAuditService(repo, log),
			log,
		),
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		Import: config.ImportConfig{
			MaxUploadBytes: 1 << 20,
		},
	}

	srv := server.New(cfg, log, handlers)
	testServer := httptest.NewServer(srv.Handler())

	t.Cleanup(func() {
		testServer.Close()
		_ = bus.Shutdown(context.Background())
	})

	return &testEnv{srv: testServer, bus: bus, charges: chargeService}
}

func TestImportAndChargeFlow(t *testing.T) {
	srv, bus := setupTestServerWithBus(t)

	customers := "nome,documento,tipo,email,tipoTributacao\n" +
		"ACME Servicos,12.345.678/0001-99,PJ,financeiro@acme.com.br,PJ_PRIVADA\n" +
		"Ana Souza,123.456.789-09,PF,ana@example.com,\n" +
		"X,1,,,\n"

	report := uploadCSV(t, srv.URL+"/imports/customers", customers, "")
	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 2, report.CreatedCount)
	assert.Equal(t, 1, report.SkippedCount)
	require.Len(t, report.Details, 3)
	assert.Equal(t, 4, report.Details[2].RowNumber)
	assert.Equal(t, domain.RowOutcomeSkippedInvalid, report.Details[2].Kind)

	charges := "cliente_documento,valor,data_vencimento,tipo_boleto,tipo_tributacao,seu_numero\n" +
		"12345678000199,\"1.500,00\",2025-12-31,NORMAL,PJ_PRIVADA,NF-1\n" +
		"12345678909,250.00,2025-12-31,HIBRIDO,,NF-2\n" +
		"99999999999,100.00,2025-12-31,NORMAL,,NF-3\n"

	report = uploadCSV(t, srv.URL+"/imports/charges", charges, "create")
	assert.Equal(t, domain.ImportModeCreateOnly, report.Mode)
	assert.Equal(t, 2, report.CreatedCount)
	assert.Equal(t, 1, report.ErrorCount)

	var listed struct {
		Items []domain.Charge `json:"items"`
		Total int             `json:"total"`
	}
	getJSON(t, srv.URL+"/charges", &listed)
	require.Equal(t, 2, listed.Total)

	byReference := map[string]domain.Charge{}
	for _, c := range listed.Items {
		byReference[c.ExternalReference] = c
	}

	withheld := byReference["NF-1"]
	require.NotNil(t, withheld.Retention)
	assert.True(t, decimal.RequireFromString("1500").Equal(withheld.GrossAmount))
	assert.True(t, decimal.RequireFromString("1407.75").Equal(withheld.Amount))
	assert.True(t, decimal.RequireFromString("92.25").Equal(withheld.Retention.TotalWithheld))

	hybrid := byReference["NF-2"]
	assert.Nil(t, hybrid.Retention)
	assert.True(t, decimal.RequireFromString("250").Equal(hybrid.Amount))
	assert.NotEmpty(t, hybrid.PixPayload)

	// Re-importing the same file in create mode rejects every known row.
	report = uploadCSV(t, srv.URL+"/imports/charges", charges, "create")
	assert.Equal(t, 0, report.CreatedCount)
	assert.Equal(t, 3, report.ErrorCount)

	assert.Eventually(t, func() bool {
		var audit struct {
			Total int `json:"total"`
		}
		getJSON(t, srv.URL+"/audit", &audit)
		return audit.Total == 4
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, uint64(0), bus.Stats().Dropped)
}

func issueTestCharge(t *testing.T, url, reference, dueDate string) domain.Charge {
	t.Helper()

	body := `{"customer_document":"12345678909","gross_amount":"100.00","due_date":"` + dueDate +
		`","external_reference":"` + reference + `"}`
	resp := doJSON(t, http.MethodPost, url+"/charges", body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var charge domain.Charge
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&charge))
	return charge
}

func decodeCharge(t *testing.T, resp *http.Response) domain.Charge {
	t.Helper()
	defer resp.Body.Close()

	var charge domain.Charge
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&charge))
	return charge
}

func TestChargeLifecycle(t *testing.T) {
	srv := setupTestServer(t)
	uploadCSV(t, srv.URL+"/imports/customers", "nome,documento\nAna Souza,12345678909\n", "")

	writtenOff := issueTestCharge(t, srv.URL, "L-1", "2030-01-10")
	paid := issueTestCharge(t, srv.URL, "L-2", "2030-01-10")

	resp := doJSON(t, http.MethodPatch, srv.URL+"/charges/"+writtenOff.ID, `{"action":"baixar"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.ChargeStatusWrittenOff, decodeCharge(t, resp).Status)

	again := doJSON(t, http.MethodPatch, srv.URL+"/charges/"+writtenOff.ID, `{"action":"baixar"}`)
	again.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, again.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/charges/"+writtenOff.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.ChargeStatusCancelled, decodeCharge(t, resp).Status)

	resp = doJSON(t, http.MethodPatch, srv.URL+"/charges/"+paid.ID,
		`{"action":"registrar-pagamento","paid_amount":"100.00","paid_at":"2030-01-05"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	settled := decodeCharge(t, resp)
	assert.Equal(t, domain.ChargeStatusPaid, settled.Status)
	assert.True(t, settled.PaidAmount.Valid)
	assert.Equal(t, "100.00", settled.PaidAmount.Decimal.StringFixed(2))

	refused := doJSON(t, http.MethodDelete, srv.URL+"/charges/"+paid.ID, "")
	refused.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, refused.StatusCode)

	var stored domain.Charge
	getJSON(t, srv.URL+"/charges/"+paid.ID, &stored)
	assert.Equal(t, domain.ChargeStatusPaid, stored.Status)

	unknownAction := doJSON(t, http.MethodPatch, srv.URL+"/charges/"+paid.ID, `{"action":"reabrir"}`)
	unknownAction.Body.Close()
	assert.Equal(t, http.StatusBadRequest, unknownAction.StatusCode)

	missing := doJSON(t, http.MethodGet, srv.URL+"/charges/does-not-exist", "")
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	// customer, two issues, write-off, cancel, payment
	assert.Eventually(t, func() bool {
		var audit struct {
			Total int `json:"total"`
		}
		getJSON(t, srv.URL+"/audit", &audit)
		return audit.Total == 6
	}, 2*time.Second, 20*time.Millisecond)
}

func TestOverdueSweep(t *testing.T) {
	env := setupTestEnv(t)
	uploadCSV(t, env.srv.URL+"/imports/customers", "nome,documento\nAna Souza,12345678909\n", "")

	late := issueTestCharge(t, env.srv.URL, "O-1", "2025-03-01")
	current := issueTestCharge(t, env.srv.URL, "O-2", "2025-03-10")

	changed, err := env.charges.MarkOverdue(context.Background(), time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	var stored domain.Charge
	getJSON(t, env.srv.URL+"/charges/"+late.ID, &stored)
	assert.Equal(t, domain.ChargeStatusOverdue, stored.Status)
	getJSON(t, env.srv.URL+"/charges/"+current.ID, &stored)
	assert.Equal(t, domain.ChargeStatusPending, stored.Status)

	// A new due date brings an overdue charge back to PENDENTE.
	resp := doJSON(t, http.MethodPatch, env.srv.URL+"/charges/"+late.ID,
		`{"action":"alterar-vencimento","due_date":"2099-01-01"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	moved := decodeCharge(t, resp)
	assert.Equal(t, domain.ChargeStatusPending, moved.Status)
	assert.Equal(t, "2099-01-01", moved.DueDate.Format("2006-01-02"))
	assert.Equal(t, late.DigitableLine, moved.DigitableLine)
}

func TestServiceInvoiceFlow(t *testing.T) {
	srv := setupTestServer(t)

	uploadCSV(t, srv.URL+"/imports/customers",
		"nome,documento,tipoTributacao\nACME Servicos,12345678000199,PJ_PRIVADA\n", "")

	var customers struct {
		Items []domain.Customer `json:"items"`
	}
	getJSON(t, srv.URL+"/customers", &customers)
	require.Len(t, customers.Items, 1)

	body := `{"customer_id":"` + customers.Items[0].ID + `","service":"Consultoria","gross_amount":"1000.00"}`
	resp := doJSON(t, http.MethodPost, srv.URL+"/service-invoices", body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var issued struct {
		ServiceInvoice domain.ServiceInvoice `json:"service_invoice"`
		Charge         domain.Charge         `json:"charge"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&issued))

	assert.Equal(t, "000001", issued.ServiceInvoice.Number)
	assert.True(t, decimal.RequireFromString("938.50").Equal(issued.ServiceInvoice.NetAmount))
	assert.Equal(t, issued.Charge.ID, issued.ServiceInvoice.ChargeID)
	assert.Equal(t, "NFSE-000001", issued.Charge.ExternalReference)

	var invoices struct {
		Items []domain.InvoiceGroup `json:"items"`
	}
	getJSON(t, srv.URL+"/invoices", &invoices)
	require.Len(t, invoices.Items, 1)
	assert.Equal(t, 1, invoices.Items[0].ChargeCount)
	assert.True(t, decimal.RequireFromString("938.50").Equal(invoices.Items[0].PendingAmount))
}

func TestRetentionPreview(t *testing.T) {
	srv := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/retention/preview",
		`{"gross_amount":"1500.00","tax_category":"pj_privada"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var preview struct {
		Retention *domain.RetentionBreakdown `json:"retention"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&preview))
	require.NotNil(t, preview.Retention)
	assert.Equal(t, domain.TaxCategoryPrivateEntity, preview.Retention.CategoryCode)
	assert.True(t, decimal.RequireFromString("1407.75").Equal(preview.Retention.NetAmount))

	unknown := doJSON(t, http.MethodPost, srv.URL+"/retention/preview",
		`{"gross_amount":"100","tax_category":"NOPE"}`)
	defer unknown.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, unknown.StatusCode)
}

func TestTenantHeaderIsRequired(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/charges")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTenantsAreIsolated(t *testing.T) {
	srv := setupTestServer(t)

	uploadCSV(t, srv.URL+"/imports/customers", "nome,documento\nAna Souza,12345678909\n", "")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/customers", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.TenantHeader, "another-tenant")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 0, result.Total)
}

func TestTemplateDownload(t *testing.T) {
	srv := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/imports/templates/clientes", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(echo.HeaderContentDisposition), "modelo_")

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	header := strings.SplitN(string(content), "\n", 2)[0]
	assert.Contains(t, header, "nome")
	assert.Contains(t, header, "documento")

	missing := doJSON(t, http.MethodGet, srv.URL+"/imports/templates/unknown", "")
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)

	assert.Equal(t, "ok", result["status"])
	assert.Equal(t, config.StorageMemory, result["storage"])
	assert.NotEmpty(t, result["timestamp"])
	assert.Contains(t, result, "audit_bus")
}

func uploadCSV(t *testing.T, url, content, mode string) *domain.ImportReport {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "import.csv")
	require.NoError(t, err)

	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)

	err = writer.Close()
	require.NoError(t, err)

	if mode != "" {
		url += "?mode=" + mode
	}
	req, err := http.NewRequest(http.MethodPost, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(middleware.TenantHeader, tenant)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report domain.ImportReport
	err = json.NewDecoder(resp.Body).Decode(&report)
	require.NoError(t, err)

	return &report
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.TenantHeader, tenant)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, url string, out interface{}) {
	t.Helper()

	resp := doJSON(t, http.MethodGet, url, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
