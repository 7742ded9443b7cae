package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/investments-backend/internal/adapter/repository/memory"
	"github.com/simaogato/investments-backend/internal/usecase/portfolio"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	service := portfolio.NewPortfolioService(memory.NewHoldingRepository())
	return NewRouter(service, log, RouterConfig{AllowedOrigins: []string{"http://localhost:5173"}})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(rec.Body.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(v), rec.Body.String())
}

func createHolding(t *testing.T, router http.Handler, body string) map[string]interface{} {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/investments", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]interface{}
	decodeBody(t, rec, &created)
	return created
}

func TestCreateHolding(t *testing.T) {
	router := newTestRouter(t)

	created := createHolding(t, router,
		`{"type":"STOCK","symbol":"PETR4","quantity":10,"purchasePrice":32.123456789,"purchaseDate":"2023-03-01"}`)

	_, err := uuid.Parse(created["id"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "STOCK", created["type"])
	assert.Equal(t, "PETR4", created["symbol"])
	assert.Equal(t, json.Number("10"), created["quantity"])
	assert.Equal(t, json.Number("32.123456789"), created["purchasePrice"])
	assert.Equal(t, "2023-03-01", created["purchaseDate"])
}

func TestCreateHolding_BadRequests(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"type":`},
		{"unknown type", `{"type":"HOUSE","symbol":"X","quantity":1,"purchasePrice":1,"purchaseDate":"2023-01-01"}`},
		{"blank symbol", `{"type":"BOND","symbol":" ","quantity":1,"purchasePrice":1,"purchaseDate":"2023-01-01"}`},
		{"zero quantity", `{"type":"BOND","symbol":"X","quantity":0,"purchasePrice":1,"purchaseDate":"2023-01-01"}`},
		{"missing price", `{"type":"BOND","symbol":"X","quantity":1,"purchaseDate":"2023-01-01"}`},
		{"null price", `{"type":"BOND","symbol":"X","quantity":1,"purchasePrice":null,"purchaseDate":"2023-01-01"}`},
		{"negative price", `{"type":"BOND","symbol":"X","quantity":1,"purchasePrice":-1,"purchaseDate":"2023-01-01"}`},
		{"missing date", `{"type":"BOND","symbol":"X","quantity":1,"purchasePrice":1}`},
		{"bad date", `{"type":"BOND","symbol":"X","quantity":1,"purchasePrice":1,"purchaseDate":"01/01/2023"}`},
		{"future date", `{"type":"BOND","symbol":"X","quantity":1,"purchasePrice":1,"purchaseDate":"2999-01-01"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/investments", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body errorResponse
			decodeBody(t, rec, &body)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestListHoldings_Filter(t *testing.T) {
	router := newTestRouter(t)

	createHolding(t, router, `{"type":"STOCK","symbol":"ITSA4","quantity":5,"purchasePrice":"9.50","purchaseDate":"2023-01-02"}`)
	createHolding(t, router, `{"type":"CRYPTO","symbol":"BTC","quantity":0.5,"purchasePrice":"150000","purchaseDate":"2023-01-03"}`)

	rec := doRequest(t, router, http.MethodGet, "/investments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []map[string]interface{}
	decodeBody(t, rec, &all)
	require.Len(t, all, 2)
	assert.Equal(t, "ITSA4", all[0]["symbol"])

	rec = doRequest(t, router, http.MethodGet, "/investments?type=CRYPTO", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var crypto []map[string]interface{}
	decodeBody(t, rec, &crypto)
	require.Len(t, crypto, 1)
	assert.Equal(t, "BTC", crypto[0]["symbol"])

	rec = doRequest(t, router, http.MethodGet, "/investments?type=FUND", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/investments?type=crypto", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUpdateDeleteHolding(t *testing.T) {
	router := newTestRouter(t)

	created := createHolding(t, router, `{"type":"FUND","symbol":"HGLG11","quantity":3,"purchasePrice":"160.10","purchaseDate":"2023-05-05"}`)
	path := "/investments/" + created["id"].(string)

	rec := doRequest(t, router, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPut, path,
		`{"type":"FUND","symbol":"HGLG11","quantity":4,"purchasePrice":"158.00","purchaseDate":"2023-05-06"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]interface{}
	decodeBody(t, rec, &updated)
	assert.Equal(t, created["id"], updated["id"])
	assert.Equal(t, json.Number("4"), updated["quantity"])
	assert.Equal(t, json.Number("158"), updated["purchasePrice"])
	assert.Equal(t, "2023-05-06", updated["purchaseDate"])

	rec = doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPut, path,
		`{"type":"FUND","symbol":"HGLG11","quantity":4,"purchasePrice":"158.00","purchaseDate":"2023-05-06"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/investments/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/investments/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummary(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/investments/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalInvested":0,"totalByType":{},"assetCount":0}`, rec.Body.String())

	createHolding(t, router, `{"type":"STOCK","symbol":"AAPL","quantity":10,"purchasePrice":"5.00","purchaseDate":"2023-01-01"}`)
	createHolding(t, router, `{"type":"BOND","symbol":"TESOURO","quantity":2,"purchasePrice":"100.00","purchaseDate":"2023-01-01"}`)

	rec = doRequest(t, router, http.MethodGet, "/investments/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"totalInvested":250,"totalByType":{"STOCK":50,"BOND":200},"assetCount":2}`,
		rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/investments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
