package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vending-machine/internal/handler"
	"vending-machine/internal/model"
	"vending-machine/internal/service"
	"vending-machine/internal/vending"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "operator-key"

func newTestRouter(products model.ProductInventory, change model.ChangeInventory) (http.Handler, *vending.Machine) {
	logger := zerolog.Nop()
	machine := vending.New(products, change, logger)
	svc := service.NewVendingService(machine, logger)

	return New(
		handler.NewProductHandler(svc, logger),
		handler.NewChangeHandler(svc, logger),
		handler.NewPurchaseHandler(svc, logger),
		testAPIKey,
		logger,
	), machine
}

func do(t *testing.T, h http.Handler, method, path, body, apiKey string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	h, _ := newTestRouter(nil, nil)

	w := do(t, h, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestRouter_PurchaseFlow(t *testing.T) {
	bar := model.MustProduct("Chocolate Bar", "0.92")
	h, machine := newTestRouter(
		model.ProductInventory{bar: 1},
		model.ChangeInventory{
			model.MustCoin("0.01"): 1,
			model.MustCoin("0.02"): 2,
			model.MustCoin("0.05"): 1,
			model.MustCoin("1.00"): 1,
		},
	)

	w := do(t, h, http.MethodPost, "/api/purchases", `{"product": "Chocolate Bar", "coins": ["1.00"]}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var receipt model.ReceiptResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&receipt))
	assert.Equal(t, "Chocolate Bar", receipt.Product)
	assert.Equal(t, "0.08", receipt.ChangeDue.StringFixed(2))
	assert.Len(t, receipt.Change, 3)

	assert.Equal(t, model.ProductInventory{bar: 0}, machine.Products())
	assert.Equal(t, model.ChangeInventory{
		model.MustCoin("0.01"): 0,
		model.MustCoin("0.02"): 1,
		model.MustCoin("0.05"): 0,
		model.MustCoin("1.00"): 1,
	}, machine.Change())

	w = do(t, h, http.MethodPost, "/api/purchases", `{"product": "Chocolate Bar", "coins": ["1.00"]}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_PurchaseErrors(t *testing.T) {
	bar := model.MustProduct("Chocolate Bar", "0.98")

	tests := []struct {
		name           string
		change         model.ChangeInventory
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Insufficient money",
			change:         model.ChangeInventory{model.MustCoin("0.01"): 10},
			body:           `{"product": "Chocolate Bar", "coins": ["0.01"]}`,
			expectedStatus: http.StatusPaymentRequired,
			expectedCode:   model.ErrCodeInsufficientMoney,
		},
		{
			name:           "Insufficient change",
			change:         model.ChangeInventory{model.MustCoin("0.01"): 1},
			body:           `{"product": "Chocolate Bar", "coins": ["1.00"]}`,
			expectedStatus: http.StatusConflict,
			expectedCode:   model.ErrCodeInsufficientChange,
		},
		{
			name:           "Invalid coin",
			change:         model.ChangeInventory{},
			body:           `{"product": "Chocolate Bar", "coins": ["0.03"]}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidValue,
		},
		{
			name:           "Unknown product",
			change:         model.ChangeInventory{},
			body:           `{"product": "Crisps", "coins": ["1.00"]}`,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, machine := newTestRouter(model.ProductInventory{bar: 1}, tt.change)

			w := do(t, h, http.MethodPost, "/api/purchases", tt.body, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body model.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedCode, body.Error)
			assert.Equal(t, w.Header().Get("X-Correlation-ID"), body.CorrelationID)

			assert.Equal(t, model.ProductInventory{bar: 1}, machine.Products())
			assert.Equal(t, tt.change, machine.Change())
		})
	}
}

func TestRouter_OperatorRoutesRequireAPIKey(t *testing.T) {
	h, machine := newTestRouter(nil, model.ChangeInventory{model.MustCoin("1.00"): 3})

	w := do(t, h, http.MethodPost, "/api/change", `{"coins": [{"value": "0.01", "quantity": 10}]}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/api/products", `{"items": [{"name": "Gum", "price": "0.50", "quantity": 1}]}`, "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Equal(t, model.ChangeInventory{model.MustCoin("1.00"): 3}, machine.Change())
	assert.Empty(t, machine.Products())
}

func TestRouter_Restock(t *testing.T) {
	bar := model.MustProduct("Chocolate bar", "0.98")
	h, machine := newTestRouter(model.ProductInventory{bar: 1}, model.ChangeInventory{model.MustCoin("1.00"): 3})

	w := do(t, h, http.MethodPost, "/api/change", `{"coins": [{"value": "0.01", "quantity": 10}, {"value": "1.00", "quantity": 10}]}`, testAPIKey)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, model.ChangeInventory{model.MustCoin("0.01"): 10, model.MustCoin("1.00"): 13}, machine.Change())

	w = do(t, h, http.MethodPost, "/api/products", `{"items": [{"name": "Diet Coke", "price": "1.01", "quantity": 10}]}`, testAPIKey)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, model.ProductInventory{bar: 1, model.MustProduct("Diet Coke", "1.01"): 10}, machine.Products())

	w = do(t, h, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"name": "Chocolate bar", "price": "0.98", "quantity": 1},
		{"name": "Diet Coke", "price": "1.01", "quantity": 10}
	]`, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/change", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"value": "0.01", "quantity": 10},
		{"value": "1", "quantity": 13}
	]`, w.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(nil, nil)

	w := do(t, h, http.MethodDelete, "/api/products", "", testAPIKey)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = do(t, h, http.MethodGet, "/api/purchases", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = do(t, h, http.MethodPut, "/api/change", "", testAPIKey)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_Preflight(t *testing.T) {
	h, _ := newTestRouter(nil, nil)

	w := do(t, h, http.MethodOptions, "/api/purchases", "", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
