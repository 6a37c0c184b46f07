package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vending-machine/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurchaseHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	testResponse := &model.ReceiptResponse{
		ID:        uuid.New(),
		Product:   "Chocolate Bar",
		Price:     decimal.RequireFromString("0.98"),
		Paid:      decimal.RequireFromString("1.00"),
		ChangeDue: decimal.RequireFromString("0.02"),
		Change:    []model.CoinStock{{Value: decimal.RequireFromString("0.02"), Quantity: 1}},
		CreatedAt: time.Now(),
	}

	validBody := `{"product": "Chocolate Bar", "coins": ["1.00"]}`

	tests := []struct {
		name           string
		method         string
		requestBody    string
		mockReturn     *model.ReceiptResponse
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			requestBody:    validBody,
			mockReturn:     testResponse,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Product unavailable",
			method:         http.MethodPost,
			requestBody:    validBody,
			mockError:      fmt.Errorf("%w: Chocolate Bar", model.ErrProductUnavailable),
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductUnavailable,
			expectService:  true,
		},
		{
			name:           "Insufficient money",
			method:         http.MethodPost,
			requestBody:    `{"product": "Chocolate Bar", "coins": [0.01]}`,
			mockError:      model.ErrInsufficientMoney,
			expectedStatus: http.StatusPaymentRequired,
			expectedCode:   model.ErrCodeInsufficientMoney,
			expectService:  true,
		},
		{
			name:           "Insufficient change",
			method:         http.MethodPost,
			requestBody:    validBody,
			mockError:      model.ErrInsufficientChange,
			expectedStatus: http.StatusConflict,
			expectedCode:   model.ErrCodeInsufficientChange,
			expectService:  true,
		},
		{
			name:           "Invalid coin",
			method:         http.MethodPost,
			requestBody:    `{"product": "Chocolate Bar", "coins": ["0.03"]}`,
			mockError:      fmt.Errorf("coin 0: %w", model.ErrInvalidValue),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidValue,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
			expectService:  false,
		},
		{
			name:           "Service internal error",
			method:         http.MethodPost,
			requestBody:    validBody,
			mockError:      errors.New("coin mechanism jammed"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockVendingService)
			handler := NewPurchaseHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Buy", mock.Anything, mock.AnythingOfType("*model.PurchaseRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/purchases", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var body model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedCode, body.Error)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "Buy", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPurchaseHandler_Create_DecodesCoins(t *testing.T) {
	mockService := new(MockVendingService)
	handler := NewPurchaseHandler(mockService, zerolog.Nop())

	mockService.On("Buy", mock.Anything, mock.MatchedBy(func(req *model.PurchaseRequest) bool {
		return req.Product == "Diet Coke" &&
			len(req.Coins) == 2 &&
			req.Coins[0].Equal(decimal.RequireFromString("1")) &&
			req.Coins[1].Equal(decimal.RequireFromString("0.05"))
	})).Return(&model.ReceiptResponse{ID: uuid.New()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/purchases",
		bytes.NewBufferString(`{"product": "Diet Coke", "coins": ["1.00", 0.05]}`))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}
