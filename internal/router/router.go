package router

import (
	"net/http"

	"vending-machine/internal/handler"
	"vending-machine/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Restocking products and change requires the operator API key; reading the
// inventories and buying do not.
func New(
	productHandler *handler.ProductHandler,
	changeHandler *handler.ChangeHandler,
	purchaseHandler *handler.PurchaseHandler,
	operatorAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()
	operator := middleware.OperatorAuth(operatorAPIKey, logger)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.Handle("POST /api/products", operator(http.HandlerFunc(productHandler.Restock)))

	mux.HandleFunc("GET /api/change", changeHandler.List)
	mux.Handle("POST /api/change", operator(http.HandlerFunc(changeHandler.Add)))

	mux.HandleFunc("POST /api/purchases", purchaseHandler.Create)

	// Apply middleware in order: Recovery -> Logging -> CorrelationID -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.CorrelationID(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
