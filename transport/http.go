package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	alertapp "github.com/muhammadheryan/inventory/application/alert"
	checkoutapp "github.com/muhammadheryan/inventory/application/checkout"
	productapp "github.com/muhammadheryan/inventory/application/product"
	reportapp "github.com/muhammadheryan/inventory/application/report"
	stockapp "github.com/muhammadheryan/inventory/application/stock"
	userapp "github.com/muhammadheryan/inventory/application/user"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	StockApp    stockapp.StockApp
	AlertApp    alertapp.AlertApp
	CheckoutApp checkoutapp.CheckoutApp
	ReportApp   reportapp.ReportApp
	ProductApp  productapp.ProductApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/checkout", rh.Checkout).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/adjust", rh.AdjustStock).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/movements", rh.GetMovementHistory).Methods(http.MethodGet)
	mux.HandleFunc("/inventory/report", rh.GetReport).Methods(http.MethodGet)
	mux.HandleFunc("/inventory/alerts", rh.GetAlerts).Methods(http.MethodGet)
	mux.HandleFunc("/inventory/alerts/read", rh.DismissAllAlerts).Methods(http.MethodPut)
	mux.HandleFunc("/inventory/alerts/{id}/read", rh.DismissAlert).Methods(http.MethodPut)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/alerts/scan", rh.ScanLowStock).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}
