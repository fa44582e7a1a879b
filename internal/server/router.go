package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"soeta/internal/order/controller"
)

func NewRouter(orderCtrl *controller.OrdersController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", orderCtrl.HandleCreateOrder)
		r.Get("/", orderCtrl.HandleListOrders)
		r.Put("/{orderId}", orderCtrl.HandleUpdateOrder)
		r.Delete("/{orderId}", orderCtrl.HandleDeleteOrder)
	})

	return r
}
