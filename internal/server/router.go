package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	ledgercontroller "brekkie/internal/ledger/controller"
	ordercontroller "brekkie/internal/order/controller"
	"brekkie/internal/site"
)

func NewRouter(
	home *site.Site,
	orderCtrl *ordercontroller.OrderController,
	ledgerCtrl *ledgercontroller.AppendController,
	sheetCtrl *ledgercontroller.SheetController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", home.Home)
	r.Post("/api/order", orderCtrl.Submit)
	r.Post("/api/ledger/append", ledgerCtrl.Append)
	r.Get("/api/ledger/sheets/{name}", sheetCtrl.GetSheet)
	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
