package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Domenick1991/skybooking/api"
	"github.com/Domenick1991/skybooking/config"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/Domenick1991/skybooking/internal/service/catalog"
	"github.com/Domenick1991/skybooking/internal/service/contact"
	"github.com/Domenick1991/skybooking/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	log *zap.Logger,
	catalogSvc catalog.CatalogUseCase,
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	contactSvc contact.ContactUseCase,
) error {
	router := NewRouter(log, catalogSvc, flightSvc, bookingSvc, contactSvc)

	handler := http.NewServeMux()
	handler.Handle("/", router)

	if cfg.HTTP.SwaggerDir != "" {
		fs := http.FileServer(http.Dir(cfg.HTTP.SwaggerDir))
		handler.Handle("/swagger/", http.StripPrefix("/swagger/", fs))
		handler.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
			renderSwaggerUI(w, "/swagger/skybooking.swagger.json")
		})
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info("http server listening", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter assembles the gin engine with all route groups under /api.
func NewRouter(
	log *zap.Logger,
	catalogSvc catalog.CatalogUseCase,
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	contactSvc contact.ContactUseCase,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestID(), api.RequestLogger(log))

	root := router.Group("/api")
	api.NewCatalogHandler(catalogSvc).Register(root)
	api.NewFlightHandler(flightSvc).Register(root.Group("/flights"))
	api.NewBookingHandler(bookingSvc).Register(root.Group("/bookings"))
	api.NewContactHandler(contactSvc).Register(root.Group("/contact"))
	return router
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
