package api

import (
	"context"
	"net/http"
	"time"

	"fiscal-gateway/internal/auth"
	"fiscal-gateway/internal/gateway"

	"github.com/eencloud/goeen/log"
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Server handles HTTP communication from the point-of-sale layer.
type Server struct {
	*http.Server
	Logger     *log.Logger
	Dispatcher *gateway.Dispatcher
	Verifier   auth.Verifier
}

// NewServer creates and configures a new server for point-of-sale communication.
func NewServer(addr string, logger *log.Logger, dispatcher *gateway.Dispatcher, verifier auth.Verifier) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: &http.Server{
			Addr:           addr,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   90 * time.Second, // must outlive the payment timeout budget
			MaxHeaderBytes: 1 << 20,
		},
		Logger:     logger,
		Dispatcher: dispatcher,
		Verifier:   verifier,
	}

	mux.HandleFunc("/api/fiscal", s.fiscalHandler)
	mux.HandleFunc("/api/fiscal/recent", s.recentHandler) // Debug endpoint for recent gateway calls
	mux.HandleFunc("/healthz", s.healthHandler)
	mux.Handle("/metrics", promhttp.Handler())

	// The POS front-end runs in a browser on the store network.
	c := cors.New(cors.Options{
		AllowedMethods:      []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowedHeaders:      []string{"Content-Type", "Authorization"},
		AllowPrivateNetwork: true,
	})

	s.Handler = handlers.CombinedLoggingHandler(logWriter{logger}, c.Handler(mux))

	return s
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.Logger.Infof("Starting fiscal gateway on %s", s.Addr)
	return s.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.Logger.Info("Shutting down fiscal gateway...")
	return s.Shutdown(ctx)
}

// logWriter routes the access log through the application logger.
type logWriter struct {
	logger *log.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	w.logger.Infof("%s", p)
	return len(p), nil
}
