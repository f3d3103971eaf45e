package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/feedbackd/backend/fbsrvc"
	"github.com/feedbackd/backend/httpjson"
	"github.com/feedbackd/backend/logger"
)

type HttpServer struct {
	fbSrvc    *fbsrvc.FeedbackSrvc
	apiSecret string // empty disables the X-API-Secret check
	router    *chi.Mux

	// sfGroup collapses concurrent identical read queries
	sfGroup singleflight.Group
}

func NewHttpServer(fbSrvc *fbsrvc.FeedbackSrvc, apiSecret string) *HttpServer {
	router := chi.NewRouter()

	httpLogger := httplog.NewLogger("feedbackd", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(httpLogger))
	router.Use(requestIDMiddleware)
	router.Use(newStatsLogger().middleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         3000,
	}))

	server := &HttpServer{
		fbSrvc:    fbSrvc,
		apiSecret: apiSecret,
		router:    router,
	}

	server.routes()

	return server
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

// Router exposes the configured mux, mainly for tests.
func (s *HttpServer) Router() *chi.Mux {
	return s.router
}

func (s *HttpServer) routes() {
	r := s.router
	r.Get("/health", s.getHealth)

	// the submit endpoint and the read endpoints report unauthorized
	// access with different body shapes
	r.Group(func(r chi.Router) {
		r.Use(requireAPISecret(s.apiSecret, httpjson.HandleSubmitError))
		r.Post("/api/submit", s.postSubmit)
	})
	r.Group(func(r chi.Router) {
		r.Use(requireAPISecret(s.apiSecret, httpjson.HandleError))
		r.Get("/api/stats", s.getStats)
		r.Get("/api/list", s.getList)
	})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), uuid.New().String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
