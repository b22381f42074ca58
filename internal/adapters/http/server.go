package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"northstar/internal/api"
	"northstar/internal/ports"
)

// MaxBodyBytes caps every request body. A results batch of 500 candidates
// with contacts fits comfortably.
const MaxBodyBytes = 4 << 20

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements the generated StrictServerInterface.
type Server struct {
	candidates ports.Candidates
	lifecycle  ports.Lifecycle
	discovery  ports.Discovery
	health     Pinger
	log        *zap.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(candidates ports.Candidates, lifecycle ports.Lifecycle, discovery ports.Discovery, health Pinger, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{candidates: candidates, lifecycle: lifecycle, discovery: discovery, health: health, log: log}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(MaxBodyBytes))

	handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{withActor}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.health.Ping(ctx); err != nil {
			s.log.Warn("health check failed", zap.Error(err))
			return api.GetHealthz503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

type actorKey struct{}

// withActor carries the X-Actor header to the strict handlers.
func withActor(f api.StrictHandlerFunc, _ string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		if a := strings.TrimSpace(r.Header.Get("X-Actor")); a != "" {
			ctx = context.WithValue(ctx, actorKey{}, a)
		}
		return f(ctx, w, r, request)
	}
}

// actorOf prefers the actor named in the body and falls back to X-Actor.
func actorOf(ctx context.Context, body string) string {
	if a := strings.TrimSpace(body); a != "" {
		return a
	}
	a, _ := ctx.Value(actorKey{}).(string)
	return a
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
