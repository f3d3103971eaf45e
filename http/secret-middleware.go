package http

import (
	"log/slog"
	"net/http"

	"github.com/feedbackd/backend/fbsrvc"
	"github.com/feedbackd/backend/logger"
)

const apiSecretHeader = "X-API-Secret"

// requireAPISecret gates a route group behind the shared secret. An empty
// configured secret disables the check entirely. handleError is injected
// because the submit and read endpoints use different error body shapes.
func requireAPISecret(
	secret string,
	handleError func(*slog.Logger, http.ResponseWriter, error),
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if secret != "" && r.Header.Get(apiSecretHeader) != secret {
				log := logger.FromContext(r.Context())
				log.Warn("invalid api secret", "remote_addr", r.RemoteAddr)
				handleError(log, w, fbsrvc.ErrUnauthorized())
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
