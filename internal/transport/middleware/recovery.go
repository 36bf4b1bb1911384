package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/incentive-ledger/pkg/ctxutil"
)

// Recovery turns a handler panic into a JSON 500 and an error log carrying the
// request id, the caller and the stack. http.ErrAbortHandler is re-raised so
// the server can abort the connection as usual.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				attrs := []any{
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				}
				if id, ok := ctxutil.AccountIDFromCtx(r.Context()); ok {
					attrs = append(attrs, slog.String("account_id", id.String()))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				writeJSONError(w, http.StatusInternalServerError, "internal error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
