package transport

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/logger"
	"github.com/heystay/booking-api/utils/telemetry"
	"go.uber.org/zap"
)

// RecoveryMiddleware is the final fallback: any panic escaping a handler is
// logged, forwarded to telemetry, and answered with a generic 500 JSON body.
func RecoveryMiddleware(sink telemetry.Sink) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
					logger.Error("unhandled failure", zap.String("error", err.Error()))
					sink.CaptureException(r.Context(), err)
					writeError(w, errors.SetCustomError(constant.ErrInternal))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
