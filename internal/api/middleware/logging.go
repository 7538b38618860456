package middleware

import (
	"net/http"
	"time"
)

// AccessLog логирует каждый запрос: метод, путь, статус, время и request id
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			logger.Info("%s %s - %d (%s) request_id=%s",
				r.Method, r.URL.RequestURI(), rec.status, time.Since(start), requestID)
		})
	}
}
