package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type RequestLoggerMiddleware struct {
	log *logrus.Logger
}

func NewRequestLoggerMiddleware(log *logrus.Logger) *RequestLoggerMiddleware {
	return &RequestLoggerMiddleware{log: log}
}

// Handle tags the request with an id and logs it once the handler returns.
func (m *RequestLoggerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		requestID := req.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			req.Header.Set(RequestIDHeader, requestID)
		}
		w.Header().Set(RequestIDHeader, requestID)

		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, req)

		entry := m.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      req.Method,
			"path":        req.URL.Path,
			"status":      recorder.statusCode,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": req.RemoteAddr,
		})
		if recorder.statusCode >= http.StatusInternalServerError {
			entry.Error("HTTP request")
			return
		}
		entry.Info("HTTP request")
	})
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
