package middleware

import (
	"net/http"
	"strings"
)

// AllowedMethods covers the PUT and PATCH update routes next to the plain
// CRUD verbs.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Accept must pass preflight so browser clients can ask the list views for
// JSON instead of HTML.
var AllowedHeaders = []string{"Content-Type", "Accept", RequestIDHeader}

// CORSMiddleware answers preflight requests itself and exposes the request
// id so a client can quote it when reporting a failed mutation.
type CORSMiddleware struct {
	methods string
	headers string
}

func NewCORSMiddleware() *CORSMiddleware {
	return &CORSMiddleware{
		methods: strings.Join(AllowedMethods, ", "),
		headers: strings.Join(AllowedHeaders, ", "),
	}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", m.methods)
		h.Set("Access-Control-Allow-Headers", m.headers)
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)
		h.Add("Vary", "Accept")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}
