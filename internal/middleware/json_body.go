package middleware

import (
	"net/http"

	"zoo-management/internal/platform/respond"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// DefaultBodyLimit es el tamaño máximo de body JSON aceptado (100kb).
const DefaultBodyLimit int64 = 100 << 10

const msgUnsupportedType = "content type must be application/json"

// JSONBody compone chimw.RequestSize y chimw.AllowContentType. Requests sin
// body pasan; un body que no es application/json responde 415 con el mismo
// shape {error, kind} que el resto de la API.
func JSONBody(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}
	sizeLimit := chimw.RequestSize(limit)
	allowJSON := chimw.AllowContentType("application/json")

	return func(next http.Handler) http.Handler {
		gate := allowJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w.(unsupportedTypeWriter).ResponseWriter, r)
		}))
		return sizeLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gate.ServeHTTP(unsupportedTypeWriter{w}, r)
		}))
	}
}

// unsupportedTypeWriter solo vive mientras decide AllowContentType: el handler
// siguiente recibe el ResponseWriter original.
type unsupportedTypeWriter struct {
	http.ResponseWriter
}

func (u unsupportedTypeWriter) WriteHeader(code int) {
	if code == http.StatusUnsupportedMediaType {
		respond.Error(u.ResponseWriter, code, respond.KindValidation, msgUnsupportedType)
		return
	}
	u.ResponseWriter.WriteHeader(code)
}
