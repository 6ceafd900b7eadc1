package apidocs

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/spec"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

const emptyDoc = "{}"

// swag.Register hace panic si se registra dos veces el mismo nombre, así que
// registramos una sola vez un holder cuyo contenido se reemplaza en Publish.
var (
	registerOnce sync.Once
	holder       = &docHolder{doc: emptyDoc}
)

type docHolder struct {
	mu  sync.RWMutex
	doc string
}

// ReadDoc implementa swag.Swagger.
func (h *docHolder) ReadDoc() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.doc
}

func (h *docHolder) set(doc string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.doc = doc
}

// Publish deja el documento disponible para http-swagger (swag.ReadDoc).
// Si no se puede serializar publica un documento vacío y devuelve el error.
func Publish(doc *spec.Swagger) error {
	registerOnce.Do(func() {
		if swag.GetSwagger(swag.Name) == nil {
			swag.Register(swag.Name, holder)
		}
	})

	if doc == nil {
		holder.set(emptyDoc)
		return nil
	}

	b, err := json.Marshal(doc)
	if err != nil {
		holder.set(emptyDoc)
		return err
	}
	holder.set(string(b))
	return nil
}

// Current devuelve el documento publicado (JSON).
func Current() string {
	return holder.ReadDoc()
}

// Mount monta Swagger UI bajo prefix:
//   - GET {prefix}            => redirect a {prefix}/index.html
//   - GET {prefix}/index.html => Swagger UI
//   - GET {prefix}/doc.json   => documento crudo
func Mount(r chi.Router, prefix string) {
	prefix = "/" + strings.Trim(prefix, "/")

	redirect := func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, prefix+"/index.html", http.StatusMovedPermanently)
	}
	r.Get(prefix, redirect)
	r.Get(prefix+"/", redirect)

	r.Get(prefix+"/*", httpSwagger.Handler(
		httpSwagger.URL(prefix+"/doc.json"),
		httpSwagger.InstanceName(swag.Name),
	))
}
