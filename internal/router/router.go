package router

import (
	"log/slog"
	"net/http"

	"zoo-management/internal/apidocs"
	"zoo-management/internal/domain/animals"
	"zoo-management/internal/middleware"
	"zoo-management/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DocsPath = "/api-docs"

type Options struct {
	// Store es obligatorio: el bootstrap abre la conexión y la inyecta aquí.
	Store animals.Repository

	Logger *slog.Logger

	StrictNotFound bool

	// Version se publica en el documento de la API.
	Version string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(httplog.RequestLogger(log, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS.Concise(true),
		Skip: func(req *http.Request, respStatus int) bool {
			return req.URL.Path == "/health" || req.URL.Path == "/metrics"
		},
	}))
	r.Use(middleware.Metrics)
	r.Use(middleware.JSONBody(middleware.DefaultBodyLimit))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusNotFound, respond.KindRouting, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, respond.KindRouting, "method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond.Text(w, http.StatusOK, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())

	svc := animals.NewService(opts.Store)
	animals.RegisterRoutes(r, svc, animals.Options{
		StrictNotFound: opts.StrictNotFound,
		Logger:         log,
	})

	publishDocs(log, opts.Version)
	apidocs.Mount(r, DocsPath)

	return r
}

// publishDocs genera el documento una vez por router. Un error aquí nunca
// tumba el proceso: se sirve el documento parcial (o vacío).
func publishDocs(log *slog.Logger, version string) {
	if version == "" {
		version = "1.0.0"
	}

	doc, errs := apidocs.Build(apidocs.Info{
		Title:       "Zoo Management",
		Version:     version,
		Description: "CRUD API for animal records",
	}, animals.DocDefinitions(), animals.DocRoutes())
	for _, err := range errs {
		log.Warn("api docs: route skipped", "err", err)
	}

	if err := apidocs.Publish(doc); err != nil {
		log.Error("api docs: publish failed, serving empty document", "err", err)
	}
}
