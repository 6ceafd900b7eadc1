package animals

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"zoo-management/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	msgInvalidUpdates   = "invalid updates"
	msgInvalidJSON      = "invalid json"
	msgDeleted          = "Deleted successfully"
	msgServerNotRespond = "server not responding"
)

var errTrailingData = errors.New("unexpected data after json body")

// Options controla el comportamiento de los handlers.
type Options struct {
	// StrictNotFound: si es true, un id inexistente responde 404 y un id mal
	// formado 400. Si es false se mantiene la respuesta lenient:
	// GET => 200 null, DELETE => 200, PATCH => 500.
	StrictNotFound bool

	Logger *slog.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, opts Options) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r.Route("/animal", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc, log))
		ar.Get("/{id}", getAnimalHandler(svc, opts.StrictNotFound, log))
		ar.Patch("/{id}", updateAnimalHandler(svc, opts.StrictNotFound, log))
		ar.Delete("/{id}", deleteAnimalHandler(svc, opts.StrictNotFound, log))
	})

	r.Get("/animals", listAnimalsHandler(svc, log))
}

type animalResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Breed        string    `json:"breed"`
	FeedingHabit string    `json:"feedingHabit"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func createAnimalHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := decodeObject(r.Body)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, respond.KindValidation, msgInvalidJSON)
			return
		}

		in, err := decodeCreate(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, respond.KindValidation, err.Error())
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			// Validación y fallas de persistencia terminan en 400 en create.
			if !errors.Is(err, ErrInvalidInput) {
				log.Error("create animal failed", "err", err, "request_id", chimw.GetReqID(r.Context()))
			}
			respond.Error(w, http.StatusBadRequest, respond.KindValidation, err.Error())
			return
		}

		respond.JSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func updateAnimalHandler(svc *Service, strict bool, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Decodificamos a map para validar el set de keys contra el allow-list
		// antes de tocar el store.
		raw, err := decodeObject(r.Body)
		if err != nil && !errors.Is(err, io.EOF) {
			respond.Error(w, http.StatusBadRequest, respond.KindValidation, msgInvalidJSON)
			return
		}

		keys := make([]string, 0, len(raw))
		for k := range raw {
			keys = append(keys, k)
		}
		if !ValidUpdateKeys(keys) {
			respond.Error(w, http.StatusBadRequest, respond.KindInvalidUpdates, msgInvalidUpdates)
			return
		}

		in, err := decodeUpdate(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, respond.KindValidation, err.Error())
			return
		}

		id := chi.URLParam(r, "id")
		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, respond.KindValidation, err.Error())
				return
			}
			if strict && writeStrictError(w, err) {
				return
			}
			log.Error("update animal failed", "id", id, "err", err, "request_id", chimw.GetReqID(r.Context()))
			respond.Error(w, http.StatusInternalServerError, respond.KindStore, err.Error())
			return
		}

		respond.JSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func listAnimalsHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list animals failed", "err", err, "request_id", chimw.GetReqID(r.Context()))
			respond.Error(w, http.StatusInternalServerError, respond.KindStore, msgServerNotRespond)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		respond.JSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service, strict bool, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if strict && writeStrictError(w, err) {
				return
			}
			if errors.Is(err, ErrNotFound) {
				// Ausente no es error: 200 con body null.
				respond.JSON(w, http.StatusOK, nil)
				return
			}
			log.Error("get animal failed", "id", id, "err", err, "request_id", chimw.GetReqID(r.Context()))
			respond.Error(w, http.StatusInternalServerError, respond.KindStore, err.Error())
			return
		}

		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func deleteAnimalHandler(svc *Service, strict bool, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := svc.Delete(r.Context(), id)
		if err != nil {
			if strict && writeStrictError(w, err) {
				return
			}
			if !errors.Is(err, ErrNotFound) {
				log.Error("delete animal failed", "id", id, "err", err, "request_id", chimw.GetReqID(r.Context()))
				respond.Error(w, http.StatusInternalServerError, respond.KindStore, err.Error())
				return
			}
		}

		respond.Text(w, http.StatusOK, msgDeleted)
	}
}

// writeStrictError responde 404/400 para not found / id inválido.
// Devuelve false si el error no es de esos tipos.
func writeStrictError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, respond.KindNotFound, err.Error())
	case errors.Is(err, ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, respond.KindValidation, err.Error())
	default:
		return false
	}
	return true
}

// decodeObject lee exactamente un objeto JSON. Las keys se comparan tal cual
// (sin el match case-insensitive de los structs) y cualquier dato después del
// objeto es error. Un body vacío devuelve io.EOF.
func decodeObject(body io.Reader) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return raw, nil
}

// decodeCreate toma solo las keys exactas del modelo; el resto se ignora.
func decodeCreate(raw map[string]json.RawMessage) (CreateInput, error) {
	var in CreateInput
	targets := map[string]*string{
		FieldName:         &in.Name,
		FieldBreed:        &in.Breed,
		FieldFeedingHabit: &in.FeedingHabit,
	}
	for k, dst := range targets {
		v, ok := raw[k]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return CreateInput{}, fmt.Errorf("%s must be a string", k)
		}
	}
	return in, nil
}

func decodeUpdate(raw map[string]json.RawMessage) (UpdateInput, error) {
	var in UpdateInput
	targets := map[string]**string{
		FieldName:         &in.Name,
		FieldBreed:        &in.Breed,
		FieldFeedingHabit: &in.FeedingHabit,
	}
	for k, v := range raw {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil || s == nil {
			return UpdateInput{}, fmt.Errorf("%s must be a string", k)
		}
		*targets[k] = s
	}
	return in, nil
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:           a.ID,
		Name:         a.Name,
		Breed:        a.Breed,
		FeedingHabit: a.FeedingHabit,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
