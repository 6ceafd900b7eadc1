// Package respond centraliza el contrato de respuesta HTTP del servicio:
// JSON para datos, JSON {error, kind} para cualquier error y texto plano
// para las confirmaciones.
package respond

import (
	"encoding/json"
	"net/http"
)

// Kind clasifica un error para el cliente.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindInvalidUpdates Kind = "invalid_updates"
	KindNotFound       Kind = "not_found"
	KindStore          Kind = "store"
	KindRouting        Kind = "routing"
)

// ErrorResponse es el único shape de error que devuelve la API.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid updates"`
	Kind  Kind   `json:"kind" example:"invalid_updates"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, kind Kind, msg string) {
	JSON(w, status, ErrorResponse{Error: msg, Kind: kind})
}

func Text(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
