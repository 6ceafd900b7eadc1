package animals

import "time"

// Animal es el único registro que maneja el servicio.
// name, breed y feedingHabit siempre se guardan recortados y no vacíos.
type Animal struct {
	ID string

	Name         string
	Breed        string
	FeedingHabit string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Campos que un PATCH puede tocar (nombres tal cual viajan en JSON).
const (
	FieldName         = "name"
	FieldBreed        = "breed"
	FieldFeedingHabit = "feedingHabit"
)

var allowedUpdates = []string{FieldName, FieldBreed, FieldFeedingHabit}

// AllowedUpdates devuelve una copia del allow-list de update.
func AllowedUpdates() []string {
	out := make([]string, len(allowedUpdates))
	copy(out, allowedUpdates)
	return out
}

// ValidUpdateKeys indica si todas las keys pertenecen al allow-list.
// El orden no importa y un set vacío es válido (save sin cambios).
func ValidUpdateKeys(keys []string) bool {
	for _, k := range keys {
		ok := false
		for _, a := range allowedUpdates {
			if k == a {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
