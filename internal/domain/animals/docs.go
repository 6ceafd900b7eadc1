package animals

import (
	"net/http"

	"zoo-management/internal/apidocs"

	"github.com/go-openapi/spec"
)

// Nombres de las definiciones en el documento Swagger.
const (
	DefAnimal        = "Animal"
	DefAnimalInput   = "AnimalInput"
	DefAnimalUpdate  = "AnimalUpdate"
	DefErrorResponse = "ErrorResponse"
)

const exampleID = "3f2c8d4e-1a7b-4c55-9d0e-6b8f1e2a7c90"

// DocDefinitions describe los shapes que viajan por la API.
func DocDefinitions() map[string]spec.Schema {
	fields := func(s *spec.Schema) *spec.Schema {
		return s.
			SetProperty(FieldName, *spec.StringProperty().WithDescription("name of the animal").WithExample("Oreo")).
			SetProperty(FieldBreed, *spec.StringProperty().WithDescription("breed of animal").WithExample("Dog")).
			SetProperty(FieldFeedingHabit, *spec.StringProperty().WithDescription("type of feeding habit").WithExample("Herbivorous"))
	}

	animal := fields(new(spec.Schema).Typed("object", "")).
		SetProperty("id", *spec.StringProperty().WithDescription("identifier assigned on creation").WithExample(exampleID)).
		SetProperty("createdAt", *spec.DateTimeProperty()).
		SetProperty("updatedAt", *spec.DateTimeProperty()).
		WithRequired("id", FieldName, FieldBreed, FieldFeedingHabit)

	input := fields(new(spec.Schema).Typed("object", "")).
		WithRequired(FieldName, FieldBreed, FieldFeedingHabit)

	update := fields(new(spec.Schema).Typed("object", "")).
		WithDescription("any subset of name, breed and feedingHabit; other keys are rejected")

	errResp := new(spec.Schema).Typed("object", "").
		SetProperty("error", *spec.StringProperty().WithExample(msgInvalidUpdates)).
		SetProperty("kind", *spec.StringProperty().WithEnum("validation", "invalid_updates", "not_found", "store", "routing")).
		WithRequired("error", "kind")

	return map[string]spec.Schema{
		DefAnimal:        *animal,
		DefAnimalInput:   *input,
		DefAnimalUpdate:  *update,
		DefErrorResponse: *errResp,
	}
}

// DocRoutes es la tabla de metadata de las rutas registradas en RegisterRoutes.
func DocRoutes() []apidocs.Route {
	idParam := apidocs.Param{
		Name:        "id",
		In:          "path",
		Description: "id of animal",
		Required:    true,
		Example:     exampleID,
	}
	tags := []string{"animals"}

	return []apidocs.Route{
		{
			ID:          "createAnimal",
			Method:      http.MethodPost,
			Path:        "/animal",
			Summary:     "create animal",
			Description: "enter new animal",
			Tags:        tags,
			Body:        DefAnimalInput,
			Responses: []apidocs.Response{
				{Status: http.StatusCreated, Description: "created", Schema: DefAnimal},
				{Status: http.StatusBadRequest, Description: "invalid body or persistence error", Schema: DefErrorResponse},
			},
		},
		{
			ID:          "updateAnimal",
			Method:      http.MethodPatch,
			Path:        "/animal/{id}",
			Summary:     "update animal",
			Description: "update name, breed and/or feedingHabit of an animal",
			Tags:        tags,
			Params:      []apidocs.Param{idParam},
			Body:        DefAnimalUpdate,
			Responses: []apidocs.Response{
				{Status: http.StatusCreated, Description: "updated", Schema: DefAnimal},
				{Status: http.StatusBadRequest, Description: "invalid updates", Schema: DefErrorResponse},
				{Status: http.StatusInternalServerError, Description: "fetch or save failed", Schema: DefErrorResponse},
			},
		},
		{
			ID:          "listAnimals",
			Method:      http.MethodGet,
			Path:        "/animals",
			Summary:     "get all animals",
			Description: "list of animals",
			Tags:        tags,
			Responses: []apidocs.Response{
				{Status: http.StatusOK, Description: "success", Schema: DefAnimal, Array: true},
				{Status: http.StatusInternalServerError, Description: "failure", Schema: DefErrorResponse},
			},
		},
		{
			ID:          "getAnimal",
			Method:      http.MethodGet,
			Path:        "/animal/{id}",
			Summary:     "get animal",
			Description: "animal by id; null when it does not exist",
			Tags:        tags,
			Params:      []apidocs.Param{idParam},
			Responses: []apidocs.Response{
				{Status: http.StatusOK, Description: "success", Schema: DefAnimal},
				{Status: http.StatusInternalServerError, Description: "failure", Schema: DefErrorResponse},
			},
		},
		{
			ID:          "deleteAnimal",
			Method:      http.MethodDelete,
			Path:        "/animal/{id}",
			Summary:     "delete animal",
			Description: "delete animal; succeeds even if the id does not exist",
			Tags:        tags,
			Params:      []apidocs.Param{idParam},
			Responses: []apidocs.Response{
				{Status: http.StatusOK, Description: "success", Text: true},
				{Status: http.StatusInternalServerError, Description: "failure", Schema: DefErrorResponse},
			},
		},
	}
}
