package animals

import (
	"net/http"
	"testing"

	"zoo-management/internal/apidocs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocRoutes_BuildWithoutErrors(t *testing.T) {
	doc, errs := apidocs.Build(apidocs.Info{Title: "Zoo", Version: "test"}, DocDefinitions(), DocRoutes())
	require.Empty(t, errs)

	item, ok := doc.Paths.Paths["/animal/{id}"]
	require.True(t, ok)
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Patch)
	assert.NotNil(t, item.Delete)

	assert.Contains(t, item.Patch.Responses.StatusCodeResponses, http.StatusCreated)
	assert.Contains(t, item.Patch.Responses.StatusCodeResponses, http.StatusBadRequest)
}

func TestDocRoutes_MatchRegisteredRoutes(t *testing.T) {
	declared := map[string]bool{}
	for _, r := range DocRoutes() {
		declared[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"POST /animal",
		"PATCH /animal/{id}",
		"GET /animals",
		"GET /animal/{id}",
		"DELETE /animal/{id}",
	} {
		assert.True(t, declared[want], "missing doc route %s", want)
	}
	assert.Len(t, declared, 5)
}

func TestDocDefinitions_AnimalRequiresFields(t *testing.T) {
	defs := DocDefinitions()

	animal, ok := defs[DefAnimal]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"id", FieldName, FieldBreed, FieldFeedingHabit}, animal.Required)
	assert.Equal(t, "Oreo", animal.Properties[FieldName].Example)
}
