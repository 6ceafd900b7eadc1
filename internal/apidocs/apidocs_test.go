package apidocs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefs() map[string]spec.Schema {
	thing := new(spec.Schema).Typed("object", "").
		SetProperty("name", *spec.StringProperty()).
		WithRequired("name")
	return map[string]spec.Schema{"Thing": *thing}
}

func TestBuild_RendersRoutes(t *testing.T) {
	doc, errs := Build(Info{Title: "Test", Version: "1"}, testDefs(), []Route{
		{
			Method: http.MethodGet,
			Path:   "/things/{id}",
			Params: []Param{{Name: "id", In: "path", Required: true, Example: "abc"}},
			Responses: []Response{
				{Status: http.StatusOK, Description: "ok", Schema: "Thing"},
			},
		},
		{
			Method:    http.MethodGet,
			Path:      "/things",
			Responses: []Response{{Status: http.StatusOK, Description: "ok", Schema: "Thing", Array: true}},
		},
		{
			Method:    http.MethodPost,
			Path:      "/things",
			Body:      "Thing",
			Responses: []Response{{Status: http.StatusCreated, Description: "created", Text: true}},
		},
	})
	require.Empty(t, errs)

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/", doc.BasePath)
	require.Contains(t, doc.Paths.Paths, "/things/{id}")

	get := doc.Paths.Paths["/things/{id}"].Get
	require.NotNil(t, get)
	assert.Equal(t, "getThingsId", get.ID)
	require.Len(t, get.Parameters, 1)
	assert.Equal(t, "path", get.Parameters[0].In)
	assert.Equal(t, "string", get.Parameters[0].Type)
	assert.True(t, get.Parameters[0].Required)

	list := doc.Paths.Paths["/things"].Get
	require.NotNil(t, list)
	assert.True(t, list.Responses.StatusCodeResponses[http.StatusOK].Schema.Type.Contains("array"))

	post := doc.Paths.Paths["/things"].Post
	require.NotNil(t, post)
	require.Len(t, post.Parameters, 1)
	assert.Equal(t, "body", post.Parameters[0].In)
	assert.Equal(t, []string{"text/plain"}, post.Produces)
}

func TestBuild_SkipsInvalidRoutes(t *testing.T) {
	doc, errs := Build(Info{Title: "Test"}, testDefs(), []Route{
		{Method: http.MethodGet, Path: "/ok"},
		{Method: http.MethodGet, Path: ""},
		{Method: "TRACE", Path: "/trace"},
		{Method: http.MethodPost, Path: "/ghost", Body: "Missing"},
		{Method: http.MethodGet, Path: "/ok"},
		{Method: http.MethodGet, Path: "/bad-param", Params: []Param{{Name: "x", In: "cookie"}}},
	})

	assert.Len(t, errs, 5)
	assert.Contains(t, doc.Paths.Paths, "/ok")
	assert.NotContains(t, doc.Paths.Paths, "/trace")
	assert.NotContains(t, doc.Paths.Paths, "/ghost")
	assert.NotContains(t, doc.Paths.Paths, "/bad-param")
}

func TestPublish_AndServe(t *testing.T) {
	doc, errs := Build(Info{Title: "Served", Version: "9"}, testDefs(), []Route{
		{Method: http.MethodGet, Path: "/things", Responses: []Response{{Status: 200, Description: "ok"}}},
	})
	require.Empty(t, errs)
	require.NoError(t, Publish(doc))

	r := chi.NewRouter()
	Mount(r, "docs/")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/docs/index.html", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Served", got.Info.Title)
}

func TestPublish_NilDocumentIsEmpty(t *testing.T) {
	require.NoError(t, Publish(nil))
	assert.Equal(t, "{}", Current())
}
