// Package apidocs arma la documentación Swagger 2.0 a partir de una tabla
// estática de rutas y la publica en el registro de swag para que
// http-swagger la sirva junto con Swagger UI.
//
// La tabla vive al lado de los handlers de cada módulo (ver animals.DocRoutes);
// aquí solo se transforma y se sirve.
package apidocs

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-openapi/spec"
)

const definitionsRef = "#/definitions/"

type Info struct {
	Title       string
	Version     string
	Description string
	BasePath    string
}

// Param describe un parámetro simple (path, query o header).
type Param struct {
	Name        string
	In          string // path | query | header
	Type        string // string por defecto
	Description string
	Required    bool
	Example     any
}

// Response describe una respuesta por status code.
// Schema es el nombre de una definición; Array la envuelve en un array;
// Text indica body text/plain.
type Response struct {
	Status      int
	Description string
	Schema      string
	Array       bool
	Text        bool
}

type Route struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Tags        []string

	Params    []Param
	Body      string // nombre de la definición del body JSON (opcional)
	Responses []Response
}

// Build genera el documento. Las rutas inválidas se saltan y se devuelven
// como errores; el documento resultante sigue siendo usable (parcial).
func Build(info Info, defs map[string]spec.Schema, routes []Route) (*spec.Swagger, []error) {
	basePath := info.BasePath
	if strings.TrimSpace(basePath) == "" {
		basePath = "/"
	}

	doc := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger:  "2.0",
			BasePath: basePath,
			Consumes: []string{"application/json"},
			Produces: []string{"application/json"},
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:       info.Title,
					Version:     info.Version,
					Description: info.Description,
				},
			},
			Paths:       &spec.Paths{Paths: map[string]spec.PathItem{}},
			Definitions: spec.Definitions{},
		},
	}

	for name, s := range defs {
		if strings.TrimSpace(name) == "" {
			continue
		}
		doc.Definitions[name] = s
	}

	var errs []error
	for _, rt := range routes {
		if err := addRoute(doc, rt); err != nil {
			errs = append(errs, err)
		}
	}

	return doc, errs
}

func addRoute(doc *spec.Swagger, rt Route) error {
	path := strings.TrimSpace(rt.Path)
	if path == "" || !strings.HasPrefix(path, "/") {
		return fmt.Errorf("apidocs: route %s %q: path must start with /", rt.Method, rt.Path)
	}
	if rt.Body != "" {
		if _, ok := doc.Definitions[rt.Body]; !ok {
			return fmt.Errorf("apidocs: route %s %s: unknown body definition %q", rt.Method, path, rt.Body)
		}
	}

	op := spec.NewOperation(operationID(rt)).
		WithSummary(rt.Summary).
		WithDescription(rt.Description).
		WithTags(rt.Tags...)

	for _, p := range rt.Params {
		param, err := toParameter(p)
		if err != nil {
			return fmt.Errorf("apidocs: route %s %s: %w", rt.Method, path, err)
		}
		op.AddParam(param)
	}

	if rt.Body != "" {
		op.WithConsumes("application/json")
		op.AddParam(spec.BodyParam("body", spec.RefSchema(definitionsRef+rt.Body)).AsRequired())
	}

	produces := map[string]struct{}{}
	for _, r := range rt.Responses {
		resp := spec.NewResponse().WithDescription(r.Description)
		switch {
		case r.Text:
			resp.WithSchema(spec.StringProperty())
			produces["text/plain"] = struct{}{}
		case r.Schema != "":
			s := spec.RefSchema(definitionsRef + r.Schema)
			if r.Array {
				s = spec.ArrayProperty(s)
			}
			resp.WithSchema(s)
			produces["application/json"] = struct{}{}
		}
		op.RespondsWith(r.Status, resp)
	}
	for _, mt := range []string{"application/json", "text/plain"} {
		if _, ok := produces[mt]; ok {
			op.Produces = append(op.Produces, mt)
		}
	}

	item := doc.Paths.Paths[path]
	var slot **spec.Operation
	switch strings.ToUpper(rt.Method) {
	case http.MethodGet:
		slot = &item.Get
	case http.MethodPost:
		slot = &item.Post
	case http.MethodPut:
		slot = &item.Put
	case http.MethodPatch:
		slot = &item.Patch
	case http.MethodDelete:
		slot = &item.Delete
	case http.MethodHead:
		slot = &item.Head
	case http.MethodOptions:
		slot = &item.Options
	default:
		return fmt.Errorf("apidocs: route %q %s: unsupported method", rt.Method, path)
	}
	if *slot != nil {
		return fmt.Errorf("apidocs: route %s %s declared twice", strings.ToUpper(rt.Method), path)
	}
	*slot = op
	doc.Paths.Paths[path] = item

	return nil
}

func toParameter(p Param) (*spec.Parameter, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("parameter without name")
	}

	var param *spec.Parameter
	switch p.In {
	case "path", "":
		param = spec.PathParam(p.Name)
	case "query":
		param = spec.QueryParam(p.Name)
	case "header":
		param = spec.HeaderParam(p.Name)
	default:
		return nil, fmt.Errorf("parameter %q: unsupported location %q", p.Name, p.In)
	}

	tpe := p.Type
	if tpe == "" {
		tpe = "string"
	}
	param.Typed(tpe, "").WithDescription(p.Description)
	if p.Required {
		param.AsRequired()
	}
	param.Example = p.Example

	return param, nil
}

func operationID(rt Route) string {
	if rt.ID != "" {
		return rt.ID
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(rt.Method))
	for _, part := range strings.Split(rt.Path, "/") {
		part = strings.Trim(part, "{}")
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
