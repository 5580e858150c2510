package gemini

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/genai"

	"github.com/ironsheep/roku-tools/internal/tools"
)

// Declarations converts the registered tools into Gemini function declarations.
func Declarations(reg *tools.Registry) []*genai.Tool {
	list := reg.List()
	decls := make([]*genai.FunctionDeclaration, 0, len(list))
	for _, t := range list {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        string(t.Name),
			Description: t.Description,
			Parameters:  convertSchema(t.Schema),
		})
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

func convertSchema(schema *jsonschema.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}

	gs := genai.Schema{
		Format:      schema.Format,
		Description: schema.Description,
		Items:       convertSchema(schema.Items),
		Required:    schema.Required,
	}
	for _, v := range schema.Enum {
		gs.Enum = append(gs.Enum, fmt.Sprintf("%v", v))
	}

	if n := len(schema.Properties); n > 0 {
		gs.Properties = make(map[string]*genai.Schema, n)
		for k, prop := range schema.Properties {
			gs.Properties[k] = convertSchema(prop)
		}
	}

	typ := schema.Type
	if typ == "" {
		// Nullable fields carry ["null", T].
		for _, t := range schema.Types {
			if t != "null" {
				typ = t
				gs.Nullable = genai.Ptr(true)
			}
		}
	}
	switch typ {
	case "object":
		gs.Type = genai.TypeObject
	case "array":
		gs.Type = genai.TypeArray
	case "string":
		gs.Type = genai.TypeString
	case "number":
		gs.Type = genai.TypeNumber
	case "integer":
		gs.Type = genai.TypeInteger
	case "boolean":
		gs.Type = genai.TypeBoolean
	}
	return &gs
}
