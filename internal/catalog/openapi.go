package catalog

import "github.com/ddbb-bakery/pos/pkg/openapi"

type spec struct {
	List *openapi.Operation
	Find *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List products",
		Description: "Returns every product on sale, ordered by code",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Products",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: openapi.ArrayOf("Product")},
				},
			},
		},
	},
	Find: &openapi.Operation{
		Summary: "Get product",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("code", "", "Product code, e.g. salt_bread"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Product", "Product"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Product": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"code":  {Type: "string", Example: "croissant"},
				"name":  {Type: "string", Example: "오리지널크라상"},
				"price": {Type: "integer", Description: "Unit price in won", Example: 3200},
			},
			Required: []string{"code", "name", "price"},
		},
	}
}
