package cart

import "github.com/ddbb-bakery/pos/pkg/openapi"

type spec struct {
	Get           *openapi.Operation
	Reset         *openapi.Operation
	AddItem       *openapi.Operation
	AddDetections *openapi.Operation
}

var Spec = spec{
	Get: &openapi.Operation{
		Summary:     "Get cart",
		Description: "Returns the cart bound to the session cookie, creating the session if needed",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Cart summary", "CartSummary"),
		},
	},
	Reset: &openapi.Operation{
		Summary: "Empty cart",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Empty cart summary", "CartSummary"),
		},
	},
	AddItem: &openapi.Operation{
		Summary:     "Add item",
		Description: "Adds quantity units of a product. Quantity must be positive",
		RequestBody: openapi.RequestBodyJSON("AddItemCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated cart summary", "CartSummary"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	AddDetections: &openapi.Operation{
		Summary:     "Add detections",
		Description: "Adds one unit per detection at or above the confidence threshold",
		RequestBody: openapi.RequestBodyJSON("AddDetectionsCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Accepted and rejected counts", "DetectionsResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"CartLine": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"code":       {Type: "string"},
				"name":       {Type: "string"},
				"unit_price": {Type: "integer"},
				"quantity":   {Type: "integer"},
				"subtotal":   {Type: "integer"},
			},
		},
		"CartSummary": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"lines": {Type: "array", Items: openapi.SchemaRef("CartLine")},
				"count": {Type: "integer", Description: "Total units"},
				"total": {Type: "integer", Description: "Total price in won"},
			},
		},
		"AddItemCommand": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"code":     {Type: "string", Example: "salt_bread"},
				"quantity": {Type: "integer", Example: 1},
			},
			Required: []string{"code", "quantity"},
		},
		"Detection": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"label":      {Type: "string", Example: "cookie"},
				"confidence": {Type: "number", Format: "double", Example: 0.91},
			},
			Required: []string{"label", "confidence"},
		},
		"AddDetectionsCommand": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"detections": {Type: "array", Items: openapi.SchemaRef("Detection")},
			},
			Required: []string{"detections"},
		},
		"DetectionsResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"accepted": {Type: "integer"},
				"rejected": {Type: "integer"},
				"cart":     {Ref: "#/components/schemas/CartSummary"},
			},
		},
	}
}
