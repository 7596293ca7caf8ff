package sales

import "github.com/ddbb-bakery/pos/pkg/openapi"

type spec struct {
	Checkout *openapi.Operation
	List     *openapi.Operation
	Find     *openapi.Operation
}

var Spec = spec{
	Checkout: &openapi.Operation{
		Summary:     "Check out",
		Description: "Records the session cart as a sale and removes the paid items from it",
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Recorded sale", "Sale"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List sales",
		Description: "Returns a page of sales, newest first",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)"),
			openapi.QueryParam("page_size", "integer", "Results per page"),
			openapi.QueryParam("session", "string", "Filter by session UUID"),
			openapi.QueryParam("since", "string", "Created at or after (RFC 3339 or YYYY-MM-DD)"),
			openapi.QueryParam("before", "string", "Created before (RFC 3339 or YYYY-MM-DD)"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of sales", "SalePageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get sale",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "uuid", "Sale UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Sale", "Sale"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Sale": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":         {Type: "string", Format: "uuid"},
				"session_id": {Type: "string", Format: "uuid"},
				"lines":      {Type: "array", Items: openapi.SchemaRef("CartLine")},
				"count":      {Type: "integer"},
				"total":      {Type: "integer", Description: "Total price in won"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"SalePageResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"data":        {Type: "array", Items: openapi.SchemaRef("Sale")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
