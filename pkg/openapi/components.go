package openapi

// NewComponents returns the components every API shares: the error body
// and the standard error responses that reference it.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Property{
					"error": {Type: "string", Description: "Error message"},
				},
				Required: []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": errorResponse("Invalid request"),
			"NotFound":   errorResponse("Resource not found"),
			"Conflict":   errorResponse("Resource conflict"),
		},
	}
}

// AddSchemas merges schemas into the component set, replacing existing names.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

func errorResponse(description string) *Response {
	return ResponseJSON(description, "Error")
}
