package imagegen

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/unicode/norm"
)

const productRequestSchema = `{
  "type": "object",
  "required": ["name", "description"],
  "properties": {
    "name": {"type": "string"},
    "description": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

// productSchemaID is absolute so error messages do not depend on the working
// directory.
const productSchemaID = "https://productimage.local/schema/product_request.json"

var productSchema = jsonschema.MustCompileString(productSchemaID, productRequestSchema)

// ParseProductRequest decodes a JSON body into a ProductRequest. Unknown keys
// are ignored; a missing or mistyped name/description yields a KindValidation
// error.
func ParseProductRequest(body io.Reader) (ProductRequest, error) {
	raw, err := decodeJSON(body)
	if err != nil {
		return ProductRequest{}, validationError("invalid request body", err)
	}
	return ProductRequestFromValue(raw)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty body")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// ProductRequestFromValue builds a ProductRequest from an already parsed JSON
// value.
func ProductRequestFromValue(raw any) (ProductRequest, error) {
	if err := productSchema.Validate(raw); err != nil {
		return ProductRequest{}, validationError("invalid product request", err)
	}

	var req ProductRequest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &req,
		TagName: "mapstructure",
	})
	if err != nil {
		return ProductRequest{}, unexpectedError("build decoder", err)
	}
	if err := dec.Decode(raw); err != nil {
		return ProductRequest{}, validationError("invalid product request", err)
	}

	req.Name = norm.NFC.String(req.Name)
	if req.Description == nil {
		req.Description = []string{}
	}
	for i, part := range req.Description {
		req.Description[i] = norm.NFC.String(part)
	}
	return req, nil
}
