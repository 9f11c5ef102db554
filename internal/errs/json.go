package errs

import "encoding/json"

// jsonError is the machine-readable shape of one Error, adapted from
// the teacher's internal/errors/json_encoder.go Report shape.
type jsonError struct {
	Schema  string `json:"schema"`
	Code    string `json:"code"`
	Category string `json:"category"`
	Message string `json:"message"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// EncodeJSON renders errs as a deterministic JSON array for
// machine consumption (e.g. editor integrations, CI annotations).
func EncodeJSON(errors []Error) (string, error) {
	out := make([]jsonError, 0, len(errors))
	for _, e := range errors {
		category := ""
		if info, ok := Lookup(e.Code); ok {
			category = string(info.Category)
		}
		out = append(out, jsonError{
			Schema:   "vesper.resolve.error/v1",
			Code:     e.Code,
			Category: category,
			Message:  e.Message,
			File:     e.Pos.File,
			Line:     e.Pos.Line,
			Column:   e.Pos.Column,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
