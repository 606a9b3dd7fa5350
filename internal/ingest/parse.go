package ingest

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

// batchSchema guards the shape of an uploaded document: a JSON array whose
// elements are objects. Field-level validation happens per record afterwards
// so one bad record never fails the whole batch.
const batchSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {"type": "object"}
}`

// ParseBatch parses uploaded file contents into raw candidate records.
// A document that is not well-formed JSON yields *ErrBatchParse; well-formed
// JSON whose root is not an array of objects yields *ErrBatchShape. Both are
// whole-batch failures.
func ParseBatch(data []byte) ([]json.RawMessage, error) {
	if !json.Valid(data) {
		return nil, &ErrBatchParse{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(batchSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &ErrBatchParse{Cause: err}
	}
	if !result.Valid() {
		detail := ""
		if errs := result.Errors(); len(errs) > 0 {
			detail = errs[0].Description()
		}
		return nil, &ErrBatchShape{Detail: detail}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ErrBatchParse{Cause: err}
	}
	return records, nil
}
