package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ToParams flattens the JSON form of v into query parameters. Null values and
// the omitted keys are left out; nested values are sent as JSON strings.
func ToParams(v any, omit ...string) (map[string]string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("params must be an object: %w", err)
	}
	for _, k := range omit {
		delete(fields, k)
	}

	params := make(map[string]string, len(fields))
	for k, value := range fields {
		switch val := value.(type) {
		case nil:
			continue
		case string:
			params[k] = val
		case json.Number:
			params[k] = val.String()
		case bool:
			params[k] = strconv.FormatBool(val)
		default:
			nested, err := json.Marshal(val)
			if err != nil {
				return nil, err
			}
			params[k] = string(nested)
		}
	}
	return params, nil
}

// JSONParam encodes v as a single JSON string parameter.
func JSONParam(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
