package common

import (
	"encoding/json"
	"fmt"
)

type StatusAPIResponse struct {
	Success bool        `json:"success"`
	ID      *int        `json:"id,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// ErrorMessage renders the error field, which the script sends either as a
// string or as an object.
func (r StatusAPIResponse) ErrorMessage() string {
	switch v := r.Error.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "unknown server error"
		}
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
