package common

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestDateOnly(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"date", `"2024-06-03"`, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), false},
		{"empty", `""`, time.Time{}, false},
		{"timestamp", `"2024-06-03T10:00:00Z"`, time.Time{}, true},
		{"number", `20240603`, time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateOnly
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time))
		})
	}

	b, err := json.Marshal(DateOnly{time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-09"`, string(b))
}

type loginDTO struct {
	Username string `json:"username" binding:"required"`
	Hours    int    `json:"ore" binding:"min=1"`
}

func TestFormatBindingError(t *testing.T) {
	err := binding.Validator.ValidateStruct(&loginDTO{})
	require.Error(t, err)
	msg := FormatBindingError(err, nil)
	assert.Contains(t, msg, "Field 'username' is required")
	assert.Contains(t, msg, "Field 'ore' must be at least 1")

	it := FormatBindingError(err, message.NewPrinter(language.Italian))
	assert.Contains(t, it, "Il campo 'username' è obbligatorio")
	assert.Contains(t, it, "Il campo 'ore' deve essere almeno 1")

	var target struct {
		Hours int `json:"ore"`
	}
	err = json.Unmarshal([]byte(`{"ore":"eight"}`), &target)
	assert.Equal(t, "Field 'ore' should be of type int", FormatBindingError(err, nil))
	assert.Equal(t, "", FormatBindingError(nil, nil))

	var empty loginDTO
	err = json.NewDecoder(strings.NewReader("")).Decode(&empty)
	assert.Equal(t, "Request body is empty", FormatBindingError(err, nil))
}
