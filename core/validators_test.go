package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keywords struct {
	Style string `json:"style" validate:"required,datekw"`
	Other string `json:"-" validate:"omitempty,datekw"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         keywords
		wantFields []FieldError
	}{
		{name: "valid", in: keywords{Style: "2-digit", Other: "narrow"}},
		{name: "missing", in: keywords{}, wantFields: []FieldError{{Field: "style", Error: "this field is required"}}},
		{
			name:       "bad keyword",
			in:         keywords{Style: "medium"},
			wantFields: []FieldError{{Field: "style", Error: "style must be one of numeric, 2-digit, long, short or narrow"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			vErr, ok := AsValidationError(errors.Wrap(err, "wrapped"))
			require.True(t, ok, "err = %v", err)
			assert.Equal(t, tt.wantFields, vErr.Fields)
		})
	}
}

func TestFindTranslator(t *testing.T) {
	tests := []struct {
		locales []string
		want    string
	}{
		{locales: []string{"fr"}, want: "fr"},
		{locales: []string{"fr-CD"}, want: "fr_CD"},
		{locales: []string{" en_GB "}, want: "en_GB"},
		{locales: []string{"xx", "en-US"}, want: "en_US"},
		{locales: []string{"xx"}, want: DefaultLocale},
		{want: DefaultLocale},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FindTranslator(tt.locales...).Locale(), "%v", tt.locales)
	}

	assert.True(t, HasLocale("fr-CD"))
	assert.False(t, HasLocale("ln_CD"))
}
