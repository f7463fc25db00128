package validation_test

import (
	"testing"

	"github.com/devconnect/backend/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() []validation.Rule
		assert  func(t *testing.T, errs []validation.FieldError)
	}{
		{
			name: "Should pass when every field is present",
			arrange: func() []validation.Rule {
				return []validation.Rule{
					validation.Required("status", "Developer", "Status is required"),
					validation.Required("skills", "go,sql", "Skills is required"),
				}
			},
			assert: func(t *testing.T, errs []validation.FieldError) {
				assert.Nil(t, errs)
			},
		},
		{
			name: "Missing field is reported with its message",
			arrange: func() []validation.Rule {
				return []validation.Rule{
					validation.Required("status", "", "Status is required"),
				}
			},
			assert: func(t *testing.T, errs []validation.FieldError) {
				assert.Len(t, errs, 1)
				assert.Equal(t, "status", errs[0].Field)
				assert.Equal(t, "Status is required", errs[0].Message)
			},
		},
		{
			name: "Whitespace-only value fails Required",
			arrange: func() []validation.Rule {
				return []validation.Rule{
					validation.Required("from", "   ", "From date is required"),
				}
			},
			assert: func(t *testing.T, errs []validation.FieldError) {
				assert.Len(t, errs, 1)
				assert.Equal(t, "from", errs[0].Field)
			},
		},
		{
			name: "All failing fields are reported, not just the first",
			arrange: func() []validation.Rule {
				return []validation.Rule{
					validation.Required("title", "", "Title is required"),
					validation.Required("company", "Acme", "Company is required"),
					validation.Required("from", "", "From date is required"),
				}
			},
			assert: func(t *testing.T, errs []validation.FieldError) {
				assert.Len(t, errs, 2)
				assert.Equal(t, "title", errs[0].Field)
				assert.Equal(t, "from", errs[1].Field)
			},
		},
		{
			name: "MinLength rejects short passwords",
			arrange: func() []validation.Rule {
				return []validation.Rule{
					validation.MinLength("password", "abc", 6, "Please enter a password with 6 or more characters"),
				}
			},
			assert: func(t *testing.T, errs []validation.FieldError) {
				assert.Len(t, errs, 1)
				assert.Equal(t, "password", errs[0].Field)
			},
		},
		{
			name: "MinLength counts runes, not bytes",
			arrange: func() []validation.Rule {
				return []validation.Rule{
					validation.MinLength("password", "pässwörd", 6, "too short"),
				}
			},
			assert: func(t *testing.T, errs []validation.FieldError) {
				assert.Nil(t, errs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, validation.Check(tt.arrange()...))
		})
	}
}
