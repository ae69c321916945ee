package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	RawText *string `json:"raw_text" validate:"required"`
	Format  string  `json:"format" validate:"omitempty,oneof=plain markdown html"`
}

func TestValidate(t *testing.T) {
	cv := New()
	text := ""

	assert.NoError(t, cv.Validate(&sample{RawText: &text}))
	assert.NoError(t, cv.Validate(&sample{RawText: &text, Format: "html"}))

	err := cv.Validate(&sample{Format: "pdf"})
	require.Error(t, err)
	assert.Equal(t, "raw_text is required; format must be one of [plain markdown html]", Describe(err))
}

func TestDescribePlainError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
