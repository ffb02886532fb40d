package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/siteforge"
	"github.com/fwojciec/siteforge/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_RejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	gen := gemini.NewGenerator(nil)
	_, err := gen.Generate(context.Background(), "  ", siteforge.GenerateOptions{})

	require.Error(t, err)
	assert.Equal(t, siteforge.EINVALID, siteforge.ErrorCode(err))
}
