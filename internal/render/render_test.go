package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainPassThrough(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Plain).Markdown(&buf, "# Title\n\n**bold**\n"))
	assert.Equal(t, "# Title\n\n**bold**\n", buf.String())
}

func TestEmptyStyleIsPlain(t *testing.T) {
	assert.Equal(t, Plain, New("").Style())
}

func TestNoColorForcesPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, Plain, New("dark").Style())
}

func TestStyledKeepsWords(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	require.NoError(t, New("notty").Markdown(&buf, "# Schedule\n\nRun the exercises in order.\n"))
	assert.Contains(t, buf.String(), "Schedule")
	assert.Contains(t, buf.String(), "exercises")
}
