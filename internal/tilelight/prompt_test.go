package tilelight

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptIntRetries(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("abc\n0\n 4 \n"), &out)
	n, err := p.Int("Samples: ", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 3, strings.Count(out.String(), "Samples: "))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid value"))
}

func TestPromptFloat(t *testing.T) {
	p := NewPrompt(strings.NewReader("-1\nNaN\n0.75\n"), &bytes.Buffer{})
	v, err := p.Float("Intensity: ", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)
}

func TestPromptGivesUp(t *testing.T) {
	p := NewPrompt(strings.NewReader("x\ny\nz\n5\n"), &bytes.Buffer{})
	_, err := p.Int("n: ", 1)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPromptClosedInput(t *testing.T) {
	p := NewPrompt(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Float("n: ", 0)
	assert.ErrorIs(t, err, ErrNoInput)
}
