package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposerAutoHoldsConjunct(t *testing.T) {
	c := NewComposer(ComposeAuto)

	assert.Empty(t, c.Feed([]rune("क")))
	assert.Empty(t, c.Feed([]rune("्")))
	assert.True(t, c.Composing())
	assert.Empty(t, c.Feed([]rune("ष")))
	assert.Equal(t, "क्ष", c.Pending())

	got := c.Feed([]rune("म"))
	assert.Equal(t, []string{"क्ष"}, got)
	assert.Equal(t, "म", c.Pending())

	assert.Equal(t, []string{"म"}, c.Flush())
	assert.False(t, c.Composing())
	assert.Nil(t, c.Flush())
}

func TestComposerAutoHoldsMatra(t *testing.T) {
	c := NewComposer(ComposeAuto)
	assert.Empty(t, c.Feed([]rune("क")))
	assert.Empty(t, c.Feed([]rune("ि")))
	assert.Equal(t, []string{"कि"}, c.Feed([]rune("त")))
}

func TestComposerAutoMultiRuneFeed(t *testing.T) {
	c := NewComposer(ComposeAuto)
	got := c.Feed([]rune("नमस्ते"))
	assert.Equal(t, []string{"न", "म"}, got)
	assert.Equal(t, "स्ते", c.Pending())
}

func TestComposerDirectCommitsImmediately(t *testing.T) {
	c := NewComposer(ComposeDirect)
	assert.Equal(t, []string{"क"}, c.Feed([]rune("क")))
	assert.Equal(t, []string{"्"}, c.Feed([]rune("्")))
	assert.False(t, c.Composing())
}

func TestComposerBackspace(t *testing.T) {
	c := NewComposer(ComposeAuto)
	assert.False(t, c.Backspace())

	c.Feed([]rune("क्"))
	require.True(t, c.Backspace())
	assert.Equal(t, "क", c.Pending())
	require.True(t, c.Backspace())
	assert.False(t, c.Composing())
	assert.False(t, c.Backspace())
}

func TestComposerReset(t *testing.T) {
	c := NewComposer(ComposeAuto)
	c.Feed([]rune("क"))
	c.Reset()
	assert.False(t, c.Composing())
}

func TestParseComposeMode(t *testing.T) {
	mode, err := ParseComposeMode("Direct")
	require.NoError(t, err)
	assert.Equal(t, ComposeDirect, mode)

	mode, err = ParseComposeMode("")
	require.NoError(t, err)
	assert.Equal(t, ComposeAuto, mode)

	_, err = ParseComposeMode("ime")
	assert.Error(t, err)
}

func TestUnknownComposeModeDefaultsToAuto(t *testing.T) {
	assert.Equal(t, ComposeAuto, NewComposer("other").Mode())
}
