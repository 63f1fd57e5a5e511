package correrr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"corrector/pkg/correrr"
)

func TestIsMatchesKind(t *testing.T) {
	err := correrr.New(correrr.NotLoaded, "Correct", "no snapshot loaded")
	assert.True(t, correrr.Is(err, correrr.NotLoaded))
	assert.False(t, correrr.Is(err, correrr.InvalidArgument))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := correrr.Wrap(correrr.FileNotFound, "dictfile.Parse", cause)
	assert.True(t, correrr.Is(err, correrr.FileNotFound))
	assert.ErrorIs(t, err, cause)
}
