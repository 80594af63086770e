package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "scss-lite version 0.0.0-dev (dev) built unknown", VersionString())
}
