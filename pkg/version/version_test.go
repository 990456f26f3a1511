package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	assert.Equal(t, AppName+"/"+GitCommit, Full())
	assert.NotEmpty(t, GitCommit)
}

func TestShortRev(t *testing.T) {
	assert.Equal(t, "abcd1234", shortRev("abcd1234ef567890"))
	assert.Equal(t, "dev", shortRev("dev"))
}
