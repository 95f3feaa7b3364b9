package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	assert.Equal(t, BuildInfo{Version: "dev", GitCommit: "unknown", BuildTime: "unknown"}, Info())
}

func TestBuildInfo_String(t *testing.T) {
	assert.Equal(t, "1.2.0 (a1b2c3d)", BuildInfo{Version: "1.2.0", GitCommit: "a1b2c3d"}.String())
}
