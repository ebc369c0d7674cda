package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Cleanup(func() { version, commit, buildDate = "dev", "unknown", "unknown" })

	Set("", "", "")
	assert.Equal(t, "dev", Version())
	assert.Equal(t, "unknown", Commit())

	Set("v0.3.1", "abc123", "2026-10-01")
	assert.Equal(t, "v0.3.1", Version())
	assert.Equal(t, "abc123", Commit())
	assert.Equal(t, "2026-10-01", BuildDate())
	assert.Equal(t, "zwr v0.3.1 (commit abc123, built 2026-10-01)", String())
}
