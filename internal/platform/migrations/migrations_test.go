package migrations

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UnknownDirection(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := Run(logger, "postgres://localhost/none", "file://migrations", Direction("sideways"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration direction")
}
