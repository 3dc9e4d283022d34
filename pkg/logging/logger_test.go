package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/confyg/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("document", "models.yaml").Msg("reconciled")

	out := buf.String()
	assert.Contains(t, out, `"document":"models.yaml"`)
	assert.Contains(t, out, `"message":"reconciled"`)
}

func TestTestLoggerCapturesOutput(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Debug().Str("section", "model").Msg("merging")

	assert.True(t, tl.Contains("merging"))
	assert.Len(t, tl.Lines(), 1)
}

func TestContextRoundTrip(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithSection(ctx, "model")

	logging.FromContext(ctx).Info().Msg("hello")

	assert.True(t, tl.Contains("hello"))
	assert.True(t, tl.Contains("model"))
}
