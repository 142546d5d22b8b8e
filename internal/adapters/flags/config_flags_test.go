package flags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFlags_IsEnabled(t *testing.T) {
	f := New(map[string]bool{
		"guidance": true,
		"legacy":   false,
	})

	ctx := context.Background()

	assert.True(t, f.IsEnabled(ctx, "guidance", false))
	assert.False(t, f.IsEnabled(ctx, "legacy", true))
	assert.True(t, f.IsEnabled(ctx, "unknown", true))
	assert.False(t, f.IsEnabled(ctx, "unknown", false))
}

func TestConfigFlags_NilMap(t *testing.T) {
	f := New(nil)

	assert.False(t, f.IsEnabled(context.Background(), "guidance", false))
	assert.Equal(t, "fallback", f.GetString(context.Background(), "variant", "fallback"))
}
