// ABOUTME: Tests for the environment and static feature flag managers
// ABOUTME: Flags default to disabled and honor overrides

package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DisabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, DemoVisualData))
	assert.False(t, manager.IsEnabled(ctx, BrandColorsEnabled))
}

func TestEnvManager_EnabledWhenFlagSet(t *testing.T) {
	os.Setenv("TEST_FEATURE_DEMO_VISUAL_DATA", "true")
	defer os.Unsetenv("TEST_FEATURE_DEMO_VISUAL_DATA")

	manager := NewEnvManager("TEST_FEATURE_")
	assert.True(t, manager.IsEnabled(context.Background(), DemoVisualData))
}

func TestEnvManager_ValueForms(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"false", "false", false},
		{"0", "0", false},
		{"empty", "", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")
			assert.Equal(t, tt.expected, manager.IsEnabled(context.Background(), "FLAG"))
		})
	}
}

func TestEnvManager_SetEnabledOverridesEnv(t *testing.T) {
	os.Setenv("TEST_FEATURE_RATE_LIMIT_ENABLED", "true")
	defer os.Unsetenv("TEST_FEATURE_RATE_LIMIT_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))

	manager.SetEnabled(RateLimitEnabled, false)
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(FactCheckEnabled, true)

	flags := manager.GetAllFlags()
	assert.Len(t, flags, 4)
	assert.True(t, flags[FactCheckEnabled])
	assert.False(t, flags[DemoVisualData])
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		DemoVisualData: true,
	})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, DemoVisualData))
	assert.False(t, manager.IsEnabled(ctx, FactCheckEnabled))

	manager.SetEnabled(FactCheckEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, FactCheckEnabled))

	flags := manager.GetAllFlags()
	assert.True(t, flags[DemoVisualData])
	assert.True(t, flags[FactCheckEnabled])
}

func TestStaticManager_NilMap(t *testing.T) {
	manager := NewStaticManager(nil)
	assert.False(t, manager.IsEnabled(context.Background(), DemoVisualData))
}
