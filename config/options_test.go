package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/examconsolidate/examconsolidate/config"
)

func TestDefaultOptionsMatchesSpec(t *testing.T) {
	o := config.DefaultOptions()
	require.Equal(t, config.DefaultSizeThreshold, o.SizeThreshold)
	require.Equal(t, config.DefaultTimeLimitSeconds*time.Second, o.TimeLimit)
	require.NoError(t, o.Validate())
}

func TestFastModeForcesZeroThreshold(t *testing.T) {
	o := config.DefaultOptions().WithMode(config.ModeFast)
	require.Equal(t, 0, o.SizeThreshold)
}

func TestDeepModeRaisesThresholdAndTimeLimit(t *testing.T) {
	o := config.DefaultOptions().WithMode(config.ModeDeep)
	require.Equal(t, config.DeepSizeThreshold, o.SizeThreshold)
	require.Equal(t, config.DeepTimeLimitSeconds*time.Second, o.TimeLimit)
}

func TestValidateRejectsNonPositiveTimeLimit(t *testing.T) {
	o := config.DefaultOptions()
	o.TimeLimit = 0
	require.ErrorIs(t, o.Validate(), config.ErrNonPositiveTimeLimit)
}

func TestValidateRejectsNegativeSizeThreshold(t *testing.T) {
	o := config.DefaultOptions()
	o.SizeThreshold = -1
	require.ErrorIs(t, o.Validate(), config.ErrNegativeSizeThreshold)
}
