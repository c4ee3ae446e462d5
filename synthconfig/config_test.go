package synthconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/synthconfig"
)

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	cfg := synthconfig.Default()
	require.Equal(t, 1.0, cfg.AlphaState)
	require.Equal(t, 2.0, cfg.BetaSens)
	require.Equal(t, 0.5, cfg.GammaDetect)
	require.Equal(t, 1.0, cfg.LambdaMask)
	require.Equal(t, 0.05, cfg.MuCost)
	require.Equal(t, 64, cfg.MaxOps)
	require.Equal(t, 6, cfg.MaxOpsPerElement)
	require.Equal(t, 8, cfg.BeamWidth)
	require.Equal(t, 1.0, cfg.TargetCoverage)
	require.True(t, cfg.DeferDetectOnly)

	order, err := cfg.Order()
	require.NoError(t, err)
	require.Equal(t, marchtest.Any, order)
}

func TestOrderRejectsUnknownValue(t *testing.T) {
	cfg := synthconfig.Default()
	cfg.InitialOrder = "sideways"
	_, err := cfg.Order()
	require.ErrorIs(t, err, synthconfig.ErrInvalidOrder)
}

func TestOrderParsesUpAndDown(t *testing.T) {
	cfg := synthconfig.Default()
	cfg.InitialOrder = "up"
	order, err := cfg.Order()
	require.NoError(t, err)
	require.Equal(t, marchtest.Up, order)

	cfg.InitialOrder = "down"
	order, err = cfg.Order()
	require.NoError(t, err)
	require.Equal(t, marchtest.Down, order)
}

func TestLoadOverlaysPartialDocumentOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	doc := "beam_width: 16\ninitial_order: down\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := synthconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.BeamWidth)
	require.Equal(t, "down", cfg.InitialOrder)
	require.Equal(t, 1.0, cfg.AlphaState, "omitted fields keep the default")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := synthconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
