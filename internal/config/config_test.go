package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsAreSane(t *testing.T) {
	cfg := Default()
	require.Equal(t, "terminal", cfg.DefaultFormatter)
	require.Equal(t, "semantic", cfg.ClassStyle)
	require.NotEmpty(t, cfg.ContainerClass)
}

func TestLoadWithMissingExplicitFileErrors(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	_ = cfg
}
