package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	yaml3 "gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	cfg := New()

	// Host-specific values come from the internal overlay.
	require.Equal(t, "https://qutebrowser.org/doc/help/settings.html", cfg.DocURLBase)
	require.Equal(t, "config.py", cfg.HostConfigName)

	// No selector is set by default.
	require.False(t, cfg.Missing)
	require.False(t, cfg.Dropped)
	require.False(t, cfg.ChangedDefaults)
	require.Empty(t, cfg.Paths)
}

func TestSelection(t *testing.T) {
	cfg := &Config{}
	m, d, c := cfg.Selection()
	require.True(t, m)
	require.True(t, d)
	require.True(t, c)

	cfg = &Config{Dropped: true}
	m, d, c = cfg.Selection()
	require.False(t, m)
	require.True(t, d)
	require.False(t, c)
}

func TestMerge(t *testing.T) {
	merged, err := Merge("naked: true\ndebug: false\n", "hostConfigName: config.py\n")
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml3.Unmarshal([]byte(merged), &cfg))
	require.True(t, cfg.Naked)
	require.Equal(t, "config.py", cfg.HostConfigName)
}
