package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseOverlaysDefault(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  width: 800
  fullscreen: true
render:
  present_mode: uncapped
animation:
  time_scale: 0.5
`))
	require.NoError(t, err)

	expected := Default()
	expected.Window.Width = 800
	expected.Window.Fullscreen = true
	expected.Render.PresentMode = PresentModeUncapped
	expected.Animation.TimeScale = 0.5
	assert.Equal(t, expected, cfg)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "window:\n  colour: red\n",
		"bad present mode":  "render:\n  present_mode: triple\n",
		"negative width":    "window:\n  width: -1\n",
		"negative scale":    "animation:\n  time_scale: -2\n",
		"negative step":     "animation:\n  fixed_step: -0.1\n",
		"zero interval":     "profiling:\n  interval_ms: 0\n",
		"malformed":         "window: [",
		"wrong scalar type": "window:\n  width: wide\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: orbit\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "orbit", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Profiling.Enabled = true
	cfg.Animation.FixedStep = 1.0 / 60

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "present_mode: vsync")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
