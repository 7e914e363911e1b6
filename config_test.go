package gekko

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Parse(t *testing.T) {
	cfg, err := ParseAmbientLightConfig([]byte("ambient_light:\n  color: \"#ff0000\"\n  brightness: 12.5\n"))
	require.NoError(t, err)

	ambient, err := cfg.AmbientLight()
	require.NoError(t, err)
	assert.Equal(t, AmbientLight{Color: NewColor(1, 0, 0, 1), Brightness: 12.5}, ambient)
}

func TestConfig_EmptyFallsBackToDefault(t *testing.T) {
	cfg, err := ParseAmbientLightConfig([]byte("other: 1\n"))
	require.NoError(t, err)

	ambient, err := cfg.AmbientLight()
	require.NoError(t, err)
	assert.Equal(t, NewAmbientLight(), ambient)
}

func TestConfig_ZeroBrightnessIsKept(t *testing.T) {
	cfg, err := ParseAmbientLightConfig([]byte("ambient_light:\n  brightness: 0\n"))
	require.NoError(t, err)

	ambient, err := cfg.AmbientLight()
	require.NoError(t, err)
	assert.Equal(t, AmbientLightNone(), ambient)
}

func TestConfig_NegativeBrightnessIsKept(t *testing.T) {
	cfg, err := ParseAmbientLightConfig([]byte("ambient_light:\n  brightness: -3\n"))
	require.NoError(t, err)

	ambient, err := cfg.AmbientLight()
	require.NoError(t, err)
	assert.Equal(t, float32(-3), ambient.Brightness)
}

func TestConfig_Errors(t *testing.T) {
	_, err := ParseAmbientLightConfig([]byte("ambient_light: [\n"))
	assert.Error(t, err)

	_, err = AmbientLightConfig{Color: NamedColor("mauve-ish")}.AmbientLight()
	assert.ErrorContains(t, err, "mauve-ish")

	_, err = LoadAmbientLightConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GEKKO_AMBIENT_COLOR", "navy")
	t.Setenv("GEKKO_AMBIENT_BRIGHTNESS", "250")

	path := filepath.Join(t.TempDir(), "lighting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ambient_light:\n  color: white\n  brightness: 10\n"), 0644))

	cfg, err := LoadAmbientLightConfig(path)
	require.NoError(t, err)
	ambient, err := cfg.AmbientLight()
	require.NoError(t, err)

	navy, _ := ColorFromName("navy")
	assert.Equal(t, AmbientLight{Color: navy, Brightness: 250}, ambient)
}

func TestConfig_EnvBadBrightness(t *testing.T) {
	t.Setenv("GEKKO_AMBIENT_BRIGHTNESS", "very")

	var cfg AmbientLightConfig
	assert.Error(t, ApplyEnv(&cfg))
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lighting.yaml")
	want := AmbientLight{Color: ColorWhite, Brightness: 100}
	require.NoError(t, SaveAmbientLightConfig(path, want))

	cfg, err := LoadAmbientLightConfig(path)
	require.NoError(t, err)
	got, err := cfg.AmbientLight()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfig_SaveLoadKeepsExactChannels(t *testing.T) {
	cases := []AmbientLight{
		{Color: NewColor(0.5, 0.5, 0.5, 1), Brightness: 80},
		{Color: NewColor(2, 1, 1, 1), Brightness: 0.1},
		{Color: NewColor(0.123, 0.456, 0.789, 0.25), Brightness: -7},
	}

	for _, want := range cases {
		path := filepath.Join(t.TempDir(), "lighting.yaml")
		require.NoError(t, SaveAmbientLightConfig(path, want))

		cfg, err := LoadAmbientLightConfig(path)
		require.NoError(t, err)
		got, err := cfg.AmbientLight()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestConfig_ColorSequence(t *testing.T) {
	cfg, err := ParseAmbientLightConfig([]byte("ambient_light:\n  color: [0.25, 0.5, 4]\n"))
	require.NoError(t, err)

	ambient, err := cfg.AmbientLight()
	require.NoError(t, err)
	assert.Equal(t, NewColor(0.25, 0.5, 4, 1), ambient.Color)
}

func TestConfig_ColorSequenceErrors(t *testing.T) {
	_, err := ParseAmbientLightConfig([]byte("ambient_light:\n  color: [1, 1]\n"))
	assert.ErrorContains(t, err, "3 or 4 channels")

	_, err = ParseAmbientLightConfig([]byte("ambient_light:\n  color: [a, b, c]\n"))
	assert.Error(t, err)

	_, err = ParseAmbientLightConfig([]byte("ambient_light:\n  color: {r: 1}\n"))
	assert.Error(t, err)
}

func TestConfig_EnvBrightnessZeroIsSet(t *testing.T) {
	t.Setenv("GEKKO_AMBIENT_BRIGHTNESS", "0")

	var cfg AmbientLightConfig
	require.NoError(t, ApplyEnv(&cfg))
	require.NotNil(t, cfg.Brightness)
	assert.Equal(t, float32(0), *cfg.Brightness)
}

func TestConfig_EnvUnsetLeavesConfig(t *testing.T) {
	cfg := AmbientLightConfig{Color: NamedColor("red")}
	require.NoError(t, ApplyEnv(&cfg))

	assert.Nil(t, cfg.Brightness)
	assert.Equal(t, "red", cfg.Color.Name)
}
