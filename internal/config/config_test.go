package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/sift/internal/config"
	"github.com/ruminaider/sift/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full yaml", func(t *testing.T) {
		input := []byte(`prompt: "run:"
lines: 10
columns: 2
prefix: true
case_insensitive: true
delimiters: " /"
bottom: true
capacity: 512
max_items: 1000
theme: latte
keys:
  ctrl+o: accept-mark
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "run:", cfg.Prompt)
		assert.Equal(t, 10, cfg.Lines)
		assert.Equal(t, 2, cfg.Columns)
		assert.True(t, cfg.Prefix)
		assert.True(t, cfg.CaseInsensitive)
		assert.Equal(t, " /", cfg.Delimiters)
		assert.True(t, cfg.Bottom)
		assert.Equal(t, 512, cfg.Capacity)
		assert.Equal(t, 1000, cfg.MaxItems)
		assert.Equal(t, "latte", cfg.Theme)
		assert.Equal(t, "accept-mark", cfg.Keys["ctrl+o"])
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte("lines: 5\n"))
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Lines)
		assert.Equal(t, " ", cfg.Delimiters)
		assert.Equal(t, editor.DefaultCapacity, cfg.Capacity)
		assert.Equal(t, "mocha", cfg.Theme)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestParseTOML(t *testing.T) {
	cfg, err := config.ParseTOML([]byte(`
prompt = ">"
lines = 4
case_insensitive = true

[keys]
"ctrl+t" = "toggle-mark"
`))
	require.NoError(t, err)
	assert.Equal(t, ">", cfg.Prompt)
	assert.Equal(t, 4, cfg.Lines)
	assert.True(t, cfg.CaseInsensitive)
	assert.Equal(t, "toggle-mark", cfg.Keys["ctrl+t"])
	assert.Equal(t, editor.DefaultCapacity, cfg.Capacity)

	_, err = config.ParseTOML([]byte(`lines = [`))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Prompt = "pick"
	cfg.Lines = 8
	cfg.Keys = map[string]string{"ctrl+o": "accept-mark"}

	data, err := config.Marshal(cfg)
	require.NoError(t, err)
	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)

	data, err = config.MarshalTOML(cfg)
	require.NoError(t, err)
	back, err = config.ParseTOML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	for _, name := range []string{"sub/config.yaml", "sub/config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			cfg := config.Default()
			cfg.Columns = 3
			cfg.Prefix = true
			require.NoError(t, config.Save(path, cfg))

			loaded, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}

	t.Run("format follows extension", func(t *testing.T) {
		path := filepath.Join(dir, "fmt.toml")
		require.NoError(t, config.Save(path, config.Default()))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "capacity = ")
	})

	t.Run("unreadable path", func(t *testing.T) {
		_, err := config.Load(dir)
		assert.Error(t, err)
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		lines, cols  int
		wantL, wantC int
	}{
		{"flow", 0, 0, 0, 0},
		{"lines only", 5, 0, 5, 1},
		{"columns only", 0, 3, 1, 3},
		{"both", 4, 2, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{Lines: tt.lines, Columns: tt.cols}
			cfg.Normalize()
			assert.Equal(t, tt.wantL, cfg.Lines)
			assert.Equal(t, tt.wantC, cfg.Columns)
			assert.Equal(t, "mocha", cfg.Theme)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{"negative lines", func(c *config.Config) { c.Lines = -1 }, "lines"},
		{"negative columns", func(c *config.Config) { c.Columns = -2 }, "columns"},
		{"zero capacity", func(c *config.Config) { c.Capacity = 0 }, "capacity"},
		{"negative max items", func(c *config.Config) { c.MaxItems = -1 }, "max_items"},
		{"unknown theme", func(c *config.Config) { c.Theme = "neon" }, "theme"},
		{"unknown action", func(c *config.Config) { c.Keys = map[string]string{"ctrl+x": "explode"} }, "explode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.NoError(t, config.Default().Validate())

	cfg := config.Default()
	cfg.Keys = map[string]string{"ctrl+v": "paste", "ctrl+t": "toggle-mark"}
	assert.NoError(t, cfg.Validate())
}

func TestMatchOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Prefix = true
	cfg.CaseInsensitive = true
	cfg.Delimiters = ""

	opts := cfg.MatchOptions()
	assert.True(t, opts.PrefixOnly)
	assert.True(t, opts.CaseInsensitive)
	assert.Equal(t, " ", opts.Delimiters)
}
