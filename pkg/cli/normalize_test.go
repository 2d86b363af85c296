package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
)

func TestNewCommandMetadata(t *testing.T) {
	cmd := New()

	assert.Equal(t, "recipe-normalizer", cmd.Name)
	assert.NotNil(t, cmd.Action)
	assert.NotEmpty(t, cmd.Version)

	wantFlags := []string{"verbose", "debug", "strict", "format", "metrics-file", "log-level"}
	for _, flagName := range wantFlags {
		found := false
		for _, f := range cmd.Flags {
			for _, n := range f.Names() {
				if n == flagName {
					found = true
				}
			}
		}
		assert.True(t, found, "flag %q should be defined", flagName)
	}
}

// captureOptions runs the root command with a stub action that records the
// parsed options.
func captureOptions(t *testing.T, args ...string) (*normalizeCmdOptions, error) {
	t.Helper()

	var opts *normalizeCmdOptions
	cmd := New()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		var err error
		opts, err = parseNormalizeCmdOptions(c)
		return err
	}

	err := cmd.Run(context.Background(), append([]string{"recipe-normalizer"}, args...))
	return opts, err
}

func TestParseNormalizeCmdOptions(t *testing.T) {
	opts, err := captureOptions(t, "--strict", "--format", "yaml", "--metrics-file", "m.prom", "in", "out.yaml")
	require.NoError(t, err)

	assert.Equal(t, "in", opts.inputDir)
	assert.Equal(t, "out.yaml", opts.outputFile)
	assert.True(t, opts.strict)
	assert.Equal(t, "yaml", string(opts.format))
	assert.Equal(t, "m.prom", opts.metricsFile)
}

func TestParseNormalizeCmdOptionsArgCount(t *testing.T) {
	_, err := captureOptions(t, "only-one")
	assert.Error(t, err)

	_, err = captureOptions(t)
	assert.Error(t, err)

	_, err = captureOptions(t, "a", "b", "c")
	assert.Error(t, err)
}

func TestParseNormalizeCmdOptionsUnknownFormat(t *testing.T) {
	_, err := captureOptions(t, "--format", "csv", "in", "out.csv")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestParseNormalizeCmdOptionsLogLevels(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default is warn", args: nil, want: "warn"},
		{name: "verbose raises to info", args: []string{"-v"}, want: "info"},
		{name: "debug raises to debug", args: []string{"-d"}, want: "debug"},
		{name: "debug wins over verbose", args: []string{"-v", "-d"}, want: "debug"},
		{name: "explicit level wins", args: []string{"-v", "-d", "--log-level", "error"}, want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := captureOptions(t, append(tt.args, "in", "out.json")...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts.logLevel)
		})
	}
}

func TestParseNormalizeCmdOptionsInvalidLogLevel(t *testing.T) {
	_, err := captureOptions(t, "--log-level", "loud", "in", "out.json")
	assert.Error(t, err)
}

func TestRunNormalizeEndToEnd(t *testing.T) {
	inputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "pie.xml"),
		[]byte(`<root><name>Apple Pie</name><ingredients><item>butter</item><quantity>1</quantity><unit>pound</unit></ingredients></root>`),
		0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "notes.txt"),
		[]byte("not a recipe\n"), 0o644))

	outputFile := filepath.Join(t.TempDir(), "out.json")
	err := New().Run(context.Background(), []string{"recipe-normalizer", inputDir, outputFile})
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "Apple Pie", gjson.GetBytes(data, "0.name").String())
	assert.Equal(t, 454.0, gjson.GetBytes(data, "0.ingredients.0.quantity").Float())
	assert.Equal(t, "g", gjson.GetBytes(data, "0.ingredients.0.unit").String())
}

func TestRunNormalizeMissingInputDirFails(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "out.json")
	err := New().Run(context.Background(), []string{
		"recipe-normalizer", filepath.Join(t.TempDir(), "missing"), outputFile})
	assert.Error(t, err)
}

func TestRunNormalizeEmptyDirFails(t *testing.T) {
	err := New().Run(context.Background(), []string{
		"recipe-normalizer", t.TempDir(), filepath.Join(t.TempDir(), "out.json")})
	assert.Error(t, err)
}
