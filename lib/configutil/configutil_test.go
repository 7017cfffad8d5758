package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Url     string `json:"url"`
	Indent  int    `json:"indent"`
	Retries int    `json:"retries"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "payscale.json5"), `{
		// comments and trailing commas are allowed
		url: "https://example.com/a",
		indent: 4,
	}`)
	writeFile(t, filepath.Join(dir, "payscale.local.json5"), `{ retries: 5 }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "payscale.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{Url: "https://example.com/a", Indent: 4, Retries: 5}, cfg)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "payscale.local.json5"), `{ indent: 0, url: "x" }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "payscale.json5"))
	require.NoError(t, err)
	require.Equal(t, "x", cfg.Url)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "payscale.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "payscale.json5"), `{ url: `)

	_, err := ReadConfig[testConfig](filepath.Join(dir, "payscale.json5"))
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestSplitExt(t *testing.T) {
	name, ext := splitExt("telemetry.json5")
	require.Equal(t, "telemetry", name)
	require.Equal(t, "json5", ext)

	name, ext = splitExt("noext")
	require.Equal(t, "noext", name)
	require.Equal(t, "", ext)
}
