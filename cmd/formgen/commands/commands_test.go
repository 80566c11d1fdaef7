package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/formgen/config"
)

const testModel = `types:
  - name: Form
    namespace: System.Windows.Forms
  - name: ObservableObject
    namespace: CommunityToolkit.Mvvm.ComponentModel
  - name: ObservableObjectTest
    namespace: WinformTest
    base: CommunityToolkit.Mvvm.ComponentModel.ObservableObject
  - name: MyViewModel
    namespace: MyApp
    base: System.Windows.Forms.Form
    annotations:
      - type: CommunityToolkit.Mvvm.ComponentModel.MVVMFormAttribute
        arguments: [WinformTest.ObservableObjectTest]
  - name: Panel
    namespace: MyApp
    base: System.Windows.Forms.Control
    annotations:
      - type: CommunityToolkit.Mvvm.ComponentModel.MVVMFormAttribute
        arguments: [WinformTest.ObservableObjectTest]
`

func writeModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testModel), 0644))
	return path
}

func lfConfig() *config.Config {
	cfg := config.Default()
	cfg.Emit.LineEnding = config.LineEndingLF
	return cfg
}

func TestGenerate_Stdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := generate(context.Background(), lfConfig(), generateOptions{model: writeModel(t)}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "// MyViewModel.g.cs\nnamespace MyApp;\npublic partial class MyViewModel\n"))
	assert.True(t, strings.HasSuffix(out, "}\n\n"))
	assert.NotContains(t, out, "Panel")
}

func TestGenerate_StdoutCRLF(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := generate(context.Background(), config.Default(), generateOptions{model: writeModel(t)}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "// MyViewModel.g.cs\r\nnamespace MyApp;\r\n"))
	assert.True(t, strings.HasSuffix(out, "}\r\n\r\n"))
	assert.Equal(t, strings.Count(out, "\n"), strings.Count(out, "\r\n"), "header and separator follow the artifact line ending")
}

func TestGenerate_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Generated")
	var stdout, stderr bytes.Buffer

	err := generate(context.Background(), config.Default(), generateOptions{model: writeModel(t), output: dir}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Generated")

	data, err := os.ReadFile(filepath.Join(dir, "MyViewModel.g.cs"))
	require.NoError(t, err)
	assert.Equal(t, 14, strings.Count(string(data), "\r\n"), "default line ending is CRLF")
	assert.False(t, strings.HasSuffix(string(data), "\n"))
}

func TestGenerate_OutputDirFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Dir = t.TempDir()
	var stdout, stderr bytes.Buffer

	require.NoError(t, generate(context.Background(), cfg, generateOptions{model: writeModel(t)}, &stdout, &stderr))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "MyViewModel.g.cs"))
}

func TestGenerate_Strict(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := generate(context.Background(), lfConfig(), generateOptions{model: writeModel(t), strict: true}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 marked class(es)")
	assert.Contains(t, stdout.String(), "MyViewModel.g.cs", "artifacts are still published")
}

func TestGenerate_Prune(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "Removed.g.cs")
	keep := filepath.Join(dir, "Handwritten.cs")
	require.NoError(t, os.WriteFile(stale, []byte("// old"), 0644))
	require.NoError(t, os.WriteFile(keep, []byte("// mine"), 0644))

	var stdout, stderr bytes.Buffer
	err := generate(context.Background(), lfConfig(), generateOptions{model: writeModel(t), output: dir, prune: true}, &stdout, &stderr)
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, keep)
	assert.FileExists(t, filepath.Join(dir, "MyViewModel.g.cs"))
	assert.Contains(t, stderr.String(), "Removed.g.cs")
}

func TestGenerate_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := generate(context.Background(), lfConfig(), generateOptions{}, &stdout, &stderr)
	assert.ErrorContains(t, err, "no model file")

	err = generate(context.Background(), lfConfig(), generateOptions{model: filepath.Join(t.TempDir(), "absent.yaml")}, &stdout, &stderr)
	assert.ErrorContains(t, err, "failed to load model")
}

func TestCheck(t *testing.T) {
	model := writeModel(t)
	golden := t.TempDir()
	cfg := lfConfig()

	var stdout bytes.Buffer
	err := check(context.Background(), cfg, checkOptions{model: model, golden: golden}, &stdout)
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "missing")

	var discard bytes.Buffer
	require.NoError(t, generate(context.Background(), cfg, generateOptions{model: model, output: golden}, &discard, &discard))

	stdout.Reset()
	require.NoError(t, check(context.Background(), cfg, checkOptions{model: model, golden: golden}, &stdout))
	assert.Contains(t, stdout.String(), "up to date")

	// a CRLF pass against LF golden files differs on every line
	stdout.Reset()
	err = check(context.Background(), config.Default(), checkOptions{model: model, golden: golden}, &stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 differing")
	assert.Contains(t, stdout.String(), "+++ generated/MyViewModel.g.cs")
}

func TestCheck_NeedsGoldenDir(t *testing.T) {
	var stdout bytes.Buffer
	err := check(context.Background(), lfConfig(), checkOptions{model: writeModel(t)}, &stdout)
	assert.ErrorContains(t, err, "no golden directory")
}

func TestWatch_NeedsOutputDir(t *testing.T) {
	var stderr bytes.Buffer
	err := watch(context.Background(), lfConfig(), generateOptions{model: writeModel(t)}, &stderr)
	assert.ErrorContains(t, err, "output directory")
}

func TestWatch_InitialPassThenStops(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var stderr bytes.Buffer
	err := watch(ctx, lfConfig(), generateOptions{model: writeModel(t), output: dir}, &stderr)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "MyViewModel.g.cs"))
}

func TestRenderConfig(t *testing.T) {
	cfg := config.Default()

	out, err := renderConfig(cfg, "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[emit]")
	assert.Contains(t, out, "line_ending = 'crlf'")

	out, err = renderConfig(cfg, "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "form_base: System.Windows.Forms.Form")

	out, err = renderConfig(cfg, "json")
	require.NoError(t, err)
	var decoded config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, *cfg, decoded)

	_, err = renderConfig(cfg, "ini")
	assert.ErrorContains(t, err, "unsupported format")
}
