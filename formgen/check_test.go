package formgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/formgen/symbols"
)

func checkFixture(t *testing.T) *Result {
	t.Helper()
	m := buildModel(t,
		symbols.Decl{Name: "MyViewModel", Namespace: "MyApp", Base: formBase, Annotations: marked("WinformTest.ObservableObjectTest")},
		symbols.Decl{Name: "Orders", Namespace: "MyApp", Base: formBase, Annotations: marked("WinformTest.ObservableObjectTest")},
	)
	result, err := NewGenerator(testOptions(), nil).Run(context.Background(), m)
	require.NoError(t, err)
	require.Len(t, result.Artifacts, 2)
	return result
}

func writeGolden(t *testing.T, dir, name, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
}

func TestCheck_UpToDate(t *testing.T) {
	result := checkFixture(t)
	dir := t.TempDir()
	for _, a := range result.Artifacts {
		writeGolden(t, dir, a.Name, a.Text)
	}
	// unrelated files are ignored
	writeGolden(t, dir, "Program.cs", "class Program {}")

	check, err := Check(result, dir, "cs")
	require.NoError(t, err)
	assert.True(t, check.UpToDate)
	assert.Empty(t, check.Missing)
	assert.Empty(t, check.Differs)
	assert.Empty(t, check.Stale)
}

func TestCheck_Missing(t *testing.T) {
	result := checkFixture(t)
	dir := t.TempDir()
	writeGolden(t, dir, "MyViewModel.g.cs", myViewModelLF)

	check, err := Check(result, dir, "cs")
	require.NoError(t, err)
	assert.False(t, check.UpToDate)
	assert.Equal(t, []string{"Orders.g.cs"}, check.Missing)
	assert.Empty(t, check.Differs)
}

func TestCheck_Differs(t *testing.T) {
	result := checkFixture(t)
	dir := t.TempDir()
	writeGolden(t, dir, "MyViewModel.g.cs", strings.Replace(myViewModelLF, "VMDataContext", "DataModel", 1))
	a, _ := result.Artifact("Orders.g.cs")
	writeGolden(t, dir, "Orders.g.cs", a.Text)

	check, err := Check(result, dir, "cs")
	require.NoError(t, err)
	assert.False(t, check.UpToDate)
	require.Len(t, check.Differs, 1)

	d := check.Differs[0]
	assert.Equal(t, "MyViewModel.g.cs", d.Name)
	assert.Contains(t, d.Diff, "+++ generated/MyViewModel.g.cs")
	assert.Contains(t, d.Diff, "-    public WinformTest.ObservableObjectTest DataModel\n")
	assert.Contains(t, d.Diff, "+    public WinformTest.ObservableObjectTest VMDataContext\n")
}

func TestCheck_LineEndingsAreSignificant(t *testing.T) {
	result := checkFixture(t)
	dir := t.TempDir()
	for _, a := range result.Artifacts {
		writeGolden(t, dir, a.Name, strings.ReplaceAll(a.Text, "\n", "\r\n"))
	}

	check, err := Check(result, dir, "cs")
	require.NoError(t, err)
	assert.False(t, check.UpToDate)
	assert.Len(t, check.Differs, 2)
	for _, d := range check.Differs {
		assert.NotEmpty(t, d.Diff)
	}
}

func TestCheck_Stale(t *testing.T) {
	result := checkFixture(t)
	dir := t.TempDir()
	for _, a := range result.Artifacts {
		writeGolden(t, dir, a.Name, a.Text)
	}
	writeGolden(t, dir, "Removed.g.cs", "// gone")
	writeGolden(t, dir, "Archived.g.cs", "// gone")
	writeGolden(t, dir, "Other.g.vb", "' other extension")

	check, err := Check(result, dir, "cs")
	require.NoError(t, err)
	assert.False(t, check.UpToDate)
	assert.Equal(t, []string{"Archived.g.cs", "Removed.g.cs"}, check.Stale)
}

func TestCheck_MissingDirectory(t *testing.T) {
	result := checkFixture(t)

	check, err := Check(result, filepath.Join(t.TempDir(), "absent"), "cs")
	require.NoError(t, err)
	assert.False(t, check.UpToDate)
	assert.Equal(t, []string{"MyViewModel.g.cs", "Orders.g.cs"}, check.Missing)
}
