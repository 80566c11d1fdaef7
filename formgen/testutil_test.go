package formgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teranos/formgen/symbols"
)

const (
	marker     symbols.TypeRef = "CommunityToolkit.Mvvm.ComponentModel.MVVMFormAttribute"
	formBase   symbols.TypeRef = "System.Windows.Forms.Form"
	observable symbols.TypeRef = "CommunityToolkit.Mvvm.ComponentModel.ObservableObject"
)

func testIdentifiers() Identifiers {
	return Identifiers{Annotation: marker, FormBase: formBase, ObservableBase: observable}
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Newline = "\n"
	return opts
}

func marked(args ...symbols.TypeRef) []symbols.Annotation {
	return []symbols.Annotation{{Type: marker, Arguments: args}}
}

// frameworkDecls is the slice of WinForms and MVVM Toolkit hierarchy the tests rely on
func frameworkDecls() []symbols.Decl {
	return []symbols.Decl{
		{Name: "Control", Namespace: "System.Windows.Forms", Base: "System.ComponentModel.Component"},
		{Name: "ContainerControl", Namespace: "System.Windows.Forms", Base: "System.Windows.Forms.Control"},
		{Name: "Form", Namespace: "System.Windows.Forms", Base: "System.Windows.Forms.ContainerControl"},
		{Name: "ObservableObject", Namespace: "CommunityToolkit.Mvvm.ComponentModel", Base: symbols.RootType},
		{Name: "ObservableValidator", Namespace: "CommunityToolkit.Mvvm.ComponentModel", Base: observable},
		{Name: "MVVMFormAttribute", Namespace: "CommunityToolkit.Mvvm.ComponentModel", Base: "System.Attribute"},
		{Name: "ObservableObjectTest", Namespace: "WinformTest", Base: observable},
	}
}

func buildModel(t *testing.T, decls ...symbols.Decl) *symbols.Model {
	t.Helper()
	m, err := symbols.NewModel(append(frameworkDecls(), decls...))
	require.NoError(t, err)
	return m
}
