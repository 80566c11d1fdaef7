package formgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const myViewModelLF = `namespace MyApp;
public partial class MyViewModel
{
    public WinformTest.ObservableObjectTest VMDataContext
    {
        get
        {
            return (WinformTest.ObservableObjectTest)this.DataContext;
        }
        set
        {
            this.DataContext = value;
        }
    }
}`

func myViewModelSlots() Slots {
	return Slots{
		Namespace:    "MyApp",
		DeclName:     "MyViewModel",
		ResolvedType: "WinformTest.ObservableObjectTest",
		Property:     "VMDataContext",
		Member:       "DataContext",
	}
}

func TestTemplate_RenderLF(t *testing.T) {
	got := NewTemplate("\n").Render(myViewModelSlots())
	assert.Equal(t, myViewModelLF, got)
}

func TestTemplate_RenderCRLF(t *testing.T) {
	got := NewTemplate("\r\n").Render(myViewModelSlots())

	assert.Equal(t, strings.ReplaceAll(myViewModelLF, "\n", "\r\n"), got)
	assert.False(t, strings.HasSuffix(got, "\n"), "no trailing newline")
	assert.Equal(t, 14, strings.Count(got, "\r\n"))
	assert.NotContains(t, strings.ReplaceAll(got, "\r\n", ""), "\n", "every newline is CRLF")
}

func TestTemplate_DefaultsToCRLF(t *testing.T) {
	assert.Equal(t, NewTemplate("\r\n").Render(myViewModelSlots()), NewTemplate("").Render(myViewModelSlots()))
}

func TestTemplate_GlobalNamespace(t *testing.T) {
	s := myViewModelSlots()
	s.Namespace = ""

	got := NewTemplate("\n").Render(s)
	assert.True(t, strings.HasPrefix(got, "public partial class MyViewModel\n{\n"))
	assert.NotContains(t, got, "namespace")
}

func TestTemplate_CustomNames(t *testing.T) {
	s := myViewModelSlots()
	s.Property = "Model"
	s.Member = "Tag"
	s.ResolvedType = "System.Collections.Generic.List<MyApp.Item>"

	got := NewTemplate("\n").Render(s)
	assert.Contains(t, got, "    public System.Collections.Generic.List<MyApp.Item> Model\n")
	assert.Contains(t, got, "            return (System.Collections.Generic.List<MyApp.Item>)this.Tag;\n")
	assert.Contains(t, got, "            this.Tag = value;\n")
}
