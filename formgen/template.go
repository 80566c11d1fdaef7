package formgen

import (
	"strings"
	"text/template"
)

// companionSource is the only definition of the generated shape.
// Indentation is four spaces; there is no newline after the closing brace.
const companionSource = `{{if .Namespace}}namespace {{.Namespace}};
{{end}}public partial class {{.DeclName}}
{
    public {{.ResolvedType}} {{.Property}}
    {
        get
        {
            return ({{.ResolvedType}})this.{{.Member}};
        }
        set
        {
            this.{{.Member}} = value;
        }
    }
}`

var companionTemplate = template.Must(template.New("companion").Parse(companionSource))

// Slots are the named substitutions in the companion template
type Slots struct {
	Namespace    string // empty for the global namespace; the namespace line is then omitted
	DeclName     string
	ResolvedType string
	Property     string
	Member       string
}

// Template renders companion declarations with a fixed line terminator
type Template struct {
	newline string
}

// NewTemplate returns a Template that terminates lines with newline ("\r\n" or "\n")
func NewTemplate(newline string) *Template {
	if newline == "" {
		newline = "\r\n"
	}
	return &Template{newline: newline}
}

// Render fills the slots. The template is static and writes to a
// strings.Builder, so execution cannot fail.
func (t *Template) Render(s Slots) string {
	var sb strings.Builder
	if err := companionTemplate.Execute(&sb, s); err != nil {
		panic("formgen: companion template: " + err.Error())
	}
	if t.newline == "\n" {
		return sb.String()
	}
	return strings.ReplaceAll(sb.String(), "\n", t.newline)
}
