package build

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"docwright/common"
	"docwright/config"
	"docwright/manuscript"
)

// Values is a struct that holds variables we make available for template
// expansion.
type Values struct {
	Context    string
	Title      string
	Subtitle   string
	Language   string
	Date       string
	Authors    []string
	Format     string
	SourceFile string
}

func newValues(m *manuscript.Manuscript, name config.TemplateFieldName, src string, format common.OutputFmt) Values {
	return Values{
		Context:    string(name),
		Title:      m.Title,
		Subtitle:   m.Subtitle,
		Language:   m.Language,
		Date:       m.Date,
		Authors:    m.Authors,
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
	}
}

func expandTemplate(m *manuscript.Manuscript, name config.TemplateFieldName, field, src string, format common.OutputFmt) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, newValues(m, name, src, format)); err != nil {
		return "", fmt.Errorf("unable to execute template field %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
