package robofolio

import (
	"fmt"
	"html/template"
	"os"

	"github.com/pkg/errors"
)

const (
	rootTemplateName   = "root"
	searchTemplateName = "search"
)

// defaultSearchTemplate renders the results panel fragment when the site has no search.html
// template.
const defaultSearchTemplate = `
{{- if not .Hidden -}}
<div class="search-results" data-query="{{.Query}}">
{{- if .Empty}}
	<div class="search-no-results">{{.Message}}</div>
{{- else}}
{{- range $i, $item := .Items}}
	<a class="search-result" href="{{.Href}}" data-index="{{$i}}">
		<h4>{{.Title.HTML}}</h4>
		<p>{{.Excerpt.HTML}}</p>
		<span class="search-result-type">{{.Type}}</span>
	</a>
{{- end}}
{{- end}}
</div>
{{- end -}}
`

// getTemplate returns the named template. If the site has a root.html template, it is parsed
// first so that the named template can fill in its blocks. If the site has no template with the
// name, defaultText is used on its own.
func (s *Site) getTemplate(name, defaultText string) (*template.Template, error) {
	readTemplate := func(name string) ([]byte, error) {
		if s.Templates == nil {
			return nil, os.ErrNotExist
		}
		return ReadFile(s.Templates, "/"+name+".html")
	}

	data, err := readTemplate(name)
	if os.IsNotExist(err) {
		return template.New(name).Parse(defaultText)
	}
	if err != nil {
		return nil, errors.WithMessage(err, fmt.Sprintf("read template %s.html", name))
	}

	tmpl := template.New(rootTemplateName)
	rootData, err := readTemplate(rootTemplateName)
	if err == nil {
		if _, err := tmpl.Parse(string(rootData)); err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("parse template %s.html", rootTemplateName))
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.WithMessage(err, fmt.Sprintf("read template %s.html", rootTemplateName))
	}
	if _, err := tmpl.Parse(string(data)); err != nil {
		return nil, errors.WithMessage(err, fmt.Sprintf("parse template %s.html", name))
	}
	return tmpl, nil
}
