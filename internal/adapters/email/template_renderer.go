package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"confcompanion/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Embedded templates are parsed once; a broken template fails at start-up.
var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

// templateRenderer renders a named email as <name>_subject.txt, <name>.html and <name>.txt.
type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer returns an EmailTemplateRenderer over the embedded templates folder.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{html: htmlTemplates, text: textTemplates}
}

// Render executes the named template (e.g. "survey_receipt") with data and returns subject, html, and text bodies.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	htmlTmpl := r.html.Lookup(templateName + ".html")
	if htmlTmpl == nil {
		return "", "", "", fmt.Errorf("unknown email template %q", templateName)
	}

	if subject, err = r.execText(templateName+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	var buf bytes.Buffer
	if err = htmlTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	if textBody, err = r.execText(templateName+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	// Subjects are single-line.
	subject = strings.Join(strings.Fields(subject), " ")
	return subject, buf.String(), textBody, nil
}

func (r *templateRenderer) execText(name string, data any) (string, error) {
	t := r.text.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("missing template file %s", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
