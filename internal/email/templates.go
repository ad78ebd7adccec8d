package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Имена встроенных шаблонов
const (
	TemplateRegistrationRequest = "registration_request"
	TemplatePendingDigest       = "pending_digest"
	TemplatePaymentReceived     = "payment_received"
)

var builtinTemplates = map[string]string{
	TemplateRegistrationRequest: `
<h2>Nouvelle demande d'inscription</h2>
<p>{{.FirstName}} {{.LastName}} ({{.Phone}}) attend une validation.</p>
<p>Pays: {{.Country}}</p>`,

	TemplatePendingDigest: `
<h2>Demandes en attente</h2>
<p>{{.Count}} demande(s) d'inscription attendent une validation.</p>`,

	TemplatePaymentReceived: `
<h2>Paiement reçu</h2>
<p>Transaction {{.TransactionID}} de {{.Amount}} FCFA confirmée pour {{.Phone}}.</p>`,
}

// Renderer рендерит встроенные html-шаблоны писем
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() *Renderer {
	r := &Renderer{templates: make(map[string]*template.Template)}
	for name, text := range builtinTemplates {
		r.templates[name] = template.Must(template.New(name).Parse(text))
	}
	return r
}

func (r *Renderer) Render(templateName string, data TemplateData) (string, error) {
	tmpl, ok := r.templates[templateName]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
