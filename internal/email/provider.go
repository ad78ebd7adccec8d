package email

// Message представляет структуру email сообщения
type Message struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// TemplateData представляет данные для шаблонов писем
type TemplateData map[string]interface{}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет готовое сообщение
	Send(msg *Message) error

	// SendTemplate рендерит шаблон и отправляет результат
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// Close закрывает соединение с провайдером
	Close() error
}

// NoopProvider используется когда email выключен конфигом
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider { return &NoopProvider{} }

func (p *NoopProvider) Send(msg *Message) error { return nil }

func (p *NoopProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	return nil
}

func (p *NoopProvider) Close() error { return nil }
