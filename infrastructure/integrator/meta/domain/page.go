package metadomain

// Page representa uma página do Meta com o seu canal de contato
type Page struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsapp_number,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// ContactEndpoint devolve o canal de contato da página, preferindo o WhatsApp
func (p *Page) ContactEndpoint() string {
	if p.WhatsappNumber != "" {
		return p.WhatsappNumber
	}
	return p.Phone
}
