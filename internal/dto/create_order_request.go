package dto

// CreateOrderRequest mirrors the contact-form submission. Field names match
// the JSON payload the site sends.
type CreateOrderRequest struct {
	CompanyName string `json:"companyName"`
	Sector      string `json:"sector"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website,omitempty"`

	LogoName string   `json:"logoName"`
	Style    string   `json:"style"`
	Message  string   `json:"message"`
	Formats  []string `json:"formats"`

	PreferredColors string   `json:"preferredColors,omitempty"`
	AvoidedColors   string   `json:"avoidedColors,omitempty"`
	Typography      string   `json:"typography,omitempty"`
	Icons           string   `json:"icons,omitempty"`
	Slogan          string   `json:"slogan,omitempty"`
	ExamplesURL     string   `json:"examplesUrl,omitempty"`
	Usage           []string `json:"usage,omitempty"`

	Package string `json:"package"`
}
