// Package notification renders and dispatches the transactional emails of
// the order flow: the operator-facing "new order" report and the
// customer-facing "order received" / "payment confirmed" receipts.
package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"bluw/internal/catalog"
	"bluw/internal/domain"
	"bluw/internal/dto"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

type Renderer struct {
	templates *template.Template
	catalog   *catalog.Catalog
}

func NewRenderer(cat *catalog.Catalog) (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing email templates: %w", err)
	}
	return &Renderer{
		templates: templates,
		catalog:   cat,
	}, nil
}

type operatorEmailData struct {
	OrderRef        string
	CompanyName     string
	Sector          string
	Email           string
	Phone           string
	Website         string
	LogoName        string
	Style           string
	Message         string
	Formats         string
	PreferredColors string
	AvoidedColors   string
	Typography      string
	Icons           string
	Slogan          string
	ExamplesURL     string
	Usage           string
	PackageName     string
	PriceLabel      string
	CreatedAt       string
}

// OperatorNewOrder renders the detailed "new order" report sent to the
// operator address.
func (r *Renderer) OperatorNewOrder(order *domain.Order) (*dto.RenderedEmail, error) {
	priceLabel := FormatEuros(order.Amount)

	data := operatorEmailData{
		OrderRef:        orderRef(order.ID),
		CompanyName:     order.CompanyName,
		Sector:          order.Sector,
		Email:           order.Email,
		Phone:           order.Phone,
		Website:         deref(order.Website),
		LogoName:        order.LogoName,
		Style:           order.Style,
		Message:         order.Message,
		Formats:         formatList(order.Formats),
		PreferredColors: deref(order.PreferredColors),
		AvoidedColors:   deref(order.AvoidedColors),
		Typography:      deref(order.Typography),
		Icons:           deref(order.Icons),
		Slogan:          deref(order.Slogan),
		ExamplesURL:     deref(order.ExamplesURL),
		PackageName:     r.catalog.DisplayName(order.Package),
		PriceLabel:      priceLabel,
		CreatedAt:       order.CreatedAt.Format("02/01/2006 15:04"),
	}
	if len(order.UsageContexts) > 0 {
		data.Usage = formatList(order.UsageContexts)
	}

	html, err := r.render("operator_new_order.html.tmpl", data)
	if err != nil {
		return nil, err
	}

	return &dto.RenderedEmail{
		Subject: fmt.Sprintf("Nouvelle commande de logo - %s (%s)", order.CompanyName, priceLabel),
		HTML:    html,
	}, nil
}

type customerEmailData struct {
	Name        string
	Paid        bool
	PackageName string
	PriceLabel  string
	Features    []string
	Message     string
}

// CustomerReceipt renders the email sent to the order's own address: the
// "order received" variant when paid is false, the "payment confirmed"
// variant when paid is true.
func (r *Renderer) CustomerReceipt(order *domain.Order, paid bool) (*dto.RenderedEmail, error) {
	info, _ := r.catalog.Get(order.Package)

	data := customerEmailData{
		Name:        order.CompanyName,
		Paid:        paid,
		PackageName: r.catalog.DisplayName(order.Package),
		PriceLabel:  FormatEuros(order.Amount),
		Features:    info.Features,
		Message:     order.Message,
	}

	html, err := r.render("customer_receipt.html.tmpl", data)
	if err != nil {
		return nil, err
	}

	subject := "Commande reçue - BLUW Design"
	if paid {
		subject = "Paiement confirmé - Votre commande BLUW Design"
	}

	return &dto.RenderedEmail{
		Subject: subject,
		HTML:    html,
	}, nil
}

func (r *Renderer) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// FormatEuros renders a minor-unit amount the French way: "1 290,00 €".
func FormatEuros(amount int64) string {
	euros := amount / 100
	cents := amount % 100

	digits := fmt.Sprintf("%d", euros)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteRune(' ')
		}
		grouped.WriteRune(d)
	}

	return fmt.Sprintf("%s,%02d €", grouped.String(), cents)
}

func orderRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatList(values []string) string {
	if len(values) == 0 {
		return "Non spécifié"
	}
	return strings.Join(values, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
