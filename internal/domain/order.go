package domain

import "time"

// Order is a single logo-design purchase request submitted through the
// contact form. It is created once with status pending; the checkout session
// reference is attached after the Stripe session is opened, and the status is
// the only field updated afterwards.
type Order struct {
	ID string

	CompanyName string
	Sector      string
	Email       string
	Phone       string
	Website     *string

	LogoName        string
	Style           string
	Message         string
	Formats         []string
	PreferredColors *string
	AvoidedColors   *string
	Typography      *string
	Icons           *string
	Slogan          *string
	ExamplesURL     *string
	UsageContexts   []string

	Package  Package
	Amount   int64
	Currency string

	StripeSessionID  *string
	StripeCustomerID *string
	Status           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusExpired = "expired"
)

const DefaultCurrency = "eur"

type Package string

const (
	PackageBasic    Package = "basic"
	PackageAdvanced Package = "advanced"
	PackageUltimate Package = "ultimate"
)

// packagePrices is the fixed price list in minor currency units (cents).
var packagePrices = map[Package]int64{
	PackageBasic:    28000,
	PackageAdvanced: 69000,
	PackageUltimate: 129000,
}

func (p Package) Valid() bool {
	_, ok := packagePrices[p]
	return ok
}

// Price returns the amount in minor units for the package. The amount is a
// pure function of the package tier and depends on nothing else.
func (p Package) Price() (int64, bool) {
	price, ok := packagePrices[p]
	return price, ok
}

// Packages lists the tiers in ascending price order.
func Packages() []Package {
	return []Package{PackageBasic, PackageAdvanced, PackageUltimate}
}
