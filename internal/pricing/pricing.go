// Package pricing models the plan cards and the monthly/annual billing toggle.
package pricing

import (
	"fmt"
	"math"
	"strings"
)

// Billing is the selected billing period.
type Billing string

const (
	Monthly Billing = "monthly"
	Annual  Billing = "annual"

	// DefaultBilling is shown when the visitor has not chosen.
	DefaultBilling = Annual
)

// ParseBilling maps a query value to a Billing; anything unrecognised is
// the default.
func ParseBilling(s string) Billing {
	switch Billing(strings.ToLower(strings.TrimSpace(s))) {
	case Monthly:
		return Monthly
	case Annual:
		return Annual
	default:
		return DefaultBilling
	}
}

// Toggle returns the other period.
func (b Billing) Toggle() Billing {
	if b == Monthly {
		return Annual
	}
	return Monthly
}

func (b Billing) String() string { return string(b) }

// Plan is one pricing tier. Prices are per user per month in whole dollars.
type Plan struct {
	Name         string   `yaml:"name"`
	Icon         string   `yaml:"icon"`
	Description  string   `yaml:"description"`
	MonthlyPrice int      `yaml:"monthly_price"`
	AnnualPrice  int      `yaml:"annual_price"`
	Popular      bool     `yaml:"popular"`
	ContactSales bool     `yaml:"contact_sales"`
	Features     []string `yaml:"features"`
	Limitations  []string `yaml:"limitations"`
}

// Price returns the per-user monthly price for the billing period.
func (p Plan) Price(b Billing) int {
	if b == Annual {
		return p.AnnualPrice
	}
	return p.MonthlyPrice
}

// BilledYearly is the annual invoice amount, or 0 for monthly billing and
// contact-sales plans.
func (p Plan) BilledYearly(b Billing) int {
	if b != Annual || p.ContactSales {
		return 0
	}
	return p.AnnualPrice * 12
}

// SavingsPercent is how much annual billing saves over monthly, rounded.
func (p Plan) SavingsPercent() int {
	if p.MonthlyPrice <= 0 || p.AnnualPrice >= p.MonthlyPrice {
		return 0
	}
	return int(math.Round(float64(p.MonthlyPrice-p.AnnualPrice) / float64(p.MonthlyPrice) * 100))
}

// CallToAction is the label of the plan's button.
func (p Plan) CallToAction() string {
	if p.ContactSales {
		return "Contact Sales"
	}
	return fmt.Sprintf("Choose %s", p.Name)
}

// Table is the priced view of a set of plans for one billing period.
type Table struct {
	Billing Billing
	// Discount is the advertised annual saving in percent; 0 hides the badge.
	Discount int
	Plans    []Plan
}

// NewTable prices plans for billing.
func NewTable(plans []Plan, billing Billing, discount int) Table {
	return Table{Billing: billing, Discount: discount, Plans: plans}
}

// ShowSavings reports whether the savings badge is visible.
func (t Table) ShowSavings() bool {
	return t.Billing == Annual && t.Discount > 0
}

// SelfServe returns the plans with a listed price.
func (t Table) SelfServe() []Plan {
	var out []Plan
	for _, p := range t.Plans {
		if !p.ContactSales {
			out = append(out, p)
		}
	}
	return out
}

// ContactSales returns the plans sold through the sales team.
func (t Table) ContactSales() []Plan {
	var out []Plan
	for _, p := range t.Plans {
		if p.ContactSales {
			out = append(out, p)
		}
	}
	return out
}
