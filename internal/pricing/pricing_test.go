package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	starter      = Plan{Name: "Starter", MonthlyPrice: 29, AnnualPrice: 24}
	professional = Plan{Name: "Professional", MonthlyPrice: 79, AnnualPrice: 64, Popular: true}
	enterprise   = Plan{Name: "Enterprise", ContactSales: true}
)

func TestParseBilling(t *testing.T) {
	tests := map[string]Billing{
		"":         Annual,
		"monthly":  Monthly,
		" MONTHLY": Monthly,
		"annual":   Annual,
		"weekly":   Annual,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseBilling(in), "input %q", in)
	}
}

func TestBilling_Toggle(t *testing.T) {
	assert.Equal(t, Monthly, Annual.Toggle())
	assert.Equal(t, Annual, Monthly.Toggle())
	assert.Equal(t, Annual, Annual.Toggle().Toggle())
}

func TestPlan_Price(t *testing.T) {
	assert.Equal(t, 24, starter.Price(Annual))
	assert.Equal(t, 29, starter.Price(Monthly))
	assert.Equal(t, 64*12, professional.BilledYearly(Annual))
	assert.Zero(t, professional.BilledYearly(Monthly))
	assert.Zero(t, enterprise.BilledYearly(Annual))
}

func TestPlan_SavingsPercent(t *testing.T) {
	assert.Equal(t, 17, starter.SavingsPercent())
	assert.Equal(t, 19, professional.SavingsPercent())
	assert.Zero(t, enterprise.SavingsPercent())
}

func TestPlan_CallToAction(t *testing.T) {
	assert.Equal(t, "Choose Starter", starter.CallToAction())
	assert.Equal(t, "Contact Sales", enterprise.CallToAction())
}

func TestTable(t *testing.T) {
	plans := []Plan{starter, professional, enterprise}

	annual := NewTable(plans, Annual, 20)
	assert.True(t, annual.ShowSavings())
	assert.Equal(t, []Plan{starter, professional}, annual.SelfServe())
	assert.Equal(t, []Plan{enterprise}, annual.ContactSales())

	assert.False(t, NewTable(plans, Monthly, 20).ShowSavings())
	assert.False(t, NewTable(plans, Annual, 0).ShowSavings())
}
