package components

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/content"
	"github.com/AadarshMishraa/ADmyBrand/internal/pricing"
)

func PricingSection(p content.Pricing, table pricing.Table, state url.Values) g.Node {
	return Section(
		ID("pricing"),
		Class("py-24 sm:py-32 bg-base-200/40"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading("crown", "Pricing", p.Title, p.Subtitle),

			billingToggle(table, state),

			Div(
				Class("grid md:grid-cols-2 gap-8 max-w-5xl mx-auto mt-12"),
				g.Group(g.Map(table.SelfServe(), func(plan pricing.Plan) g.Node {
					return planCard(plan, table.Billing)
				})),
			),

			g.Group(g.Map(table.ContactSales(), salesCard)),

			g.If(len(p.FAQ) > 0,
				Div(
					Class("max-w-3xl mx-auto mt-24"),
					H3(Class("text-3xl font-bold text-center mb-8"), g.Text("Common Questions")),
					pricingAccordion(p.FAQ),
				),
			),
		),
	)
}

func billingToggle(table pricing.Table, state url.Values) g.Node {
	annual := table.Billing == pricing.Annual
	label := "Switch to annual billing"
	if annual {
		label = "Switch to monthly billing"
	}

	return Div(
		Class("flex items-center justify-center gap-4"),
		Span(Class(activeClass(!annual, "text-sm font-medium")), g.Text("Monthly")),
		A(
			Href(pageHref(state, "pricing", "billing", table.Billing.Toggle().String())),
			Role("switch"),
			Aria("checked", boolAttr(annual)),
			Aria("label", label),
			Data("billing", table.Billing.String()),
			Class("toggle toggle-primary"),
		),
		Span(Class(activeClass(annual, "text-sm font-medium")), g.Text("Annual")),
		g.If(table.ShowSavings(),
			Span(
				Class("badge badge-success badge-soft font-bold"),
				g.Textf("Save %d%%", table.Discount),
			),
		),
	)
}

func activeClass(active bool, base string) string {
	if active {
		return base + " text-base-content"
	}
	return base + " text-base-content/50"
}

func planCard(plan pricing.Plan, billing pricing.Billing) g.Node {
	btn := "btn btn-ghost w-full"
	card := "card relative h-full bg-base-100 border border-base-300 p-8"
	if plan.Popular {
		btn = "btn btn-primary w-full"
		card = "card relative h-full bg-base-100 border border-primary/50 shadow-2xl shadow-primary/10 p-8 lg:scale-105"
	}

	return Article(
		Class(card),
		Data("plan", plan.Name),
		g.If(plan.Popular,
			Div(Class("absolute -top-4 left-1/2 -translate-x-1/2 badge badge-primary"), g.Text("Most Popular")),
		),
		Div(
			Class("flex items-center gap-4 mb-4"),
			Icon(plan.Icon+" size-6", ""),
			H3(Class("text-2xl font-bold"), g.Text(plan.Name)),
		),
		P(Class("text-base-content/70 mb-6 min-h-[40px]"), g.Text(plan.Description)),
		Div(
			Class("mb-8"),
			Div(
				Class("flex items-baseline gap-2"),
				Span(Class("text-5xl font-bold"), Data("price", plan.Name), g.Textf("$%d", plan.Price(billing))),
				Span(Class("text-base-content/60"), g.Text("/ user / month")),
			),
			g.If(plan.BilledYearly(billing) > 0,
				P(Class("text-sm text-base-content/60 h-5"), g.Textf("Billed as $%d per year", plan.BilledYearly(billing))),
			),
			g.If(billing == pricing.Annual && plan.SavingsPercent() > 0,
				P(Class("text-sm text-success"), g.Textf("You save %d%% with annual billing", plan.SavingsPercent())),
			),
		),
		A(Href("#contact"), Class(btn), g.Text(plan.CallToAction())),
		Ul(
			Class("space-y-3 mt-8"),
			g.Group(g.Map(plan.Features, func(f string) g.Node {
				return Li(Class("flex items-start gap-3 text-sm"), Icon("check size-5 text-success", ""), g.Text(f))
			})),
			g.Group(g.Map(plan.Limitations, func(l string) g.Node {
				return Li(Class("flex items-start gap-3 text-sm text-base-content/50"), Icon("x-circle size-5", ""), g.Text(l))
			})),
		),
	)
}

func salesCard(plan pricing.Plan) g.Node {
	features := plan.Features
	more := false
	if len(features) > 4 {
		features = features[:4]
		more = true
	}

	return Div(
		Class("max-w-5xl mx-auto mt-12 card bg-base-100 border border-base-300 p-8 md:flex-row md:items-center md:justify-between gap-8"),
		Data("plan", plan.Name),
		Div(
			Div(
				Class("flex items-center gap-4 mb-4"),
				Icon(plan.Icon+" size-6", ""),
				Div(
					H3(Class("text-2xl font-bold"), g.Text(plan.Name)),
					P(Class("text-base-content/70 font-light"), g.Text(plan.Description)),
				),
			),
			Ul(
				Class("grid sm:grid-cols-2 gap-2 text-sm"),
				g.Group(g.Map(features, func(f string) g.Node {
					return Li(Class("flex items-start gap-2"), Icon("check size-4 text-success", ""), g.Text(f))
				})),
				g.If(more, Li(g.Text("...and much more"))),
			),
		),
		A(Href("#contact"), Class("btn btn-primary"), g.Text(plan.CallToAction())),
	)
}

// pricingAccordion uses native disclosure widgets; the first answer starts open.
func pricingAccordion(faqs []content.QA) g.Node {
	items := make([]g.Node, 0, len(faqs))
	for i, qa := range faqs {
		items = append(items, Details(
			Class("collapse collapse-plus bg-base-100 border border-base-300"),
			g.If(i == 0, g.Attr("open")),
			Summary(Class("collapse-title font-semibold"), g.Text(qa.Question)),
			Div(
				Class("collapse-content text-base-content/70"),
				ID(fmt.Sprintf("pricing-faq-%d", i)),
				P(g.Text(qa.Answer)),
			),
		))
	}
	return Div(Class("space-y-4"), g.Group(items))
}
