package components

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/AadarshMishraa/ADmyBrand/internal/assist"
	"github.com/AadarshMishraa/ADmyBrand/internal/carousel"
	"github.com/AadarshMishraa/ADmyBrand/internal/contact"
	"github.com/AadarshMishraa/ADmyBrand/internal/content"
	"github.com/AadarshMishraa/ADmyBrand/internal/faq"
	"github.com/AadarshMishraa/ADmyBrand/internal/navigation"
	"github.com/AadarshMishraa/ADmyBrand/internal/pricing"
	"github.com/AadarshMishraa/ADmyBrand/internal/theme"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func site(t *testing.T) *content.Site {
	t.Helper()
	s, err := content.Load("")
	require.NoError(t, err)
	return s
}

func TestPageHref(t *testing.T) {
	state := url.Values{"billing": {"monthly"}, "open": {"free-trial"}}

	assert.Equal(t, "/?billing=annual&open=free-trial#pricing", pageHref(state, "pricing", "billing", "annual"))
	assert.Equal(t, "/?billing=monthly#faq", pageHref(state, "faq", "open", ""))
	assert.Equal(t, "/", pageHref(nil, ""))
	assert.Equal(t, []string{"free-trial"}, state["open"], "state is not mutated")
}

func TestLayout_Theme(t *testing.T) {
	html := render(t, Layout(PageConfig{Title: "T", Theme: theme.Dark}))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, `class="dark"`)
	assert.Contains(t, html, "<title>T</title>")
	assert.Contains(t, html, `/static/js/landing.js`)
	assert.NotContains(t, html, `name="color-scheme"`)

	light := render(t, Layout(PageConfig{Theme: theme.Light}))
	assert.Contains(t, light, `data-theme="light"`)
	assert.NotContains(t, light, `class="dark"`)

	system := render(t, Layout(PageConfig{}))
	assert.NotContains(t, system, `data-theme=`)
	assert.NotContains(t, system, `class="dark"`)
	assert.Contains(t, system, `name="color-scheme" content="light dark"`)
}

func TestPageHeader_MarksActiveSection(t *testing.T) {
	s := site(t)
	tr, err := navigation.NewTracker(navigation.DefaultSections, 72)
	require.NoError(t, err)
	require.True(t, tr.Select("pricing"))

	html := render(t, PageHeader(HeaderView{
		SiteName: "ADmyBrand",
		Items:    s.Navigation,
		Tracker:  tr,
		Bar:      navigation.NewBar(200, 30),
		Theme:    theme.Light,
	}))

	assert.Contains(t, html, `data-sections="home features pricing testimonials faq contact"`)
	assert.Contains(t, html, `data-active-section="pricing"`)
	assert.Contains(t, html, `data-reference-line="72"`)
	assert.Contains(t, html, `data-hide-threshold="200"`)
	assert.Contains(t, html, `data-scrolled-threshold="30"`)
	assert.NotContains(t, html, `data-throttle-ms`)
	assert.Contains(t, html, `href="#pricing" data-nav-section="pricing" class="menu-active" aria-current="location"`)
	assert.Contains(t, html, `name="theme" value="dark"`)
}

func TestPageHeader_Defaults(t *testing.T) {
	html := render(t, PageHeader(HeaderView{SiteName: "ADmyBrand"}))

	assert.Contains(t, html, `data-active-section="home"`)
	assert.Contains(t, html, `data-reference-line="100"`)
	assert.Contains(t, html, `data-hide-threshold="150"`)
	assert.Contains(t, html, `data-scrolled-threshold="20"`)
	assert.Contains(t, html, `data-hidden="false" data-scrolled="false"`)
}

func TestPageHeader_BarState(t *testing.T) {
	bar := navigation.NewBar(150, 20)
	bar.OnScrollDelta(100, 400)

	html := render(t, PageHeader(HeaderView{SiteName: "ADmyBrand", Bar: bar}))
	assert.Contains(t, html, `data-hidden="true" data-scrolled="true"`)
}

func TestCounter_PreservesDecimals(t *testing.T) {
	html := render(t, Counter(content.MustParseFigure("99.9%")))
	assert.Contains(t, html, `data-count-to="99.9"`)
	assert.Contains(t, html, `data-decimals="1"`)
	assert.Contains(t, html, `data-suffix="%"`)
	assert.Contains(t, html, ">99.9%<")
}

func TestPricingSection_Billing(t *testing.T) {
	s := site(t)

	annual := render(t, PricingSection(s.Pricing, pricing.NewTable(s.Pricing.Plans, pricing.Annual, 20), url.Values{}))
	assert.Contains(t, annual, "$24")
	assert.Contains(t, annual, "$64")
	assert.Contains(t, annual, "Billed as $288 per year")
	assert.Contains(t, annual, "Save 20%")
	assert.Contains(t, annual, "You save 19% with annual billing")
	assert.Contains(t, annual, "Most Popular")
	assert.Contains(t, annual, "Contact Sales")
	assert.Contains(t, annual, `href="/?billing=monthly#pricing"`)

	monthly := render(t, PricingSection(s.Pricing, pricing.NewTable(s.Pricing.Plans, pricing.Monthly, 20), url.Values{}))
	assert.Contains(t, monthly, "$29")
	assert.Contains(t, monthly, "$79")
	assert.NotContains(t, monthly, "Save 20%")
	assert.NotContains(t, monthly, "Billed as")
	assert.NotContains(t, monthly, "You save")
}

func TestTestimonialsSection_Carousel(t *testing.T) {
	s := site(t)
	c := carousel.New(len(s.Testimonials.Featured), 0)

	html := render(t, TestimonialsSection(s.Testimonials, c, url.Values{}))
	assert.Contains(t, html, "Sarah Johnson")
	assert.Contains(t, html, `href="/?slide=2#testimonials"`, "previous wraps to the last slide")
	assert.Contains(t, html, `href="/?slide=1#testimonials"`)
	assert.Contains(t, html, `data-count-to="150"`)

	html = render(t, TestimonialsSection(s.Testimonials, c.GoTo(1), url.Values{}))
	assert.Contains(t, html, "Michael Chen")
	assert.Contains(t, html, `data-carousel-direction="1"`)
}

func faqQuery(t *testing.T, v url.Values) *faq.Query {
	t.Helper()
	q := faq.NewQuery(site(t).Catalog())
	q.Apply(v)
	return q
}

func TestFAQSection_OpenEntryAndToggleLinks(t *testing.T) {
	q := faqQuery(t, url.Values{"open": {"refund-policy"}})
	html := render(t, FAQSection(FAQView{Query: q, State: url.Values{"billing": {"monthly"}}}))

	assert.Contains(t, html, `data-active-category="Billing"`)
	assert.Contains(t, html, `id="faq-answer-refund-policy"`)
	assert.NotContains(t, html, `id="faq-answer-billing-teams"`)
	// The open entry links to the closed state, the others open themselves.
	assert.Contains(t, html, `href="/?billing=monthly&amp;category=Billing#refund-policy"`)
	assert.Contains(t, html, `href="/?billing=monthly&amp;category=Billing&amp;open=billing-teams#billing-teams"`)
	assert.Contains(t, html, `aria-expanded="true"`)

	open, ok := q.OpenEntry()
	require.True(t, ok, "rendering does not toggle the query itself")
	assert.Equal(t, "refund-policy", open.ID)
}

func TestFAQSection_NoResults(t *testing.T) {
	q := faqQuery(t, url.Values{"category": {"General"}, "q": {"blockchain"}})
	html := render(t, FAQSection(FAQView{Query: q}))

	assert.Contains(t, html, "data-faq-empty")
	assert.Contains(t, html, "No questions match “blockchain”.")
	assert.Contains(t, html, `value="blockchain"`)
}

func TestAssistPanel(t *testing.T) {
	assert.Nil(t, AssistPanel(AssistView{}))

	html := render(t, AssistPanel(AssistView{
		Enabled:  true,
		Question: "SSO?",
		Answer:   &assist.Answer{Text: assist.FallbackAnswer, Fallback: true},
	}))
	assert.Contains(t, html, `action="/api/faq/ask"`)
	assert.Contains(t, html, `data-assist-fallback="true"`)
	assert.Contains(t, html, "Please try again later.")
}

func TestContactSection_States(t *testing.T) {
	info := site(t).Contact

	idle := render(t, ContactSection(info, ContactView{
		Token: "tok",
		Snapshot: contact.Snapshot{
			Form:   contact.Form{Name: "Ada", Email: "bad"},
			Errors: contact.FieldErrors{contact.FieldEmail: "Email address is invalid.", contact.FieldMessage: "Message is required."},
		},
	}))
	assert.Contains(t, idle, `data-contact-state="idle"`)
	assert.Contains(t, idle, `name="token" value="tok"`)
	assert.Contains(t, idle, `value="Ada"`)
	assert.Contains(t, idle, "Email address is invalid.")
	assert.Contains(t, idle, "Message is required.")
	assert.Contains(t, idle, `aria-invalid="true"`)

	done := render(t, ContactSection(info, ContactView{Snapshot: contact.Snapshot{State: contact.Submitted}}))
	assert.Contains(t, done, "Message Sent!")
	assert.NotContains(t, done, "<form")

	failed := render(t, ContactSection(info, ContactView{Snapshot: contact.Snapshot{State: contact.Failed}}))
	assert.Contains(t, failed, "alert-error")
	assert.Contains(t, failed, "<form")
}

func TestLanding_RendersEverySection(t *testing.T) {
	s := site(t)
	q := faq.NewQuery(s.Catalog())
	html := render(t, Landing(LandingPage{
		Config:   PageConfig{SiteName: "ADmyBrand", Title: "ADmyBrand"},
		Site:     s,
		State:    url.Values{},
		Header:   HeaderView{SiteName: "ADmyBrand", Items: s.Navigation},
		Greeting: "Good morning.",
		Pricing:  pricing.NewTable(s.Pricing.Plans, pricing.Annual, s.Pricing.Discount),
		Carousel: carousel.New(len(s.Testimonials.Featured), 0),
		FAQ:      FAQView{Query: q},
		Contact:  ContactView{Token: "t"},
		Year:     2024,
	}))

	for _, id := range append(append([]string{}, navigation.DefaultSections...), "blog", "newsletter") {
		assert.Contains(t, html, `id="`+id+`"`, id)
	}
	assert.Contains(t, html, "© 2024 ADmyBrand. All rights reserved.")
	assert.Contains(t, html, "Good morning.")
}

func TestNotFoundPage(t *testing.T) {
	html := render(t, NotFoundPage(PageConfig{SiteName: "ADmyBrand"}, "/nope<script>"))
	assert.Contains(t, html, "<title>Page not found | ADmyBrand</title>")
	assert.Contains(t, html, "/nope&lt;script&gt;")
}
