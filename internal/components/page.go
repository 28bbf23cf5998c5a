package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/carousel"
	"github.com/AadarshMishraa/ADmyBrand/internal/content"
	"github.com/AadarshMishraa/ADmyBrand/internal/pricing"
)

// LandingPage is everything one render of the landing page needs.
type LandingPage struct {
	Config     PageConfig
	Site       *content.Site
	State      url.Values
	Header     HeaderView
	Greeting   string
	Pricing    pricing.Table
	Carousel   carousel.Carousel
	FAQ        FAQView
	Contact    ContactView
	Newsletter NewsletterView
	Year       int
}

func Landing(p LandingPage) g.Node {
	return Layout(p.Config,
		PageHeader(p.Header),
		Main(
			HeroSection(p.Site.Hero, p.Greeting),
			FeaturesSection(p.Site.Features),
			PricingSection(p.Site.Pricing, p.Pricing, p.State),
			TestimonialsSection(p.Site.Testimonials, p.Carousel, p.State),
			FAQSection(p.FAQ),
			BlogSection(p.Site.Blog),
			ContactSection(p.Site.Contact, p.Contact),
		),
		PageFooter(p.Config.SiteName, p.Site.Footer, p.Year, p.Newsletter),
	)
}
