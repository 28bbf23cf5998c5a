package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/content"
)

func FeaturesSection(features []content.Feature) g.Node {
	return Section(
		ID("features"),
		Class("py-24 sm:py-32"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading("zap", "Features",
				"Everything you need to scale",
				"Powerful tools designed to streamline your workflow, boost productivity, and drive growth."),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(features, featureCard)),
			),
		),
	)
}

func featureCard(f content.Feature) g.Node {
	return Article(
		Class("card bg-base-200/60 border border-base-300 p-8 hover:shadow-xl transition-shadow"),
		Div(
			Class("inline-flex items-center justify-center size-12 rounded-xl mb-6"),
			g.If(f.Color != "", Style("color: "+f.Color)),
			Icon(f.Icon+" size-6", ""),
		),
		H3(Class("text-xl font-semibold mb-3"), g.Text(f.Title)),
		P(Class("text-base-content/70 mb-6"), g.Text(f.Description)),
		Ul(
			Class("space-y-2"),
			g.Group(g.Map(f.Benefits, func(b string) g.Node {
				return Li(
					Class("flex items-center gap-2 text-sm"),
					Icon("check size-4 text-success", ""),
					g.Text(b),
				)
			})),
		),
	)
}
