package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/content"
)

type NewsletterView struct {
	Email      string
	Error      string
	Subscribed bool
}

func PageFooter(siteName string, f content.Footer, year int, nl NewsletterView) g.Node {
	return Footer(
		Class("relative border-t border-base-300"),

		Div(
			Class("z-[2] relative pt-12 xl:pt-16 container mx-auto px-4"),

			Div(
				Class("gap-8 grid grid-cols-2 md:grid-cols-6"),

				Div(
					Class("col-span-2"),
					Logo(siteName),

					P(
						Class("mt-3 max-sm:text-sm text-base-content/80"),
						g.Text(f.Tagline),
					),

					Div(
						Class("flex items-center gap-2.5 mt-6"),
						g.Group(g.Map(f.Social, socialLink)),
					),
				),

				g.Group(g.Map(f.Sections, func(s content.LinkGroup) g.Node {
					return Div(
						Class("col-span-1"),
						P(Class("font-medium"), g.Text(s.Title)),
						Div(
							Class("flex flex-col space-y-1.5 mt-5 text-base-content/80"),
							g.Group(g.Map(s.Links, func(l content.Link) g.Node {
								return A(Href(l.Href), g.Text(l.Label))
							})),
						),
					)
				})),
			),

			newsletterForm(f.Newsletter, nl),

			Div(
				Class("flex flex-wrap justify-between items-center gap-3 mt-12 py-6 border-t border-base-300"),
				P(g.Textf("© %d %s", year, f.Copyright)),
				Div(
					Class("flex flex-wrap gap-4 text-sm text-base-content/60"),
					g.Group(g.Map(f.Certifications, func(c string) g.Node {
						return Span(Class("inline-flex items-center gap-1"), Icon("shield-check size-4", ""), g.Text(c))
					})),
				),
				A(Href("#home"), Class("btn btn-ghost btn-sm btn-circle"), Aria("label", "Back to top"), Icon("arrow-up size-4", "")),
			),
		),

		P(
			Class("max-lg:hidden flex justify-center -mt-12 h-[195px] overflow-hidden font-black text-[200px] text-base-content/5 tracking-[12px] whitespace-nowrap select-none"),
			Aria("hidden", "true"),
			g.Text(strings.ToUpper(siteName)),
		),
	)
}

func socialLink(l content.Link) g.Node {
	return A(
		Class("btn btn-sm btn-circle"),
		Href(l.Href),
		g.If(strings.HasPrefix(l.Href, "http"), Target("_blank")),
		Icon(strings.ToLower(l.Label), l.Label),
	)
}

func newsletterForm(blurb string, nl NewsletterView) g.Node {
	return Div(
		ID("newsletter"),
		Class("mt-12 card bg-base-200/60 border border-base-300 p-6 md:flex-row md:items-center md:justify-between gap-4"),
		Div(
			H4(Class("font-semibold"), g.Text("Stay in the loop")),
			P(Class("text-base-content/70 text-sm"), g.Text(blurb)),
		),
		g.If(nl.Subscribed,
			P(Class("text-success font-medium"), Role("status"), g.Text("Thanks for subscribing!")),
		),
		g.If(!nl.Subscribed,
			Form(
				Method("post"),
				Action("/newsletter#newsletter"),
				Class("flex flex-col gap-1"),
				Div(
					Class("join"),
					Input(
						Type("email"),
						Name("email"),
						Value(nl.Email),
						Placeholder("you@company.com"),
						Aria("label", "Email address"),
						Class(inputClass("input join-item", nl.Error)),
					),
					Button(Type("submit"), Class("btn btn-primary join-item"), g.Text("Subscribe")),
				),
				g.If(nl.Error != "", P(Class("text-xs text-error"), Role("alert"), g.Text(nl.Error))),
			),
		),
	)
}
