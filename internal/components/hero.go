package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/content"
)

func HeroSection(hero content.Hero, greeting string) g.Node {
	return Section(
		ID("home"),
		Class("relative z-2 overflow-hidden pt-28 lg:min-h-screen"),

		Div(Class("absolute inset-0 -z-1 opacity-20 grainy")),

		Div(
			Class("container mx-auto px-6 grid lg:grid-cols-5 gap-16 items-center"),

			Div(
				Class("lg:col-span-3 text-center lg:text-left"),

				g.If(hero.Badge != "",
					Div(
						Class("inline-flex items-center gap-2 rounded-full border border-base-300 bg-base-200 py-1 px-3 text-sm"),
						Icon("sparkles size-4 text-primary", ""),
						g.Text(hero.Badge),
					),
				),

				P(Class("mt-6 text-lg text-base-content/70"), g.Text(greeting)),

				H1(
					Class("mt-2 text-4xl leading-tight font-extrabold tracking-[-0.5px] md:text-5xl xl:text-6xl"),
					headline(hero.Headline, hero.Highlight),
				),

				P(
					Class("text-base-content/80 mt-5 xl:text-lg"),
					g.Text(hero.Subheadline),
				),

				Div(
					Class("mt-8 inline-flex flex-wrap justify-center gap-3"),
					A(
						Href(hero.PrimaryCTA.Href),
						Class("btn btn-primary btn-lg shadow-primary/20 shadow-xl"),
						g.Text(hero.PrimaryCTA.Label),
						Icon("arrow-right size-4", ""),
					),
					g.If(hero.DemoVideoID != "",
						A(
							Href("https://www.youtube.com/watch?v="+hero.DemoVideoID),
							Target("_blank"),
							Rel("noopener noreferrer"),
							Data("video-id", hero.DemoVideoID),
							Class("btn btn-ghost btn-lg"),
							Icon("play size-4", ""),
							g.Text(hero.DemoCTA),
						),
					),
				),

				Div(
					Class("mt-12 grid grid-cols-2 md:grid-cols-4 gap-6"),
					g.Group(g.Map(hero.Stats, statCard)),
				),
			),

			Div(
				Class("lg:col-span-2 hidden lg:block"),
				Img(
					Src("/static/images/dashboard.svg"),
					Alt("Modern dashboard interface"),
					Class("w-full rounded-3xl shadow-2xl border border-base-300"),
				),
			),
		),

		g.If(len(hero.Partners) > 0,
			Div(
				Class("container mx-auto px-6 mt-16 pb-12"),
				P(Class("text-center text-sm text-base-content/60 mb-6"), g.Text("Trusted by innovative teams")),
				Div(
					Class("flex flex-wrap justify-center items-center gap-8 opacity-70"),
					g.Group(g.Map(hero.Partners, func(p content.Partner) g.Node {
						return Img(Src(p.Logo), Alt(p.Name), Loading("lazy"), Class("h-10"))
					})),
				),
			),
		),
	)
}

func headline(text string, highlight []string) g.Node {
	marked := make(map[string]bool, len(highlight))
	for _, w := range highlight {
		marked[w] = true
	}

	words := strings.Fields(text)
	nodes := make([]g.Node, 0, len(words)*2)
	for i, w := range words {
		if i > 0 {
			nodes = append(nodes, g.Text(" "))
		}
		if marked[w] {
			nodes = append(nodes, Span(Class("bg-linear-to-r from-primary to-accent bg-clip-text text-transparent"), g.Text(w)))
		} else {
			nodes = append(nodes, g.Text(w))
		}
	}
	return g.Group(nodes)
}

func statCard(s content.Stat) g.Node {
	return Div(
		Class("group relative"),
		Title(s.Tooltip),
		P(
			Class("text-3xl font-bold"),
			Counter(s.Value),
		),
		P(Class("text-sm text-base-content/60 font-medium"), g.Text(s.Label)),
	)
}

// Counter renders the final value; the client script counts up to it using
// the data attributes.
func Counter(f content.Figure) g.Node {
	return Span(
		Class("counter tabular-nums"),
		Data("count-to", f.Number()),
		Data("decimals", strconv.Itoa(f.Decimals)),
		Data("prefix", f.Prefix),
		Data("suffix", f.Suffix),
		g.Text(f.String()),
	)
}
