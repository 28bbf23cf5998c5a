package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/content"
)

func BlogSection(b content.Blog) g.Node {
	return Section(
		ID("blog"),
		Class("py-24 sm:py-32"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading("book-open", "Blog", b.Title, b.Subtitle),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(b.Posts, postCard)),
			),
			g.If(len(b.Resources) > 0,
				Div(
					Class("grid sm:grid-cols-2 lg:grid-cols-4 gap-6 mt-16"),
					g.Group(g.Map(b.Resources, resourceCard)),
				),
			),
		),
	)
}

func postCard(p content.Post) g.Node {
	published := g.Text(p.Date)
	if t, err := p.Published(); err == nil {
		published = g.El("time", g.Attr("datetime", t.Format("2006-01-02")), g.Text(p.Date))
	}

	return Article(
		ID("post-"+p.Slug),
		Class("card bg-base-100 border border-base-300 overflow-hidden"),
		g.If(p.Featured, Data("featured", "true")),
		Img(Src(p.Image), Alt(p.Title), Loading("lazy"), Class("h-48 w-full object-cover")),
		Div(
			Class("card-body"),
			Div(
				Class("flex items-center gap-2 text-xs text-base-content/60"),
				Span(Class("badge badge-soft badge-primary"), g.Text(p.Category)),
				published,
				Span(g.Text("·")),
				Span(g.Text(p.ReadTime)),
			),
			H3(Class("card-title"), g.Text(p.Title)),
			P(Class("text-base-content/70"), g.Text(p.Excerpt)),
			P(Class("text-sm font-medium text-base-content/60"), g.Text(p.Author)),
		),
	)
}

func resourceCard(r content.Resource) g.Node {
	return Div(
		Class("card bg-base-200/60 border border-base-300 p-6"),
		Span(Class("text-3xl mb-3"), Aria("hidden", "true"), g.Text(r.Icon)),
		P(Class("text-xs uppercase tracking-wide text-primary font-semibold"), g.Text(r.Type)),
		H4(Class("font-semibold mt-1"), g.Text(r.Title)),
		P(Class("text-sm text-base-content/70 mt-2"), g.Text(r.Description)),
	)
}
