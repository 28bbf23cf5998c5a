package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFoundPage(cfg PageConfig, path string) g.Node {
	cfg.Title = "Page not found | " + cfg.SiteName
	return Layout(cfg,
		Main(
			Class("min-h-screen flex items-center justify-center px-4"),
			Div(
				Class("text-center"),
				P(Class("text-8xl font-black text-primary"), g.Text("404")),
				H1(Class("mt-4 text-3xl font-bold"), g.Text("Oops! Page not found")),
				P(
					Class("mt-3 text-base-content/70"),
					g.Text("We couldn't find "),
					Code(g.Text(path)),
					g.Text("."),
				),
				A(Href("/"), Class("btn btn-primary mt-8"), Icon("home size-4", ""), g.Text("Return to Home")),
			),
		),
	)
}
