package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/theme"
)

type PageConfig struct {
	SiteName    string
	Title       string
	Description string
	OGImage     string
	Theme       theme.Preference
}

func Layout(cfg PageConfig, content ...g.Node) g.Node {
	if cfg.Theme == "" {
		cfg.Theme = theme.System
	}
	explicit := cfg.Theme != theme.System

	if cfg.Title == "" {
		cfg.Title = "ADmyBrand | AI-Powered Marketing Suite"
	}

	if cfg.OGImage == "" {
		cfg.OGImage = "/static/images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.If(explicit, g.Attr("data-theme", cfg.Theme.String())),
			g.If(cfg.Theme == theme.Dark, Class("dark")),
			Head(
				Meta(Charset("utf-8")),
				g.If(!explicit, Meta(Name("color-scheme"), Content("light dark"))),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(cfg.Title)),
				g.If(cfg.Description != "", Meta(Name("description"), Content(cfg.Description))),

				Meta(g.Attr("property", "og:title"), Content(cfg.Title)),
				Meta(g.Attr("property", "og:description"), Content(cfg.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(cfg.OGImage)),

				Link(Rel("icon"), Href("/static/images/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),

				Script(Src("https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/landing.js")),
			),
		),
	})
}
