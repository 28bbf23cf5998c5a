package components

import (
	"fmt"
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/theme"
)

func Logo(name string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Span(
			Class("inline-flex items-center justify-center size-8 rounded-lg bg-primary text-primary-content font-bold"),
			g.Text(initial(name)),
		),
		Span(
			Class("font-bold text-xl"),
			g.Text(name),
		),
	)
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

// Icon renders an iconify lucide icon. Size classes follow the name,
// e.g. "shield size-5".
func Icon(icon, ariaLabel string) g.Node {
	parts := strings.Fields(icon)
	if len(parts) == 0 {
		return nil
	}
	classes := "iconify inline-block"
	if len(parts) > 1 {
		classes = fmt.Sprintf("iconify inline-block %s", strings.Join(parts[1:], " "))
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", "lucide:"+parts[0]),
			Role("img"),
			Aria("label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", "lucide:"+parts[0]),
		Aria("hidden", "true"),
	)
}

func SectionHeading(badgeIcon, badge, title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-16"),
		g.If(badge != "",
			Div(
				Class("inline-flex items-center gap-2 px-4 py-2 rounded-full bg-base-200 border border-base-300 mb-6"),
				Icon(badgeIcon+" size-4 text-primary", ""),
				Span(Class("text-sm font-semibold text-primary"), g.Text(badge)),
			),
		),
		H2(Class("text-4xl md:text-5xl font-bold mb-6 tracking-tight"), g.Text(title)),
		g.If(subtitle != "", P(Class("text-xl text-base-content/70 max-w-3xl mx-auto font-light"), g.Text(subtitle))),
	)
}

// ThemeToggle posts the opposite preference; the handler redirects back.
func ThemeToggle(current theme.Preference) g.Node {
	next := current.Toggle()
	label := "Switch to dark theme"
	icon := "moon"
	if current == theme.Dark {
		label = "Switch to light theme"
		icon = "sun"
	}

	return Form(
		Method("post"),
		Action("/theme"),
		Class("inline-flex"),
		Input(Type("hidden"), Name("theme"), Value(next.String())),
		Button(
			Type("submit"),
			Class("btn btn-ghost btn-sm btn-square"),
			Aria("label", label),
			Data("theme-toggle", next.String()),
			Icon(icon+" size-4", ""),
		),
	)
}

// pageHref builds a link back to the landing page that keeps the current
// view state. kv holds key/value pairs to override; an empty value removes
// the key.
func pageHref(state url.Values, fragment string, kv ...string) string {
	v := url.Values{}
	for k, vs := range state {
		v[k] = append([]string(nil), vs...)
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			v.Del(kv[i])
		} else {
			v.Set(kv[i], kv[i+1])
		}
	}

	href := "/"
	if enc := v.Encode(); enc != "" {
		href += "?" + enc
	}
	if fragment != "" {
		href += "#" + fragment
	}
	return href
}

func stars(n int) g.Node {
	return Div(
		Class("flex gap-1"),
		Aria("label", fmt.Sprintf("%d out of 5 stars", n)),
		g.Group(g.Map(make([]struct{}, n), func(struct{}) g.Node {
			return Icon("star size-4 text-warning", "")
		})),
	)
}
