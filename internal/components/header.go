package components

import (
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/content"
	"github.com/AadarshMishraa/ADmyBrand/internal/navigation"
	"github.com/AadarshMishraa/ADmyBrand/internal/theme"
)

type HeaderView struct {
	SiteName string
	Items    []content.NavItem
	// Tracker holds the highlighted section. Its full section list,
	// including sections without a nav item, and its reference line are
	// handed to the browser script, which keeps tracking from there.
	Tracker *navigation.Tracker
	Bar     *navigation.Bar
	// Throttle bounds how often the browser script handles scroll events.
	Throttle time.Duration
	Theme    theme.Preference
}

func PageHeader(v HeaderView) g.Node {
	tracker := v.Tracker
	if tracker == nil {
		tracker, _ = navigation.NewTracker(navigation.DefaultSections, navigation.DefaultReferenceLine)
	}
	bar := v.Bar
	if bar == nil {
		bar = navigation.NewBar(navigation.DefaultHideThreshold, navigation.DefaultScrolledThreshold)
	}
	hide, scrolled := bar.Thresholds()
	state := bar.State()
	active := tracker.Active()

	return Header(
		ID("site-header"),
		Data("sections", strings.Join(tracker.Sections(), " ")),
		Data("active-section", active),
		Data("reference-line", formatFloat(tracker.ReferenceLine())),
		Data("hide-threshold", formatFloat(hide)),
		Data("scrolled-threshold", formatFloat(scrolled)),
		g.If(v.Throttle > 0, Data("throttle-ms", strconv.FormatInt(v.Throttle.Milliseconds(), 10))),
		Data("hidden", boolAttr(state.Hidden)),
		Data("scrolled", boolAttr(state.Scrolled)),
		Class("group fixed inset-x-0 top-0 z-[60] transition-transform duration-300 data-[hidden=true]:-translate-y-full"),

		Div(
			Class("container mx-auto flex justify-between items-center px-4 py-3 group-data-[scrolled=true]:bg-base-100/80 group-data-[scrolled=true]:backdrop-blur-xl group-data-[scrolled=true]:shadow"),

			Div(
				Class("flex items-center gap-2"),

				Div(
					Class("lg:hidden flex-none"),
					Div(
						Class("drawer"),
						Input(
							ID("landing-menu-drawer"),
							Type("checkbox"),
							Class("drawer-toggle"),
						),
						Div(
							Class("drawer-content"),
							Label(
								For("landing-menu-drawer"),
								Class("btn drawer-button btn-ghost btn-square btn-sm"),
								Aria("label", "Open menu"),
								Icon("menu size-4.5", ""),
							),
						),
						Div(
							Class("z-[50] drawer-side"),
							Label(
								For("landing-menu-drawer"),
								Aria("label", "close sidebar"),
								Class("drawer-overlay"),
							),
							Ul(
								Class("bg-base-100 p-4 w-80 min-h-full text-base-content menu"),
								navItems(v.Items, active),
							),
						),
					),
				),

				A(
					Href("#home"),
					Logo(v.SiteName),
				),
			),

			Nav(
				Aria("label", "Primary"),
				Ul(
					Class("hidden lg:inline-flex gap-2 px-0 menu menu-horizontal"),
					navItems(v.Items, active),
				),
			),

			Div(
				Class("inline-flex items-center gap-3"),
				ThemeToggle(v.Theme),
				A(
					Href("#pricing"),
					Class("btn btn-primary btn-sm"),
					g.Text("Get Started"),
				),
			),
		),
	)
}

func navItems(items []content.NavItem, active string) g.Node {
	return g.Group(g.Map(items, func(item content.NavItem) g.Node {
		isActive := item.Section == active
		return Li(
			A(
				Href(item.Href()),
				Data("nav-section", item.Section),
				g.If(isActive, Class("menu-active")),
				g.If(isActive, Aria("current", "location")),
				g.Text(item.Label),
			),
		)
	}))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
