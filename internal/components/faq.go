package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/assist"
	"github.com/AadarshMishraa/ADmyBrand/internal/faq"
)

type AssistView struct {
	Enabled  bool
	Question string
	Answer   *assist.Answer
	Error    string
}

type FAQView struct {
	Query *faq.Query
	// State is the page state links must carry. FAQ keys in it are replaced
	// by the query's own state.
	State  url.Values
	Assist AssistView
}

func FAQSection(v FAQView) g.Node {
	q := v.Query
	base := mergeValues(withoutFAQ(v.State), q.Values())
	visible := q.VisibleEntries()

	return Section(
		ID("faq"),
		Class("py-24 sm:py-32 bg-base-200/40"),
		Data("active-category", q.ActiveCategory()),
		Div(
			Class("container mx-auto px-4 max-w-4xl"),
			SectionHeading("help-circle", "FAQ", "Frequently Asked Questions",
				"Everything you need to know about the product and billing."),

			Div(
				Role("tablist"),
				Class("tabs tabs-box justify-center mb-8"),
				g.Group(g.Map(q.Catalog().CategoryNames(), func(name string) g.Node {
					active := name == q.ActiveCategory()
					return A(
						Role("tab"),
						Href(pageHref(base, "faq", "category", name, "open", "")),
						Data("category", name),
						g.If(active, Aria("selected", "true")),
						Class(tabClass(active)),
						g.Text(name),
					)
				})),
			),

			searchForm(q, v.State),

			g.If(len(visible) == 0,
				P(
					Class("text-center text-base-content/60 py-12"),
					Data("faq-empty", ""),
					g.Textf("No questions match “%s”.", q.SearchTerm()),
				),
			),

			Div(
				Class("space-y-4"),
				g.Group(faqItems(q, withoutFAQ(v.State))),
			),

			AssistPanel(v.Assist),
		),
	)
}

func collapseClass(open bool) string {
	if open {
		return "collapse collapse-arrow collapse-open bg-base-100 border border-base-300"
	}
	return "collapse collapse-arrow bg-base-100 border border-base-300"
}

func tabClass(active bool) string {
	if active {
		return "tab tab-active"
	}
	return "tab"
}

func searchForm(q *faq.Query, state url.Values) g.Node {
	return Form(
		Method("get"),
		Action("/#faq"),
		Role("search"),
		Class("mb-8"),
		hiddenState(state, "billing", "slide"),
		Input(Type("hidden"), Name("category"), Value(q.ActiveCategory())),
		Label(
			Class("input w-full"),
			Icon("search size-4 opacity-60", ""),
			Input(
				Type("search"),
				Name("q"),
				Value(q.SearchTerm()),
				Placeholder("Search questions..."),
				Aria("label", "Search questions"),
				Data("faq-search", ""),
			),
		),
	)
}

// faqItems renders the visible entries. Each toggle link carries the state
// the query would be in after toggling that entry.
func faqItems(q *faq.Query, rest url.Values) []g.Node {
	visible := q.VisibleEntries()
	openIndex, hasOpen := q.OpenIndex()

	nodes := make([]g.Node, 0, len(visible))
	for i, e := range visible {
		open := hasOpen && i == openIndex
		next := q.Clone()
		next.Toggle(i)
		answerID := "faq-answer-" + e.ID

		nodes = append(nodes, Div(
			ID(e.ID),
			Class(collapseClass(open)),
			A(
				Href(pageHref(mergeValues(rest, next.Values()), e.ID)),
				Class("collapse-title font-semibold"),
				Aria("expanded", boolAttr(open)),
				Aria("controls", answerID),
				Data("faq-toggle", e.ID),
				g.Text(e.Question),
			),
			g.If(open,
				Div(
					ID(answerID),
					Class("collapse-content text-base-content/70"),
					P(g.Text(e.Answer)),
				),
			),
		))
	}
	return nodes
}

func AssistPanel(v AssistView) g.Node {
	if !v.Enabled {
		return nil
	}

	return Div(
		ID("faq-assist"),
		Class("card bg-base-100 border border-base-300 p-6 mt-12"),
		H3(Class("text-lg font-semibold mb-2 flex items-center gap-2"),
			Icon("sparkles size-5 text-primary", ""),
			g.Text("Can't find your answer? Ask our AI assistant"),
		),
		Form(
			Method("post"),
			Action("/api/faq/ask"),
			Class("flex gap-2"),
			Input(
				Type("text"),
				Name("question"),
				Value(v.Question),
				Placeholder("e.g. Do you support SSO?"),
				Class("input flex-1"),
				Aria("label", "Your question"),
				Required(),
			),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Ask")),
		),
		g.If(v.Error != "", P(Class("text-error text-sm mt-3"), Role("alert"), g.Text(v.Error))),
		g.Iff(v.Answer != nil, func() g.Node {
			return Div(
				Class("mt-4 p-4 rounded-box bg-base-200"),
				Data("assist-fallback", boolAttr(v.Answer.Fallback)),
				Role("status"),
				P(g.Text(v.Answer.Text)),
			)
		}),
	)
}

func hiddenState(state url.Values, keys ...string) g.Node {
	var nodes []g.Node
	for _, k := range keys {
		if v := state.Get(k); v != "" {
			nodes = append(nodes, Input(Type("hidden"), Name(k), Value(v)))
		}
	}
	return g.Group(nodes)
}

func mergeValues(base, override url.Values) url.Values {
	out := url.Values{}
	for k, vs := range base {
		out[k] = append([]string(nil), vs...)
	}
	for k, vs := range override {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func withoutFAQ(state url.Values) url.Values {
	out := url.Values{}
	for k, vs := range state {
		switch k {
		case "category", "q", "open":
		default:
			out[k] = append([]string(nil), vs...)
		}
	}
	return out
}
