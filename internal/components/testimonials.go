package components

import (
	"fmt"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/carousel"
	"github.com/AadarshMishraa/ADmyBrand/internal/content"
)

func TestimonialsSection(t content.Testimonials, c carousel.Carousel, state url.Values) g.Node {
	if c.Empty() || c.Index() >= len(t.Featured) {
		return nil
	}
	current := t.Featured[c.Index()]

	return Section(
		ID("testimonials"),
		Class("py-24 sm:py-32 overflow-hidden"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading("star", "Wall of Love", t.Title, t.Subtitle),

			Div(
				Class("grid lg:grid-cols-3 gap-8 items-stretch"),

				Div(
					Class("lg:col-span-2 card bg-base-200/60 border border-base-300 p-8"),
					Data("carousel-index", strconv.Itoa(c.Index())),
					Data("carousel-direction", strconv.Itoa(int(c.Direction()))),
					Aria("roledescription", "carousel"),
					stars(current.Rating),
					g.El("blockquote",
						Class("text-xl md:text-2xl font-light my-8 leading-relaxed"),
						g.Textf("“%s”", current.Content),
					),
					Div(
						Class("flex flex-wrap gap-2 mb-8"),
						g.Group(g.Map(current.Tags, func(tag string) g.Node {
							return Span(Class("badge badge-outline"), g.Text(tag))
						})),
					),
					Div(
						Class("flex items-center justify-between"),
						Div(
							Class("flex items-center gap-4"),
							Img(Src(current.Image), Alt(current.Name), Loading("lazy"), Class("size-14 rounded-full object-cover")),
							Div(
								P(Class("font-semibold"), g.Text(current.Name)),
								P(Class("text-sm text-base-content/60"), g.Text(current.Title)),
							),
						),
						Div(
							Class("flex gap-2"),
							A(
								Href(pageHref(state, "testimonials", "slide", strconv.Itoa(c.PrevIndex()))),
								Class("btn btn-circle btn-ghost"),
								Aria("label", "Previous testimonial"),
								Icon("chevron-left size-5", ""),
							),
							A(
								Href(pageHref(state, "testimonials", "slide", strconv.Itoa(c.NextIndex()))),
								Class("btn btn-circle btn-ghost"),
								Aria("label", "Next testimonial"),
								Icon("chevron-right size-5", ""),
							),
						),
					),
					Div(
						Class("flex justify-center gap-2 mt-6"),
						g.Group(carouselDots(t.Featured, c, state)),
					),
				),

				Div(
					Class("card bg-base-200/60 border border-base-300 p-8 items-center justify-center text-center"),
					Img(Src(current.Image), Alt(current.Name), Loading("lazy"), Class("size-24 rounded-full object-cover mb-6")),
					g.If(current.VideoID != "",
						A(
							Href("https://www.youtube.com/watch?v="+current.VideoID),
							Target("_blank"),
							Rel("noopener noreferrer"),
							Data("video-id", current.VideoID),
							Class("btn btn-sm btn-ghost mb-4"),
							Icon("play size-4", ""),
							g.Text("Play video testimonial"),
						),
					),
					P(Class("text-sm text-base-content/60 mb-2"), g.Text(current.Metric.Label)),
					P(Class("text-5xl font-bold text-primary"), Counter(current.Metric.Value)),
					P(Class("text-sm text-base-content/60 mt-2"), g.Text(current.Company)),
				),
			),

			g.If(len(t.WallOfLove) > 0,
				Div(
					Class("grid sm:grid-cols-2 lg:grid-cols-4 gap-6 mt-16"),
					g.Group(g.Map(t.WallOfLove, func(s content.Shout) g.Node {
						return g.El("figure",
							Class("card bg-base-100 border border-base-300 p-6"),
							P(Class("text-sm mb-4"), g.Text(s.Content)),
							g.El("figcaption",
								Class("text-sm"),
								Span(Class("font-semibold"), g.Text(s.Name)),
								g.Text(" "),
								Span(Class("text-base-content/50"), g.Text(s.Handle)),
							),
						)
					})),
				),
			),
		),
	)
}

func carouselDots(items []content.Testimonial, c carousel.Carousel, state url.Values) []g.Node {
	dots := make([]g.Node, 0, len(items))
	for i, t := range items {
		active := i == c.Index()
		dots = append(dots, A(
			Href(pageHref(state, "testimonials", "slide", strconv.Itoa(i))),
			Aria("label", fmt.Sprintf("Show testimonial from %s", t.Name)),
			g.If(active, Aria("current", "true")),
			Class(dotClass(active)),
		))
	}
	return dots
}

func dotClass(active bool) string {
	if active {
		return "size-3 rounded-full bg-primary"
	}
	return "size-3 rounded-full bg-base-300"
}
