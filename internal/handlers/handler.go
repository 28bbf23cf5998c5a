package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/AadarshMishraa/ADmyBrand/internal/assist"
	"github.com/AadarshMishraa/ADmyBrand/internal/carousel"
	"github.com/AadarshMishraa/ADmyBrand/internal/components"
	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/contact"
	"github.com/AadarshMishraa/ADmyBrand/internal/content"
	"github.com/AadarshMishraa/ADmyBrand/internal/faq"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
	"github.com/AadarshMishraa/ADmyBrand/internal/navigation"
	"github.com/AadarshMishraa/ADmyBrand/internal/pricing"
	"github.com/AadarshMishraa/ADmyBrand/internal/theme"
)

// notFoundLogInterval bounds how often unknown routes are logged. Bursts from
// scanners collapse into one line carrying the number of misses.
const notFoundLogInterval = time.Second

// stateKeys are the query parameters that make up the page's view state.
var stateKeys = []string{"category", "q", "open", "billing", "slide"}

// Params are the dependencies of the page and form handlers.
type Params struct {
	fx.In

	Config     *config.Config
	Log        *slog.Logger
	Site       *content.Site
	Assistant  *assist.Assistant
	Contacts   *contact.Registry
	Newsletter *contact.Newsletter
	Themes     *theme.Store
	Lifecycle  fx.Lifecycle `optional:"true"`
}

// Handler serves the landing page and its form endpoints.
type Handler struct {
	cfg        *config.Config
	log        *slog.Logger
	site       *content.Site
	assistant  *assist.Assistant
	contacts   *contact.Registry
	newsletter *contact.Newsletter
	themes     *theme.Store
	clock      clockwork.Clock
	startAt    time.Time

	// tracker is the initial navigation state; every render works on a clone.
	tracker *navigation.Tracker

	misses   atomic.Int64
	notFound *navigation.Throttle[string]
}

func NewHandler(p Params) (*Handler, error) {
	h, err := newHandler(p, clockwork.NewRealClock())
	if err != nil {
		return nil, err
	}
	if p.Lifecycle != nil {
		p.Lifecycle.Append(fx.StopHook(h.notFound.Stop))
	}
	return h, nil
}

func newHandler(p Params, c clockwork.Clock) (*Handler, error) {
	tracker, err := navigation.NewTracker(navigation.DefaultSections, p.Config.Navigation.ReferenceLine)
	if err != nil {
		return nil, fmt.Errorf("failed to create section tracker: %w", err)
	}

	h := &Handler{
		cfg:        p.Config,
		log:        p.Log.With(logger.Scope("handlers")),
		site:       p.Site,
		assistant:  p.Assistant,
		contacts:   p.Contacts,
		newsletter: p.Newsletter,
		themes:     p.Themes,
		clock:      c,
		startAt:    c.Now(),
		tracker:    tracker,
	}
	h.notFound = navigation.NewThrottle(notFoundLogInterval, c, h.logNotFound)
	return h, nil
}

func (h *Handler) logNotFound(path string) {
	h.log.Warn("page not found",
		slog.String("path", path),
		slog.Int64("misses", h.misses.Swap(0)))
}

// pageState keeps only the view-state parameters of the request query.
func pageState(r *http.Request) url.Values {
	q := r.URL.Query()
	state := url.Values{}
	for _, k := range stateKeys {
		if v := q.Get(k); v != "" {
			state.Set(k, v)
		}
	}
	return state
}

func (h *Handler) pageConfig(r *http.Request) components.PageConfig {
	return components.PageConfig{
		SiteName:    h.cfg.Site.Name,
		Title:       h.cfg.Site.Title,
		Description: h.cfg.Site.Description,
		OGImage:     h.cfg.Site.OGImage,
		Theme:       theme.FromContext(r.Context()),
	}
}

// focusSection is the section a request's view state points at, if any.
func focusSection(state url.Values) string {
	switch {
	case state.Get("open") != "" || state.Get("q") != "" || state.Get("category") != "":
		return "faq"
	case state.Get("slide") != "":
		return "testimonials"
	case state.Get("billing") != "":
		return "pricing"
	}
	return ""
}

// header renders the navigation bar as it stands at the top of the page,
// with focus highlighted when it names a known section.
func (h *Handler) header(r *http.Request, focus string) components.HeaderView {
	nav := h.cfg.Navigation
	tracker := h.tracker.Clone()
	if focus != "" {
		tracker.Select(focus)
	}
	bar := navigation.NewBar(nav.HideThreshold, nav.ScrolledThreshold)
	bar.OnScrollDelta(0, 0)

	return components.HeaderView{
		SiteName: h.cfg.Site.Name,
		Items:    h.site.Navigation,
		Tracker:  tracker,
		Bar:      bar,
		Throttle: nav.ThrottleInterval,
		Theme:    theme.FromContext(r.Context()),
	}
}

func (h *Handler) faqView(state url.Values) components.FAQView {
	q := faq.NewQuery(h.site.Catalog())
	q.Apply(state)
	return components.FAQView{
		Query:  q,
		State:  state,
		Assist: components.AssistView{Enabled: h.assistant.Enabled()},
	}
}

// landing builds the page for the request's view state with a fresh
// contact form. Form handlers adjust the returned value before rendering.
func (h *Handler) landing(r *http.Request) components.LandingPage {
	state := pageState(r)
	now := h.clock.Now()

	slide, _ := strconv.Atoi(state.Get("slide"))
	table := pricing.NewTable(h.site.Pricing.Plans, pricing.ParseBilling(state.Get("billing")), h.site.Pricing.Discount)

	return components.LandingPage{
		Config: h.pageConfig(r),
		Site:   h.site,
		State:  state,
		Header:   h.header(r, focusSection(state)),
		Greeting: content.Greeting(now),
		Pricing:  table,
		Carousel: carousel.New(len(h.site.Testimonials.Featured), slide),
		FAQ:      h.faqView(state),
		Contact:  components.ContactView{Token: contact.NewToken()},
		Year:     now.Year(),
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		h.log.Error("render failed",
			slog.String("path", r.URL.Path),
			logger.Error(err))
	}
}
