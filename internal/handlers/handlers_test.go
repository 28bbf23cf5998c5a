package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AadarshMishraa/ADmyBrand/internal/assist"
	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/contact"
	"github.com/AadarshMishraa/ADmyBrand/internal/content"
	"github.com/AadarshMishraa/ADmyBrand/internal/metrics"
	"github.com/AadarshMishraa/ADmyBrand/internal/ratelimit"
	"github.com/AadarshMishraa/ADmyBrand/internal/theme"
)

type fixture struct {
	router  *chi.Mux
	handler *Handler
	logs    *syncBuffer
	clock   *clockwork.FakeClock
}

type fixtureOptions struct {
	generator assist.Generator
	submitter contact.Submitter
	configure func(*config.Config)
	limiters  *Limiters
}

// syncBuffer collects log output written from request goroutines and
// from the throttle's timer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newFixture(t *testing.T, opts fixtureOptions) *fixture {
	t.Helper()

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg, err := config.NewConfig(discard)
	require.NoError(t, err)
	if opts.configure != nil {
		opts.configure(cfg)
	}

	site, err := content.Load("")
	require.NoError(t, err)

	if opts.submitter == nil {
		opts.submitter = contact.SubmitterFunc(func(ctx context.Context, s contact.Submission) (contact.Receipt, error) {
			return contact.Receipt{SubmissionID: s.ID, MessageID: "msg-1"}, nil
		})
	}
	if opts.limiters == nil {
		opts.limiters = &Limiters{
			Assist:     ratelimit.New("assist", 600, 100),
			Contact:    ratelimit.New("contact", 600, 100),
			Newsletter: ratelimit.New("newsletter", 600, 100),
		}
	}

	logs := &syncBuffer{}
	log := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	fake := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	h, err := newHandler(Params{
		Config:     cfg,
		Log:        log,
		Site:       site,
		Assistant:  assist.NewAssistant(opts.generator, site.Catalog(), cfg, discard),
		Contacts:   contact.NewRegistry(cfg, opts.submitter, discard),
		Newsletter: contact.NewNewsletter(cfg, discard),
		Themes:     theme.NewStore(cfg),
	}, fake)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(h.themes.Middleware)
	RegisterRoutes(r, h, opts.limiters, cfg)

	return &fixture{router: r, handler: h, logs: logs, clock: fake}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, v url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(v.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLandingPage(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `data-active-section="home"`)
	assert.Contains(t, body, `data-active-category="General"`)
	assert.Contains(t, body, "Good morning.")
	assert.Contains(t, body, "© 2024")
	assert.Contains(t, body, "Save 20%")
	assert.Contains(t, body, `name="token" value="`)
	assert.NotContains(t, body, `id="faq-assist"`, "assist panel is hidden without a provider")
	assert.Contains(t, body, `data-reference-line="100"`)
	assert.Contains(t, body, `data-hide-threshold="150"`)
	assert.Contains(t, body, `data-hidden="false"`)
}

func TestLandingPage_NavigationFollowsConfig(t *testing.T) {
	f := newFixture(t, fixtureOptions{configure: func(cfg *config.Config) {
		cfg.Navigation.ReferenceLine = 64
		cfg.Navigation.HideThreshold = 300
		cfg.Navigation.ScrolledThreshold = 8.5
		cfg.Navigation.ThrottleInterval = 250 * time.Millisecond
	}})

	body := f.do(httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

	assert.Contains(t, body, `data-reference-line="64"`)
	assert.Contains(t, body, `data-hide-threshold="300"`)
	assert.Contains(t, body, `data-scrolled-threshold="8.5"`)
	assert.Contains(t, body, `data-throttle-ms="250"`)
	assert.NotContains(t, body, `data-reference-line="100"`)
}

func TestLandingPage_HighlightsFocusedSection(t *testing.T) {
	tests := []struct {
		query  string
		active string
	}{
		{"", "home"},
		{"?billing=monthly", "pricing"},
		{"?slide=1", "testimonials"},
		{"?category=Billing", "faq"},
		{"?open=data-security&billing=monthly", "faq"},
	}

	f := newFixture(t, fixtureOptions{})
	for _, tt := range tests {
		t.Run(tt.active+tt.query, func(t *testing.T) {
			body := f.do(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)).Body.String()
			assert.Contains(t, body, `data-active-section="`+tt.active+`"`)
			if tt.active != "home" {
				assert.Contains(t, body, `data-nav-section="`+tt.active+`" class="menu-active"`)
			}
		})
	}
}

func TestLandingPage_FirstVisitFollowsSystemScheme(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.NotContains(t, body, `data-theme=`, "no stored choice leaves the scheme to the browser")
	assert.Contains(t, body, `name="color-scheme" content="light dark"`)
	assert.Equal(t, theme.ClientHintHeader, rec.Header().Get("Critical-CH"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(theme.ClientHintHeader, `"dark"`)
	assert.Contains(t, f.do(req).Body.String(), `data-theme="dark"`)
}

func TestLandingPage_QueryState(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	rec := f.do(httptest.NewRequest(http.MethodGet, "/?open=data-security&billing=monthly&slide=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-active-category="Security"`)
	assert.Contains(t, body, `id="faq-answer-data-security"`)
	assert.Contains(t, body, `data-billing="monthly"`)
	assert.NotContains(t, body, "Save 20%")
	assert.Contains(t, body, `data-carousel-index="2"`)
	assert.Contains(t, body, "Emily Rodriguez")
	assert.Contains(t, body, `href="/?billing=monthly&amp;category=Security&amp;slide=2#data-security"`, "open entry links to its closed state")
}

func TestLandingPage_ThemeCookie(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	rec := f.do(req)

	assert.Contains(t, rec.Body.String(), `data-theme="dark"`)
	assert.Equal(t, theme.ClientHintHeader, rec.Header().Get("Accept-CH"))
}

func TestFAQFragment(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	rec := f.do(httptest.NewRequest(http.MethodGet, "/faq?category=Billing&q=zzz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<section id="faq"`))
	assert.Contains(t, body, "data-faq-empty")
	assert.NotContains(t, body, "<html")
}

func TestHealth(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	f.clock.Advance(90 * time.Second)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "1m30s", body.Uptime)
}

func TestAsk_JSON(t *testing.T) {
	var prompt string
	f := newFixture(t, fixtureOptions{generator: assist.GeneratorFunc(func(ctx context.Context, p string) (string, error) {
		prompt = p
		return "Yes, on Enterprise.", nil
	})})

	req := httptest.NewRequest(http.MethodPost, "/api/faq/ask", strings.NewReader(`{"question":"Do you support SSO?"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got assist.Answer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Yes, on Enterprise.", got.Text)
	assert.False(t, got.Fallback)
	assert.Contains(t, prompt, "Do you support SSO?")
}

func TestAsk_JSONEmptyQuestion(t *testing.T) {
	called := false
	f := newFixture(t, fixtureOptions{generator: assist.GeneratorFunc(func(ctx context.Context, p string) (string, error) {
		called = true
		return "", nil
	})})

	req := httptest.NewRequest(http.MethodPost, "/api/faq/ask", strings.NewReader(`{"question":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"validation_error"`)
	assert.False(t, called)
}

func TestAsk_ProviderFailureFallsBack(t *testing.T) {
	f := newFixture(t, fixtureOptions{generator: assist.GeneratorFunc(func(ctx context.Context, p string) (string, error) {
		return "", errors.New("upstream 500")
	})})

	req := httptest.NewRequest(http.MethodPost, "/api/faq/ask", strings.NewReader(`{"question":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got assist.Answer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, assist.FallbackAnswer, got.Text)
	assert.True(t, got.Fallback)
}

func TestAsk_FormPostRendersPage(t *testing.T) {
	f := newFixture(t, fixtureOptions{generator: assist.GeneratorFunc(func(ctx context.Context, p string) (string, error) {
		return "Within 30 days.", nil
	})})

	rec := f.do(postForm("/api/faq/ask", url.Values{"question": {"Refunds?"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Within 30 days.")
	assert.Contains(t, rec.Body.String(), `value="Refunds?"`)

	rec = f.do(postForm("/api/faq/ask", url.Values{"question": {""}}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), questionRequired)
}

func TestAsk_CORSPreflight(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	req := httptest.NewRequest(http.MethodOptions, "/api/faq/ask", nil)
	req.Header.Set("Origin", "https://partner.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := f.do(req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestContact_ValidationErrors(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	before := testutil.ToFloat64(metrics.ContactSubmissions.WithLabelValues("invalid"))

	rec := f.do(postForm("/contact", url.Values{"name": {"Ada"}, "email": {"nope"}, "token": {"tok-1"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Email address is invalid.")
	assert.Contains(t, body, "Message is required.")
	assert.NotContains(t, body, "Name is required.")
	assert.Contains(t, body, `name="token" value="tok-1"`)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ContactSubmissions.WithLabelValues("invalid")))
}

func TestContact_Success(t *testing.T) {
	var got contact.Submission
	f := newFixture(t, fixtureOptions{submitter: contact.SubmitterFunc(func(ctx context.Context, s contact.Submission) (contact.Receipt, error) {
		got = s
		return contact.Receipt{SubmissionID: s.ID}, nil
	})})

	rec := f.do(postForm("/contact", url.Values{
		"name":    {" Ada "},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
		"token":   {"tok-2"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message Sent!")
	assert.Contains(t, rec.Body.String(), `data-contact-state="submitted"`)
	assert.Contains(t, rec.Body.String(), `data-active-section="contact"`)
	assert.Equal(t, "Ada", got.Form.Name)

	rec = f.do(postForm("/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
		"token":   {"tok-2"},
	}))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your message was already sent.")
}

func TestContact_DoubleSubmitWhileSending(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	f := newFixture(t, fixtureOptions{submitter: contact.SubmitterFunc(func(ctx context.Context, s contact.Submission) (contact.Receipt, error) {
		close(started)
		<-release
		return contact.Receipt{SubmissionID: s.ID}, nil
	})})

	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}, "token": {"tok-3"}}

	var wg sync.WaitGroup
	var first *httptest.ResponseRecorder
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = f.do(postForm("/contact", form))
	}()
	<-started

	second := f.do(postForm("/contact", form))
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "Your message is already being sent.")
	assert.Contains(t, second.Body.String(), `data-contact-state="submitting"`)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusOK, first.Code)
}

func TestContact_DeliveryFailure(t *testing.T) {
	f := newFixture(t, fixtureOptions{submitter: contact.SubmitterFunc(func(ctx context.Context, s contact.Submission) (contact.Receipt, error) {
		return contact.Receipt{}, errors.New("smtp down")
	})})

	rec := f.do(postForm("/contact", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}}))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-contact-state="failed"`)
	assert.Contains(t, rec.Body.String(), "alert-error")
}

func TestNewsletter(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	rec := f.do(postForm("/newsletter", url.Values{"email": {"bad"}}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email address is invalid.")

	rec = f.do(postForm("/newsletter", url.Values{"email": {"ada@example.com"}}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks for subscribing!")
	assert.Equal(t, 1, f.handler.newsletter.Count())
}

func TestNewsletter_RateLimited(t *testing.T) {
	f := newFixture(t, fixtureOptions{limiters: &Limiters{
		Assist:     ratelimit.New("assist", 600, 100),
		Contact:    ratelimit.New("contact", 600, 100),
		Newsletter: ratelimit.New("newsletter", 1, 1),
	}})

	rec := f.do(postForm("/newsletter", url.Values{"email": {"a@example.com"}}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(postForm("/newsletter", url.Values{"email": {"b@example.com"}}))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rate_limited"`)
	assert.Equal(t, 1, f.handler.newsletter.Count())
}

func TestNewsletter_ListFull(t *testing.T) {
	f := newFixture(t, fixtureOptions{configure: func(cfg *config.Config) {
		cfg.Newsletter.MaxSubscribers = 1
	}})

	rec := f.do(postForm("/newsletter", url.Values{"email": {"a@example.com"}}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(postForm("/newsletter", url.Values{"email": {"b@example.com"}}))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign-ups are closed right now.")
	assert.Equal(t, 1, f.handler.newsletter.Count())
}

func TestTheme(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		cookie     string
		referer    string
		scripted   bool
		wantTheme  string
		wantStatus int
		wantTarget string
	}{
		{"explicit value", url.Values{"theme": {"dark"}}, "", "", false, "dark", http.StatusSeeOther, "/"},
		{"missing value flips current", nil, "dark", "", false, "light", http.StatusSeeOther, "/"},
		{"redirects to local referer", url.Values{"theme": {"light"}}, "", "http://example.com/?billing=monthly", false, "light", http.StatusSeeOther, "/?billing=monthly"},
		{"ignores foreign referer", url.Values{"theme": {"light"}}, "", "https://evil.example/x", false, "light", http.StatusSeeOther, "/"},
		{"script caller", url.Values{"theme": {"dark"}}, "", "", true, "dark", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, fixtureOptions{})
			req := postForm("/theme", tt.form)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "theme", Value: tt.cookie})
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			if tt.scripted {
				req.Header.Set("X-Requested-With", "fetch")
			}

			rec := f.do(req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTarget, rec.Header().Get("Location"))
			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, tt.wantTheme, cookies[0].Value)
		})
	}
}

func TestNotFound(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	before := testutil.ToFloat64(metrics.NotFound)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/pricing-old", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oops! Page not found")
	assert.Contains(t, rec.Body.String(), "/pricing-old")

	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)

	assert.Equal(t, before+2, testutil.ToFloat64(metrics.NotFound))
}

func TestNotFound_LogsAreCoalesced(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	for _, p := range []string{"/a", "/b", "/c", "/d"} {
		f.do(httptest.NewRequest(http.MethodGet, p, nil))
	}
	assert.Equal(t, 1, strings.Count(f.logs.String(), "page not found"))
	assert.Contains(t, f.logs.String(), "path=/a misses=1")

	f.clock.Advance(notFoundLogInterval)
	require.Eventually(t, func() bool {
		return strings.Count(f.logs.String(), "page not found") == 2
	}, time.Second, time.Millisecond)
	assert.Contains(t, f.logs.String(), "path=/d misses=3")
}
