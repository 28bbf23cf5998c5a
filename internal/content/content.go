// Package content loads the static copy of the landing page: navigation,
// hero figures, features, plans, testimonials, FAQ, posts and footer.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/faq"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
	"github.com/AadarshMishraa/ADmyBrand/internal/pricing"
)

//go:embed content.yaml
var embedded []byte

// Link is a labelled href.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// NavItem points at a section of the page by its element id.
type NavItem struct {
	Label   string `yaml:"label"`
	Section string `yaml:"section"`
}

// Href is the in-page anchor for the item.
func (n NavItem) Href() string { return "#" + n.Section }

type Stat struct {
	Label   string `yaml:"label"`
	Value   Figure `yaml:"value"`
	Tooltip string `yaml:"tooltip"`
	Icon    string `yaml:"icon"`
}

type Partner struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

type Hero struct {
	Badge       string    `yaml:"badge"`
	Headline    string    `yaml:"headline"`
	Highlight   []string  `yaml:"highlight"`
	Subheadline string    `yaml:"subheadline"`
	PrimaryCTA  Link      `yaml:"primary_cta"`
	DemoCTA     string    `yaml:"demo_cta"`
	DemoVideoID string    `yaml:"demo_video_id"`
	Stats       []Stat    `yaml:"stats"`
	Partners    []Partner `yaml:"partners"`
}

type Feature struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Color       string   `yaml:"color"`
	Benefits    []string `yaml:"benefits"`
}

// QA is a plain question/answer pair, used by the pricing accordion.
type QA struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Pricing struct {
	Title    string         `yaml:"title"`
	Subtitle string         `yaml:"subtitle"`
	Discount int            `yaml:"annual_discount"`
	Plans    []pricing.Plan `yaml:"plans"`
	FAQ      []QA           `yaml:"faq"`
}

type Metric struct {
	Label string `yaml:"label"`
	Value Figure `yaml:"value"`
}

type Testimonial struct {
	Name    string   `yaml:"name"`
	Title   string   `yaml:"title"`
	Company string   `yaml:"company"`
	Image   string   `yaml:"image"`
	Content string   `yaml:"content"`
	Rating  int      `yaml:"rating"`
	Metric  Metric   `yaml:"metric"`
	VideoID string   `yaml:"video_id"`
	Tags    []string `yaml:"tags"`
}

// Shout is a short quote for the wall of love.
type Shout struct {
	Name    string `yaml:"name"`
	Handle  string `yaml:"handle"`
	Content string `yaml:"content"`
}

type Testimonials struct {
	Title      string        `yaml:"title"`
	Subtitle   string        `yaml:"subtitle"`
	Featured   []Testimonial `yaml:"featured"`
	WallOfLove []Shout       `yaml:"wall_of_love"`
}

type Post struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
	ReadTime string `yaml:"read_time"`
	Category string `yaml:"category"`
	Image    string `yaml:"image"`
	Featured bool   `yaml:"featured"`
}

// Published parses Date ("Jan 2, 2006").
func (p Post) Published() (time.Time, error) {
	return time.Parse("Jan 2, 2006", p.Date)
}

type Resource struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Icon        string `yaml:"icon"`
}

type Blog struct {
	Title     string     `yaml:"title"`
	Subtitle  string     `yaml:"subtitle"`
	Posts     []Post     `yaml:"posts"`
	Resources []Resource `yaml:"resources"`
}

type ContactChannel struct {
	Kind        string `yaml:"kind"`
	Title       string `yaml:"title"`
	Details     string `yaml:"details"`
	Description string `yaml:"description"`
}

// Href returns a mailto: or tel: link, or "" for channels that are not links.
func (c ContactChannel) Href() string {
	switch c.Kind {
	case "email":
		return "mailto:" + c.Details
	case "phone":
		return "tel:" + c.Details
	default:
		return ""
	}
}

type Contact struct {
	Title       string           `yaml:"title"`
	Subtitle    string           `yaml:"subtitle"`
	Channels    []ContactChannel `yaml:"channels"`
	ThankYou    string           `yaml:"thank_you"`
	SubmitLabel string           `yaml:"submit_label"`
}

type LinkGroup struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type Footer struct {
	Tagline        string      `yaml:"tagline"`
	Sections       []LinkGroup `yaml:"sections"`
	Social         []Link      `yaml:"social"`
	Certifications []string    `yaml:"certifications"`
	Newsletter     string      `yaml:"newsletter"`
	Copyright      string      `yaml:"copyright"`
}

// Site is the full content document.
type Site struct {
	Navigation   []NavItem      `yaml:"navigation"`
	Hero         Hero           `yaml:"hero"`
	Features     []Feature      `yaml:"features"`
	Pricing      Pricing        `yaml:"pricing"`
	Testimonials Testimonials   `yaml:"testimonials"`
	FAQ          []faq.Category `yaml:"faq"`
	Blog         Blog           `yaml:"blog"`
	Contact      Contact        `yaml:"contact"`
	Footer       Footer         `yaml:"footer"`

	catalog *faq.Catalog
}

// Catalog returns the validated FAQ catalog.
func (s *Site) Catalog() *faq.Catalog {
	return s.catalog
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := site.validate(); err != nil {
		return nil, err
	}

	catalog, err := faq.NewCatalog(site.FAQ)
	if err != nil {
		return nil, fmt.Errorf("invalid faq content: %w", err)
	}
	site.catalog = catalog
	return &site, nil
}

func (s *Site) validate() error {
	if len(s.Navigation) == 0 {
		return errors.New("content: navigation is empty")
	}
	seen := make(map[string]bool, len(s.Navigation))
	for _, n := range s.Navigation {
		if n.Section == "" {
			return fmt.Errorf("content: navigation item %q has no section", n.Label)
		}
		if seen[n.Section] {
			return fmt.Errorf("content: duplicate navigation section %q", n.Section)
		}
		seen[n.Section] = true
	}
	if len(s.Testimonials.Featured) == 0 {
		return errors.New("content: at least one featured testimonial is required")
	}
	for _, p := range s.Pricing.Plans {
		if p.Name == "" {
			return errors.New("content: plan without a name")
		}
	}
	return nil
}

// Load reads the document at path, or the embedded one when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Parse(embedded)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// NewSite loads the site content configured for this process.
func NewSite(cfg *config.Config, log *slog.Logger) (*Site, error) {
	site, err := Load(cfg.Site.ContentPath)
	if err != nil {
		return nil, err
	}

	source := "embedded"
	if cfg.Site.ContentPath != "" {
		source = cfg.Site.ContentPath
	}
	log.With(logger.Scope("content")).Info("site content loaded",
		slog.String("source", source),
		slog.Int("faq_entries", len(site.catalog.All())),
		slog.Int("plans", len(site.Pricing.Plans)),
		slog.Int("testimonials", len(site.Testimonials.Featured)),
	)
	return site, nil
}

// Greeting returns the time-of-day salutation shown above the headline.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning."
	case h < 18:
		return "Good afternoon."
	default:
		return "Good evening."
	}
}
