package site

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Zachkp/portfolio/internal/platform/errors"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/style"
)

//go:embed content/site.yaml
var defaultContent []byte

// Section kinds.
const (
	KindHero       = "hero"
	KindText       = "text"
	KindGallery    = "gallery"
	KindPortfolios = "portfolios"
	KindCTA        = "cta"
	KindFooter     = "footer"
)

var knownKinds = map[string]bool{
	KindHero:       true,
	KindText:       true,
	KindGallery:    true,
	KindPortfolios: true,
	KindCTA:        true,
	KindFooter:     true,
}

const defaultSectionHeight = 720

// Content is the whole site as read from the content file.
type Content struct {
	Site       SiteInfo    `yaml:"site"`
	Home       Page        `yaml:"home"`
	Portfolios []Portfolio `yaml:"portfolios"`

	bySlug map[string]*Portfolio
}

// SiteInfo is shared page chrome.
type SiteInfo struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Author  string `yaml:"author"`
}

// Page is an ordered list of sections.
type Page struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Portfolio is one portfolio route and its projects.
type Portfolio struct {
	Slug     string    `yaml:"slug"`
	Title    string    `yaml:"title"`
	Nav      string    `yaml:"nav"`
	Summary  string    `yaml:"summary"`
	Image    string    `yaml:"image"`
	Sections []Section `yaml:"sections"`
	Projects []Project `yaml:"projects"`

	bySlug map[string]*Project
}

// Project is a portfolio entry with its own detail page.
type Project struct {
	Slug    string   `yaml:"slug"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Body    []string `yaml:"body"`
	Image   string   `yaml:"image"`
	Tags    []string `yaml:"tags"`
	Link    string   `yaml:"link"`
	Bubbles int      `yaml:"bubbles"`
}

// Section is one decorated block of a page.
type Section struct {
	Kind     string             `yaml:"kind"`
	Key      string             `yaml:"key"`
	Height   float64            `yaml:"height"`
	Eyebrow  string             `yaml:"eyebrow"`
	Heading  string             `yaml:"heading"`
	Body     []string           `yaml:"body"`
	Image    string             `yaml:"image"`
	Action   *Action            `yaml:"action"`
	Bubbles  int                `yaml:"bubbles"`
	Reveal   RevealSpec         `yaml:"reveal"`
	Parallax style.ParallaxSpec `yaml:"parallax"`

	side     reveal.Side
	parallax *style.Parallax
}

// Action is a call-to-action link.
type Action struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// RevealSpec configures the reveal animation of a section.
type RevealSpec struct {
	Side           string  `yaml:"side"`
	Threshold      float64 `yaml:"threshold"`
	Shrink         float64 `yaml:"shrink"`
	DirectionAware bool    `yaml:"direction_aware"`
}

// Options converts the spec to controller options.
func (r RevealSpec) Options() reveal.Options {
	return reveal.Options{
		Threshold:        r.Threshold,
		RootMarginShrink: r.Shrink,
		DirectionAware:   r.DirectionAware,
	}
}

// LoadContent reads the content file at path, or the embedded content when
// path is empty.
func LoadContent(path string) (*Content, error) {
	data := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content %s: %w", path, err)
		}
		data = b
	}
	return ParseContent(data)
}

// ParseContent decodes and validates a content document.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidContent, "decode content", err)
	}
	if err := c.prepare(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidContent, "validate content", err)
	}
	return &c, nil
}

func (c *Content) prepare() error {
	if err := prepareSections("home", c.Home.Sections); err != nil {
		return err
	}
	c.bySlug = make(map[string]*Portfolio, len(c.Portfolios))
	for i := range c.Portfolios {
		p := &c.Portfolios[i]
		if !validSlug(p.Slug) {
			return fmt.Errorf("portfolio %d: invalid slug %q", i, p.Slug)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return fmt.Errorf("portfolio %q: duplicate slug", p.Slug)
		}
		c.bySlug[p.Slug] = p
		if err := prepareSections(p.Slug, p.Sections); err != nil {
			return err
		}
		p.bySlug = make(map[string]*Project, len(p.Projects))
		for j := range p.Projects {
			pr := &p.Projects[j]
			if !validSlug(pr.Slug) {
				return fmt.Errorf("portfolio %q project %d: invalid slug %q", p.Slug, j, pr.Slug)
			}
			if _, dup := p.bySlug[pr.Slug]; dup {
				return fmt.Errorf("portfolio %q project %q: duplicate slug", p.Slug, pr.Slug)
			}
			if pr.Bubbles < 0 {
				return fmt.Errorf("portfolio %q project %q: bubbles must be >= 0", p.Slug, pr.Slug)
			}
			p.bySlug[pr.Slug] = pr
		}
	}
	return nil
}

func prepareSections(page string, sections []Section) error {
	keys := make(map[string]bool, len(sections))
	for i := range sections {
		s := &sections[i]
		if !knownKinds[s.Kind] {
			return fmt.Errorf("%s section %d: unknown kind %q", page, i, s.Kind)
		}
		if s.Key == "" {
			s.Key = page + "-" + s.Kind
		}
		if keys[s.Key] {
			return fmt.Errorf("%s section %d: duplicate key %q", page, i, s.Key)
		}
		keys[s.Key] = true
		if s.Height <= 0 {
			s.Height = defaultSectionHeight
		}
		if s.Bubbles < 0 {
			return fmt.Errorf("%s section %q: bubbles must be >= 0", page, s.Key)
		}
		side, err := reveal.ParseSide(s.Reveal.Side)
		if err != nil {
			return fmt.Errorf("%s section %q: %w", page, s.Key, err)
		}
		s.side = side
		if s.Reveal.Threshold < 0 || s.Reveal.Threshold > 1 || s.Reveal.Shrink < 0 {
			return fmt.Errorf("%s section %q: reveal threshold must be in [0,1] and shrink >= 0", page, s.Key)
		}
		if !s.Parallax.IsZero() {
			p, err := style.CompileParallax(s.Parallax)
			if err != nil {
				return fmt.Errorf("%s section %q: %w", page, s.Key, err)
			}
			s.parallax = p
		}
	}
	return nil
}

func validSlug(slug string) bool {
	if slug == "" || slug == "api" || slug == "static" || slug == "images" {
		return false
	}
	return strings.Trim(slug, "abcdefghijklmnopqrstuvwxyz0123456789-") == ""
}

// Portfolio returns the portfolio with slug.
func (c *Content) Portfolio(slug string) (*Portfolio, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

// Project returns the project with slug.
func (p *Portfolio) Project(slug string) (*Project, bool) {
	pr, ok := p.bySlug[slug]
	return pr, ok
}

// Footer returns the portfolio's footer section, if it has one.
func (p *Portfolio) Footer() (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == KindFooter {
			return s, true
		}
	}
	return Section{}, false
}

// detailSections lays out a project page: a hero seeded by the project, its
// write-up, then the portfolio footer.
func (p *Portfolio) detailSections(pr *Project) []Section {
	bubbles := pr.Bubbles
	if bubbles == 0 {
		bubbles = 8
	}
	sections := []Section{
		{
			Kind:    KindHero,
			Key:     p.Slug + "-" + pr.Slug + "-hero",
			Height:  560,
			Eyebrow: p.Title,
			Heading: pr.Title,
			Body:    []string{pr.Summary},
			Image:   pr.Image,
			Bubbles: bubbles,
			Reveal:  RevealSpec{Threshold: 0.1},
		},
		{
			Kind:   KindText,
			Key:    p.Slug + "-" + pr.Slug + "-body",
			Height: defaultSectionHeight,
			Body:   pr.Body,
			Reveal: RevealSpec{Side: "left", Threshold: 0.2, Shrink: 60, DirectionAware: true},
			side:   reveal.SideLeft,
		},
	}
	if pr.Link != "" {
		sections[1].Action = &Action{Label: "View project", Href: pr.Link}
	}
	if footer, ok := p.Footer(); ok {
		sections = append(sections, footer)
	}
	return sections
}
