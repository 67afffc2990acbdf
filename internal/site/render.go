package site

import (
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/Zachkp/portfolio/internal/decor"
	"github.com/Zachkp/portfolio/internal/host"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/Zachkp/portfolio/internal/style"
)

// PageView is the template data for one page.
type PageView struct {
	Site          SiteInfo
	Title         string
	Path          string
	ReducedMotion bool
	Sections      []SectionView
	Portfolios    []PortfolioCard
}

// PortfolioCard links to a portfolio from the home page and the nav bar.
type PortfolioCard struct {
	Href    string
	Title   string
	Label   string
	Summary string
	Image   string
}

// ProjectCard links to a project from a gallery.
type ProjectCard struct {
	Href    string
	Title   string
	Summary string
	Image   string
	Tags    []string
}

// SectionView is a section with its pre-paint motion state.
type SectionView struct {
	Section
	ID        string
	Particles []decor.Particle
	Projects  []ProjectCard

	RevealState string
	RevealStyle template.CSS
	RevealData  string

	ParallaxStyle template.CSS
	ParallaxData  string
}

// revealData is read by the browser script to pick offsets without a
// second copy of the lookup table.
type revealData struct {
	Side           string        `json:"side"`
	Threshold      float64       `json:"threshold"`
	Shrink         float64       `json:"shrink"`
	DirectionAware bool          `json:"directionAware"`
	Enter          directionPair `json:"enter"`
	Exit           directionPair `json:"exit"`
}

type directionPair struct {
	Down [2]float64 `json:"down"`
	Up   [2]float64 `json:"up"`
}

type parallaxPoint struct {
	TranslateY *float64 `json:"translateY,omitempty"`
	Scale      *float64 `json:"scale,omitempty"`
	Opacity    *float64 `json:"opacity,omitempty"`
}

type parallaxData struct {
	From parallaxPoint `json:"from"`
	To   parallaxPoint `json:"to"`
}

// renderer builds the first frame of a page: what the document looks like
// before the browser has observed anything.
type renderer struct {
	viewportHeight float64
}

func (r renderer) render(sections []Section, reduced bool) ([]SectionView, error) {
	env := host.Env{
		Viewport: host.FixedViewport(r.viewportHeight),
		Observe:  host.Inert(),
		Motion:   host.ReducedMotion(reduced),
	}
	controller := reveal.NewController(env)
	tracker := scroll.NewTracker(env)

	views := make([]SectionView, 0, len(sections))
	top := 0.0
	for _, s := range sections {
		block := &host.Block{Key: s.Key, Rect: host.Rect{Top: top, Height: s.Height}}
		top += s.Height

		view, err := r.renderSection(s, block, controller, tracker, reduced)
		if err != nil {
			return nil, fmt.Errorf("render section %q: %w", s.Key, err)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r renderer) renderSection(s Section, block *host.Block, controller *reveal.Controller, tracker *scroll.Tracker, reduced bool) (SectionView, error) {
	view := SectionView{Section: s, ID: "section-" + s.Key}

	bubbles, err := decor.Generate(s.Key, s.Bubbles)
	if err != nil {
		return view, err
	}
	view.Particles = bubbles

	sub, err := controller.Observe([]reveal.Target{{Element: block, Side: s.side}}, s.Reveal.Options())
	if err != nil {
		return view, err
	}
	defer sub.Release()
	state := sub.State(block)
	view.RevealState = state.String()
	view.RevealStyle = style.Reveal(state, sub.Offset(block)).CSS()
	if !reduced {
		data, err := encodeReveal(s)
		if err != nil {
			return view, err
		}
		view.RevealData = data
	}

	if reduced || s.parallax == nil {
		return view, nil
	}
	var progress float64
	tracker.Track(block, func(p float64) { progress = p }).Release()
	ps, err := s.parallax.Apply(progress)
	if err != nil {
		return view, err
	}
	view.ParallaxStyle = ps.CSS()
	data, err := encodeParallax(s.parallax)
	if err != nil {
		return view, err
	}
	view.ParallaxData = data
	return view, nil
}

func encodeReveal(s Section) (string, error) {
	pair := func(f func(reveal.Side, reveal.Direction) reveal.Offset) directionPair {
		down, up := f(s.side, reveal.Down), f(s.side, reveal.Up)
		return directionPair{Down: [2]float64{down.X, down.Y}, Up: [2]float64{up.X, up.Y}}
	}
	b, err := json.Marshal(revealData{
		Side:           s.side.String(),
		Threshold:      s.Reveal.Threshold,
		Shrink:         s.Reveal.Shrink,
		DirectionAware: s.Reveal.DirectionAware,
		Enter:          pair(reveal.EnterOffset),
		Exit:           pair(reveal.ExitOffset),
	})
	if err != nil {
		return "", fmt.Errorf("encode reveal: %w", err)
	}
	return string(b), nil
}

func encodeParallax(p *style.Parallax) (string, error) {
	from, to, err := p.Endpoints()
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(parallaxData{From: point(from), To: point(to)})
	if err != nil {
		return "", fmt.Errorf("encode parallax: %w", err)
	}
	return string(b), nil
}

func point(v style.Values) parallaxPoint {
	var pt parallaxPoint
	if v.HasTranslateY {
		pt.TranslateY = &v.TranslateY
	}
	if v.HasScale {
		pt.Scale = &v.Scale
	}
	if v.HasOpacity {
		pt.Opacity = &v.Opacity
	}
	return pt
}

func projectCards(p *Portfolio) []ProjectCard {
	cards := make([]ProjectCard, 0, len(p.Projects))
	for _, pr := range p.Projects {
		cards = append(cards, ProjectCard{
			Href:    "/" + p.Slug + "/projects/" + pr.Slug,
			Title:   pr.Title,
			Summary: pr.Summary,
			Image:   pr.Image,
			Tags:    pr.Tags,
		})
	}
	return cards
}

func portfolioCards(c *Content) []PortfolioCard {
	cards := make([]PortfolioCard, 0, len(c.Portfolios))
	for _, p := range c.Portfolios {
		label := p.Nav
		if label == "" {
			label = p.Title
		}
		cards = append(cards, PortfolioCard{
			Href:    "/" + p.Slug,
			Title:   p.Title,
			Label:   label,
			Summary: p.Summary,
			Image:   p.Image,
		})
	}
	return cards
}
