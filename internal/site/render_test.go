package site

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/decor"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/style"
)

func mustSections(t *testing.T, doc string) []Section {
	t.Helper()
	c, err := ParseContent([]byte(doc))
	if err != nil {
		t.Fatalf("ParseContent() error = %v", err)
	}
	return c.Home.Sections
}

const renderDoc = `
home:
  sections:
    - kind: hero
      key: hero
      height: 600
      bubbles: 4
      reveal:
        side: left
        threshold: 0.2
      parallax:
        translate_y: "progress * 100"
    - kind: footer
      key: footer
      height: 300
      bubbles: 3
`

func TestRenderFirstFrame(t *testing.T) {
	t.Parallel()

	views, err := renderer{viewportHeight: 900}.render(mustSections(t, renderDoc), false)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}

	hero := views[0]
	if hero.RevealState != reveal.Hidden.String() {
		t.Fatalf("hero state = %q, want hidden", hero.RevealState)
	}
	wantReveal := style.Reveal(reveal.Hidden, reveal.EnterOffset(reveal.SideLeft, reveal.Down)).CSS()
	if hero.RevealStyle != wantReveal {
		t.Fatalf("hero reveal style = %q, want %q", hero.RevealStyle, wantReveal)
	}
	// top 0, height 600, viewport 900: progress 0.6.
	if hero.ParallaxStyle != "transform: translate3d(0, 60px, 0)" {
		t.Fatalf("hero parallax style = %q", hero.ParallaxStyle)
	}
	var pd parallaxData
	if err := json.Unmarshal([]byte(hero.ParallaxData), &pd); err != nil {
		t.Fatalf("parallax data: %v", err)
	}
	if pd.From.TranslateY == nil || *pd.From.TranslateY != 0 || *pd.To.TranslateY != 100 {
		t.Fatalf("parallax endpoints = %+v", pd)
	}
	var rd revealData
	if err := json.Unmarshal([]byte(hero.RevealData), &rd); err != nil {
		t.Fatalf("reveal data: %v", err)
	}
	if rd.Side != "left" || rd.Threshold != 0.2 || rd.Enter.Down != [2]float64{-60, 20} || rd.Exit.Down != [2]float64{-60, -20} {
		t.Fatalf("reveal data = %+v", rd)
	}

	footer := views[1]
	want, _ := decor.Generate("footer", 3)
	if !reflect.DeepEqual(footer.Particles, want) {
		t.Fatalf("footer particles = %+v, want %+v", footer.Particles, want)
	}
	if footer.ParallaxStyle != "" || footer.ParallaxData != "" {
		t.Fatal("expected no parallax on footer")
	}
	if footer.ID != "section-footer" {
		t.Fatalf("footer ID = %q", footer.ID)
	}
}

func TestRenderReducedMotion(t *testing.T) {
	t.Parallel()

	views, err := renderer{viewportHeight: 900}.render(mustSections(t, renderDoc), true)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	for _, v := range views {
		if v.RevealState != reveal.Visible.String() {
			t.Fatalf("%s state = %q, want visible", v.Key, v.RevealState)
		}
		if !strings.Contains(string(v.RevealStyle), "opacity: 1") {
			t.Fatalf("%s reveal style = %q", v.Key, v.RevealStyle)
		}
		if v.RevealData != "" || v.ParallaxData != "" || v.ParallaxStyle != "" {
			t.Fatalf("%s carries motion data under reduced motion", v.Key)
		}
	}
}

func TestRenderIsStable(t *testing.T) {
	t.Parallel()

	sections := mustSections(t, renderDoc)
	a, err := renderer{viewportHeight: 900}.render(sections, false)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	b, err := renderer{viewportHeight: 900}.render(sections, false)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical renders")
	}
}
