// Package site serves the portfolio pages.
//
// Handlers are thin: they pick the sections for a route and hand them to the
// renderer, which draws the first frame of every decoration so the browser
// script only has to continue from it.
package site

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/decor"
	apperrors "github.com/Zachkp/portfolio/internal/platform/errors"
	"github.com/Zachkp/portfolio/internal/seeded"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// maxAPIBubbles bounds the decoration API.
const maxAPIBubbles = 500

// Config holds the site configuration.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ImagesDir       string        `env:"PORTFOLIO_IMAGES_DIR" envDefault:"./images"`
	ContentFile     string        `env:"PORTFOLIO_CONTENT_FILE"`
	ViewportHeight  float64       `env:"PORTFOLIO_VIEWPORT_HEIGHT" envDefault:"900"`
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewRouter wires every route for content.
func NewRouter(cfg Config, content *Content) (*gin.Engine, error) {
	if content == nil {
		return nil, errors.New("content is required")
	}
	if cfg.ViewportHeight <= 0 {
		return nil, fmt.Errorf("viewport height must be > 0, got %v", cfg.ViewportHeight)
	}

	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	h := &handlers{content: content, renderer: renderer{viewportHeight: cfg.ViewportHeight}}

	r := gin.New()
	r.Use(gin.Recovery(), requestContext(), requestLog(gin.DefaultWriter))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(static))
	if cfg.ImagesDir != "" {
		r.Static("/images", cfg.ImagesDir)
	}

	// Home page route
	r.GET("/", h.home)

	// Portfolio and project-detail routes
	for _, p := range content.Portfolios {
		r.GET("/"+p.Slug, h.portfolio(p.Slug))
		r.GET("/"+p.Slug+"/projects/:project", h.project(p.Slug))
	}

	// Decorations for client-side re-renders
	r.GET("/api/decorations/:seed", h.decorations)

	r.NoRoute(func(c *gin.Context) {
		h.notFound(c)
	})
	return r, nil
}

type handlers struct {
	content  *Content
	renderer renderer
}

func (h *handlers) home(c *gin.Context) {
	view, err := h.page(c, h.content.Home.Title, h.content.Home.Sections, nil)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "page.html", view)
}

func (h *handlers) portfolio(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := h.content.Portfolio(slug)
		if !ok {
			h.notFound(c)
			return
		}
		view, err := h.page(c, p.Title, p.Sections, p)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.HTML(http.StatusOK, "page.html", view)
	}
}

func (h *handlers) project(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := h.content.Portfolio(slug)
		if !ok {
			h.notFound(c)
			return
		}
		pr, ok := p.Project(c.Param("project"))
		if !ok {
			h.notFound(c)
			return
		}
		view, err := h.page(c, pr.Title+" · "+p.Title, p.detailSections(pr), p)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.HTML(http.StatusOK, "page.html", view)
	}
}

func (h *handlers) page(c *gin.Context, title string, sections []Section, p *Portfolio) (PageView, error) {
	reduced := prefersReducedMotion(c)
	views, err := h.renderer.render(sections, reduced)
	if err != nil {
		return PageView{}, err
	}
	if p != nil {
		cards := projectCards(p)
		for i := range views {
			if views[i].Kind == KindGallery {
				views[i].Projects = cards
			}
		}
	}
	return PageView{
		Site:          h.content.Site,
		Title:         title,
		Path:          c.Request.URL.Path,
		ReducedMotion: reduced,
		Sections:      views,
		Portfolios:    portfolioCards(h.content),
	}, nil
}

type decorationsResponse struct {
	Seed      string           `json:"seed"`
	Hash      uint32           `json:"hash"`
	Particles []decor.Particle `json:"particles"`
}

func (h *handlers) decorations(c *gin.Context) {
	key := c.Param("seed")
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil {
		h.fail(c, apperrors.Wrap(apperrors.CodeInvalidArgument, "count must be an integer", err))
		return
	}
	if count > maxAPIBubbles {
		h.fail(c, apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("count must be <= %d", maxAPIBubbles)))
		return
	}
	particles, err := decor.Generate(key, count)
	if err != nil {
		h.fail(c, err)
		return
	}
	seed := decor.SeedString(key, count)
	c.JSON(http.StatusOK, decorationsResponse{
		Seed:      seed,
		Hash:      seeded.Hash(seed),
		Particles: particles,
	})
}

func (h *handlers) notFound(c *gin.Context) {
	if isAPI(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": string(apperrors.CodeNotFound)})
		return
	}
	c.HTML(http.StatusNotFound, "not-found.html", gin.H{
		"Site":       h.content.Site,
		"Title":      "Not found",
		"Portfolios": portfolioCards(h.content),
	})
}

func (h *handlers) fail(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Printf("request %s: %v", requestID(c), err)
	}
	if isAPI(c) {
		c.JSON(status, gin.H{"error": string(code), "message": err.Error()})
		return
	}
	c.HTML(status, "error.html", gin.H{
		"Site":       h.content.Site,
		"Title":      http.StatusText(status),
		"Status":     status,
		"Portfolios": portfolioCards(h.content),
	})
}

// Run serves the site until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	content, err := LoadContent(cfg.ContentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	router, err := NewRouter(cfg, content)
	if err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("server stopped")
	return nil
}
