// Package preview provides the pages listing and rendering the widget documents.
package preview

import (
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoBulma/GoBulma/internal/config"
	fiberlogger "github.com/GoBulma/GoBulma/internal/logger/adapter/fiber"
	"github.com/GoBulma/GoBulma/internal/metric"
	"github.com/GoBulma/GoBulma/internal/uniuri"
	"github.com/GoBulma/GoBulma/internal/web/handler"
	"github.com/GoBulma/GoBulma/internal/web/navigation"
	"github.com/GoBulma/GoBulma/pkg/bulma"
	"github.com/GoBulma/GoBulma/pkg/html"
	"github.com/GoBulma/GoBulma/pkg/widget"
)

const (
	// IndexPath is the path of the document list.
	IndexPath = handler.RootPath

	// ShowPrefix is the path prefix of a rendered document.
	ShowPrefix = handler.RootPath + "preview/"

	// ShowPath is the route of a rendered document.
	ShowPath = ShowPrefix + ":name"

	// IndexTemplateName is the name of the document list template.
	IndexTemplateName = "preview/index"

	// ShowTemplateName is the name of the rendered document template.
	ShowTemplateName = "preview/show"

	// SiteMenuID is the id of the navbar menu, the target of the burger.
	SiteMenuID = "site-menu"

	sectionIndex   = "index"
	sectionPreview = "preview"
)

// Service is the preview handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	rendered metric.IncrementalCounter
}

// Handler is the preview handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the preview routes. rendered counts rendered widgets by kind and result.
func (s *Service) Init(app *fiber.App, cfg *config.Config, rendered metric.IncrementalCounter) error {
	if app == nil || cfg == nil {
		log.Error().Msg(handler.ErrNilACFatalLogMsg)
		return handler.ErrNilAppOrConfig
	}

	s.cfg = cfg
	s.rendered = rendered

	app.Get(IndexPath, s.Index)
	app.Get(ShowPath, s.Show)

	return nil
}

// Index lists the documents.
func (s *Service) Index(c *fiber.Ctx) error {
	entries, err := Catalog(s.cfg.Preview.Documents)
	if err != nil {
		log.Error().Err(err).Str("requestID", fiberlogger.RequestID(c)).Msg("failed to list widget documents")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list widget documents")
	}

	nav := navigation.NewContext(s.cfg.Title, sectionIndex, sectionIndex).
		AddBreadcrumb("Home", IndexPath, true)

	navBar, err := s.navBar(c.Path(), entries, s.ids())
	if err != nil {
		return err
	}

	return c.Render(IndexTemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Breadcrumb": template.HTML(nav.BreadcrumbHTML()), //nolint:gosec // titles are encoded
		"NavBar":     navBar,
		"Entries":    entries,
	}, handler.BaseLayout)
}

// Show renders one document. Invalid documents are shown with their error and status 422.
func (s *Service) Show(c *fiber.Ctx) error {
	name := c.Params("name")
	if !ValidName(name) {
		return fiber.ErrNotFound
	}

	entries, err := Catalog(s.cfg.Preview.Documents)
	if err != nil {
		log.Error().Err(err).Str("requestID", fiberlogger.RequestID(c)).Msg("failed to list widget documents")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list widget documents")
	}

	entry, ok := Find(entries, name)
	if !ok {
		return fiber.ErrNotFound
	}

	ids := s.ids()

	// the navbar takes its ids before the widget does
	navBar, err := s.navBar(c.Path(), entries, ids)
	if err != nil {
		return err
	}

	nav := navigation.NewContext(entry.Title(), sectionPreview, name).
		AddBreadcrumb("Home", IndexPath, false).
		AddBreadcrumb(entry.Title(), ShowPrefix+name, true)

	markup, renderErr := s.render(entry, ids)
	if renderErr != nil {
		log.Warn().
			Err(renderErr).
			Str("requestID", fiberlogger.RequestID(c)).
			Str("document", name).
			Msg("failed to render widget document")

		c.Status(fiber.StatusUnprocessableEntity)

		if markup, err = problem(renderErr, ids); err != nil {
			return err
		}
	}

	return c.Render(ShowTemplateName, fiber.Map{
		"Title":      entry.Title(),
		"Navigation": nav,
		"Breadcrumb": template.HTML(nav.BreadcrumbHTML()), //nolint:gosec // titles are encoded
		"NavBar":     navBar,
		"Entry":      entry,
		"Entries":    entries,
		"Failed":     renderErr != nil,
		"Widget":     template.HTML(markup), //nolint:gosec // widget markup
		"Markup":     markup,
	}, handler.BaseLayout)
}

// render builds the widget of a loaded document and counts the attempt.
func (s *Service) render(entry Entry, ids widget.IDAllocator) (string, error) {
	if entry.Err != nil {
		return "", entry.Err
	}

	d := entry.Document
	if d.IDPrefix == "" {
		d.IDPrefix = s.cfg.Preview.IDPrefix
	}

	out, err := d.Render(ids)

	if s.rendered != nil {
		s.rendered.Increment(string(d.Kind), metric.Result(err))
	}

	return out, err
}

// ids returns the allocator of one request.
func (s *Service) ids() widget.IDAllocator {
	if s.cfg.Preview.RandomIDs {
		return uniuri.Allocator{Length: s.cfg.Preview.IDLength}
	}

	return widget.NewCounter()
}

// navBar renders the site navbar: the title as brand, then a menu with the loadable documents grouped by kind.
func (s *Service) navBar(path string, entries []Entry, ids widget.IDAllocator) (template.HTML, error) {
	pages := make([]navigation.Page, 0, len(entries))

	for _, e := range entries {
		if e.Err != nil {
			continue
		}

		pages = append(pages, navigation.Page{
			Title:   e.Title(),
			URL:     ShowPrefix + e.Name,
			Section: string(e.Document.Kind),
		})
	}

	bar := bulma.NewNavBar().
		WithIDAllocator(ids).
		WithBrandText(html.Encode(s.cfg.Title)).
		WithBurgerAttributes(html.Attrs("data-target", SiteMenuID))

	begin := bar.Begin()

	items, err := bulma.NewNav().
		WithIDAllocator(ids).
		WithItems(navigation.Menu(IndexPath, pages)).
		WithCurrentPath(path).
		WithActivateParents().
		Render()
	if err != nil {
		return "", err
	}

	start := html.Tag("div", html.Attrs("class", "navbar-start"), "\n"+items+"\n")
	menuDiv := html.Tag("div", html.Attrs("id", SiteMenuID, "class", "navbar-menu"), "\n"+start+"\n")

	return template.HTML(begin + menuDiv + "\n" + bar.End()), nil //nolint:gosec // titles are encoded
}

// problem renders err as a danger message.
func problem(err error, ids widget.IDAllocator) (string, error) {
	m, colorErr := bulma.NewMessage().
		WithIDAllocator(ids).
		WithHeaderMessage("Invalid widget document").
		WithoutCloseButton().
		WithBody(html.Encode(err.Error())).
		WithHeaderColor(widget.ColorDanger)
	if colorErr != nil {
		return "", colorErr
	}

	return m.Render(), nil
}
