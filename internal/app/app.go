package app

import (
	"context"
	"fmt"
	"log"

	"github.com/Vikawood123/web.resume/internal/config"
	"github.com/Vikawood123/web.resume/internal/domain"
	"github.com/Vikawood123/web.resume/internal/httpx"
	"github.com/Vikawood123/web.resume/internal/loader"
	"github.com/Vikawood123/web.resume/internal/page"
	"github.com/Vikawood123/web.resume/internal/prefs"
	"github.com/Vikawood123/web.resume/internal/present"
	"github.com/Vikawood123/web.resume/internal/publish"
	"github.com/Vikawood123/web.resume/internal/render"
	"github.com/Vikawood123/web.resume/internal/sftpclient"
)

// App wires the loader and renderer together and owns the data set for
// the lifetime of one build.
type App struct {
	cfg      *config.Config
	loader   *loader.Loader
	renderer *render.Renderer
	prefs    prefs.KV

	Data  domain.DataSet
	Theme prefs.Theme
}

func New(cfg *config.Config, kv prefs.KV) *App {
	l := loader.New(loader.NewSource(cfg.DataPath, httpx.NewClient(cfg.HTTPTimeout)))
	l.PerDocument = cfg.PerDocumentFallback

	return &App{
		cfg:      cfg,
		loader:   l,
		renderer: render.New(),
		prefs:    kv,
	}
}

// Build produces the finished page: theme, data, cards, navigation, toggle.
// Only an unreadable page template is an error; everything else degrades.
func (a *App) Build(ctx context.Context) (*page.Document, error) {
	doc, err := a.document()
	if err != nil {
		return nil, err
	}

	theme, err := prefs.LoadTheme(ctx, a.prefs, a.cfg.Theme())
	if err != nil {
		log.Printf("app: reading theme: %v (using %s)", err, theme)
	}
	a.Theme = theme
	present.ApplyTheme(doc, theme)

	a.Data = a.loader.Load(ctx)

	if err := a.renderer.RenderCourses(doc, a.Data.Courses); err != nil {
		log.Printf("app: %v", err)
	}
	if err := a.renderer.RenderProjects(doc, a.Data.Projects); err != nil {
		log.Printf("app: %v", err)
	}

	a.setupNavigation(doc)
	present.InstallThemeToggle(doc, theme)
	return doc, nil
}

// Run builds the page, writes it to the configured output and, when
// upload is set, pushes the written files over SFTP.
func (a *App) Run(ctx context.Context, upload bool) ([]string, error) {
	doc, err := a.Build(ctx)
	if err != nil {
		return nil, err
	}

	files, err := publish.WritePage(a.cfg.Output, doc, a.cfg.Compress)
	if err != nil {
		return files, err
	}
	log.Printf("app: wrote %v (courses=%d projects=%d degraded=%v)",
		files, len(a.Data.Courses), len(a.Data.Projects), a.Data.Degraded())

	if upload {
		upCfg := a.uploadConfig()
		if err := sftpclient.UploadFiles(ctx, upCfg, files); err != nil {
			return files, fmt.Errorf("app: upload: %w", err)
		}
		log.Printf("app: uploaded %d files to sftp://%s:%d%s", len(files), upCfg.Host, upCfg.Port, upCfg.RemoteDir)
	}
	return files, nil
}

func (a *App) uploadConfig() sftpclient.Config {
	return sftpclient.Config{
		Host:                  a.cfg.SFTPHost,
		Port:                  a.cfg.SFTPPort,
		User:                  a.cfg.SFTPUser,
		Pass:                  a.cfg.SFTPPass,
		RemoteDir:             a.cfg.SFTPDir,
		InsecureIgnoreHostKey: a.cfg.SFTPInsecureIgnoreHostKey,
		KnownHosts:            a.cfg.SFTPKnownHosts,
	}
}

func (a *App) document() (*page.Document, error) {
	if a.cfg.Template == "" {
		return page.Default(), nil
	}
	return page.ParseFile(a.cfg.Template)
}

func (a *App) setupNavigation(doc *page.Document) {
	for _, href := range present.DanglingAnchors(doc) {
		log.Printf("app: link %s has no target section", href)
	}

	sections := present.Layout(doc, present.SectionSpacing)
	active, ok := present.InitialSection(sections, a.cfg.ActiveSection)
	if !ok {
		log.Printf("app: active_section %q has no target section, opening at the top", a.cfg.ActiveSection)
	}
	present.MarkActive(doc, active)
}
