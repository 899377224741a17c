package render

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Vikawood123/web.resume/internal/domain"
	"github.com/Vikawood123/web.resume/internal/page"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	CoursesContainer  = "courses-grid"
	ProjectsContainer = "projects-grid"
	CourseCard        = "course-card"
	ProjectCard       = "project-card"

	// AnimatedClass enables the CSS entrance animation.
	AnimatedClass = "animated"
)

// CardHook is invoked once per rendered card, in order, after the
// container content has been replaced.
type CardHook func(index int, card *html.Node)

// Renderer turns records into card markup and swaps it into containers.
type Renderer struct {
	tmpl *template.Template

	// OnCard defaults to Animate. Nil disables the per-card pass.
	OnCard CardHook
}

func New() *Renderer {
	return &Renderer{
		tmpl:   template.Must(template.ParseFS(templateFS, "templates/*.html")),
		OnCard: Animate,
	}
}

// RenderCourses replaces the content of .courses-grid with one card per
// course. A missing container or an empty slice leaves doc untouched.
func (r *Renderer) RenderCourses(doc *page.Document, courses []domain.Course) error {
	return r.render(doc, CoursesContainer, CourseCard, "courses", courses, len(courses))
}

// RenderProjects replaces the content of .projects-grid with one card per
// project. A missing container or an empty slice leaves doc untouched.
func (r *Renderer) RenderProjects(doc *page.Document, projects []domain.Project) error {
	return r.render(doc, ProjectsContainer, ProjectCard, "projects", projects, len(projects))
}

func (r *Renderer) render(doc *page.Document, container, card, name string, data any, n int) error {
	if doc == nil || n == 0 {
		return nil
	}
	grid := doc.FindByClass(container)
	if grid == nil {
		return nil
	}

	markup, err := r.execute(name, data)
	if err != nil {
		return err
	}
	if err := page.ReplaceChildren(grid, markup); err != nil {
		return fmt.Errorf("render: %s: %w", name, err)
	}

	if r.OnCard != nil {
		i := 0
		for _, el := range page.ChildElements(grid) {
			if page.HasClass(el, card) {
				r.OnCard(i, el)
				i++
			}
		}
	}
	return nil
}

// execute renders into a buffer first so a template failure never leaves
// a half-replaced container behind.
func (r *Renderer) execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("render: execute %s: %w", name, err)
	}
	return sb.String(), nil
}

// Animate staggers cards by 0.1s per position and marks them animated.
func Animate(index int, card *html.Node) {
	delay := "animation-delay: " + strconv.FormatFloat(float64(index+1)/10, 'f', -1, 64) + "s"
	if style, ok := page.Attr(card, "style"); ok && strings.TrimSpace(style) != "" {
		delay = strings.TrimRight(strings.TrimSpace(style), ";") + "; " + delay
	}
	page.SetAttr(card, "style", delay)
	page.AddClass(card, AnimatedClass)
}
