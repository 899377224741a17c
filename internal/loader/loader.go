package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Vikawood123/web.resume/internal/concurrency"
	"github.com/Vikawood123/web.resume/internal/domain"
	"github.com/Vikawood123/web.resume/internal/httpx"
)

const (
	DefaultPrefix = "data/"
	CoursesFile   = "courses.json"
	ProjectsFile  = "projects.json"
)

// utf8BOM is dropped from the start of a document before decoding.
var utf8BOM = []byte("\xef\xbb\xbf")

var (
	ErrMissingField  = errors.New("missing top-level field")
	ErrEmptyDocument = errors.New("document has no records")
)

// Loader fetches courses.json and projects.json in parallel and always
// produces a usable data set.
type Loader struct {
	Source Source

	// PerDocument keeps a good document when the other one fails.
	// By default any failure replaces both documents with fallback data.
	PerDocument bool
}

func New(src Source) *Loader {
	return &Loader{Source: src}
}

// Load is the one-shot form: build a source for prefix and load from it.
func Load(ctx context.Context, prefix string, client *http.Client) domain.DataSet {
	return New(NewSource(prefix, client)).Load(ctx)
}

type document struct {
	courses  []domain.Course
	projects []domain.Project
}

// Load never fails. Both fetches run concurrently and are joined before
// any result is inspected. There is no retry.
func (l *Loader) Load(ctx context.Context) domain.DataSet {
	names := []string{CoursesFile, ProjectsFile}

	docs, errs := concurrency.ProcessParallel(ctx, names, concurrency.ParallelOptions{MaxWorkers: len(names)},
		func(ctx context.Context, _ int, name string) (document, error) {
			body, err := l.Source.Fetch(ctx, name)
			if err != nil {
				return document{}, err
			}
			return decode(name, body)
		})

	coursesErr, projectsErr := errs[0], errs[1]

	if !l.PerDocument && (coursesErr != nil || projectsErr != nil) {
		for _, err := range concurrency.Compact(errs) {
			log.Printf("loader: data load failed: %v", err)
		}
		log.Printf("loader: using fallback data")
		ds := domain.Fallback()
		logLoaded(ds)
		return ds
	}

	var ds domain.DataSet
	if coursesErr != nil {
		log.Printf("loader: %s failed, using fallback: %v", CoursesFile, coursesErr)
		ds.Courses, ds.CoursesFallback = domain.FallbackCourses(), true
	} else {
		ds.Courses = docs[0].courses
	}
	if projectsErr != nil {
		log.Printf("loader: %s failed, using fallback: %v", ProjectsFile, projectsErr)
		ds.Projects, ds.ProjectsFallback = domain.FallbackProjects(), true
	} else {
		ds.Projects = docs[1].projects
	}

	logLoaded(ds)
	return ds
}

func logLoaded(ds domain.DataSet) {
	log.Printf("loader: data loaded: courses=%d projects=%d degraded=%v", len(ds.Courses), len(ds.Projects), ds.Degraded())
	if len(ds.Courses) > 0 {
		log.Printf("loader: first course: %s", ds.Courses[0].Title)
	}
}

func decode(name string, body []byte) (document, error) {
	body = bytes.TrimPrefix(body, utf8BOM)

	switch name {
	case CoursesFile:
		var list domain.CourseList
		if err := json.Unmarshal(body, &list); err != nil {
			return document{}, fmt.Errorf("loader: parse %s: %w body=%s", name, err, httpx.Snippet(body, 200))
		}
		if list.Courses == nil {
			return document{}, fmt.Errorf("loader: %s: %w %q", name, ErrMissingField, "courses")
		}
		if len(*list.Courses) == 0 {
			return document{}, fmt.Errorf("loader: %s: %w", name, ErrEmptyDocument)
		}
		return document{courses: *list.Courses}, nil

	case ProjectsFile:
		var list domain.ProjectList
		if err := json.Unmarshal(body, &list); err != nil {
			return document{}, fmt.Errorf("loader: parse %s: %w body=%s", name, err, httpx.Snippet(body, 200))
		}
		if list.Projects == nil {
			return document{}, fmt.Errorf("loader: %s: %w %q", name, ErrMissingField, "projects")
		}
		if len(*list.Projects) == 0 {
			return document{}, fmt.Errorf("loader: %s: %w", name, ErrEmptyDocument)
		}
		return document{projects: *list.Projects}, nil
	}
	return document{}, fmt.Errorf("loader: unknown document %q", name)
}
