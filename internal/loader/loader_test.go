package loader

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vikawood123/web.resume/internal/domain"
)

const (
	coursesJSON = `{"courses":[
		{"id":1,"title":"Go Basics","platform":"Stepik","image":"images/go.png","description":"Intro","skills":["Go"],"courseUrl":"https://stepik.org/go"},
		{"id":2,"title":"Web","platform":"Yandex","image":"images/web.png","description":"HTML","skills":["HTML","CSS"],"courseUrl":"https://yandex.ru"}
	]}`
	projectsJSON = `{"projects":[
		{"id":"shop","title":"Shop","image":"images/shop.png","description":"Online shop","role":"Developer","status":"Done","duration":"2 months","technologies":["Go"],"features":["Cart"],"links":[]}
	]}`
)

// stubServer serves the two documents; an empty body means 500.
func stubServer(t *testing.T, courses, projects string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body string
		switch r.URL.Path {
		case "/data/courses.json":
			body = courses
		case "/data/projects.json":
			body = projects
		default:
			http.NotFound(w, r)
			return
		}
		if body == "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewSource(t *testing.T) {
	testCases := []struct {
		prefix string
		http   bool
	}{
		{"data/", false},
		{"/srv/site/data/", false},
		{"http://localhost:8080/data/", true},
		{"HTTPS://example.com/data/", true},
	}

	for _, tc := range testCases {
		_, isHTTP := NewSource(tc.prefix, nil).(HTTPSource)
		if isHTTP != tc.http {
			t.Errorf("NewSource(%q) http = %v, want %v", tc.prefix, isHTTP, tc.http)
		}
	}
}

func TestLoadFetchCombinations(t *testing.T) {
	testCases := []struct {
		name             string
		courses          string
		projects         string
		perDocument      bool
		coursesFallback  bool
		projectsFallback bool
	}{
		{"both succeed", coursesJSON, projectsJSON, false, false, false},
		{"courses fails", "", projectsJSON, false, true, true},
		{"projects fails", coursesJSON, "", false, true, true},
		{"both fail", "", "", false, true, true},
		{"per document: both succeed", coursesJSON, projectsJSON, true, false, false},
		{"per document: courses fails", "", projectsJSON, true, true, false},
		{"per document: projects fails", coursesJSON, "", true, false, true},
		{"per document: both fail", "", "", true, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := stubServer(t, tc.courses, tc.projects)
			l := New(HTTPSource{Prefix: srv.URL + "/data/", Client: srv.Client()})
			l.PerDocument = tc.perDocument

			ds := l.Load(context.Background())

			if len(ds.Courses) == 0 || len(ds.Projects) == 0 {
				t.Fatalf("Expected non-empty data set, got courses=%d projects=%d", len(ds.Courses), len(ds.Projects))
			}
			if ds.CoursesFallback != tc.coursesFallback {
				t.Errorf("CoursesFallback = %v, want %v", ds.CoursesFallback, tc.coursesFallback)
			}
			if ds.ProjectsFallback != tc.projectsFallback {
				t.Errorf("ProjectsFallback = %v, want %v", ds.ProjectsFallback, tc.projectsFallback)
			}

			// A document is either entirely network data or entirely fallback.
			if tc.coursesFallback {
				if len(ds.Courses) != 1 || ds.Courses[0].Title != domain.FallbackCourses()[0].Title {
					t.Errorf("Expected fallback courses, got %+v", ds.Courses)
				}
			} else if len(ds.Courses) != 2 || ds.Courses[0].Title != "Go Basics" {
				t.Errorf("Expected network courses, got %+v", ds.Courses)
			}
			if tc.projectsFallback {
				if len(ds.Projects) != 1 || ds.Projects[0].Title != domain.FallbackProjects()[0].Title {
					t.Errorf("Expected fallback projects, got %+v", ds.Projects)
				}
			} else if len(ds.Projects) != 1 || ds.Projects[0].ID != "shop" {
				t.Errorf("Expected network projects, got %+v", ds.Projects)
			}
		})
	}
}

func TestLoadMalformedDocuments(t *testing.T) {
	testCases := []struct {
		name     string
		courses  string
		projects string
	}{
		{"malformed courses", `{"courses": [`, projectsJSON},
		{"array instead of object", `[{"id":1}]`, projectsJSON},
		{"missing courses field", `{"items": []}`, projectsJSON},
		{"null projects field", coursesJSON, `{"projects": null}`},
		{"empty projects", coursesJSON, `{"projects": []}`},
		{"wrong field type", coursesJSON, `{"projects":[{"id":1,"teamSize":"four"}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := stubServer(t, tc.courses, tc.projects)
			ds := New(HTTPSource{Prefix: srv.URL + "/data/", Client: srv.Client()}).Load(context.Background())

			if !ds.CoursesFallback || !ds.ProjectsFallback {
				t.Errorf("Expected full fallback, got courses=%v projects=%v", ds.CoursesFallback, ds.ProjectsFallback)
			}
			if len(ds.Courses) != 1 || len(ds.Projects) != 1 {
				t.Errorf("Expected one fallback record each, got %d/%d", len(ds.Courses), len(ds.Projects))
			}
		})
	}
}

func TestLoadByteOrderMark(t *testing.T) {
	srv := stubServer(t, "\xef\xbb\xbf"+coursesJSON, "\xef\xbb\xbf"+projectsJSON)
	ds := New(HTTPSource{Prefix: srv.URL + "/data/", Client: srv.Client()}).Load(context.Background())

	if ds.Degraded() {
		t.Fatalf("Expected BOM-prefixed documents to load, got courses=%v projects=%v", ds.CoursesFallback, ds.ProjectsFallback)
	}
	if len(ds.Courses) != 2 || ds.Courses[0].Title != "Go Basics" {
		t.Errorf("Unexpected courses: %+v", ds.Courses)
	}
	if len(ds.Projects) != 1 || ds.Projects[0].Title != "Shop" {
		t.Errorf("Unexpected projects: %+v", ds.Projects)
	}

	// Only a leading mark is dropped.
	if _, err := decode(CoursesFile, []byte(" \xef\xbb\xbf"+coursesJSON)); err == nil {
		t.Error("Expected error for a mark after leading whitespace")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := decode(CoursesFile, []byte(`{}`)); !errors.Is(err, ErrMissingField) {
		t.Errorf("Expected ErrMissingField, got %v", err)
	}
	if _, err := decode(ProjectsFile, []byte(`{"projects":[]}`)); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Expected ErrEmptyDocument, got %v", err)
	}
	if _, err := decode("other.json", []byte(`{}`)); err == nil {
		t.Error("Expected error for unknown document")
	}

	doc, err := decode(CoursesFile, []byte(coursesJSON))
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}
	if len(doc.courses) != 2 || doc.courses[1].Skills[1] != "CSS" {
		t.Errorf("Unexpected decoded courses: %+v", doc.courses)
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, CoursesFile), []byte(coursesJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ProjectsFile), []byte(projectsJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	ds := Load(context.Background(), dir+string(filepath.Separator), nil)
	if ds.Degraded() {
		t.Fatal("Expected data loaded from files without fallback")
	}
	if len(ds.Courses) != 2 || len(ds.Projects) != 1 {
		t.Errorf("Expected 2 courses and 1 project, got %d/%d", len(ds.Courses), len(ds.Projects))
	}

	// Missing directory degrades to fallback.
	ds = Load(context.Background(), filepath.Join(dir, "missing")+string(filepath.Separator), nil)
	if !ds.CoursesFallback || !ds.ProjectsFallback {
		t.Error("Expected fallback for missing files")
	}
}

func TestLoadCancelledContext(t *testing.T) {
	srv := stubServer(t, coursesJSON, projectsJSON)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ds := New(HTTPSource{Prefix: srv.URL + "/data/", Client: srv.Client()}).Load(ctx)
	if !ds.Degraded() || len(ds.Courses) == 0 || len(ds.Projects) == 0 {
		t.Errorf("Expected fallback data for cancelled load, got %+v", ds)
	}
}

func TestLoadLogsFallbackCounts(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	srv := stubServer(t, "", projectsJSON)
	ds := New(HTTPSource{Prefix: srv.URL + "/data/", Client: srv.Client()}).Load(context.Background())
	if !ds.Degraded() {
		t.Fatal("Expected fallback data")
	}

	out := buf.String()
	if !strings.Contains(out, "using fallback data") {
		t.Errorf("Expected fallback notice, got %q", out)
	}
	if !strings.Contains(out, "data loaded: courses=1 projects=1 degraded=true") {
		t.Errorf("Expected record counts after fallback, got %q", out)
	}
}
