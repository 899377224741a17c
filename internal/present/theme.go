package present

import (
	"golang.org/x/net/html"

	"github.com/Vikawood123/web.resume/internal/page"
	"github.com/Vikawood123/web.resume/internal/prefs"
)

const (
	DarkThemeClass   = "dark-theme"
	ThemeToggleClass = "theme-toggle"
	themeToggleTitle = "Сменить тему"
)

// ApplyTheme sets or clears the dark-theme class on <body>.
func ApplyTheme(doc *page.Document, theme prefs.Theme) {
	body := doc.Body()
	if body == nil {
		return
	}
	if theme == prefs.Dark {
		page.AddClass(body, DarkThemeClass)
	} else {
		page.RemoveClass(body, DarkThemeClass)
	}
}

// InstallThemeToggle replaces any existing toggle button with a fresh one
// labelled for the current theme.
func InstallThemeToggle(doc *page.Document, theme prefs.Theme) *html.Node {
	for _, old := range doc.FindAllByClass(ThemeToggleClass) {
		page.Remove(old)
	}

	body := doc.Body()
	if body == nil {
		return nil
	}

	btn := page.NewElement("button",
		html.Attribute{Key: "class", Val: ThemeToggleClass},
		html.Attribute{Key: "title", Val: themeToggleTitle},
	)
	page.SetText(btn, theme.Icon())
	body.AppendChild(btn)
	return btn
}
