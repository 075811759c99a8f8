package views

import (
	"io/fs"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gofiber/template/html/v2"
)

// NewEngine loads the page templates from fsys
func NewEngine(fsys fs.FS, reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(fsys), ".html")
	engine.Reload(reload)
	engine.AddFunc("initials", initials)
	engine.AddFunc("inc", func(i int) int { return i + 1 })
	return engine
}

// initials returns the upper-cased first letter of name for the avatar
func initials(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "A"
	}
	return string(unicode.ToUpper(r))
}
