package templates

import (
	"embed"
	"html/template"
	"io/fs"
	"path"

	"helpize/internal/utils"
)

//go:embed pages/*.html
var templateFS embed.FS

// Templates parses every page. Each page is addressed by its file name,
// e.g. "home.html", and pulls in the shared "header" and "footer".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "pages/*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"appName":    func() string { return utils.AppName },
		"formatDate": utils.FormatDate,
		"timeAgo":    utils.TimeAgo,
		"truncate":   utils.TruncateString,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}

// Pages lists the page template names.
func Pages() ([]string, error) {
	matches, err := fs.Glob(templateFS, "pages/*.html")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if name := path.Base(m); name != "layout.html" {
			names = append(names, name)
		}
	}
	return names, nil
}
