package web

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"blackeagles/internal/dday"
	"blackeagles/internal/model"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderMarkdown converts notice bodies. Raw HTML in the source is dropped.
func RenderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// YouTubeEmbed turns watch, short and embed links into an embed URL.
// Anything else is returned unchanged.
func YouTubeEmbed(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	host := strings.TrimPrefix(u.Host, "www.")
	var id string
	switch host {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "m.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			return raw
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.TrimPrefix(u.Path, "/shorts/")
		}
	}
	if id == "" {
		return raw
	}
	return "https://www.youtube.com/embed/" + id
}

// Truncate cuts s to n runes and appends "...".
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func (d *Dictionary) funcMap() template.FuncMap {
	return template.FuncMap{
		"t":        d.T,
		"markdown": RenderMarkdown,
		"youtube":  YouTubeEmbed,
		"dday":     dday.FormatISO,
		"truncate": Truncate,
		"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
		"date":     func(t time.Time) string { return t.Format(model.DateLayout) },
		"langURL": func(path, lang string) string {
			if lang == model.LangEN {
				return path + "?lang=en"
			}
			return path
		},
		"otherLang": func(lang string) string {
			if lang == model.LangEN {
				return model.LangKO
			}
			return model.LangEN
		},
	}
}
