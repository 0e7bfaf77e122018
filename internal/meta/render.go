package meta

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
)

// redirectDelay gives crawlers that execute scripts time to read the tags.
const redirectDelay = 1000

var pageTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.Title}} - {{.SiteName}}</title>
<meta name="description" content="{{.Description}}" />
<link rel="canonical" href="{{.URL}}" />
<meta property="og:type" content="article" />
<meta property="og:site_name" content="{{.SiteName}}" />
<meta property="og:title" content="{{.Title}}" />
<meta property="og:description" content="{{.Description}}" />
<meta property="og:image" content="{{.Image}}" />
<meta property="og:image:width" content="1200" />
<meta property="og:image:height" content="630" />
<meta property="og:url" content="{{.URL}}" />
<meta property="article:published_time" content="{{.PublishedTime}}" />
<meta name="twitter:card" content="summary_large_image" />
<meta name="twitter:title" content="{{.Title}}" />
<meta name="twitter:description" content="{{.Description}}" />
<meta name="twitter:image" content="{{.Image}}" />
</head>
<body>
<noscript>
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
<img src="{{.Image}}" alt="{{.Title}}" />
<a href="{{.AppURL}}">Leer el artículo completo</a>
</noscript>
<script>setTimeout(function () { window.location.replace({{.AppURL}}); }, {{.Delay}});</script>
</body>
</html>
`))

type pageData struct {
	domain.PreviewMeta
	Delay int
}

// RenderHTML renders the crawler page. Every interpolated value goes through
// the contextual escaper of html/template.
func RenderHTML(m domain.PreviewMeta) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{PreviewMeta: m, Delay: redirectDelay}); err != nil {
		return nil, fmt.Errorf("render preview page: %w", err)
	}
	return buf.Bytes(), nil
}

type Payload struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	OG          OpenGraph   `json:"og"`
	Twitter     TwitterCard `json:"twitter"`
}

type OpenGraph struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	URL           string `json:"url"`
	Type          string `json:"type"`
	SiteName      string `json:"site_name"`
	PublishedTime string `json:"published_time"`
}

type TwitterCard struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func RenderJSON(m domain.PreviewMeta) Payload {
	return Payload{
		Title:       m.Title + " - " + m.SiteName,
		Description: m.Description,
		OG: OpenGraph{
			Title:         m.Title,
			Description:   m.Description,
			Image:         m.Image,
			URL:           m.URL,
			Type:          "article",
			SiteName:      m.SiteName,
			PublishedTime: m.PublishedTime,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       m.Title,
			Description: m.Description,
			Image:       m.Image,
		},
	}
}
