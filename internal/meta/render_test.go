package meta

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMeta() domain.PreviewMeta {
	return domain.PreviewMeta{
		Title:         "Hola",
		Description:   "Uno dos tres",
		Image:         "https://cdn/x.jpg",
		URL:           "https://diario.test/article/a1",
		AppURL:        "https://diario.test/#/article/a1",
		PublishedTime: "2024-01-01T00:00:00Z",
		SiteName:      "Diario Test",
	}
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(sampleMeta())
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, `<meta charset="utf-8" />`)
	assert.Contains(t, page, `<title>Hola - Diario Test</title>`)
	assert.Contains(t, page, `<meta property="og:title" content="Hola" />`)
	assert.Contains(t, page, `<meta property="og:description" content="Uno dos tres" />`)
	assert.Contains(t, page, `<meta property="og:image" content="https://cdn/x.jpg" />`)
	assert.Contains(t, page, `<meta property="og:url" content="https://diario.test/article/a1" />`)
	assert.Contains(t, page, `<meta property="article:published_time" content="2024-01-01T00:00:00Z" />`)
	assert.Contains(t, page, `<meta name="twitter:card" content="summary_large_image" />`)
	assert.Contains(t, page, `<link rel="canonical" href="https://diario.test/article/a1" />`)
	assert.Contains(t, page, `<noscript>`)
	assert.Contains(t, page, `window.location.replace(`)
}

func TestRenderHTML_EscapesValues(t *testing.T) {
	m := sampleMeta()
	m.Title = "<script>alert(1)</script>"
	m.Description = `Tom & "Jerry" 'dijo' <b>`

	out, err := RenderHTML(m)
	require.NoError(t, err)

	page := string(out)
	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, page, `content="Tom &amp; &#34;Jerry&#34; &#39;dijo&#39; &lt;b&gt;"`)
}

func TestRenderHTML_Deterministic(t *testing.T) {
	first, err := RenderHTML(sampleMeta())
	require.NoError(t, err)
	second, err := RenderHTML(sampleMeta())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderJSON(t *testing.T) {
	payload := RenderJSON(sampleMeta())

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "Hola - Diario Test", got["title"])
	assert.Equal(t, "Uno dos tres", got["description"])

	og := got["og"].(map[string]any)
	assert.Equal(t, "Hola", og["title"])
	assert.Equal(t, "https://cdn/x.jpg", og["image"])
	assert.Equal(t, "https://diario.test/article/a1", og["url"])
	assert.Equal(t, "article", og["type"])
	assert.Equal(t, "2024-01-01T00:00:00Z", og["published_time"])

	tw := got["twitter"].(map[string]any)
	assert.Equal(t, "summary_large_image", tw["card"])
	assert.Equal(t, "Hola", tw["title"])
}
