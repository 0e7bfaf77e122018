package es

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/newsdesk/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCluster(t *testing.T, handler http.HandlerFunc) *ArticleIndex {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	idx, err := NewArticleIndex(ClientConfig{Addresses: []string{srv.URL}, IndexName: "articles"})
	require.NoError(t, err)
	return idx
}

func TestArticleIndex_ArticleByID(t *testing.T) {
	idx := fakeCluster(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles/_doc/a1", r.URL.Path)
		_, _ = io.WriteString(w, `{"_index":"articles","_id":"a1","_version":1,"found":true,
			"_source":{"id":"a1","title":"Hola","content":"<p>Uno dos tres</p>","image_url":"https://cdn/x.jpg",
			"created_at":"2024-01-01T00:00:00Z"}}`)
	})

	got, err := idx.ArticleByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Hola", got.Title)
	assert.Equal(t, "https://cdn/x.jpg", got.ImageURL)
}

func TestArticleIndex_ArticleByID_NotFound(t *testing.T) {
	idx := fakeCluster(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"_index":"articles","_id":"nope","found":false}`)
	})

	_, err := idx.ArticleByID(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestArticleIndex_EnsureIndex(t *testing.T) {
	var created bool
	idx := fakeCluster(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			created = true
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body, "mappings")
			_, _ = io.WriteString(w, `{"acknowledged":true,"shards_acknowledged":true,"index":"articles"}`)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	require.NoError(t, idx.EnsureIndex(context.Background()))
	assert.True(t, created)
}

func bulkResponder(t *testing.T, rejected string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/_bulk"))

		var items []string
		scanner := bufio.NewScanner(r.Body)
		for scanner.Scan() {
			var action map[string]map[string]string
			if err := json.Unmarshal(scanner.Bytes(), &action); err != nil {
				continue
			}
			op, ok := action["index"]
			if !ok {
				continue
			}
			status, result := 201, `"result":"created"`
			if op["_id"] == rejected {
				status, result = 400, `"error":{"type":"mapper_parsing_exception","reason":"bad"}`
			}
			items = append(items, fmt.Sprintf(`{"index":{"_index":"articles","_id":%q,"status":%d,%s}}`, op["_id"], status, result))
		}
		_, _ = fmt.Fprintf(w, `{"took":1,"errors":%t,"items":[%s]}`, rejected != "", strings.Join(items, ","))
	}
}

func TestArticleIndex_SaveBulk(t *testing.T) {
	articles := []domain.Article{{ID: "a1", Title: "Uno"}, {ID: "a2", Title: "Dos"}}

	t.Run("all indexed", func(t *testing.T) {
		idx := fakeCluster(t, bulkResponder(t, ""))
		assert.NoError(t, idx.SaveBulk(context.Background(), articles))
	})

	t.Run("item rejected", func(t *testing.T) {
		idx := fakeCluster(t, bulkResponder(t, "a2"))
		err := idx.SaveBulk(context.Background(), articles)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 out of 2")
	})

	t.Run("empty", func(t *testing.T) {
		idx := fakeCluster(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request %s", r.URL.Path)
		})
		assert.NoError(t, idx.SaveBulk(context.Background(), nil))
	})
}

func TestNewArticleIndex_IncompleteConfig(t *testing.T) {
	_, err := NewArticleIndex(ClientConfig{IndexName: "articles"})
	assert.Error(t, err)

	_, err = NewArticleIndex(ClientConfig{Addresses: []string{"http://localhost:9200"}})
	assert.Error(t, err)
}

func TestArticleIndex_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch integration test in short mode")
	}

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	idx, err := NewArticleIndex(ClientConfig{Addresses: container.Addresses(), IndexName: "articles"})
	require.NoError(t, err)
	require.True(t, idx.Healthy(ctx))
	require.NoError(t, idx.EnsureIndex(ctx))
	require.NoError(t, idx.EnsureIndex(ctx))

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, idx.Save(ctx, domain.Article{ID: "a1", Title: "Hola", CreatedAt: &created}, true))

	got, err := idx.ArticleByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Hola", got.Title)

	require.NoError(t, idx.SaveBulk(ctx, []domain.Article{{ID: "b1", Title: "Uno"}, {ID: "b2", Title: "Dos"}}))
	got, err = idx.ArticleByID(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, "Dos", got.Title)

	_, err = idx.ArticleByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
