package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/es"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"STORE_TYPE", "STORE_URL", "STORE_KEY", "SUPABASE_URL", "SUPABASE_ANON_KEY",
		"STORE_TIMEOUT", "PG_CONNECTION_STRING", "PG_MAX_CONNS", "PREVIEW_SOURCE", "ES_ADDRESSES", "ES_INDEX_NAME"} {
		t.Setenv(k, "")
	}
}

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantErr     bool
		wantType    storage.Type
		wantMissing string
	}{
		{name: "defaults to rest without credentials", env: nil, wantType: storage.REST, wantMissing: "STORE_URL is not set"},
		{name: "rest missing key", env: map[string]string{"STORE_URL": "https://x.supabase.co"}, wantType: storage.REST, wantMissing: "STORE_KEY is not set"},
		{name: "rest from supabase aliases", env: map[string]string{"SUPABASE_URL": "https://x.supabase.co", "SUPABASE_ANON_KEY": "k"}, wantType: storage.REST},
		{name: "pg without connection string", env: map[string]string{"STORE_TYPE": "pg"}, wantType: storage.PG, wantMissing: "PG_CONNECTION_STRING is not set"},
		{name: "pg bad pool size", env: map[string]string{"STORE_TYPE": "pg", "PG_CONNECTION_STRING": "postgres://x", "PG_MAX_CONNS": "-1"}, wantErr: true},
		{name: "pg with pool size", env: map[string]string{"STORE_TYPE": "pg", "PG_CONNECTION_STRING": "postgres://x", "PG_MAX_CONNS": "8"}, wantType: storage.PG},
		{name: "in memory", env: map[string]string{"STORE_TYPE": "in_mem"}, wantType: storage.InMem},
		{name: "unknown type", env: map[string]string{"STORE_TYPE": "mongo"}, wantErr: true},
		{name: "bad timeout", env: map[string]string{"STORE_TIMEOUT": "soon"}, wantErr: true},
		{name: "es preview incomplete", env: map[string]string{"STORE_TYPE": "in_mem", "PREVIEW_SOURCE": "es"}, wantErr: true},
		{name: "unknown preview source", env: map[string]string{"STORE_TYPE": "in_mem", "PREVIEW_SOURCE": "redis"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cfg.Type)
			assert.Equal(t, tt.wantMissing, cfg.Missing)
		})
	}
}

func TestNewBackend_Unconfigured(t *testing.T) {
	b, err := NewBackend(context.Background(), &StorageConfig{Type: storage.REST, Missing: "STORE_KEY is not set"})
	require.NoError(t, err)

	assert.ErrorIs(t, storage.Ready(b.Store), storage.ErrNotConfigured)
	assert.ErrorIs(t, storage.Ready(b.Preview), storage.ErrNotConfigured)
	assert.False(t, b.Health.Healthy(context.Background()))
}

func TestNewBackend_Variants(t *testing.T) {
	ctx := context.Background()

	b, err := NewBackend(ctx, &StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &in_mem.InMemStore{}, b.Store)
	assert.Equal(t, b.Store, b.Preview)

	b, err = NewBackend(ctx, &StorageConfig{Type: storage.REST, Rest: &rest.ClientConfig{BaseURL: "https://x.supabase.co", APIKey: "k"}})
	require.NoError(t, err)
	assert.IsType(t, &rest.Store{}, b.Store)

	b, err = NewBackend(ctx, &StorageConfig{
		Type:          storage.InMem,
		PreviewSource: storage.ES,
		Es:            &es.ClientConfig{Addresses: []string{"http://localhost:9200"}, IndexName: "articles"},
	})
	require.NoError(t, err)
	assert.IsType(t, &es.ArticleIndex{}, b.Preview)
	b.Close()
}
