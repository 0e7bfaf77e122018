package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/es"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/pg"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/rest"
	"github.com/DjordjeVuckovic/newsdesk/pkg/utils"
)

type StorageConfig struct {
	storage.Type
	Rest *rest.ClientConfig
	Pg   *pg.PoolConfig

	// PreviewSource selects where preview routes read articles from.
	// Empty means the primary store.
	PreviewSource storage.Type
	Es            *es.ClientConfig

	// Missing is set when required credentials are absent. The factory then
	// builds an Unconfigured store instead of failing.
	Missing string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORE_TYPE"))
	if storageType == "" {
		storageType = storage.REST
	}
	if storageType != storage.REST && storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.REST, storage.PG, storage.InMem})
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.REST:
		restCfg := &rest.ClientConfig{
			BaseURL: firstEnv("STORE_URL", "SUPABASE_URL"),
			APIKey:  firstEnv("STORE_KEY", "SUPABASE_ANON_KEY"),
		}
		if timeout := os.Getenv("STORE_TIMEOUT"); timeout != "" {
			d, err := time.ParseDuration(timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
			}
			restCfg.Timeout = d
		}
		switch {
		case restCfg.BaseURL == "":
			cfg.Missing = "STORE_URL is not set"
		case restCfg.APIKey == "":
			cfg.Missing = "STORE_KEY is not set"
		}
		cfg.Rest = restCfg
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{ConnStr: os.Getenv("PG_CONNECTION_STRING")}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS %q", v)
			}
			cfg.Pg.MaxConns = int32(n)
		}
		if cfg.Pg.ConnStr == "" {
			cfg.Missing = "PG_CONNECTION_STRING is not set"
		}
	}

	previewSource := storage.Type(os.Getenv("PREVIEW_SOURCE"))
	switch previewSource {
	case "":
	case storage.ES:
		esCfg := &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(utils.SplitTrim(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 || esCfg.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
		cfg.PreviewSource = previewSource
		cfg.Es = esCfg
	default:
		return nil, fmt.Errorf("invalid PREVIEW_SOURCE environment variable value: %s, expected %s or empty", previewSource, storage.ES)
	}

	return cfg, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
