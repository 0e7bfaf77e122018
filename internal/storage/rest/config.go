package rest

import "time"

const defaultTimeout = 10 * time.Second

type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}
