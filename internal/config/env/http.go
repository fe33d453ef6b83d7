package env

import (
	"os"

	"slot_machine/internal/config"
)

const (
	httpAddrName    = "HTTP_ADDR"
	defaultHTTPAddr = ":8080"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	addr := os.Getenv(httpAddrName)
	if len(addr) == 0 {
		addr = defaultHTTPAddr
	}

	return &httpConfig{
		address: addr,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
