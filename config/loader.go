package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./configs/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.API); err != nil {
		return err
	}
	if err := v.Struct(cfg.Map); err != nil {
		return err
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

// applyDefaults fills in the values the upstream API and the original file
// layout assume when the config leaves them at zero.
func applyDefaults(c *AppConfig) {
	if c.API.TimeoutSec == 0 {
		c.API.TimeoutSec = 30
	}
	if c.API.RateLimitCalls == 0 {
		c.API.RateLimitCalls = 9 // upstream hard limit is 10/min
	}
	if c.API.RateLimitPauseSec == 0 {
		c.API.RateLimitPauseSec = 62
	}
	if c.API.FetchRetries == 0 {
		c.API.FetchRetries = 3
	}
	if c.API.RetryBackoffSec == 0 {
		c.API.RetryBackoffSec = 5
	}
	if c.Files.EnvFile == "" {
		c.Files.EnvFile = ".env"
	}
	if c.Files.Snapshot == "" {
		c.Files.Snapshot = "posicoes_veiculos.json"
	}
	if c.Files.Summary == "" {
		c.Files.Summary = "veiculos_resumo.json"
	}
	if c.Files.Map == "" {
		c.Files.Map = "mapa_frota.html"
	}
	if c.Map.CenterLat == 0 && c.Map.CenterLon == 0 {
		c.Map.CenterLat = -15.78
		c.Map.CenterLon = -47.92
	}
	if c.Map.Zoom == 0 {
		c.Map.Zoom = 4
	}
}
