package config

import (
	"fmt"
	"strings"
	"sync"
)

type AppConfig struct {
	Name string
	Env  string
	Port string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		v := env()
		appConfig = &AppConfig{
			Name: v.GetString("app_name"),
			Env:  strings.ToLower(v.GetString("app_env")),
			Port: v.GetString("app_port"),
		}
	})
	return appConfig
}

// Address returns the listen address for fiber.
func (c *AppConfig) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
