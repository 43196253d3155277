package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	envViper *viper.Viper
	envOnce  sync.Once
)

// env returns the shared viper instance. AutomaticEnv makes every Get hit the
// process environment, so values set after startup are picked up.
func env() *viper.Viper {
	envOnce.Do(func() {
		v := viper.New()
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		v.SetDefault("app_name", "Interview Answer Evaluation Agent")
		// An unset APP_ENV keeps pprof off.
		v.SetDefault("app_env", "production")
		v.SetDefault("app_port", "8000")
		v.SetDefault("model", DefaultModel)
		v.SetDefault("anthropic_version", "2023-06-01")

		envViper = v
	})
	return envViper
}
