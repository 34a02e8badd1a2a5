package config

import (
	"os/user"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "WEBGIT"

const (
	keyDefaultUser         = "default_user"
	keyDefaultOriginName   = "default_origin_repo_name"
	keyDefaultUpstreamName = "default_upstream_repo_name"
	keyGitTimeout          = "git_timeout"
)

// Config is everything webgit reads from the process environment. It is
// loaded once in cmd and passed down explicitly.
type Config struct {
	DefaultUser         string        // WEBGIT_DEFAULT_USER
	DefaultOriginName   string        // WEBGIT_DEFAULT_ORIGIN_REPO_NAME
	DefaultUpstreamName string        // WEBGIT_DEFAULT_UPSTREAM_REPO_NAME
	GitTimeout          time.Duration // WEBGIT_GIT_TIMEOUT

	// LocalUser is the login name of the user running webgit.
	LocalUser string
}

func Default() Config {
	return Config{
		GitTimeout: 10 * time.Second,
	}
}

// Load reads the WEBGIT_* environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	for _, key := range []string{keyDefaultUser, keyDefaultOriginName, keyDefaultUpstreamName, keyGitTimeout} {
		if err := v.BindEnv(key); err != nil {
			return Default(), err
		}
	}

	cfg := FromViper(v)
	if u, err := user.Current(); err == nil {
		cfg.LocalUser = u.Username
	}
	return cfg, nil
}

// FromViper overlays the values set in v onto Default.
func FromViper(v *viper.Viper) Config {
	cfg := Default()
	cfg.DefaultUser = v.GetString(keyDefaultUser)
	cfg.DefaultOriginName = v.GetString(keyDefaultOriginName)
	cfg.DefaultUpstreamName = v.GetString(keyDefaultUpstreamName)
	if v.IsSet(keyGitTimeout) {
		if d := v.GetDuration(keyGitTimeout); d > 0 {
			cfg.GitTimeout = d
		}
	}
	return cfg
}
