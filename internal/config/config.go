package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Vikawood123/web.resume/internal/prefs"
)

// EnvPrefix namespaces environment overrides: RESUME_DATA_PATH -> data_path.
const EnvPrefix = "RESUME_"

type Config struct {
	// Where courses.json and projects.json live: a directory or a base URL.
	DataPath     string        `koanf:"data_path" yaml:"data_path"`
	DefaultTheme string        `koanf:"default_theme" yaml:"default_theme"`
	Template     string        `koanf:"template" yaml:"template"` // empty: built-in skeleton
	Output       string        `koanf:"output" yaml:"output"`
	PrefsPath    string        `koanf:"prefs_path" yaml:"prefs_path"`
	HTTPTimeout  time.Duration `koanf:"http_timeout" yaml:"http_timeout"`

	PerDocumentFallback bool   `koanf:"per_document_fallback" yaml:"per_document_fallback"`
	Compress            bool   `koanf:"compress" yaml:"compress"`
	ActiveSection       string `koanf:"active_section" yaml:"active_section"`

	// SFTP
	SFTPHost                  string `koanf:"sftp_host" yaml:"sftp_host"`
	SFTPPort                  int    `koanf:"sftp_port" yaml:"sftp_port"`
	SFTPUser                  string `koanf:"sftp_user" yaml:"sftp_user"`
	SFTPPass                  string `koanf:"sftp_pass" yaml:"sftp_pass"`
	SFTPDir                   string `koanf:"sftp_dir" yaml:"sftp_dir"`
	SFTPInsecureIgnoreHostKey bool   `koanf:"sftp_insecure_ignore_host_key" yaml:"sftp_insecure_ignore_host_key"`
	SFTPKnownHosts            string `koanf:"sftp_known_hosts" yaml:"sftp_known_hosts"` // empty: ~/.ssh/known_hosts
}

func Default() *Config {
	return &Config{
		DataPath:     "data/",
		DefaultTheme: string(prefs.Light),
		Output:       "dist/index.html",
		PrefsPath:    ".resume/prefs.db",
		HTTPTimeout:  30 * time.Second,

		SFTPPort:                  22,
		SFTPDir:                   "/",
		SFTPInsecureIgnoreHostKey: true,
	}
}

// Load starts from Default(), overlays the YAML file at path (if it
// exists) and then RESUME_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: accessing %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and fills SFTP port and directory
// defaults when they were overridden with zero values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("config: data_path is required")
	}
	if _, ok := prefs.ParseTheme(c.DefaultTheme); !ok {
		return fmt.Errorf("config: invalid default_theme %q: must be light or dark", c.DefaultTheme)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("config: output is required")
	}
	if c.SFTPPort < 0 || c.SFTPPort > 65535 {
		return fmt.Errorf("config: invalid sftp_port %d", c.SFTPPort)
	}
	if c.SFTPPort == 0 {
		c.SFTPPort = 22
	}
	if strings.TrimSpace(c.SFTPDir) == "" {
		c.SFTPDir = "/"
	}
	return nil
}

// Theme returns the validated default theme.
func (c *Config) Theme() prefs.Theme {
	t, ok := prefs.ParseTheme(c.DefaultTheme)
	if !ok {
		return prefs.Light
	}
	return t
}

// YAML renders the effective configuration with the password masked.
func (c *Config) YAML() (string, error) {
	masked := *c
	if masked.SFTPPass != "" {
		masked.SFTPPass = "********"
	}
	b, err := yamlv3.Marshal(&masked)
	if err != nil {
		return "", fmt.Errorf("config: marshalling: %w", err)
	}
	return string(b), nil
}
