// Package settings resolves where and how the CLI talks to the app
// manager: command-line flags first, then environment variables (wired as
// flag sources), then the client config file, then built-in defaults.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultHost is used when no host is configured anywhere
	DefaultHost = "localhost"
	// DefaultPort is the app manager's default listen port
	DefaultPort = 8080
)

// Settings is the resolved per-invocation request context
type Settings struct {
	Host    string
	Port    int
	Verbose bool
	// ClientProg names an external curl-compatible HTTP client program;
	// empty means the built-in transport.
	ClientProg string
}

// FileConfig is the optional ~/.appmgrcli/config.yaml
type FileConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Client string `yaml:"client"`
}

// DefaultConfigPath returns ~/.appmgrcli/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".appmgrcli", "config.yaml")
}

// LoadFile reads and parses a client config file
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// FromCommand resolves settings for one invocation from the root command's
// global flags. An explicitly configured but unreadable config file is an
// error; a missing default config file is not.
func FromCommand(cmd *cli.Command) (*Settings, error) {
	s := &Settings{
		Host:       cmd.String("host"),
		Port:       int(cmd.Int("port")),
		Verbose:    cmd.Bool("verbose"),
		ClientProg: cmd.String("client"),
	}

	var file *FileConfig
	if path := cmd.String("config"); path != "" {
		cfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		file = cfg
	} else if s.Host == "" || s.Port == 0 || s.ClientProg == "" {
		if path := DefaultConfigPath(); path != "" {
			if _, err := os.Stat(path); err == nil {
				cfg, err := LoadFile(path)
				if err != nil {
					return nil, err
				}
				file = cfg
			}
		}
	}

	if s.Host == "" {
		if file != nil && file.Host != "" {
			s.Host = file.Host
		} else {
			s.Host = DefaultHost
		}
	}
	if s.Port == 0 {
		if file != nil && file.Port != 0 {
			s.Port = file.Port
		} else {
			s.Port = DefaultPort
		}
	}
	if s.ClientProg == "" && file != nil {
		s.ClientProg = file.Client
	}

	return s, nil
}
