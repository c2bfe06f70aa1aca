package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	DefaultAPITimeout      = 30 * time.Second
	DefaultNotificationTTL = 4 * time.Second
	DefaultPort            = "8081"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	API           API           `yaml:"api" validate:"required"`
	Frontend      Frontend      `yaml:"frontend"`
	Notifications Notifications `yaml:"notifications"`
	Log           Log           `yaml:"log"`
}

// API describes the LearnHouse backend. BaseURL is used as a prefix as is,
// so it must end with a slash (e.g. http://localhost:1338/api/v1/).
type API struct {
	BaseURL string        `yaml:"base_url" validate:"required,url,endswith=/"`
	Timeout time.Duration `yaml:"timeout"`
}

type Frontend struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SecureCookies  bool     `yaml:"secure_cookies"`
}

type Notifications struct {
	TTL time.Duration `yaml:"ttl"` // how long a resolved notification stays visible
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"` // empty disables token verification in the frontend
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

// New assembles a config in code, mostly for tests and the CLI.
func New(public Public, private Private) *Config {
	public.setDefaults()
	return &Config{Public: public, private: private}
}

func (p *Public) setDefaults() {
	if p.API.Timeout <= 0 {
		p.API.Timeout = DefaultAPITimeout
	}
	if p.Frontend.Port == "" {
		p.Frontend.Port = DefaultPort
	}
	if p.Notifications.TTL <= 0 {
		p.Notifications.TTL = DefaultNotificationTTL
	}
	if p.Log.Level == "" {
		p.Log.Level = "info"
	}
}

func (p Public) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(p)
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	if err := loadPath(configPath, output); err != nil {
		panic(err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	public.setDefaults()
	if err := public.Validate(); err != nil {
		panic("invalid config: " + err.Error())
	}

	return &Config{public, private}
}

// Load is the non-panicking variant used by the CLI. A missing folder or a
// missing private.yaml is not an error; baseURL, when set, overrides the file.
func Load(configFolder, baseURL string) (*Config, error) {
	var public Public
	var private Private
	if configFolder != "" {
		if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := loadPath(path.Join(configFolder, "private.yaml"), &private); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	if baseURL != "" {
		public.API.BaseURL = baseURL
	}

	public.setDefaults()
	if err := public.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Config{public, private}, nil
}
