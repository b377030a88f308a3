package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/utils"
)

const (
	configFileEnvKey  = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New loads .env when present, then the YAML file named by CONFIG_FILE.
// A missing YAML file leaves every setting at its default.
func New() (*Service, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading .env")
	}

	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Info("config file not found, using defaults")
		rawYAML = nil
	} else if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	return Parse(rawYAML)
}

// Parse builds a validated config from YAML; empty input gives the defaults.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			SlotKeyName:           "expenses",
			CommandTimeoutSeconds: 5,
		},
		Storage: StorageConfig{
			BackendName: storage.BackendFile,
			DataDir:     "data",
			SQLiteFile:  "data/expenses.db",
		},
		Postgres: PostgresConfig{
			Hostname: "localhost",
			PortNum:  5432,
			Db:       "expenses",
			SSL:      "disable",
		},
		Memcached: MemcachedConfig{
			NodeHosts: []string{"127.0.0.1:11211"},
		},
		Tracing: TracingConfig{
			Service: "expense-tracker",
		},
	}
}

func (s *Service) Validate() error {
	var problems []string

	if err := s.config.App.resolveLocation(); err != nil {
		problems = append(problems, err.Error())
	}
	if s.config.App.SlotKeyName == "" {
		problems = append(problems, "app.slot-key cannot be empty")
	}
	if s.config.App.CommandTimeoutSeconds <= 0 {
		problems = append(problems, "app.command-timeout-seconds must be positive")
	}
	if !utils.Contains(storage.Backends, s.config.Storage.BackendName) {
		problems = append(problems, fmt.Sprintf("storage.backend %q must be one of %v",
			s.config.Storage.BackendName, storage.Backends))
	}
	if s.config.Storage.BackendName == storage.BackendMemcached && len(s.config.Memcached.NodeHosts) == 0 {
		problems = append(problems, "memcached.hosts cannot be empty")
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
