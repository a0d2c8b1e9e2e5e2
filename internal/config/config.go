package config

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "data/config.yaml"

type config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	App     AppConfig     `yaml:"app"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

type Service struct {
	config config
}

func defaults() config {
	return config{
		Ledger: LedgerConfig{
			FileName:       "expenses.csv",
			ExportFileName: "expense_report.csv",
		},
		App: AppConfig{
			Symbol: "$",
		},
		Tracing: TracingConfig{
			Service: "expense-tracker",
		},
	}
}

// New reads the YAML file at path on top of the defaults. A missing file is
// not an error: the defaults are used as they are.
func New(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func (s *Service) Ledger() *LedgerConfig {
	return &s.config.Ledger
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
