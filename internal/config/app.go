package config

type AppConfig struct {
	Symbol string `yaml:"currency-symbol"`
}

func (s *AppConfig) CurrencySymbol() string {
	return s.Symbol
}
