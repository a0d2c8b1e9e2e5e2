package config

type LedgerConfig struct {
	FileName       string `yaml:"file"`
	ExportFileName string `yaml:"export-file"`
}

func (s *LedgerConfig) File() string {
	return s.FileName
}

func (s *LedgerConfig) ExportFile() string {
	return s.ExportFileName
}
