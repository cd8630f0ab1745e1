package config

import "github.com/spf13/viper"

type Config struct {
	Output     string  `mapstructure:"output"`
	Sources    Sources `mapstructure:"sources"`
	RawSources map[string]any
}

type Sources struct {
	Workbook WorkbookSource `mapstructure:"workbook"`
	CSV      CSVSource      `mapstructure:"csv"`
	Devices  DevicesSource  `mapstructure:"devices"`
}

type WorkbookSource struct {
	Path string `mapstructure:"path"`
}

type CSVSource struct {
	Dir string `mapstructure:"dir"`
}

type DevicesSource struct {
	Path string `mapstructure:"path"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Output: "./output",
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Populate RawSources for the registry-based sources
	cfg.RawSources = viper.GetStringMap("sources")

	return cfg, nil
}
