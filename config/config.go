// Initializing photomini configuration
package config

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Resize ResizeConfig `mapstructure:"resize"`
	Log    LogConfig    `mapstructure:"log"`
}

type ResizeConfig struct {
	InputFolder  string `mapstructure:"input_folder"`
	OutputFolder string `mapstructure:"output_folder"`
	MinDimension int    `mapstructure:"min_dimension"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const (
	DefaultInputFolder  = "photos"
	DefaultOutputFolder = "photos_mini"
	DefaultMinDimension = 512
	DefaultLogLevel     = "info"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("resize.input_folder", DefaultInputFolder)
	v.SetDefault("resize.output_folder", DefaultOutputFolder)
	v.SetDefault("resize.min_dimension", DefaultMinDimension)
	v.SetDefault("log.level", DefaultLogLevel)
}

// LoadConfig reads config.yaml from the given paths (./config when none are given).
// A missing file is not an error: the defaults apply.
func LoadConfig(paths ...string) (*viper.Viper, error) {

	viperInstance := viper.New()
	SetDefaults(viperInstance)

	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		viperInstance.AddConfigPath(p)
	}
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		logrus.Errorf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}
