package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
)

// Load builds an EngineConfig from, in increasing priority: built-in
// defaults, config files found in configFileDirs, then SOCIALENGINE_-prefixed
// environment variables. Grounded on the teacher's config.Load.
func Load(configFileDirs ...string) (*EngineConfig, error) {
	engineConfig := getDefaultEngineConfig()

	if err := setDefaults(engineConfig); err != nil {
		return nil, err
	}

	if err := overrideWithFiles(configFileDirs...); err != nil {
		return nil, err
	}

	viper.SetEnvPrefix("SOCIALENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(engineConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return engineConfig, nil
}

// TracingAttributes converts TracingConfig.Attributes into the
// attribute.KeyValue slice the tracing package's init helper wants.
func (t *TracingConfig) TracingAttributes() []attribute.KeyValue {
	if t == nil || len(t.Attributes) == 0 {
		return nil
	}
	attrs := make([]attribute.KeyValue, 0, len(t.Attributes))
	for k, v := range t.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	return attrs
}

func setDefaults(defaultConfig *EngineConfig) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		return errors.Join(ErrConfigFailedToSetDefaults, err)
	}

	for key, value := range defaultsMap {
		viper.SetDefault(key, value)
	}

	return nil
}

func overrideWithFiles(configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		viper.AddConfigPath(path)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	return viper.ReadInConfig()
}
