// Package config handles input from etc/main.toml and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. NOLUHN_SESSION_IDLENGTH.
	EnvPrefix = "NOLUHN"

	// EnvConfigJSON holds a JSON document merged over the file configuration.
	EnvConfigJSON = "NOLUHN_CONFIG_JSON"

	// StorageMemory keeps sessions in process memory.
	StorageMemory = "memory"
	// StorageMySQL keeps sessions in a mysql table.
	StorageMySQL = "mysql"
	// StoragePostgres keeps sessions in a postgres table.
	StoragePostgres = "postgres"
)

// ReadConfig from path/main.toml, the environment and EnvConfigJSON.
// A missing main.toml is not an error, defaults are used instead.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		c, err = decodeAndMergeConfig(c, configAsJSON)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "noluhn session ids")
	v.SetDefault("devmode", false)

	v.SetDefault("log.loglevel", "info")
	v.SetDefault("log.appname", "noluhn")
	v.SetDefault("log.servicename", "sessionid")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useconsolewriter", false)
	v.SetDefault("log.enableaccesslogtoconsole", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")

	v.SetDefault("session.idlength", "")
	v.SetDefault("session.expirytime", "30m")
	v.SetDefault("session.storage", StorageMemory)
	v.SetDefault("session.table", "sessions")
	v.SetDefault("session.connectionuri", "")

	v.SetDefault("webserver.port", 8080) //nolint:mnd
	v.SetDefault("webserver.shutdowntime", 5) //nolint:mnd
	v.SetDefault("webserver.url", "http://localhost:8080")
	v.SetDefault("webserver.maxbatch", 100) //nolint:mnd
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config json from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the config settings needed to start.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Session.Storage == "" {
		c.Session.Storage = StorageMemory
	}

	if c.Session.Storage != StorageMemory && c.Session.ConnectionURI == "" {
		return errors.Wrap(ErrSessionStorageURI, invalidErrMessage)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	return nil
}
