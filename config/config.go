package config

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"

	"github.com/geonames-go/geonamer/geolib"
)

type Config struct {
	Username              string `toml:"username"`
	Token                 string `toml:"token"`
	APIURL                string `toml:"api_url"`
	FallbackAPIURL        string `toml:"fallback_api_url"`
	ConnectTimeoutSeconds int    `toml:"connect_timeout_seconds"`
	FallbackTriggerCount  int    `toml:"fallback_trigger_count"`
}

func Parse(input io.Reader) (*Config, error) {
	conf := &Config{}

	buf, err := io.ReadAll(input)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if conf.ConnectTimeoutSeconds < 0 {
		return errors.Errorf("Incorrect connect timeout %d", conf.ConnectTimeoutSeconds)
	}

	if conf.FallbackTriggerCount < 0 {
		return errors.Errorf("Incorrect fallback trigger count %d", conf.FallbackTriggerCount)
	}

	return nil
}

// ClientOptions converts the file settings into the option map geolib
// understands. Unset values are skipped so the library defaults apply.
// Credentials are handled separately by the caller since flags and the
// environment may override them.
func (c *Config) ClientOptions() map[string]interface{} {
	options := map[string]interface{}{}

	if c.APIURL != "" {
		options[geolib.OptionAPIURL] = c.APIURL
	}

	if c.FallbackAPIURL != "" {
		options[geolib.OptionFallbackAPIURL] = c.FallbackAPIURL
	}

	if c.ConnectTimeoutSeconds != 0 {
		options[geolib.OptionConnectTimeoutSeconds] = c.ConnectTimeoutSeconds
	}

	if c.FallbackTriggerCount != 0 {
		options[geolib.OptionFallbackTriggerCount] = c.FallbackTriggerCount
	}

	return options
}
