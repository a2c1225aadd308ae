// Package config loads client settings in the following sequence:
// Default < YAML config file < FITBIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	fitbit "github.com/Xevion/go-fitbit"
	"github.com/Xevion/go-fitbit/types"
)

type Config struct {
	BaseURL      string        `yaml:"baseUrl" validate:"required,url"`
	UserID       string        `yaml:"userId" validate:"required"`
	AccessToken  string        `yaml:"-" validate:"required"`
	Timeout      time.Duration `yaml:"timeout" validate:"gt=0"`
	RetryCount   int           `yaml:"retryCount" validate:"gte=0,lte=10"`
	Periods      []string      `yaml:"periods" validate:"omitempty,dive,required"`
	DetailLevels []string      `yaml:"detailLevels" validate:"omitempty,dive,required"`
	LogLevel     slog.Level    `yaml:"logLevel"`
	PrettyLogs   bool          `yaml:"prettyLogs"`
	reader       io.Reader
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// prefer yaml tag names in messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("yaml")
		if tag == "-" || tag == "" {
			return fld.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		return tag
	})
	return v
}

// Default generates default config
func Default() *Config {
	return &Config{
		BaseURL:    fitbit.DefaultBaseURL,
		UserID:     fitbit.CurrentUser,
		Timeout:    30 * time.Second,
		RetryCount: 3,
		LogLevel:   slog.LevelInfo,
	}
}

func (cfg *Config) WithReader(r io.Reader) *Config {
	if r != nil {
		cfg.reader = r
	}
	return cfg
}

// Load merges the config file (if a reader was given) and then the
// environment on top of cfg, and validates the result.
func (cfg *Config) Load() (*Config, error) {
	if cfg.reader != nil {
		tmp, err := cfg.loadFromReader()
		if err != nil {
			return nil, err
		}
		cfg.merge(tmp)
	}

	tmp, err := readFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.merge(tmp)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overlay is one configuration source laid over the defaults. A nil field
// was not set by that source, so an explicit zero or false still applies.
type overlay struct {
	BaseURL      *string        `yaml:"baseUrl"`
	UserID       *string        `yaml:"userId"`
	AccessToken  *string        `yaml:"-"`
	Timeout      *time.Duration `yaml:"timeout"`
	RetryCount   *int           `yaml:"retryCount"`
	Periods      []string       `yaml:"periods"`
	DetailLevels []string       `yaml:"detailLevels"`
	LogLevel     *slog.Level    `yaml:"logLevel"`
	PrettyLogs   *bool          `yaml:"prettyLogs"`
}

func (cfg *Config) loadFromReader() (*overlay, error) {
	decoder := yaml.NewDecoder(cfg.reader)
	decoder.KnownFields(true)

	o := &overlay{}
	if err := decoder.Decode(o); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't decode config: %w", err)
	}
	return o, nil
}

// readFromEnv collects the FITBIT_* variables that are set to a non-empty value.
func readFromEnv() (*overlay, error) {
	o := &overlay{}

	if baseURL, ok := lookupEnv("FITBIT_BASE_URL"); ok {
		o.BaseURL = &baseURL
	}
	if userID, ok := lookupEnv("FITBIT_USER_ID"); ok {
		o.UserID = &userID
	}
	if token, ok := lookupEnv("FITBIT_ACCESS_TOKEN"); ok {
		o.AccessToken = &token
	}
	if timeoutStr, ok := lookupEnv("FITBIT_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid duration value: %s", timeoutStr)
		}
		o.Timeout = &timeout
	}
	if retryStr, ok := lookupEnv("FITBIT_RETRY_COUNT"); ok {
		retries, err := strconv.Atoi(retryStr)
		if err != nil {
			return nil, fmt.Errorf("invalid retry count: %s", retryStr)
		}
		o.RetryCount = &retries
	}
	if periods, ok := lookupEnv("FITBIT_PERIODS"); ok {
		o.Periods = splitList(periods)
	}
	if levels, ok := lookupEnv("FITBIT_DETAIL_LEVELS"); ok {
		o.DetailLevels = splitList(levels)
	}
	if levelStr, ok := lookupEnv("FITBIT_LOG_LEVEL"); ok {
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			return nil, fmt.Errorf("invalid log level: %s", levelStr)
		}
		o.LogLevel = &level
	}
	if pretty, ok := lookupEnv("FITBIT_PRETTY_LOGS"); ok {
		v, err := strconv.ParseBool(pretty)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", pretty)
		}
		o.PrettyLogs = &v
	}

	return o, nil
}

// merge applies every field the overlay sets, including zero values.
func (cfg *Config) merge(o *overlay) {
	if o == nil {
		return
	}
	if o.BaseURL != nil {
		cfg.BaseURL = *o.BaseURL
	}
	if o.UserID != nil {
		cfg.UserID = *o.UserID
	}
	if o.AccessToken != nil {
		cfg.AccessToken = *o.AccessToken
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	if o.RetryCount != nil {
		cfg.RetryCount = *o.RetryCount
	}
	if o.Periods != nil {
		cfg.Periods = o.Periods
	}
	if o.DetailLevels != nil {
		cfg.DetailLevels = o.DetailLevels
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.PrettyLogs != nil {
		cfg.PrettyLogs = *o.PrettyLogs
	}
}

// Validate checks the struct tags and reports every failing field.
func (cfg *Config) Validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// ClientRequest maps the config onto the library's constructor arguments.
func (cfg *Config) ClientRequest() fitbit.NewClientRequest {
	req := fitbit.NewClientRequest{
		BaseURL:     cfg.BaseURL,
		AccessToken: cfg.AccessToken,
		UserID:      cfg.UserID,
		Timeout:     cfg.Timeout,
		RetryCount:  cfg.RetryCount,
	}
	for _, p := range cfg.Periods {
		req.Periods = append(req.Periods, types.Period(strings.TrimSpace(p)))
	}
	for _, d := range cfg.DetailLevels {
		req.DetailLevels = append(req.DetailLevels, types.DetailLevel(strings.TrimSpace(d)))
	}
	return req
}

func lookupEnv(key string) (string, bool) {
	val := strings.TrimSpace(os.Getenv(key))
	return val, val != ""
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
