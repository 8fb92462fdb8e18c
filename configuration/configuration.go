package configuration

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Configuration is a versioned dacite configuration, intended to be provided
// by a yaml file, and optionally modified by environment variables.
//
// Note that yaml field names should never include _ characters, since this
// is the separator used in environment variable names.
type Configuration struct {
	// Version is the version which defines the format of the rest of the
	// configuration.
	Version Version `yaml:"version"`

	// Log supports setting various parameters related to the logging
	// subsystem.
	Log Log `yaml:"log"`

	// Store selects and configures the store.Blob backend (memory or
	// redis) the CLI's put/get commands use.
	Store Store `yaml:"store"`

	// Redis configures the redis pool available to the redis-backed
	// store.Blob implementation.
	Redis Redis `yaml:"redis,omitempty"`

	// Metrics configures the Prometheus scrape endpoint, if any, that
	// exposes the counters and histograms in package metrics.
	Metrics Metrics `yaml:"metrics,omitempty"`
}

// Metrics configures the Prometheus telemetry endpoint for a process
// embedding the identity engine.
type Metrics struct {
	// Addr specifies the bind address for the metrics server. Empty
	// disables it.
	Addr string `yaml:"addr,omitempty"`

	// Path specifies the URL path where metrics are exposed. Defaults to
	// "/metrics" if empty.
	Path string `yaml:"path,omitempty"`
}

// Log represents the configuration for logging within the application.
type Log struct {
	// Level is the granularity at which operations are logged.
	Level Loglevel `yaml:"level,omitempty"`

	// Formatter overrides the default formatter with another. Options
	// include "text" and "json".
	Formatter string `yaml:"formatter,omitempty"`

	// Fields allows users to specify static string fields to include in
	// the logger context.
	Fields map[string]interface{} `yaml:"fields,omitempty"`

	// ReportCaller allows the user to configure the log to report the
	// caller.
	ReportCaller bool `yaml:"reportcaller,omitempty"`
}

// v0_1Configuration is a Version 0.1 Configuration struct.
// This is currently aliased to Configuration, as it is the current version.
type v0_1Configuration Configuration

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// Unmarshals a string of the form X.Y into a Version, validating that X and
// Y can represent unsigned integers.
func (version *Version) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var versionString string
	err := unmarshal(&versionString)
	if err != nil {
		return err
	}

	newVersion := Version(versionString)
	if _, err := newVersion.major(); err != nil {
		return err
	}

	if _, err := newVersion.minor(); err != nil {
		return err
	}

	*version = newVersion
	return nil
}

// CurrentVersion is the most recent Version that can be parsed.
var CurrentVersion = MajorMinorVersion(0, 1)

// Loglevel is the level at which operations are logged.
// This can be error, warn, info, or debug.
type Loglevel string

// UnmarshalYAML implements the yaml.Umarshaler interface.
// Unmarshals a string into a Loglevel, lowercasing the string and
// validating that it represents a valid loglevel.
func (loglevel *Loglevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var loglevelString string
	err := unmarshal(&loglevelString)
	if err != nil {
		return err
	}

	loglevelString = strings.ToLower(loglevelString)
	switch loglevelString {
	case "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("invalid loglevel %s Must be one of [error, warn, info, debug]", loglevelString)
	}

	*loglevel = Loglevel(loglevelString)
	return nil
}

// Parameters defines a key-value parameters mapping.
type Parameters map[string]interface{}

// Store defines the configuration for the store.Blob backend: exactly one
// of "memory" or "redis", with driver-specific parameters.
type Store map[string]Parameters

// Type returns the store backend type, "memory" or "redis".
func (store Store) Type() string {
	var storeType []string
	for k := range store {
		storeType = append(storeType, k)
	}
	if len(storeType) > 1 {
		panic("multiple store backends specified in configuration or environment: " + strings.Join(storeType, ", "))
	}
	if len(storeType) == 1 {
		return storeType[0]
	}
	return ""
}

// Parameters returns the Parameters map for the configured store backend.
func (store Store) Parameters() Parameters {
	return store[store.Type()]
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// Unmarshals a single item map into a Store, or a string into a Store type
// with no parameters.
func (store *Store) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var storeMap map[string]Parameters
	err := unmarshal(&storeMap)
	if err == nil {
		if len(storeMap) > 1 {
			types := make([]string, 0, len(storeMap))
			for k := range storeMap {
				types = append(types, k)
			}
			return fmt.Errorf("must provide exactly one store type. Provided: %v", types)
		}
		*store = storeMap
		return nil
	}

	var storeType string
	err = unmarshal(&storeType)
	if err == nil {
		*store = Store{storeType: Parameters{}}
		return nil
	}

	return err
}

// MarshalYAML implements the yaml.Marshaler interface.
func (store Store) MarshalYAML() (interface{}, error) {
	if store.Parameters() == nil {
		return store.Type(), nil
	}
	return map[string]Parameters(store), nil
}

// Parse parses an input configuration yaml document into a Configuration
// struct. This should generally be capable of handling old configuration
// format versions.
//
// Environment variables may be used to override configuration parameters
// other than version, following the scheme below:
// Configuration.Abc may be replaced by the value of DACITE_ABC,
// Configuration.Abc.Xyz may be replaced by the value of DACITE_ABC_XYZ, and
// so forth.
func Parse(rd io.Reader) (*Configuration, error) {
	in, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}

	p := NewParser("dacite", []VersionedParseInfo{
		{
			Version: MajorMinorVersion(0, 1),
			ParseAs: reflect.TypeOf(v0_1Configuration{}),
			ConversionFunc: func(c interface{}) (interface{}, error) {
				if v0_1, ok := c.(*v0_1Configuration); ok {
					if v0_1.Log.Level == Loglevel("") {
						v0_1.Log.Level = Loglevel("info")
					}

					if v0_1.Store.Type() == "" {
						return nil, errors.New("no store configuration provided")
					}
					return (*Configuration)(v0_1), nil
				}
				return nil, fmt.Errorf("expected *v0_1Configuration, received %#v", c)
			},
		},
	})

	config := new(Configuration)
	err = p.Parse(in, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// RedisOptions represents the configuration options for Redis, which are
// provided by the redis package. This struct can be used to configure the
// connection to Redis in a universal (clustered or standalone) setup.
type RedisOptions = redis.UniversalOptions

// RedisTLSOptions holds the TLS (Transport Layer Security) file paths for
// Redis connections. store.NewRedis does not build a TLS client
// configuration from them: a non-empty Certificate only makes it use a
// universal client, and Key and ClientCAs are not read.
type RedisTLSOptions struct {
	// Certificate specifies the path to the certificate file for TLS
	// authentication.
	Certificate string `yaml:"certificate,omitempty"`

	// Key specifies the path to the private key file associated with the
	// certificate.
	Key string `yaml:"key,omitempty"`

	// ClientCAs specifies a list of certificates for verifying the
	// server's certificate.
	ClientCAs []string `yaml:"clientcas,omitempty"`
}

// Redis represents the configuration for connecting to a Redis server. It
// includes both the basic connection options and optional TLS file paths.
type Redis struct {
	// Options provides the configuration for connecting to Redis,
	// including options for both clustered and standalone Redis setups.
	// It is provided inline from the `redis.UniversalOptions` struct.
	Options RedisOptions `yaml:",inline"`

	// TLS contains the TLS file paths for the Redis server; see
	// RedisTLSOptions for how little of it store.NewRedis uses.
	TLS RedisTLSOptions `yaml:"tls,omitempty"`
}

func (c Redis) MarshalYAML() (interface{}, error) {
	fields := make(map[string]interface{})

	val := reflect.ValueOf(c.Options)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldValue := val.Field(i)

		// ignore funcs fields in redis.UniversalOptions
		if fieldValue.Kind() == reflect.Func {
			continue
		}

		fields[strings.ToLower(field.Name)] = fieldValue.Interface()
	}

	// Add TLS fields if they're not empty
	if c.TLS.Certificate != "" || c.TLS.Key != "" || len(c.TLS.ClientCAs) > 0 {
		fields["tls"] = c.TLS
	}

	return fields, nil
}

func (c *Redis) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var fields map[string]interface{}
	err := unmarshal(&fields)
	if err != nil {
		return err
	}

	val := reflect.ValueOf(&c.Options).Elem()
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldName := strings.ToLower(field.Name)

		if value, ok := fields[fieldName]; ok {
			fieldValue := val.Field(i)
			if fieldValue.CanSet() {
				switch field.Type {
				case reflect.TypeOf(time.Duration(0)):
					durationStr, ok := value.(string)
					if !ok {
						return fmt.Errorf("invalid duration value for field: %s", fieldName)
					}
					duration, err := time.ParseDuration(durationStr)
					if err != nil {
						return fmt.Errorf("failed to parse duration for field: %s, error: %v", fieldName, err)
					}
					fieldValue.Set(reflect.ValueOf(duration))
				default:
					if err := setFieldValue(fieldValue, value); err != nil {
						return fmt.Errorf("failed to set value for field: %s, error: %v", fieldName, err)
					}
				}
			}
		}
	}

	// Handle TLS fields
	if tlsData, ok := fields["tls"]; ok {
		tlsMap, ok := tlsData.(map[interface{}]interface{})
		if !ok {
			return fmt.Errorf("invalid TLS data structure")
		}

		if cert, ok := tlsMap["certificate"]; ok {
			var isString bool
			c.TLS.Certificate, isString = cert.(string)
			if !isString {
				return fmt.Errorf("Redis TLS certificate must be a string")
			}
		}
		if key, ok := tlsMap["key"]; ok {
			var isString bool
			c.TLS.Key, isString = key.(string)
			if !isString {
				return fmt.Errorf("Redis TLS (private) key must be a string")
			}
		}
		if cas, ok := tlsMap["clientcas"]; ok {
			caList, ok := cas.([]interface{})
			if !ok {
				return fmt.Errorf("invalid clientcas data structure")
			}
			for _, ca := range caList {
				if caStr, ok := ca.(string); ok {
					c.TLS.ClientCAs = append(c.TLS.ClientCAs, caStr)
				}
			}
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		stringValue, ok := value.(string)
		if !ok {
			return fmt.Errorf("failed to convert value to string")
		}
		field.SetString(stringValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, ok := value.(int)
		if !ok {
			return fmt.Errorf("failed to convert value to integer")
		}
		field.SetInt(int64(intValue))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, ok := value.(uint)
		if !ok {
			return fmt.Errorf("failed to convert value to unsigned integer")
		}
		field.SetUint(uint64(uintValue))
	case reflect.Float32, reflect.Float64:
		floatValue, ok := value.(float64)
		if !ok {
			return fmt.Errorf("failed to convert value to float")
		}
		field.SetFloat(floatValue)
	case reflect.Bool:
		boolValue, ok := value.(bool)
		if !ok {
			return fmt.Errorf("failed to convert value to boolean")
		}
		field.SetBool(boolValue)
	case reflect.Slice:
		slice := reflect.MakeSlice(field.Type(), 0, 0)
		valueSlice, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("failed to convert value to slice")
		}
		for _, item := range valueSlice {
			sliceValue := reflect.New(field.Type().Elem()).Elem()
			if err := setFieldValue(sliceValue, item); err != nil {
				return err
			}
			slice = reflect.Append(slice, sliceValue)
		}
		field.Set(slice)
	default:
		return fmt.Errorf("unsupported field type: %v", field.Type())
	}
	return nil
}
