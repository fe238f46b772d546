package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load reads the configuration through viper. A field's `env` variable overrides
// its `default`, and the flag in flags named by its `flag` tag overrides both when
// it was set on the command line. flags may be nil.
// Variables in the optional env files are applied first without overriding
// anything already set in the environment. The result is validated.
func Load(flags *pflag.FlagSet, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config env file %s: %w", f, err)
		}
	}

	v := viper.New()
	cfg := &Config{}
	root := reflect.ValueOf(cfg).Elem()

	err := walk(root, "", func(key string, field reflect.StructField, _ reflect.Value) error {
		v.SetDefault(key, field.Tag.Get("default"))
		if err := v.BindEnv(key, field.Tag.Get("env")); err != nil {
			return err
		}

		if name := field.Tag.Get("flag"); name != "" && flags != nil {
			if flag := flags.Lookup(name); flag != nil {
				return v.BindPFlag(key, flag)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("config bind: %w", err)
	}

	err = walk(root, "", func(key string, field reflect.StructField, fieldVal reflect.Value) error {
		value := v.GetString(key)
		if value == "" {
			return nil
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", field.Tag.Get("env"), value, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// walk calls fn for every settable field with an `env` tag, nested structs included,
// with the field's viper key (e.g. "reviews.file").
func walk(v reflect.Value, prefix string, fn func(key string, field reflect.StructField, fieldVal reflect.Value) error) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		key := prefix + strings.ToLower(field.Name)
		if field.Type.Kind() == reflect.Struct {
			if err := walk(fieldVal, key+".", fn); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("env") == "" {
			continue
		}

		if err := fn(key, field, fieldVal); err != nil {
			return err
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(int64(i))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
