package config

import (
	"encoding"
	"fmt"
	"iter"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoaderConfig names the sources a ConfigLoader reads.
type LoaderConfig struct {
	ConfigFile      string
	EnvironmentFile string
	// ServiceName prefixes environment overrides: RELAY_UPSTREAM_ENDPOINT
	// wins over UPSTREAM_ENDPOINT for the relay.
	ServiceName string
}

// ConfigLoader fills tagged config structs from defaults, YAML and the
// environment.
type ConfigLoader struct {
	config LoaderConfig
}

func NewConfigLoader(cfg LoaderConfig) *ConfigLoader {
	return &ConfigLoader{config: cfg}
}

// Load fills target from, in increasing precedence: struct tag defaults, the
// YAML config file, the environment file, and the process environment.
// Missing files are skipped.
func (l *ConfigLoader) Load(target any) error {
	if err := l.setDefaults(target); err != nil {
		return fmt.Errorf("failed to set defaults: %w", err)
	}

	if l.config.ConfigFile != "" {
		if err := loadYAML(target, l.config.ConfigFile); err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if l.config.EnvironmentFile != "" {
		if err := exportEnvironmentFile(l.config.EnvironmentFile); err != nil {
			return fmt.Errorf("failed to load environment file: %w", err)
		}
	}

	if err := l.loadFromEnv(target); err != nil {
		return fmt.Errorf("failed to load from environment: %w", err)
	}
	return nil
}

// leaf is a settable non-struct field with its resolved env name.
type leaf struct {
	value reflect.Value
	field reflect.StructField
	env   string
}

// leaves walks target depth first. Nested structs contribute their upper
// cased field name to the env name of untagged fields below them.
func leaves(target any) iter.Seq[leaf] {
	return func(yield func(leaf) bool) {
		walk(reflect.ValueOf(target), "", yield)
	}
}

func walk(v reflect.Value, prefix string, yield func(leaf) bool) bool {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return true
	}

	t := v.Type()
	for i := range v.NumField() {
		field, sf := v.Field(i), t.Field(i)
		if !field.CanSet() {
			continue
		}

		name := strings.ToUpper(sf.Name)
		if prefix != "" {
			name = prefix + "_" + name
		}

		if isStruct(field) {
			if !walk(field, name, yield) {
				return false
			}
			continue
		}

		env := sf.Tag.Get("env")
		if env == "" {
			env = name
		}
		if !yield(leaf{value: field, field: sf, env: env}) {
			return false
		}
	}
	return true
}

func isStruct(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct:
		return true
	case reflect.Pointer:
		return v.Type().Elem().Kind() == reflect.Struct
	}
	return false
}

func (l *ConfigLoader) setDefaults(target any) error {
	for f := range leaves(target) {
		def := f.field.Tag.Get("default")
		if def == "" {
			continue
		}
		if err := l.setFieldValue(f.value, def); err != nil {
			return fmt.Errorf("failed to set default for field %s: %w", f.field.Name, err)
		}
	}
	return nil
}

func (l *ConfigLoader) loadFromEnv(target any) error {
	for f := range leaves(target) {
		names := []string{f.env}
		if l.config.ServiceName != "" {
			names = []string{strings.ToUpper(l.config.ServiceName) + "_" + f.env, f.env}
		}

		for _, name := range names {
			value, ok := os.LookupEnv(name)
			if !ok {
				continue
			}
			if err := l.setFieldValue(f.value, value); err != nil {
				return fmt.Errorf("failed to set field %s from env %s: %w", f.field.Name, name, err)
			}
			break
		}
	}
	return nil
}

func loadYAML(target any, filename string) error {
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return nil
}

var durationType = reflect.TypeFor[time.Duration]()

// setFieldValue parses value into field. Types implementing
// encoding.TextUnmarshaler (ByteSize) parse themselves.
func (l *ConfigLoader) setFieldValue(field reflect.Value, value string) error {
	if field.CanAddr() {
		if u, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(value))
		}
	}

	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value: %s", value)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			field.SetBool(true)
		case "false", "0", "no", "off":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid boolean value: %s", value)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer value: %s", value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value: %s", value)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value: %s", value)
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Type())
	}
	return nil
}
