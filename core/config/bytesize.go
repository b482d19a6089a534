package config

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// ByteSize is a size in bytes that can be written as "2MiB", "4 MB" or a
// plain integer in config files and environment variables.
type ByteSize int64

// ParseByteSize parses a human readable size.
func ParseByteSize(value string) (ByteSize, error) {
	n, err := humanize.ParseBytes(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid byte size value: %s", value)
	}
	return ByteSize(n), nil
}

// Int returns the size as an int for slicing and buffer arithmetic.
func (b ByteSize) Int() int {
	return int(b)
}

func (b ByteSize) String() string {
	return humanize.IBytes(uint64(b))
}

// UnmarshalYAML accepts both scalar integers and human readable strings.
func (b *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: byte size must be a scalar", node.Line)
	}
	size, err := ParseByteSize(node.Value)
	if err != nil {
		return err
	}
	*b = size
	return nil
}

// MarshalYAML writes the size in IEC units.
func (b ByteSize) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// UnmarshalText lets environment variables and struct tag defaults use the
// same syntax as YAML.
func (b *ByteSize) UnmarshalText(text []byte) error {
	size, err := ParseByteSize(string(text))
	if err != nil {
		return err
	}
	*b = size
	return nil
}
