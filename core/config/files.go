package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// exportEnvironmentFile sets KEY=VALUE lines from a dotenv file that are not
// already present in the process environment.
func exportEnvironmentFile(filename string) error {
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read environment file %s: %w", filename, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid line %d in environment file %s: %s", n, filename, line)
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		value = unquote(strings.TrimSpace(value))

		if _, set := os.LookupEnv(key); !set {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	if q := value[0]; (q == '"' || q == '\'') && value[len(value)-1] == q {
		return value[1 : len(value)-1]
	}
	return value
}

// FindConfigFile returns the first <service>.yaml found in the working
// directory, config/, configs/, /etc/<service>/ or ~/.<service>/.
func FindConfigFile(serviceName string) string {
	name := serviceName + ".yaml"
	paths := []string{
		name,
		filepath.Join("config", name),
		filepath.Join("configs", name),
		filepath.Join("/etc", serviceName, name),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+serviceName, name))
	}
	return firstExisting(paths)
}

// FindEnvironmentFile returns the first .env or <service>.env found.
func FindEnvironmentFile(serviceName string) string {
	name := serviceName + ".env"
	var paths []string
	for _, dir := range []string{"", "config", "configs"} {
		paths = append(paths, filepath.Join(dir, ".env"), filepath.Join(dir, name))
	}
	return firstExisting(paths)
}

func firstExisting(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
