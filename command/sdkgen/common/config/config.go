package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const FileName = "sdkgen.yml"

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// New loads the defaults first, then overlays the configuration file of the directory when present.
func New[T any](directory string, defaults []byte) (*T, error) {
	// * create new config instance
	config := new(T)

	// * parse defaults
	if len(defaults) > 0 {
		if err := Unmarshal(defaults, config); err != nil {
			return nil, fmt.Errorf("unable to parse default configuration: %w", err)
		}
	}

	// * read config file
	configPath := filepath.Join(directory, FileName)
	bytes, err := os.ReadFile(configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	// * parse config file
	if err == nil {
		if err := Unmarshal(bytes, config); err != nil {
			return nil, fmt.Errorf("unable to parse configuration file: %w", err)
		}
	}

	// * validate config
	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func Unmarshal(bytes []byte, config any) error {
	// * process template replacements
	templated, err := Template(bytes)
	if err != nil {
		return fmt.Errorf("error processing templates: %w", err)
	}

	return yaml.Unmarshal(templated, config)
}

func Validate(config any) error {
	err := validator.New().Struct(config)
	if err == nil {
		return nil
	}

	var validatorErr validator.ValidationErrors
	if errors.As(err, &validatorErr) {
		var lists []string
		for _, err := range validatorErr {
			lists = append(lists, err.Namespace()+" ("+err.Tag()+")")
		}
		return fmt.Errorf("validation failed on %s: %w", strings.Join(lists, ", "), err)
	}

	return fmt.Errorf("invalid configuration: %w", err)
}

func Template(bytes []byte) ([]byte, error) {
	processed := templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * split by separator
		parts := strings.Split(content, "||")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		// * check each part
		for _, part := range parts {
			if strings.HasPrefix(part, "env.") {
				key := strings.TrimPrefix(part, "env.")
				value := os.Getenv(key)
				if value != "" {
					return []byte(value)
				}
			} else if part != "" {
				value, err := Nested(part)
				if err != nil {
					return []byte(part)
				}
				return []byte(value)
			}
		}

		// * no valid value found, return empty
		return []byte("")
	})

	return processed, nil
}

func Nested(value string) (string, error) {
	// * try to parse as json
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	// * convert back to yaml
	bytes, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}

	// * remove trailing newline
	return strings.TrimSuffix(string(bytes), "\n"), nil
}
