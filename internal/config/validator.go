package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// envNames maps Config fields back to the environment variables that set
// them, so validation errors point at the variable the operator must fix.
var envNames = map[string]string{
	"Port":        "PORT",
	"LogLevel":    "LOG_LEVEL",
	"LogFormat":   "LOG_FORMAT",
	"APIKey":      "API_KEY",
	"DBUser":      "DB_USER",
	"DBHost":      "DB_HOST",
	"DBPort":      "DB_PORT",
	"DBName":      "DB_NAME",
	"DBMaxConns":  "DB_MAX_CONNS",
	"APIBaseURL":  "API_BASE_URL",
	"CatalogPath": "CATALOG_PATH",
}

// validate checks the assembled configuration against the struct tags and
// rewrites field errors in terms of environment variables.
func (c *Config) validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := envNames[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s must be set", name))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of: %s", name, fe.Param()))
		case "min", "max":
			problems = append(problems, fmt.Sprintf("%s is out of range (%s=%s)", name, fe.Tag(), fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", name))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
