package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validate checks the settings the API server cannot start without. Every
// violation is reported at once, keyed by its YAML path and, where one
// exists, the environment variable that can supply it.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})

	err := v.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	envFor := make(map[string]string, len(envOverrides))
	for env, key := range envOverrides {
		envFor[key] = EnvPrefix + "_" + env
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		_, key, _ := strings.Cut(fe.Namespace(), ".")
		problem := key + " " + describe(fe)
		if env, ok := envFor[key]; ok {
			problem += fmt.Sprintf(" (or set %s)", env)
		}
		problems = append(problems, problem)
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be an absolute URL"
	case "numeric":
		return "must be a number"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min", "max":
		return fmt.Sprintf("must respect %s=%s", fe.Tag(), fe.Param())
	}
	return "failed " + fe.Tag()
}

// ProductionWarnings lists settings that work but should not ship to production.
// It returns nothing outside the production environment.
func (c *Config) ProductionWarnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string
	switch strings.ToLower(c.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be require, verify-ca or verify-full")
	}
	if c.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is below 5s")
	}
	if c.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is below 5s")
	}
	if c.Providers.CinetPay.Debug {
		warnings = append(warnings, "providers.cinetpay.debug logs callback payloads")
	}
	for _, origin := range c.Server.AllowedOrigins {
		if origin == "*" {
			warnings = append(warnings, "server.allowedOrigins contains '*'")
			break
		}
	}
	return warnings
}
