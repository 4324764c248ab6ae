package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the loaded values against the struct constraints
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed %q (value %v)", e.Field(), ruleOf(e), e.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

// ValidateWithWarnings validates the config and returns warnings for
// settings that work but are probably not what the operator wants
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.RateLimitPerMinute == 0 {
		warnings = append(warnings, "RATE_LIMIT_PER_MINUTE is 0 - per-client rate limiting is disabled")
	}

	if _, err := os.Stat(filepath.Join(c.WebDir, "index.html")); err != nil {
		warnings = append(warnings, fmt.Sprintf("index.html not found in WEB_DIR %q - the web interface will answer 404", c.WebDir))
	}

	if _, err := os.Stat(c.SessionFile); err != nil {
		warnings = append(warnings, fmt.Sprintf("SESSION_FILE %q is not readable - the worker will start logged out with an empty inventory", c.SessionFile))
	}

	return warnings, nil
}

func ruleOf(e validator.FieldError) string {
	if e.Param() == "" {
		return e.Tag()
	}
	return e.Tag() + "=" + e.Param()
}
