package miner

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DropsMiner_Go/internal/domain"
	"github.com/osse101/DropsMiner_Go/internal/validation"
)

//go:embed schemas/session.schema.json
var schemaFS embed.FS

var sessionValidator = validation.NewSchemaValidator(schemaFS)

// Session is the worker's persisted login and drop inventory
type Session struct {
	UserID    string            `yaml:"user_id"`
	Campaigns []domain.Campaign `yaml:"campaigns"`
}

// LoadSession reads a YAML session file and checks it against the embedded
// session schema. A blank file is an empty, logged-out session.
func LoadSession(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, fmt.Errorf("%w: %s", domain.ErrSessionFileNotFound, path)
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	if len(bytes.TrimSpace(data)) > 0 {
		if err := sessionValidator.ValidateYAML(data, SessionSchemaPath); err != nil {
			return Session{}, fmt.Errorf("%w: %v", domain.ErrInvalidSession, err)
		}
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("%w: %v", domain.ErrInvalidSession, err)
	}

	if err := s.validate(); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (s Session) validate() error {
	seen := make(map[string]struct{}, len(s.Campaigns))
	for i, c := range s.Campaigns {
		if c.ID == "" {
			return fmt.Errorf("%w: campaign #%d has no id", domain.ErrInvalidSession, i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate campaign id %q", domain.ErrInvalidSession, c.ID)
		}
		seen[c.ID] = struct{}{}

		for _, d := range c.Drops {
			if d.ID == "" {
				return fmt.Errorf("%w: campaign %q has a drop without id", domain.ErrInvalidSession, c.ID)
			}
			if d.RequiredMinutes < 0 || d.CurrentMinutes < 0 {
				return fmt.Errorf("%w: drop %q has negative minutes", domain.ErrInvalidSession, d.ID)
			}
		}
	}
	return nil
}
