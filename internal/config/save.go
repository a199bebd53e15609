package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const maskedPassword = "********"

// Masked returns a copy of c with every password replaced by asterisks.
func (c Config) Masked() Config {
	out := c
	out.Accounts.AdminPassword = maskedPassword
	out.Accounts.Students = make([]StudentAccount, len(c.Accounts.Students))
	for i, s := range c.Accounts.Students {
		out.Accounts.Students[i] = StudentAccount{ID: s.ID, Password: maskedPassword}
	}
	return out
}

// Render encodes c as YAML with two-space indentation.
func Render(c Config) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	return buf.String(), nil
}
