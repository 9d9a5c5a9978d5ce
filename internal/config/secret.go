package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSecretName is returned for strings that are not secret version names.
var ErrInvalidSecretName = errors.New("invalid secret version name")

// SecretVersionName identifies one version of a managed secret.
type SecretVersionName struct {
	Project string
	Secret  string
	Version string
}

// ParseSecretVersionName parses projects/{project}/secrets/{secret}/versions/{version}.
// Every segment must be non-empty and must not contain a slash.
func ParseSecretVersionName(s string) (SecretVersionName, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 6 ||
		parts[0] != "projects" ||
		parts[2] != "secrets" ||
		parts[4] != "versions" {
		return SecretVersionName{}, fmt.Errorf("%w: %q", ErrInvalidSecretName, s)
	}

	name := SecretVersionName{Project: parts[1], Secret: parts[3], Version: parts[5]}
	if name.Project == "" || name.Secret == "" || name.Version == "" {
		return SecretVersionName{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidSecretName, s)
	}

	return name, nil
}

// IsSecretVersionName reports whether s parses as a secret version name.
func IsSecretVersionName(s string) bool {
	_, err := ParseSecretVersionName(s)
	return err == nil
}

// String formats the name back into its canonical form.
func (n SecretVersionName) String() string {
	return "projects/" + n.Project + "/secrets/" + n.Secret + "/versions/" + n.Version
}
