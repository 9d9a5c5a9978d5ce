// Package config builds the run options of an import job from the
// environment, optional .env files and command-line overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvConnectionURI      = "NEO4J_CONNECTION_URI"
	EnvConnectionSecretID = "NEO4J_CONNECTION_SECRET_ID"
	EnvJobSpecURI         = "JOB_SPEC_URI"
	EnvLogLevel           = "LOG_LEVEL"
)

// RunOptions holds the top-level configuration of an import run.
type RunOptions struct {
	// Neo4jConnectionURI locates a connection metadata document.
	Neo4jConnectionURI string
	// Neo4jConnectionSecretID references a secret holding the connection
	// metadata, as projects/{project}/secrets/{secret}/versions/{version}.
	Neo4jConnectionSecretID string
	// JobSpecURI locates the job specification.
	JobSpecURI string
}

// FromEnv reads run options from environment variables. Unset variables
// leave the corresponding option empty; checking them is the validator's job.
func FromEnv() RunOptions {
	return RunOptions{
		Neo4jConnectionURI:      os.Getenv(EnvConnectionURI),
		Neo4jConnectionSecretID: os.Getenv(EnvConnectionSecretID),
		JobSpecURI:              os.Getenv(EnvJobSpecURI),
	}
}

// LoadEnvFile loads the given .env files into the process environment.
// Variables already set in the environment are not overridden.
func LoadEnvFile(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	return nil
}

// Override returns a copy of o where every non-empty field of other
// replaces the corresponding field.
func (o RunOptions) Override(other RunOptions) RunOptions {
	if other.Neo4jConnectionURI != "" {
		o.Neo4jConnectionURI = other.Neo4jConnectionURI
	}

	if other.Neo4jConnectionSecretID != "" {
		o.Neo4jConnectionSecretID = other.Neo4jConnectionSecretID
	}

	if other.JobSpecURI != "" {
		o.JobSpecURI = other.JobSpecURI
	}

	return o
}
