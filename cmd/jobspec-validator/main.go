// Package main provides the CLI entrypoint for jobspec-validator.
//
// jobspec-validator checks a Neo4j import job before it runs:
//   - run options: exactly one of connection URI or secret, a job spec location
//   - job spec: sources, node/relationship/custom query targets, actions
package main

import (
	"errors"
	"os"

	"jobspec-validator/internal/cli"
	"jobspec-validator/internal/config"
	"jobspec-validator/internal/logger"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		logger.Infof("No .env file found, using system environment variables")
	}

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrInvalid) {
			logger.Errorf("%v", err)
		}

		os.Exit(1)
	}
}
