// Package cli implements the jobspec-validator command line using Cobra.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command and attaches all sub-commands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jobspec-validator",
		Short: "Validate Neo4j import job specifications before running them",
		Long: `jobspec-validator checks the run options and the job specification of a
Neo4j import pipeline for semantic problems: unnamed or duplicate sources,
targets and actions, dangling source references, incomplete node and
relationship mappings, conflicting property mappings and unsupported
ORDER BY clauses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(NewValidateCmd())

	return rootCmd
}
