package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jobspec-validator/internal/config"
	"jobspec-validator/internal/diagnostic"
	"jobspec-validator/internal/jobspec"
	"jobspec-validator/internal/logger"
	"jobspec-validator/internal/validate"
)

// ValidateOptions holds the flags of the validate command.
type ValidateOptions struct {
	SpecURI          string
	ConnectionURI    string
	ConnectionSecret string
	Output           string
	EnvFile          string
	LogLevel         string
}

// NewValidateCmd creates the "validate" sub-command.
func NewValidateCmd() *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate run options and a job specification",
		Long: `Validate the run options and, when a job spec location is known, the job
specification itself. Flags override the NEO4J_CONNECTION_URI,
NEO4J_CONNECTION_SECRET_ID and JOB_SPEC_URI environment variables.
The command exits with a non-zero status when any problem is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SpecURI, "spec", "s", "", "Job spec location (path or file:// URI)")
	cmd.Flags().StringVar(&opts.ConnectionURI, "neo4j-uri", "", "Neo4j connection metadata URI")
	cmd.Flags().StringVar(&opts.ConnectionSecret, "neo4j-secret", "",
		"Neo4j connection secret (projects/{project}/secrets/{secret}/versions/{version})")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", OutputText, "Report format: text or yaml")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Additional .env file to load")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn or error (default $LOG_LEVEL or info)")

	return cmd
}

// runValidate validates options first and, if a spec location is set,
// the job spec. Both validators' problems end up in one report.
func runValidate(out, logOut io.Writer, opts *ValidateOptions) error {
	if opts.EnvFile != "" {
		if err := config.LoadEnvFile(opts.EnvFile); err != nil {
			return err
		}
	}

	levelName := opts.LogLevel
	if levelName == "" {
		levelName = os.Getenv(config.EnvLogLevel)
	}

	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}

	logger.Init(logOut, level)

	runOpts := config.FromEnv().Override(config.RunOptions{
		Neo4jConnectionURI:      opts.ConnectionURI,
		Neo4jConnectionSecretID: opts.ConnectionSecret,
		JobSpecURI:              opts.SpecURI,
	})

	diags := validate.CheckOptions(runOpts)
	report := NewReport(runOpts.JobSpecURI)

	if runOpts.JobSpecURI != "" {
		res, err := checkSpec(runOpts.JobSpecURI)
		if err != nil {
			// report options problems before the load fault
			if !diags.IsValid() {
				report.Add(diags)

				if werr := report.Write(out, opts.Output); werr != nil {
					return werr
				}
			}

			return err
		}

		diags.Merge(*res)
	}

	report.Add(diags)

	if err := report.Write(out, opts.Output); err != nil {
		return err
	}

	if !diags.IsValid() {
		logger.Debugf("problem codes: %s", strings.Join(diags.Codes(), ", "))
		return fmt.Errorf("%w: %w", ErrInvalid, diags.Error())
	}

	return nil
}

func checkSpec(location string) (*diagnostic.Diagnostics, error) {
	logger.Infof("loading job spec %s", location)

	spec, err := jobspec.LoadFile(location)
	if err != nil {
		return nil, err
	}

	res, err := validate.CheckJobSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("cannot validate %s: %w", location, err)
	}

	logger.Infof("validated %d source(s), %d target(s), %d action(s)",
		len(spec.Sources), len(spec.Targets), len(spec.Actions))

	return res, nil
}
