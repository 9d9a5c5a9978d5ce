package validate

import (
	"jobspec-validator/internal/config"
	"jobspec-validator/internal/diagnostic"
)

// ValidateOptions checks the run options and returns one message per
// violated rule. An empty result means the options are usable.
func ValidateOptions(opts config.RunOptions) []string {
	return CheckOptions(opts).Messages()
}

// CheckOptions is ValidateOptions with structured diagnostics.
func CheckOptions(opts config.RunOptions) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	uri := opts.Neo4jConnectionURI
	secret := opts.Neo4jConnectionSecretID

	if uri == "" && secret == "" {
		res.AddError(CodeMissingConnection,
			"Neither Neo4j connection URI nor Neo4j connection secret were provided.", "")
	}

	if uri != "" && secret != "" {
		res.AddError(CodeConflictingConnection,
			"Both Neo4j connection URI and Neo4j connection secret were provided: only one must be set.", "")
	}

	if secret != "" && !config.IsSecretVersionName(secret) {
		res.AddError(CodeInvalidSecretName,
			"Neo4j connection secret must be in the form"+
				" projects/{project}/secrets/{secret}/versions/{secret_version}", "")
	}

	if opts.JobSpecURI == "" {
		res.AddError(CodeMissingSpecURI, "Job spec URI not provided.", "")
	}

	return res
}
