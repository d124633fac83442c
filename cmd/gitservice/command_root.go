package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/gitservice/pkg/gitservice"
)

// formatValue is a pflag.Value restricting --format to supported encodings.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(v string) error {
	switch v {
	case "text", "json", "yaml":
		*f = formatValue(v)
		return nil
	}
	return fmt.Errorf("must be one of: text, json, yaml")
}

func (f *formatValue) Type() string { return "format" }

type rootOptions struct {
	format  formatValue
	quiet   bool
	verbose bool
}

// newRootCommand creates the root cobra command.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{format: "text"}

	cmd := &cobra.Command{
		Use:   "gitservice [path]",
		Short: "Detect the Git hosting service behind a repository's remote",
		Long: `Gitservice inspects the repository enclosing a path, reads its configured
remote URL and reports the hosting service (GitHub, GitHub Enterprise,
GitLab, Bitbucket or other) together with the owner, repository name and
current branch. Detection is purely local: no network access is performed.

Exit Codes:
  0 - Success
  1 - Generic error
  2 - Path is not inside a git repository
  3 - Repository has no remote configured
  4 - Remote URL could not be parsed

Examples:
  gitservice
  gitservice ~/src/project --format=json
  gitservice --quiet`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runDetect(cmd.OutOrStdout(), newLogger(opts), path, opts)
		},
	}

	cmd.Flags().VarP(&opts.format, "format", "f", "output format: text, json or yaml")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only host/user/repo on one line")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

// newLogger builds the CLI logger; the library itself never logs.
func newLogger(opts *rootOptions) *slog.Logger {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func runDetect(out io.Writer, logger *slog.Logger, path string, opts *rootOptions) error {
	logger.Debug("detecting hosting service", "path", path, "format", string(opts.format))

	svc, err := gitservice.Detect(path)
	if err != nil {
		return err
	}

	logger.Debug("classified remote", "kind", string(svc.Kind), "host", svc.Host, "branch", svc.Branch)

	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(svc)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(svc)
	default:
		return writeText(out, svc, opts.quiet)
	}
}

func writeText(out io.Writer, svc *gitservice.Service, quiet bool) error {
	if quiet {
		_, err := fmt.Fprintln(out, svc.String())
		return err
	}

	bold := color.New(color.Bold)
	fmt.Fprint(out, "service: ")
	bold.Fprintln(out, serviceLabel(svc.Kind))
	fmt.Fprintf(out, "host:    %s\n", svc.Host)
	fmt.Fprintf(out, "user:    %s\n", svc.User)
	fmt.Fprintf(out, "repo:    %s\n", svc.Repo)
	if svc.Branch != "" {
		fmt.Fprintf(out, "branch:  %s\n", svc.Branch)
	}
	return nil
}

func serviceLabel(kind gitservice.Kind) string {
	switch kind {
	case gitservice.KindGitHub:
		return "GitHub"
	case gitservice.KindGitHubEnterprise:
		return "GitHub Enterprise"
	case gitservice.KindGitLab:
		return "GitLab"
	case gitservice.KindBitbucket:
		return "Bitbucket"
	}
	return "Unknown service"
}
