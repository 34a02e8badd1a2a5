package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Johannes-Berggren/webgit/internal/config"
	"github.com/Johannes-Berggren/webgit/internal/git"
	"github.com/Johannes-Berggren/webgit/internal/models"
	"github.com/Johannes-Berggren/webgit/internal/sink"
	"github.com/Johannes-Berggren/webgit/internal/ui"
	"github.com/Johannes-Berggren/webgit/internal/web"
)

var version = "0.1.0"

const commandHelp = `Commands:
  repo                      open webpage for repo (default behavior)
  commits                   open webpage for commits
  org                       open webpage for organization
  user                      open webpage for user
  pr [from] [to]            open webpage to create a pull request,
                            e.g. pr origin/feature upstream/main
  prs                       open webpage for all pull requests
  myprs [username]          open webpage for pull requests by a user
  issue [number]            open webpage for specified issue
  issues                    open webpage for all issues
  tree <commit|branch|tag> [file]
                            open webpage for commit, branch or tag tree
  <commit_hash> [file]      open webpage for commit, e.g. 76ac43b
  <pull_request_number>     open webpage for pull request, e.g. 7, #1234

Environment:
  WEBGIT_DEFAULT_USER                 default user for "user" and "myprs"
  WEBGIT_DEFAULT_ORIGIN_REPO_NAME     remote used as origin (default "origin")
  WEBGIT_DEFAULT_UPSTREAM_REPO_NAME   remote used as upstream (default "upstream")
  WEBGIT_GIT_TIMEOUT                  timeout for each git call (default 10s)`

type options struct {
	printAddress bool
	path         string
	file         string
	org          string
	gitUser      string
	remote       string
	copy         bool
	interactive  bool
	verbose      bool
}

// deps are the effectful collaborators, swapped out in tests.
type deps struct {
	loadConfig func() (config.Config, error)
	getwd      func() (string, error)
	newRunner  func(cfg config.Config, logger *log.Logger) git.Runner
	browser    sink.Sink
	clipboard  sink.Sink
	isTerminal func() bool
	pick       func(remotes []models.Remote, preselect string) (string, error)
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		getwd:      os.Getwd,
		newRunner: func(cfg config.Config, logger *log.Logger) git.Runner {
			return git.ExecRunner{Timeout: cfg.GitTimeout, Logger: logger}
		},
		browser:   sink.NewBrowser(),
		clipboard: sink.NewClipboard(),
		isTerminal: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
		},
		pick: func(remotes []models.Remote, preselect string) (string, error) {
			return ui.PickRemote(remotes, preselect, os.Stdin, os.Stderr)
		},
	}
}

func newRootCmd(d deps) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "webgit [command] [args...]",
		Short:   "Open Github and Gitlab web pages",
		Long:    "webgit - open the Github or Gitlab web page for the current git repository\n\n" + commandHelp,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, d)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	f := rootCmd.Flags()
	f.BoolVarP(&opts.printAddress, "print-address", "a", false, "print the web address instead of opening it")
	f.StringVarP(&opts.path, "path", "C", "", "git repository directory")
	f.StringVarP(&opts.file, "file", "f", "", "full repository path for file or directory")
	f.StringVarP(&opts.org, "org", "o", "", "git web org or project name")
	f.StringVarP(&opts.gitUser, "git-user", "u", "", "git web username, e.g. username for github")
	f.StringVarP(&opts.remote, "remote", "r", "", "the git remote to use, e.g. origin, upstream")
	f.BoolVarP(&opts.copy, "copy", "c", false, "also copy the web address to the clipboard")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "choose the git remote interactively")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log git calls and resolution steps")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *options, d deps) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "webgit", Level: log.WarnLevel})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := d.loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dir := opts.path
	if dir == "" {
		if dir, err = d.getwd(); err != nil {
			return err
		}
	}

	repo := git.NewRepository(dir, d.newRunner(cfg, logger))
	remotes, err := repo.Remotes(ctx)
	if err != nil {
		return err
	}
	logger.Debug("parsed remotes", "dir", dir, "count", len(remotes))

	registry := git.NewRegistry(remotes, cfg.DefaultOriginName, cfg.DefaultUpstreamName)

	inv := web.Invocation{Flags: web.Flags{
		File:    opts.file,
		Org:     opts.org,
		GitUser: opts.gitUser,
		Remote:  opts.remote,
	}}
	if len(args) > 0 {
		inv.Command = args[0]
		inv.Args = args[1:]
	}

	if opts.interactive {
		if !d.isTerminal() {
			return errors.New("--interactive needs a terminal")
		}
		preselect, err := registry.Upstream(inv.Flags.Remote)
		if err != nil {
			return err
		}
		if inv.Flags.Remote, err = d.pick(registry.Remotes(), preselect.Name); err != nil {
			return err
		}
		logger.Debug("picked remote", "remote", inv.Flags.Remote)
	}

	resolver := &web.Resolver{
		Remotes: registry,
		Branch:  repo.CurrentBranch,
		Config:  cfg,
	}

	address, err := resolver.Resolve(ctx, inv)

	var usage *web.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(cmd.OutOrStdout(), usage.Message)
		return nil
	}

	var unrecognized *web.UnrecognizedCommandError
	if errors.As(err, &unrecognized) {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Error("Unrecognized command "+strings.TrimSpace(unrecognized.Command)))
		if hint := ui.DidYouMean(unrecognized.Suggestions); hint != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), hint)
		}
		_ = cmd.Help()
		return err
	}

	if err != nil {
		return err
	}

	logger.Debug("resolved address", "invocation", inv.String(), "address", address)

	return deliverer(cmd, opts, d, logger).Deliver(address)
}

// deliverer prints or opens the address; copying it is optional.
func deliverer(cmd *cobra.Command, opts *options, d deps, logger *log.Logger) sink.Sink {
	var out sink.Tee
	if opts.printAddress {
		out = append(out, sink.Printer{Out: cmd.OutOrStdout()})
	} else {
		out = append(out, d.browser)
	}
	if opts.copy {
		out = append(out, sink.BestEffort{Sink: d.clipboard, Logger: logger})
	}
	return out
}

// Execute runs webgit with os.Args and exits non-zero on failure.
func Execute() {
	rootCmd := newRootCmd(defaultDeps())

	if err := rootCmd.Execute(); err != nil {
		var unrecognized *web.UnrecognizedCommandError
		if !errors.As(err, &unrecognized) {
			fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
			if errors.Is(err, git.ErrRepositoryUnavailable) {
				fmt.Fprintln(os.Stderr, ui.Hint("Run webgit inside a git working directory or pass -C <dir>."))
			}
		}
		os.Exit(1)
	}
}
