package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"portfolio/internal/core/version"

	"github.com/spf13/cobra"
)

type cli struct {
	out     io.Writer
	build   appFactory
	g       globals
	timeout time.Duration
	pretty  bool
}

func newRootCommand(out io.Writer, build appFactory) *cobra.Command {
	c := &cli{out: out, build: build}

	root := &cobra.Command{
		Use:   "portfolio-cli",
		Short: "Query GitHub portfolio data from the command line",
		Long: `portfolio-cli reads the same profile, repository and contribution data
the portfolio API serves and prints it as JSON.

Credentials come from GITHUB_TOKEN and GITHUB_USERNAME (a .env file is
read when present) or from the --token and --user flags.`,
		Version:       version.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.g.token, "token", "", "GitHub token (overrides GITHUB_TOKEN)")
	pf.StringVar(&c.g.user, "user", "", "GitHub username (overrides GITHUB_USERNAME)")
	pf.StringVar(&c.g.taxonomy, "taxonomy", "", "skills taxonomy YAML (overrides SKILLS_TAXONOMY_FILE)")
	pf.DurationVar(&c.timeout, "timeout", 2*time.Minute, "overall deadline for the command")
	pf.BoolVar(&c.pretty, "pretty", true, "indent JSON output")

	root.AddCommand(
		c.profileCmd(),
		c.reposCmd(),
		c.topCmd(),
		c.allCmd(),
		c.contributionsCmd(),
		c.recentCmd(),
		c.portfolioCmd(),
		c.rateLimitCmd(),
		c.skillsCmd(),
	)

	// bad invocations surface as usageError
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })
	root.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return usage(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
		}
		return nil
	}
	root.RunE = func(cmd *cobra.Command, _ []string) error { return cmd.Help() }
	for _, sub := range root.Commands() {
		if sub.Args != nil {
			sub.Args = usageArgs(sub.Args)
		}
	}
	return root
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error { return usage(check(cmd, args)) }
}

// run builds the app, bounds ctx by --timeout and prints what fn returns
func (c *cli) run(cmd *cobra.Command, fn func(ctx context.Context, a *app) (any, error)) error {
	a, err := c.build(c.g)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()

	v, err := fn(ctx, a)
	if err != nil {
		return err
	}
	return c.print(v)
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	if c.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func (c *cli) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print the account profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.svc.Profile(ctx)
			})
		},
	}
}

func (c *cli) reposCmd() *cobra.Command {
	details := true
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List owned repositories, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.svc.Repos(ctx, details)
			})
		},
	}
	cmd.Flags().BoolVar(&details, "details", true, "request the detailed listing")
	return cmd
}

func (c *cli) topCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print the curated display selection of repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.svc.TopRepos(ctx, limit)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 8, "maximum repositories to select")
	return cmd
}

func (c *cli) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List every owned repository with Python ones first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.svc.AllRepos(ctx)
			})
		},
	}
}

func (c *cli) contributionsCmd() *cobra.Command {
	var months int
	cmd := &cobra.Command{
		Use:   "contributions",
		Short: "Print contribution stats over a trailing window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.svc.Contributions(ctx, months)
			})
		},
	}
	cmd.Flags().IntVar(&months, "months", 12, "window length in months")
	return cmd
}

func (c *cli) recentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Print contribution stats over the last three months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.svc.RecentContributions(ctx)
			})
		},
	}
}

func (c *cli) portfolioCmd() *cobra.Command {
	var months int
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Print the processed portfolio view with skills and experience",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.svc.PortfolioData(ctx, months)
			})
		},
	}
	cmd.Flags().IntVar(&months, "months", 3, "contribution window in months")
	return cmd
}

func (c *cli) rateLimitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratelimit",
		Short: "Print the remaining GitHub API quota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app) (any, error) {
				return a.rate(ctx)
			})
		},
	}
}

// skills needs no credentials; it only prints the loaded taxonomy
func (c *cli) skillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "Print the skills taxonomy in matching order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := loadTaxonomy(c.g)
			if err != nil {
				return err
			}
			return c.print(t)
		},
	}
}
