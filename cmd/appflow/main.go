// Command appflow manages internship application lifecycles from the
// terminal: create records, apply status transitions, and inspect legal
// targets, against a local SQLite/JSON store or the marketplace backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Internmain07/I-INTERN-sub000/internal/cliconfig"
	"github.com/Internmain07/I-INTERN-sub000/pkg/appflow"
	"github.com/Internmain07/I-INTERN-sub000/pkg/log"
)

const longHelp = `Manage internship application lifecycles.

appflow enforces the I-Intern application workflow: which status changes
are legal, which notifications each change triggers, and when a company
may see an applicant's contact details. It works against a local SQLite
database by default; point it at the marketplace backend with --store rest.

Configuration precedence: flags > APPFLOW_* environment > config file.`

var exampleUsage = strings.TrimSpace(`
  appflow create
  appflow transition 7f6c0c1e-8f07-4a52-9b5d-2d1f9f7f0001 under_review
  appflow transition 7f6c0c1e-8f07-4a52-9b5d-2d1f9f7f0001 offer_accepted --actor intern
  appflow show 7f6c0c1e-8f07-4a52-9b5d-2d1f9f7f0001
  appflow targets offered
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	// Local development convenience; ignored when no .env exists.
	_ = godotenv.Load()

	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var actor string

	root := &cobra.Command{
		Use:           "appflow",
		Short:         "Manage internship application lifecycles",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "config file (default ~/.appflow/config.toml)")
	flags.StringVar(&cfg.StoreKind, "store", cfg.StoreKind, "record store: sqlite, file or rest")
	flags.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "base directory for local stores")
	flags.StringVar(&cfg.DatabasePath, "db-path", cfg.DatabasePath, "SQLite database file (derived from data-dir when empty)")
	flags.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "marketplace API base URL")
	flags.StringVar(&cfg.AuthKey, "auth-key", cfg.AuthKey, "marketplace API key")
	flags.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout for backend calls")
	flags.StringVar(&cfg.TemplatesPath, "templates", cfg.TemplatesPath, "notification template policy file (TOML)")
	flags.BoolVar(&cfg.WatchTemplates, "watch-templates", cfg.WatchTemplates, "hot-reload the template policy file")
	flags.BoolVar(&cfg.NotifyOnRejection, "notify-on-rejection", cfg.NotifyOnRejection, "send a notification on rejection (silent by default)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log output: console or json")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		changed := map[string]bool{}
		flags.Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}
		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config %s: %w", cfgFile, err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}
		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}
		return cfg.Validate()
	}

	newEngine := func() (*appflow.Engine, error) {
		var logger appflow.Logger
		if cfg.LogFormat == "json" {
			logger = log.NewZerologJSONAdapter(os.Stderr)
		} else {
			logger = log.NewZerologAdapter()
		}
		return appflow.New(cfg, appflow.WithLogger(logger))
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new application record in the Applied state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			rec, err := engine.Create(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(rec.ID)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an application record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			rec, err := engine.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}

	transitionCmd := &cobra.Command{
		Use:   "transition <id> <status>",
		Short: "Move an application to a new status",
		Long: `Move an application to a new status, enforcing the workflow rules.

Illegal transitions (skips, no-ops, leaving a terminal status) are
rejected without modifying the record.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := appflow.ParseStatus(args[1])
			if err != nil {
				return fmt.Errorf("unrecognized status %q", args[1])
			}
			if actor != string(appflow.ActorCompany) && actor != string(appflow.ActorIntern) {
				return fmt.Errorf("actor must be company or intern (got %q)", actor)
			}

			engine, err := newEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			ctx := cmd.Context()
			engine.Start(ctx)

			rec, err := engine.Transition(ctx, args[0], target, appflow.Actor(actor))
			if err != nil {
				if errors.Is(err, appflow.ErrIllegalTransition) {
					return fmt.Errorf("cannot move from %s to %s", rec.Status, target)
				}
				return err
			}
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}
	transitionCmd.Flags().StringVar(&actor, "actor", "company", "who requests the change: company or intern")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all application records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			records, err := engine.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tAPPLIED\tCONTACT VISIBLE")
			for _, rec := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\n",
					rec.ID, rec.Status, rec.AppliedAt.Format("2006-01-02"), rec.ContactDetailsVisible())
			}
			return w.Flush()
		},
	}

	targetsCmd := &cobra.Command{
		Use:   "targets <status>",
		Short: "Print the legal target statuses from a given status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := appflow.ParseStatus(args[0])
			if err != nil {
				return fmt.Errorf("unrecognized status %q", args[0])
			}

			targets := appflow.LegalTargets(from)
			if len(targets) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is terminal\n", from)
				return nil
			}
			for _, t := range targets {
				fmt.Fprintln(cmd.OutOrStdout(), appflow.FormatStatus(t))
			}
			return nil
		},
	}

	root.AddCommand(createCmd, showCmd, transitionCmd, listCmd, targetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printRecord(w io.Writer, rec appflow.Record) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", rec.ID)
	fmt.Fprintf(tw, "Status\t%s\n", rec.Status)
	fmt.Fprintf(tw, "Applied\t%s\n", rec.AppliedAt.Format("2006-01-02 15:04 MST"))
	if !rec.OfferSentAt.IsZero() {
		fmt.Fprintf(tw, "Offer sent\t%s\n", rec.OfferSentAt.Format("2006-01-02 15:04 MST"))
	}
	if !rec.OfferRespondedAt.IsZero() {
		fmt.Fprintf(tw, "Offer response\t%s\n", rec.OfferRespondedAt.Format("2006-01-02 15:04 MST"))
	}
	if !rec.HiredAt.IsZero() {
		fmt.Fprintf(tw, "Hired\t%s\n", rec.HiredAt.Format("2006-01-02 15:04 MST"))
	}
	fmt.Fprintf(tw, "Contact details visible\t%v\n", rec.ContactDetailsVisible())
	_ = tw.Flush()
}
