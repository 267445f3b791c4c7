// Command specctl drives the specification dashboard API from a terminal:
// login, project lists, material review, resubmission and reports.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Fernandolass/frontend-lab-eng-sub000/client"
	"github.com/Fernandolass/frontend-lab-eng-sub000/config"
	"github.com/Fernandolass/frontend-lab-eng-sub000/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	v   *viper.Viper
	cfg *config.ClientConfig
	log *zap.Logger
	api *client.Client
	out io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}
	config.SetClientDefaults(a.v)

	root := &cobra.Command{
		Use:           "specctl",
		Short:         "Command line client for the specification dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.String("api-url", "", "API base URL (default http://localhost:8000)")
	flags.String("token-file", "", "where the session tokens are kept")
	flags.Duration("timeout", 0, "HTTP timeout per request")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = a.v.BindPFlag("token_file", flags.Lookup("token-file"))
	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.projectsCmd(),
		a.materialsCmd(),
		a.resubmitCmd(),
		a.logsCmd(),
		a.statsCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.LoadClient(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logger.New(cfg.LogLevel, "console")
	if err != nil {
		return err
	}

	path := cfg.TokenFile
	if path == "" {
		if path, err = client.DefaultTokenPath(); err != nil {
			return fmt.Errorf("token file: %w", err)
		}
	}
	session, err := client.NewSession(client.FileStore{Path: path})
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	opts := []client.Option{client.WithLogger(a.log)}
	if cfg.Timeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.Timeout))
	}
	a.api = client.New(cfg.APIURL, session, opts...)
	return nil
}

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv("SPECDASH_PASSWORD")
			}
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password (or SPECDASH_PASSWORD) are required")
			}
			if err := a.api.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "logged in as %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := a.api.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "logged out")
			return nil
		},
	}
}
