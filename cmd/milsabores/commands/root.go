package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"milsabores/internal/app"
	"milsabores/internal/domain"
	"milsabores/internal/logging"
)

// env is the state shared by one invocation of the root command.
type env struct {
	home     string
	prefs    string
	logLevel string
	logJSON  bool

	log  *logging.ZapLogger
	wire *app.Wire
}

// Execute runs the CLI against os.Args.
func Execute() error {
	root, e := newRootCmd()
	defer e.close()
	return root.Execute()
}

// newRootCmd builds the command tree and the env its handlers share.
func newRootCmd() (*cobra.Command, *env) {
	e := &env{}
	root := &cobra.Command{
		Use:          "milsabores",
		Short:        "Pastelería 1000 Sabores storefront",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&e.home, "home", "", "data dir (default ~/.milsabores)")
	root.PersistentFlags().StringVar(&e.prefs, "prefs", "", "preferences backend: json, sqlite or memory")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&e.logJSON, "log-json", false, "emit JSON log lines")

	root.AddCommand(
		registerCmd(e),
		loginCmd(e),
		logoutCmd(e),
		whoamiCmd(e),
		profileCmd(e),
		photoCmd(e),
		catalogCmd(e),
		cartCmd(e),
		aboutCmd(),
	)
	return root, e
}

// setup resolves configuration and builds the wire.
func (e *env) setup(cmd *cobra.Command) error {
	cfg := app.DefaultConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		return err
	}
	home := cfg.Home
	if e.home != "" {
		home = e.home
	}
	if err := cfg.LoadEnv(filepath.Join(home, ".env")); err != nil {
		return err
	}

	// Flags win over everything else.
	if e.home != "" {
		cfg.Home = e.home
	}
	if e.prefs != "" {
		cfg.PrefsBackend = e.prefs
	}
	if e.logLevel != "" {
		cfg.LogLevel = e.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = e.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	e.log = log

	w, err := app.NewWire(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	e.wire = w
	return nil
}

// close releases the wire. It is safe to call more than once.
func (e *env) close() error {
	var err error
	if e.wire != nil {
		err = e.wire.Close()
		e.wire = nil
	}
	if e.log != nil {
		_ = e.log.Sync()
	}
	return err
}

// userError turns domain errors into messages fit for the terminal.
func userError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return errors.New("that email is already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errors.New("invalid email or password")
	case errors.Is(err, domain.ErrNotLoggedIn):
		return errors.New("not logged in; run `milsabores login` first")
	case errors.Is(err, domain.ErrProductNotFound):
		return errors.New("no such product; see `milsabores catalog`")
	case errors.Is(err, context.Canceled):
		return errors.New("cancelled")
	default:
		return fmt.Errorf("something went wrong, please try again: %w", err)
	}
}
