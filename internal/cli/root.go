// Package cli implements the logspect command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/logspect/logspect-client/pkg/api"
	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/logging"
	"github.com/logspect/logspect-client/pkg/refcache"
	"github.com/logspect/logspect-client/pkg/session"
)

// app carries the wired services shared by every subcommand. It is built
// once in the root command's PersistentPreRunE.
type app struct {
	config  Config
	session *session.Session
	api     *api.Client
}

// init wires config, session, HTTP client and services.
func (a *app) init(configPath string, verbose bool) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.config = cfg

	level := logging.LogLevel(cfg.LogLevel)
	if verbose {
		level = logging.LevelDebug
	}
	logging.Setup(logging.Config{Level: level, Pretty: true, Output: os.Stderr})

	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	sess, err := session.New(session.NewFileStore(filepath.Join(dir, "credentials.toml")))
	if err != nil {
		return err
	}
	a.session = sess

	httpCfg := client.DefaultConfig(cfg.BaseURL, sess)
	if t := cfg.Timeout(); t > 0 {
		httpCfg.Timeout = t
	}
	httpClient, err := client.New(httpCfg)
	if err != nil {
		return fmt.Errorf("configure client: %w", err)
	}

	var cache *refcache.Manager
	if cfg.RedisAddr != "" {
		cache = refcache.NewManager(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), 0)
	}

	a.api = api.New(httpClient, cache)
	return nil
}

// NewRootCommand builds the logspect command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "logspect",
		Short:         "Command-line client for the log-management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(configPath, verbose)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/logspect/config.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newLogsCommand(a),
		newFilesCommand(a),
		newUploadCommand(a),
		newUsersCommand(a),
		newAuditsCommand(a),
		newHistoryCommand(a),
		newDashboardCommand(a),
	)

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}
