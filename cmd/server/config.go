package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind          string
	port          int
	assetsDir     string
	drinksFile    string
	scoresFile    string
	imageBaseURL  string
	redisAddr     string
	redisPassword string
	sessionTTL    time.Duration
	seed          int64
	version       bool
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.assetsDir == "" {
		return errors.New("--assets-dir cannot be empty")
	}
	if c.drinksFile == "" {
		return errors.New("--drinks-file cannot be empty")
	}
	if c.scoresFile == "" {
		return errors.New("--scores-file cannot be empty")
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("ENKAI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "enkai",
		Short:         "A collection of drinking party games behind a single JSON API.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: ENKAI_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: ENKAI_PORT)")
	fs.StringVar(&cfg.assetsDir, "assets-dir", "static/images/memory", "directory of memory card images (env: ENKAI_ASSETS_DIR)")
	fs.StringVar(&cfg.drinksFile, "drinks-file", "data/drinks.json", "path to the drink catalog (env: ENKAI_DRINKS_FILE)")
	fs.StringVar(&cfg.scoresFile, "scores-file", "data/scores.json", "path to the score ledger (env: ENKAI_SCORES_FILE)")
	fs.StringVar(&cfg.imageBaseURL, "image-base-url", "/static/images/", "URL prefix for quiz images (env: ENKAI_IMAGE_BASE_URL)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "", "redis address for mansion sessions; in-memory when empty (env: ENKAI_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: ENKAI_REDIS_PASSWORD)")
	fs.DurationVar(&cfg.sessionTTL, "session-ttl", 24*time.Hour, "mansion session expiry when backed by redis (env: ENKAI_SESSION_TTL)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed, 0 for time-based (env: ENKAI_SEED)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: ENKAI_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("enkai v{{.Version}}\n")

	return cmd
}
