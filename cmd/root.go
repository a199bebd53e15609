package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/registrar/internal/cachemanager"
	"github.com/zjrosen/registrar/internal/config"
	"github.com/zjrosen/registrar/internal/console"
	"github.com/zjrosen/registrar/internal/log"
	"github.com/zjrosen/registrar/internal/registration"
	"github.com/zjrosen/registrar/internal/tracing"
)

const (
	envPrefix        = "REGISTRAR"
	localConfigPath  = ".registrar/config.yaml"
	shutdownDeadline = 5 * time.Second
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	loadErr error
)

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "An interactive student course registration console",
	Long: `An interactive console for managing a course catalog and student enrollments.

Administrators add, update, remove and search courses and inspect rosters.
Students browse the catalog, register for and drop courses, and view a report
of their registered courses. All state lives in memory for one run.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/registrar/config.yaml)")
	rootCmd.Flags().Bool("no-credentials", false,
		"hide the seed account table before each login")
	rootCmd.Flags().Bool("no-color", false,
		"disable styled output")
}

func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg, loadErr = loadConfig(viper.GetViper(), cfgFile)
}

// loadConfig registers defaults on v, applies REGISTRAR_* environment
// overrides and reads the first config file found.
//
// Config lookup order:
//  1. path, when non-empty
//  2. .registrar/config.yaml (current directory)
//  3. ~/.config/registrar/config.yaml (user config)
func loadConfig(v *viper.Viper, path string) (config.Config, error) {
	setDefaults(v, config.Defaults())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else if _, err := os.Stat(localConfigPath); err == nil {
		v.SetConfigFile(localConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "registrar"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
		// No config file anywhere; defaults and environment apply.
		log.Debug(log.CatConfig, "no config file found, using defaults")
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper, d config.Config) {
	students := make([]map[string]any, 0, len(d.Accounts.Students))
	for _, s := range d.Accounts.Students {
		students = append(students, map[string]any{"id": s.ID, "password": s.Password})
	}

	v.SetDefault("accounts.admin_id", d.Accounts.AdminID)
	v.SetDefault("accounts.admin_password", d.Accounts.AdminPassword)
	v.SetDefault("accounts.students", students)
	v.SetDefault("ui.show_credentials", d.UI.ShowCredentials)
	v.SetDefault("ui.color", d.UI.Color)
	v.SetDefault("log.enabled", d.Log.Enabled)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("search_cache.enabled", d.SearchCache.Enabled)
	v.SetDefault("search_cache.ttl", d.SearchCache.TTL)
}

func runApp(cmd *cobra.Command, _ []string) error {
	if loadErr != nil {
		return loadErr
	}

	if noCredentials, _ := cmd.Flags().GetBool("no-credentials"); noCredentials {
		cfg.UI.ShowCredentials = false
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.UI.Color = false
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Log.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o750); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		cleanup, err := log.Init(log.Config{Path: cfg.Log.Path, Level: cfg.LogLevel()})
		if err != nil {
			return fmt.Errorf("initializing log: %w", err)
		}
		defer cleanup()
	}
	log.Info(log.CatConfig, "configuration loaded", "file", viper.ConfigFileUsed())

	provider, err := newTracingProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownDeadline)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
		}
	}()

	sys, err := newSystem(cfg)
	if err != nil {
		return err
	}

	con := console.New(sys, cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
		ShowCredentials: cfg.UI.ShowCredentials,
		Color:           cfg.UI.Color,
		Accounts:        cfg.Seed(),
		Tracer:          provider.Tracer(),
	})
	return con.Run(cmd.Context())
}

func newTracingProvider(tc config.TracingConfig) (*tracing.Provider, error) {
	tcfg := tracing.DefaultConfig()
	tcfg.Enabled = tc.Enabled
	tcfg.Exporter = tc.Exporter
	tcfg.FilePath = tc.FilePath
	tcfg.OTLPEndpoint = tc.OTLPEndpoint
	tcfg.SampleRate = tc.SampleRate
	return tracing.NewProvider(tcfg)
}

// newSystem builds the registration system from the seed accounts, attaching
// the search cache when enabled.
func newSystem(c config.Config) (*registration.System, error) {
	var opts []registration.Option
	if c.SearchCache.Enabled {
		ttl := c.SearchCache.Expiration()
		cache := cachemanager.NewInMemoryCacheManager[string, []*registration.Course]("course-search", ttl, 2*ttl)
		opts = append(opts, registration.WithSearchCache(cache))
	}

	sys, err := registration.NewSystem(c.Seed(), opts...)
	if err != nil {
		return nil, fmt.Errorf("creating registration system: %w", err)
	}
	return sys, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
