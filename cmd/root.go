package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Dulitha99/Research-Website/internal/config"
	"github.com/Dulitha99/Research-Website/internal/logger"
	"github.com/Dulitha99/Research-Website/site"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	log       = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "researchsite",
	Short: "Builds and serves the SilentWatch research project website",
	Long: `researchsite renders the research project website (home, domain, milestones,
documents, presentations, about and contact pages) from Markdown content, HTML
layouts and JSON fixtures into a static output directory, and can serve it
locally with live rebuilds and a working contact endpoint.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// flagKeys maps command-line flags onto config keys so flags win over the file
// and the environment.
var flagKeys = map[string]string{
	"source": "sourceDir",
	"output": "outputDir",
	"port":   "server.port",
}

func initializeConfig(cmd *cobra.Command) error {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	d := config.Defaults()
	v.SetDefault("siteTitle", d.SiteTitle)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("baseURL", d.BaseURL)
	v.SetDefault("sourceDir", d.SourceDir)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdownTimeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.allowedOrigins", d.Server.AllowedOrigins)
	v.SetDefault("server.trustedProxies", d.Server.TrustedProxies)
	v.SetDefault("contact.sendDelay", d.Contact.SendDelay)
	v.SetDefault("contact.resetAfter", d.Contact.ResetAfter)
	v.SetDefault("contact.ratePerMinute", d.Contact.RatePerMin)
	v.SetDefault("contact.dedupTTL", d.Contact.DedupTTL)
	v.SetDefault("contact.redisAddr", d.Contact.RedisAddr)
	v.SetDefault("contact.redisDB", d.Contact.RedisDB)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	configMsg := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config path surfaces a missing file as *fs.PathError.
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
		configMsg = "No config file found, using defaults and environment"
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := appConfig.LogLevel
	if verbose {
		level = "debug"
	}
	l, err := logger.New(level, cmd.Name() == "serve")
	if err != nil {
		return err
	}
	log = l

	if configMsg != "" {
		log.Debug(configMsg)
	} else {
		log.Debug("Using config file", zap.String("file", v.ConfigFileUsed()))
	}
	return nil
}

// siteSource returns the on-disk source when sourceDir is set, otherwise the
// site compiled into the binary.
func siteSource(cfg config.Config) (fs.FS, error) {
	if cfg.SourceDir == "" {
		return site.FS, nil
	}
	info, err := os.Stat(cfg.SourceDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("source directory '%s' not found", cfg.SourceDir)
	}
	return os.DirFS(cfg.SourceDir), nil
}
