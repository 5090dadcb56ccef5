package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Charl-AI/Charl-AI.github.io/internal/config"
	"github.com/Charl-AI/Charl-AI.github.io/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	outputDir string

	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Static site build tool for the blog",
	Long: `blog converts the Markdown files under './content/' into a mirrored
tree of self-contained HTML pages, regenerates the post index from
front-matter, and serves the result locally for preview.`,
	// Errors are printed once by Execute; usage is still shown for unknown
	// commands because subcommands silence it individually instead.
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the CLI. An interrupt cancels the command context so that
// long-running commands (serve, build) can stop cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "override the configured output directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initializeConfig(_ *cobra.Command) error {
	logger.SetVerbose(verbose)

	v := viper.New()

	v.SetDefault("siteTitle", "Blog")
	v.SetDefault("siteAuthor", "")
	v.SetDefault("baseURL", "")
	v.SetDefault("contentDir", "content")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")
	v.SetDefault("outputDir", "public")
	v.SetDefault("postsDir", "posts")
	v.SetDefault("indexFile", "posts.md")
	v.SetDefault("maxDepth", 4)
	v.SetDefault("workers", 0)
	v.SetDefault("buildTimeout", 0)
	v.SetDefault("defaultTitle", "")
	v.SetDefault("defaultSubtitle", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
		logger.Debug("no config file found, using defaults")
	} else {
		logger.Debug("using config file %s", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	if outputDir != "" {
		appConfig.OutputDir = outputDir
	}
	return nil
}
