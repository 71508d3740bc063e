package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dulitha99/Research-Website/internal/build"
	"github.com/Dulitha99/Research-Website/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, layouts, data and static assets",
	Long: `The build command processes Markdown files from 'content/', extracts
frontmatter, loads the JSON fixtures from 'data/', applies templates from
'layouts/' (including partials), copies assets from 'static/', and writes the
site to the configured output directory (default './public/').

Without --source the site compiled into the binary is built.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runBuildProcess(appConfig, log)
		return err
	},
}

func newBuilder(cfg config.Config, log *zap.Logger) (*build.Builder, error) {
	src, err := siteSource(cfg)
	if err != nil {
		return nil, err
	}
	return build.New(build.Options{
		Source:    src,
		OutputDir: cfg.OutputDir,
		BaseURL:   cfg.BaseURL,
		SiteTitle: cfg.SiteTitle,
		Contact: build.ContactSettings{
			SendDelay:  cfg.Contact.SendDelay,
			ResetAfter: cfg.Contact.ResetAfter,
		},
		Logger: log,
	}), nil
}

func runBuildProcess(cfg config.Config, log *zap.Logger) (*build.Result, error) {
	b, err := newBuilder(cfg, log)
	if err != nil {
		return nil, err
	}
	return b.Run()
}

func init() {
	buildCmd.Flags().String("source", "", "site source directory (default: embedded site)")
	buildCmd.Flags().StringP("output", "o", "public", "output directory")
	rootCmd.AddCommand(buildCmd)
}
