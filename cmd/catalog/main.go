// Package main implements the catalog CLI: currency formatting helpers and
// management of the tag and product catalog.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vitrine/catalog/internal/catalog"
	"github.com/vitrine/catalog/internal/config"
	"github.com/vitrine/catalog/internal/notify"
	"github.com/vitrine/catalog/internal/store"
	"github.com/vitrine/catalog/pkg/currency"
)

// app carries flag values and the objects built from them for one run.
type app struct {
	configPath string
	locale     string
	storePath  string
	withSymbol bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Manage tags and products, format amounts for display",
		Long: `catalog manages a small catalog of tags and products stored in a YAML file.

Amounts are shown with the configured locale (pt-br by default):
  catalog format 1234.5        -> R$1.234,50
  catalog mask "R$1.234,567"   -> R$12.345,67`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVarP(&a.locale, "locale", "l", "", "Currency locale ("+strings.Join(currency.Tags(), ", ")+")")
	root.PersistentFlags().StringVar(&a.storePath, "store", "", "Catalog file (overrides store_path)")
	root.PersistentFlags().BoolVar(&a.withSymbol, "symbol", true, "Prefix amounts with the currency symbol")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newFormatCmd(a))
	root.AddCommand(newMaskCmd(a))
	root.AddCommand(newSlugCmd())
	root.AddCommand(newTagsCmd(a))
	root.AddCommand(newProductsCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	loader := config.NewLoader()
	if a.configPath != "" {
		a.cfg, err = loader.LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
	} else {
		cfg := config.Default()
		a.cfg = &cfg
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		a.cfg.Locale = a.locale
	}
	if flags.Changed("symbol") {
		a.cfg.WithSymbol = a.withSymbol
	}
	if flags.Changed("store") {
		a.cfg.StorePath = a.storePath
	}
	if err := loader.Validate(a.cfg); err != nil {
		return err
	}
	a.logger.Debug("configuration loaded",
		zap.String("locale", a.cfg.Locale),
		zap.Bool("with_symbol", a.cfg.WithSymbol),
		zap.String("store", a.cfg.StorePath))
	return nil
}

// service builds the catalog service; notices go to the command's stderr.
func (a *app) service(cmd *cobra.Command) *catalog.Service {
	var n *notify.Notifier
	if a.cfg.Notifications.Enabled {
		autoClose, _ := a.cfg.Notifications.AutoCloseDuration()
		n = notify.New(cmd.ErrOrStderr(), notify.Options{
			AutoClose: autoClose,
			Position:  a.cfg.Notifications.Position,
			Theme:     a.cfg.Notifications.Theme,
		}, a.logger.Named("notify"))
	}
	svc := catalog.NewService(store.NewFileStore(a.cfg.StorePath), n)
	svc.SetLogger(a.logger.Named("catalog"))
	svc.SetDefaultPerPage(a.cfg.PerPage)
	return svc
}

func (a *app) currency() currency.Locale { return a.cfg.Currency() }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
