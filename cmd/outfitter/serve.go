package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/mohammad-safakhou/outfitter/config"
	"github.com/mohammad-safakhou/outfitter/internal/browse"
	"github.com/mohammad-safakhou/outfitter/internal/cache"
	"github.com/mohammad-safakhou/outfitter/internal/interp"
	"github.com/mohammad-safakhou/outfitter/internal/outfit"
	"github.com/mohammad-safakhou/outfitter/internal/search"
	"github.com/mohammad-safakhou/outfitter/internal/server"
	"github.com/mohammad-safakhou/outfitter/internal/shops"
	"github.com/mohammad-safakhou/outfitter/provider"
)

func serveCMD() *cobra.Command {
	var cfgPath string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run the outfit search HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			if err := cfg.LLM.Validate(); err != nil {
				return err
			}

			llm, err := provider.NewProvider(cfg.LLM)
			if err != nil {
				return err
			}

			var planCache interp.PlanCache
			if cfg.Cache.Enabled() {
				plans, err := cache.New(context.Background(), cfg.Cache)
				if err != nil {
					return err
				}
				planCache = plans
				log.Printf("plan cache enabled on %s", cfg.Cache.RedisAddr)
			}

			browser := browse.NewManager(cfg.Browser)
			defer browser.Release()

			catalogs := shops.All(shops.Options{
				Overscan:    cfg.Search.Overscan,
				NavTimeout:  cfg.Browser.NavTimeout,
				WaitTimeout: cfg.Browser.WaitTimeout,
			})

			orch := outfit.NewOrchestrator(
				interp.NewInterpreter(llm, planCache),
				search.NewEngine(browser, catalogs),
				browser,
				cfg.Search.MaxPerCategory,
			)

			return server.Run(cfg, orch)
		},
	}
	serve.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")

	return serve
}
