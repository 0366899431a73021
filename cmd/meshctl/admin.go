package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/meshghost/internal/adminsrv"
	"github.com/danmuck/meshghost/internal/config"
	"github.com/danmuck/meshghost/internal/logging"
)

func newAdminCmd() *cobra.Command {
	var configPath string
	var part int
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "serve the admin HTTP surface for one part",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultRunConfig()
			if configPath != "" {
				loaded, err := config.LoadRunConfig(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg = loaded
			}
			logging.ConfigureRuntime()

			srv := adminsrv.New(fmt.Sprintf("part-%d", part), cfg.AdminAddr, cfg.CorsOrigins)
			logging.Infof("admin: serving part %d on %s", part, cfg.AdminAddr)
			return srv.Serve()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a run config TOML file (uses defaults if omitted)")
	cmd.Flags().IntVar(&part, "part", 0, "part id this admin surface reports for")
	return cmd
}
