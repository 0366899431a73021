package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danmuck/meshghost/internal/config"
	"github.com/danmuck/meshghost/internal/ghost"
	"github.com/danmuck/meshghost/internal/logging"
	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/meshmem"
	"github.com/danmuck/meshghost/internal/snap"
)

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "snap a vertex and ghost the shared boundary on the built-in two-part demo mesh",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a run config TOML file (uses defaults if omitted)")
	return cmd
}

func runDemo(ctx context.Context, configPath string) error {
	logging.ConfigureRuntime()

	cfg := config.DefaultRunConfig()
	if configPath != "" {
		loaded, err := config.LoadRunConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	geom := config.ResolveGeometry(cfg)

	demo := meshmem.NewTwoPartTriangles()
	sim := demo.Sim

	ghostDims := []int{meshapi.DimVertex, meshapi.DimEdge}
	runID := uuid.New().String()
	logging.Infof("run %s: starting snap-and-ghost round", runID)

	return sim.Run(ctx, func(ctx context.Context, part int) error {
		mesh := sim.Mesh(part)
		msg := sim.Messaging(part)

		plan := ghost.NewPlan(mesh)
		defer plan.Destroy()

		driver := snap.Driver{Mesh: mesh, Geometry: geom, Operator: snap.Snapper{}}
		report, err := driver.Run(ctx, msg)
		if err != nil {
			return fmt.Errorf("part %d snap: %w", part, err)
		}
		logging.Infof("run %s part %d snap: snapped %d/%d", runID, part, report.Snapped, report.Targets)

		if part == 0 {
			if err := plan.Send(demo.V1, meshapi.DimVertex, 1); err != nil {
				return err
			}
			if err := plan.Send(demo.V2, meshapi.DimVertex, 1); err != nil {
				return err
			}
			if err := plan.Send(demo.E12, meshapi.DimEdge, 1); err != nil {
				return err
			}
		}

		for _, dim := range ghostDims {
			rep, err := ghost.Create(ctx, mesh, msg, plan, dim)
			if err != nil {
				return fmt.Errorf("part %d ghost dim %d: %w", part, dim, err)
			}
			logging.Infof("run %s part %d ghost dim %d: sent %d received %d", runID, part, dim, rep.Sent, rep.Received)
		}
		logging.Infof("run %s part %d ghost plan summary: %v", runID, part, plan.Summary())
		return nil
	})
}
