package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gocausal/adapters/excel"
	"gocausal/adapters/graphviz"
	"gocausal/adapters/memory"
	"gocausal/adapters/postgres"
	"gocausal/adapters/report"
	"gocausal/adapters/rng"
	statsengine "gocausal/adapters/stats"
	"gocausal/app"
	"gocausal/domain/causal"
	"gocausal/domain/core"
	"gocausal/internal"
	"gocausal/internal/config"
	"gocausal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "gocausal",
		Short: "Potential-outcomes simulation and treatment-effect estimation",
	}

	rootCmd.AddCommand(
		newSimulateCmd(cfg),
		newRenderCmd(cfg),
		newReportCmd(cfg),
		newExportCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildService wires the experiment service from configuration. The ledger
// is in-memory unless DATABASE_URL is set.
func buildService(cfg *config.Config, logger *internal.Logger) (*app.ExperimentService, func(), error) {
	var ledger ports.LedgerPort = memory.NewLedger()
	cleanup := func() {}
	if cfg.Database.URL != "" {
		pg, err := postgres.NewLedger(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("persisting artifacts to postgres")
		ledger = pg
		cleanup = func() { pg.Close() }
	}

	svc := app.NewExperimentService(statsengine.NewEngine(), rng.NewDeterministic(), ledger)
	return svc, cleanup, nil
}

// simulationFlags registers the deterministic inputs. Defaults come from the
// environment-backed config, so SEED/POPULATION_SIZE/SAMPLE_SIZE set the
// baseline and flags override it.
func simulationFlags(cmd *cobra.Command, sim config.SimulationConfig, seed *int64, popSize, sampleSize *int) {
	cmd.Flags().Int64Var(seed, "seed", sim.Seed, "random seed (all behavior is deterministic given seed, N, n)")
	cmd.Flags().IntVar(popSize, "population", sim.PopulationSize, "population size N")
	cmd.Flags().IntVar(sampleSize, "sample", sim.SampleSize, "sample size n (randomized scenario)")
}

func newSimulateCmd(cfg *config.Config) *cobra.Command {
	var seed int64
	var popSize, sampleSize int

	cmd := &cobra.Command{
		Use:   "simulate [scenario]",
		Short: "Run a potential-outcomes scenario and print its estimates",
		Long: `Run one scenario end to end: generate the synthetic population, partition,
realize observed outcomes, and estimate the average treatment effect by
difference of means and by OLS.

Scenarios: baseline, randomized, confounded, latent.

Example: gocausal simulate confounded --seed 42 --population 10000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()

			svc, cleanup, err := buildService(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := svc.Run(cmd.Context(), app.ExperimentRequest{
				Scenario:       app.Scenario(args[0]),
				Seed:           seed,
				PopulationSize: popSize,
				SampleSize:     sampleSize,
			})
			if err != nil {
				return err
			}

			logger.Info("scenario %s finished in %dms", result.Scenario, result.RuntimeMs)
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	simulationFlags(cmd, cfg.Simulation, &seed, &popSize, &sampleSize)
	return cmd
}

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "render [graph...]",
		Short: "Draw causal DAGs to PNG figures",
		Long: `Render named causal graphs through Graphviz.

Graphs: confounded, unobserved-confounder, do-x. With no arguments all
graphs are rendered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := graphviz.NewRenderer()
			renderer.DotBinary = cfg.Render.DotBinary

			known := map[string]causal.Graph{
				"confounded":            causal.ConfoundedGraph(),
				"unobserved-confounder": causal.UnobservedConfounderGraph(),
				"do-x":                  causal.InterventionGraph(),
			}

			var graphs []causal.Graph
			if len(args) == 0 {
				for _, g := range known {
					graphs = append(graphs, g)
				}
			} else {
				for _, name := range args {
					g, ok := known[name]
					if !ok {
						return fmt.Errorf("unknown graph %q", name)
					}
					graphs = append(graphs, g)
				}
			}

			dir := outDir
			if dir == "" {
				dir = filepath.Join(cfg.Paths.OutputDir, "figures")
			}
			if err := renderer.RenderAll(cmd.Context(), graphs, dir); err != nil {
				return err
			}
			fmt.Printf("rendered %d figure(s) to %s\n", len(graphs), dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default OUTPUT_DIR/figures)")
	return cmd
}

func newReportCmd(cfg *config.Config) *cobra.Command {
	var seed int64
	var popSize, sampleSize int
	var outDir string

	cmd := &cobra.Command{
		Use:   "report [scenario]",
		Short: "Run a scenario and write a Markdown + HTML summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()

			svc, cleanup, err := buildService(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := svc.Run(cmd.Context(), app.ExperimentRequest{
				Scenario:       app.Scenario(args[0]),
				Seed:           seed,
				PopulationSize: popSize,
				SampleSize:     sampleSize,
			})
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = filepath.Join(cfg.Paths.OutputDir, "reports")
			}
			summary := report.Summary{
				RunID:       result.RunID,
				Scenario:    string(result.Scenario),
				Seed:        result.Seed,
				Population:  result.Pop.Size(),
				TrueATE:     result.TrueATE,
				DiffMeans:   result.DiffMeans,
				Naive:       result.Naive,
				Adjusted:    result.Adjusted,
				Notes:       result.Notes,
				GeneratedAt: core.Now(),
			}
			if err := report.WriteFiles(summary, dir); err != nil {
				return err
			}
			fmt.Printf("wrote %s.md and %s.html\n",
				filepath.Join(dir, summary.Scenario), filepath.Join(dir, summary.Scenario))
			return nil
		},
	}
	simulationFlags(cmd, cfg.Simulation, &seed, &popSize, &sampleSize)
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default OUTPUT_DIR/reports)")
	return cmd
}

func newExportCmd(cfg *config.Config) *cobra.Command {
	var seed int64
	var popSize, sampleSize int
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [scenario]",
		Short: "Run a scenario and export its population table as xlsx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()

			svc, cleanup, err := buildService(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := svc.Run(cmd.Context(), app.ExperimentRequest{
				Scenario:       app.Scenario(args[0]),
				Seed:           seed,
				PopulationSize: popSize,
				SampleSize:     sampleSize,
			})
			if err != nil {
				return err
			}

			path := outPath
			if path == "" {
				path = filepath.Join(cfg.Paths.OutputDir, string(result.Scenario)+".xlsx")
			}
			exporter := excel.NewExporter()
			if err := exporter.ExportPopulation(cmd.Context(), result.Pop, path); err != nil {
				return err
			}
			fmt.Printf("exported %d individuals to %s\n", result.Pop.Size(), path)
			return nil
		},
	}
	simulationFlags(cmd, cfg.Simulation, &seed, &popSize, &sampleSize)
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default OUTPUT_DIR/<scenario>.xlsx)")
	return cmd
}
