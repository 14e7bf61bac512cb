package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netex/config"
	"github.com/katalvlaran/netex/metrics"
	"github.com/katalvlaran/netex/result"
	"github.com/katalvlaran/netex/task"
)

// loadParams decodes a parameter file for kind over the configured defaults.
func loadParams(cfg config.Config, kind task.Kind, path, snapshotPath string) (task.Params, error) {
	raw, err := readParams(path)
	if err != nil {
		return task.Params{}, err
	}
	base := task.DefaultParams(kind)
	base.NumThreads = cfg.Tasks.NumThreads
	base.RandomSeed = cfg.Tasks.RandomSeed
	p, err := task.DecodeParams(raw, base)
	if err != nil {
		return task.Params{}, err
	}
	if snapshotPath != "" {
		p.Snapshot = snapshotPath
	}

	return p, p.Validate(kind)
}

func newRunCmd() *cobra.Command {
	var (
		algorithm    string
		paramsPath   string
		snapshotPath string
		outputPath   string
		outputFormat string
		metricsFile  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one analysis task and print its result",
		Long: `Run loads the parameter object (JSON, or YAML by file extension), resolves the
graph snapshot from the data directory and the datasets (or --snapshot), runs
the selected algorithm and writes the result network with its node attributes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			kind, err := task.ParseKind(algorithm)
			if err != nil {
				return err
			}
			p, err := loadParams(cfg, kind, paramsPath, snapshotPath)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			if err := metrics.Register(reg); err != nil {
				return fmt.Errorf("registering metrics: %w", err)
			}

			var payload *result.Payload
			hooks := task.Hooks{
				Progress: func(f float64, status string) {
					log.WithField("progress", fmt.Sprintf("%.0f%%", 100*f)).Info(status)
				},
				Result: func(p *result.Payload) { payload = p },
			}
			t := task.New(kind, p)
			runErr := task.NewRunner(log, cfg.Data.Directory).Run(t, hooks)

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					log.WithError(err).Warn("writing metrics file failed")
				}
			}
			if runErr != nil {
				return runErr
			}
			log.WithFields(logrus.Fields{
				"task_id": t.ID.String(),
				"nodes":   len(payload.Network.Nodes),
				"edges":   len(payload.Network.Edges),
			}).Debug("writing result")

			return writeOutput(outputPath, outputFormat, payload)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm to run (see 'netex algorithms')")
	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "Parameter file, JSON or YAML (- for JSON on stdin)")
	cmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "Graph snapshot path (default: derived from the datasets)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Result file (default: stdout)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Result format: json or yaml")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")
	_ = cmd.MarkFlagRequired("algorithm")
	_ = cmd.MarkFlagRequired("params")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var algorithm, paramsPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a parameter file without running the task",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}
			kind, err := task.ParseKind(algorithm)
			if err != nil {
				return err
			}
			p, err := loadParams(cfg, kind, paramsPath, "")
			if err != nil {
				return err
			}
			fmt.Printf("%s parameters OK (%d seeds, snapshot %s)\n",
				kind, len(p.Seeds), task.NewRunner(nil, cfg.Data.Directory).SnapshotPath(p))

			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm the parameters are meant for")
	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "Parameter file, JSON or YAML")
	_ = cmd.MarkFlagRequired("algorithm")
	_ = cmd.MarkFlagRequired("params")

	return cmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range task.Kinds() {
				fmt.Printf("%-20s default target %s\n", k, k.DefaultTarget())
			}
		},
	}
}
