/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/carverauto/netwatch/pkg/config"
	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
	"github.com/carverauto/netwatch/pkg/netwatch"
	"github.com/carverauto/netwatch/pkg/report"
)

var (
	flagConfig      string
	flagEvents      string
	flagMonitor     bool
	flagDuration    int
	flagShowVirtual bool
	flagLookback    int
	flagOutputDir   string
	flagLogLevel    string
	flagNoColor     bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "netwatch: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "netwatch",
		Short:        "Diagnose physical network disconnects",
		Long:         "netwatch classifies the host's network adapters, correlates historical disconnect events with nearby system events, and can monitor live adapter state for a bounded period.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	cmd.Flags().StringVar(&flagEvents, "events", "", "Path to an exported event log (JSON lines)")
	cmd.Flags().BoolVar(&flagMonitor, "monitor", false, "Enable continuous live state monitoring")
	cmd.Flags().IntVar(&flagDuration, "duration", 5, "Monitor duration in minutes")
	cmd.Flags().BoolVar(&flagShowVirtual, "show-virtual", false, "Include virtual adapters in output and monitoring")
	cmd.Flags().IntVar(&flagLookback, "lookback", 24, "Historical collection window in hours")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", ".", "Directory for CSV logs and the transcript")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	return cmd
}

func run(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	report.SetNoColor(flagNoColor)

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := netwatch.Run(ctx, netwatch.Options{Config: cfg, Logger: log})
	if err != nil {
		if summary == nil {
			return err
		}

		// A monitor interrupt still leaves a printable partial run.
		log.Warn().Err(err).Msg("Run ended early")
	}

	printer := report.NewPrinter(os.Stdout, cfg.Monitor.ShowVirtual)
	printer.PrintAdapters(summary.Partition)
	printer.PrintCorrelations(summary.Results)

	if cfg.Monitor.Enabled {
		printer.PrintMonitorChanges(summary.MonitorChanges)
	}

	printer.PrintRecommendation(report.Recommend(summary.Results))

	csvPath := filepath.Join(cfg.OutputDir,
		fmt.Sprintf("netwatch_correlations_%s.csv", summary.GeneratedAt.Format("20060102-150405")))

	if err := report.WriteCorrelationCSV(csvPath, summary.Results); err != nil {
		return err
	}

	log.Info().Str("path", csvPath).Msg("Wrote correlation report")

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}

	if flagConfig != "" {
		if err := config.LoadAndValidate(cmd.Context(), flagConfig, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()

	if flags.Changed("events") || cfg.EventsFile == "" {
		cfg.EventsFile = flagEvents
	}

	if flags.Changed("monitor") {
		cfg.Monitor.Enabled = flagMonitor
	}

	if flags.Changed("duration") {
		cfg.Monitor.Duration = models.Duration(time.Duration(flagDuration) * time.Minute)
	}

	if flags.Changed("show-virtual") {
		cfg.Monitor.ShowVirtual = flagShowVirtual
	}

	if flags.Changed("lookback") {
		cfg.LookbackHours = flagLookback
	}

	if flags.Changed("output-dir") || cfg.OutputDir == "" {
		cfg.OutputDir = flagOutputDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	logCfg := cfg.Logging
	if logCfg == nil {
		logCfg = logger.DefaultConfig()
	}

	if flagLogLevel != "" {
		logCfg.Level = flagLogLevel
	}

	if logCfg.Transcript == nil {
		logCfg.Transcript = &logger.TranscriptConfig{
			Path:       filepath.Join(cfg.OutputDir, "netwatch_transcript.log"),
			MaxSizeMB:  20,
			MaxBackups: 3,
		}
	}

	return logger.New(logCfg)
}
