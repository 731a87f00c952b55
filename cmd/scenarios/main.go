package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/qa-demo/casegen/common"
	"github.com/qa-demo/casegen/common/client"
	cfg "github.com/qa-demo/casegen/common/config"
	"github.com/qa-demo/casegen/generator"
)

func main() {
	level := glog.LevelInfo
	if cfg.DebugEnabled {
		level = glog.LevelDebug
	}
	logger, err := glog.NewConsoleWithName("casegen-scenarios", level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %+v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd(logger).ExecuteContext(ctx); err != nil {
		var noScenarios *noScenariosError
		if errors.As(err, &noScenarios) {
			fmt.Fprintln(os.Stderr, noScenarios.Error())
		} else {
			logger.Error("scenario run failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

func rootCmd(logger glog.Logger) *cobra.Command {
	var conf config

	cmd := &cobra.Command{
		Use:   "scenarios [scenario...]",
		Short: "Run stored scenarios through the test case generator",
		Long: `Runs each scenario fixture through the generator, one at a time, and
writes a JSON and a Markdown report per scenario.

Without arguments every *.json file in the scenarios directory is run.
Arguments name fixtures; the .json extension is optional and relative
names resolve against the scenarios directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf.ScenariosDir = common.ExpandPath(conf.ScenariosDir)
			conf.ReportsDir = common.ExpandPath(conf.ReportsDir)
			if err := conf.validate(); err != nil {
				return err
			}

			client.Init()
			r := newRunner(generator.NewFromConfig(), conf, logger, cmd.OutOrStdout())
			records, err := r.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			renderSummary(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().StringVar(&conf.ScenariosDir, "scenarios-dir", cfg.ScenariosDir, "directory holding *.json scenario fixtures")
	cmd.Flags().StringVar(&conf.ReportsDir, "reports-dir", cfg.ReportsDir, "directory receiving the generated reports")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "casegen scenarios %s\n", common.Version)
		},
	})

	return cmd
}
