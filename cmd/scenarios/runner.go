package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"

	"github.com/qa-demo/casegen/common/helper"
	"github.com/qa-demo/casegen/generator"
	"github.com/qa-demo/casegen/model"
)

// noScenariosError is reported when nothing resolves to a fixture file.
type noScenariosError struct {
	Dir string
}

func (e *noScenariosError) Error() string {
	return fmt.Sprintf("No scenarios found. Add .json files to %s", e.Dir)
}

type runner struct {
	gen    generator.Generator
	conf   config
	logger glog.Logger
	out    io.Writer
	// now is the clock used to measure latency.
	now func() time.Time
}

func newRunner(gen generator.Generator, conf config, logger glog.Logger, out io.Writer) *runner {
	return &runner{
		gen:    gen,
		conf:   conf,
		logger: logger,
		out:    out,
		now:    time.Now,
	}
}

// runResult pairs a finished run with the reports written for it.
type runResult struct {
	Record   model.RunRecord
	JSONPath string
	MDPath   string
}

// Run executes the named scenarios, or every fixture when ids is empty, one
// after another. The first failure stops the batch.
func (r *runner) Run(ctx context.Context, ids []string) ([]runResult, error) {
	files, err := model.ResolveScenarioPaths(r.conf.ScenariosDir, ids)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "resolve scenarios")
	}
	if len(files) == 0 {
		return nil, &noScenariosError{Dir: r.conf.ScenariosDir}
	}

	if err = os.MkdirAll(r.conf.ReportsDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create reports dir %q", r.conf.ReportsDir)
	}

	results := make([]runResult, 0, len(files))
	for _, file := range files {
		if err = ctx.Err(); err != nil {
			return results, errors.Wrap(err, "scenario run interrupted")
		}

		res, err := r.runScenario(ctx, file)
		if err != nil {
			return results, errors.Wrapf(err, "run scenario %q", file)
		}
		results = append(results, *res)
	}

	return results, nil
}

func (r *runner) runScenario(ctx context.Context, file string) (*runResult, error) {
	scenario, err := model.LoadScenario(file)
	if err != nil {
		return nil, err
	}

	start := r.now()
	result, err := r.gen.Generate(ctx, generator.Request{
		Task:    scenario.Task,
		Context: scenario.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate")
	}
	latency := helper.ElapsedMilliseconds(r.now().Sub(start))

	record := model.RunRecord{
		Scenario:   scenario.Name,
		Model:      result.Model,
		Mode:       string(r.gen.Mode()),
		LatencyMs:  latency,
		Completion: result.Completion,
		Task:       scenario.Task,
		Context:    scenario.Context,
		Notes:      scenario.Notes,
	}

	jsonPath, mdPath, err := writeReports(r.conf.ReportsDir, &record)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("scenario finished",
		zap.String("scenario", record.Scenario),
		zap.String("json_report", jsonPath),
		zap.String("md_report", mdPath))
	fmt.Fprintf(r.out, "✓ %s (%s) -> %s in %d ms\n", record.Scenario, record.Mode, record.Model, record.LatencyMs)

	return &runResult{Record: record, JSONPath: jsonPath, MDPath: mdPath}, nil
}
