package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/examconsolidate/examconsolidate/config"
	"github.com/examconsolidate/examconsolidate/dispatch"
	"github.com/examconsolidate/examconsolidate/feasibility"
	"github.com/examconsolidate/examconsolidate/ingest"
	"github.com/examconsolidate/examconsolidate/model"
	"github.com/examconsolidate/examconsolidate/progress"
	"github.com/examconsolidate/examconsolidate/report"
	"github.com/examconsolidate/examconsolidate/reportviz"
)

// maxParallelGroups bounds how many subproblems are solved concurrently.
// Spec §5 permits the driver to parallelize across subproblems; the core
// components themselves hold no shared mutable state, so this is the only
// concurrency the engine needs.
const maxParallelGroups = 8

func main() {
	inputPath := flag.String("input", "", "path to the input CSV of exam room records")
	groupsOut := flag.String("groups-out", "groups.csv", "path to write the per-group report CSV")
	mergesOut := flag.String("merges-out", "merges.csv", "path to write the per-merge report CSV")
	summaryOut := flag.String("summary-out", "summary.json", "path to write the run summary JSON")
	chartOut := flag.String("chart-out", "", "optional path to write an HTML room-count chart")
	mode := flag.String("mode", "default", "fast, deep, or default")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("examconsolidate: -input is required")
	}

	config.LoadEnv()
	opts := config.FromEnv()
	switch *mode {
	case "fast":
		opts = opts.WithMode(config.ModeFast)
	case "deep":
		opts = opts.WithMode(config.ModeDeep)
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("examconsolidate: invalid configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("examconsolidate: failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.New().String()))

	in, err := os.Open(*inputPath)
	if err != nil {
		logger.Fatal("failed to open input", zap.Error(err))
	}
	defer in.Close()

	subproblems, err := ingest.ParseCSV(in)
	if err != nil {
		logger.Fatal("failed to parse input", zap.Error(err))
	}

	reports := solveAll(subproblems, opts, logger)

	var allGroups []report.Group
	var allMerges []report.Merge
	var allSummaries []report.RoomChangeSummary
	for _, r := range reports {
		allGroups = append(allGroups, r.Groups...)
		allMerges = append(allMerges, r.Merges...)
		allSummaries = append(allSummaries, r.Summary)
	}

	if f, err := os.Create(*groupsOut); err != nil {
		logger.Fatal("failed to create groups CSV", zap.Error(err))
	} else {
		err := report.WriteGroupsCSV(f, allGroups)
		closeErr := f.Close()
		if err != nil {
			logger.Fatal("failed to write groups CSV", zap.Error(err))
		}
		if closeErr != nil {
			logger.Fatal("failed to close groups CSV", zap.Error(closeErr))
		}
	}

	if f, err := os.Create(*mergesOut); err != nil {
		logger.Fatal("failed to create merges CSV", zap.Error(err))
	} else {
		err := report.WriteMergesCSV(f, allMerges)
		closeErr := f.Close()
		if err != nil {
			logger.Fatal("failed to write merges CSV", zap.Error(err))
		}
		if closeErr != nil {
			logger.Fatal("failed to close merges CSV", zap.Error(closeErr))
		}
	}

	summaryFile, err := os.Create(*summaryOut)
	if err != nil {
		logger.Fatal("failed to create summary file", zap.Error(err))
	}
	if err := report.WriteJSON(summaryFile, allSummaries); err != nil {
		summaryFile.Close()
		logger.Fatal("failed to write summary JSON", zap.Error(err))
	}
	summaryFile.Close()

	if *chartOut != "" {
		chartFile, err := os.Create(*chartOut)
		if err != nil {
			logger.Fatal("failed to create chart file", zap.Error(err))
		}
		err = reportviz.RoomCounts(chartFile, allSummaries)
		chartFile.Close()
		if err != nil {
			logger.Fatal("failed to render chart", zap.Error(err))
		}
	}

	logger.Info("run complete",
		zap.Int("groups", len(subproblems)),
		zap.Int("rooms_removed", len(allMerges)))
}

// solveAll resolves every subproblem, bounded to maxParallelGroups
// concurrent solves. Each goroutine writes to its own index of results, so
// no synchronization is needed beyond the WaitGroup; tracker is the only
// state shared across goroutines, and it guards itself.
func solveAll(subproblems []*model.Subproblem, opts config.Options, logger *zap.Logger) []report.Report {
	results := make([]report.Report, len(subproblems))
	tracker := progress.NewTracker(len(subproblems))

	sem := make(chan struct{}, maxParallelGroups)
	var wg sync.WaitGroup

	for i, sp := range subproblems {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, sp *model.Subproblem) {
			defer wg.Done()
			defer func() { <-sem }()

			tracker.StartGroup(i, "solving group "+sp.Key().Shift+"/"+sp.Key().Campus)
			idx := feasibility.Build(sp)
			a := dispatch.Resolve(context.Background(), sp, idx, opts, logger)
			results[i] = report.Build(sp, a)
			tracker.FinishGroup(i, "solved group "+sp.Key().Shift+"/"+sp.Key().Campus)
		}(i, sp)
	}
	wg.Wait()

	return results
}
