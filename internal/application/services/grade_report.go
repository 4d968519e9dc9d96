package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/reglet-dev/roster/internal/application/dto"
	"github.com/reglet-dev/roster/internal/application/ports"
	"github.com/reglet-dev/roster/internal/domain/report"
	domainservices "github.com/reglet-dev/roster/internal/domain/services"
	"github.com/reglet-dev/roster/internal/domain/values"
)

// GradeReportUseCase orchestrates load -> sort -> average.
// This is a pure application layer component that depends only on ports.
type GradeReportUseCase struct {
	loader     *RosterLoader
	aggregator *domainservices.GradeAggregator
	sink       ports.DiagnosticSink
	logger     *slog.Logger
}

// NewGradeReportUseCase creates a new grade report use case.
func NewGradeReportUseCase(
	loader *RosterLoader,
	aggregator *domainservices.GradeAggregator,
	sink ports.DiagnosticSink,
	logger *slog.Logger,
) *GradeReportUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if aggregator == nil {
		aggregator = domainservices.NewGradeAggregator()
	}

	return &GradeReportUseCase{
		loader:     loader,
		aggregator: aggregator,
		sink:       sink,
		logger:     logger,
	}
}

// Execute loads the roster, delivers diagnostics to the sink and returns the
// sorted records with their summary. Source failures never surface as
// errors; they show up as diagnostics next to an empty report.
func (uc *GradeReportUseCase) Execute(ctx context.Context, req dto.GradeReportRequest) *dto.GradeReportResponse {
	startTime := time.Now()
	runID := values.NewRunID()

	uc.logger.Debug("loading roster",
		"path", req.InputPath,
		"range", req.Range.String(),
		"run_id", runID.String())

	validator := domainservices.NewRowValidator(req.Columns, req.Range)
	loaded := uc.loader.Load(ctx, req.InputPath, validator)

	if uc.sink != nil {
		for _, d := range loaded.Diagnostics {
			uc.sink.Report(d)
		}
	}

	rep := report.New(runID, req.InputPath)
	rep.Records = domainservices.SortByName(loaded.Records)
	rep.Summary = uc.aggregator.Summarize(loaded.Records)
	rep.Diagnostics = loaded.Diagnostics

	uc.logger.Debug("roster loaded",
		"records", rep.Count(),
		"diagnostics", len(rep.Diagnostics),
		"run_id", runID.String())

	return &dto.GradeReportResponse{
		Report: rep,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
			SkippedRows: loaded.Skipped,
		},
	}
}
