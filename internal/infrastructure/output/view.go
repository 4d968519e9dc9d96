package output

import (
	"time"

	"github.com/reglet-dev/roster/internal/domain/diagnostics"
	"github.com/reglet-dev/roster/internal/domain/report"
)

// reportView is the serialized shape of a grade report.
type reportView struct {
	GeneratedAt time.Time                `json:"generated_at" yaml:"generated_at"`
	Average     *float64                 `json:"average" yaml:"average"`
	RunID       string                   `json:"run_id" yaml:"run_id"`
	Source      string                   `json:"source" yaml:"source"`
	Records     []recordView             `json:"records" yaml:"records"`
	Diagnostics []diagnostics.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	Count       int                      `json:"count" yaml:"count"`
}

type recordView struct {
	Name        string  `json:"name" yaml:"name"`
	Grade       float64 `json:"grade" yaml:"grade"`
	Highlighted bool    `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
}

func newReportView(r *report.GradeReport, h *Highlighter) reportView {
	v := reportView{
		RunID:       r.RunID.String(),
		Source:      r.Source,
		GeneratedAt: r.GeneratedAt,
		Count:       r.Count(),
		Records:     make([]recordView, 0, len(r.Records)),
		Diagnostics: make([]diagnostics.Diagnostic, 0, len(r.Diagnostics)),
	}

	for _, rec := range r.Records {
		v.Records = append(v.Records, recordView{
			Name:        rec.Name(),
			Grade:       rec.Grade(),
			Highlighted: h.Match(rec),
		})
	}
	v.Diagnostics = append(v.Diagnostics, r.Diagnostics...)

	if r.Summary.HasMean {
		mean := r.Summary.Mean
		v.Average = &mean
	}

	return v
}
