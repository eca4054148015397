package usecase

import (
	"context"
	"iter"

	"github.com/m-mizutani/caskbump/pkg/domain/interfaces"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Scanner turns livecheck results into bump candidates
type Scanner struct {
	query interfaces.ScanQuery
}

// NewScanner creates a Scanner
func NewScanner(query interfaces.ScanQuery) *Scanner {
	return &Scanner{query: query}
}

// ScanTargets qualifies names with tap. Without names the whole tap is scanned.
func ScanTargets(tap string, names []string) []string {
	if len(names) == 0 {
		return nil
	}

	targets := make([]string, 0, len(names))
	for _, name := range names {
		targets = append(targets, model.ManifestEntry{Tap: tap, Name: name}.FullName())
	}
	return targets
}

// Scan runs livecheck and returns the candidates in result order. Records without a
// newer version are skipped.
func (s *Scanner) Scan(ctx context.Context, tap string, names []string) (iter.Seq[model.BumpCandidate], error) {
	targets := ScanTargets(tap, names)

	records, err := s.query.Livecheck(ctx, tap, targets)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to run livecheck",
			goerr.V("tap", tap),
			goerr.V("targets", targets),
		)
	}

	ctxlog.From(ctx).Info("Livecheck completed",
		"tap", tap,
		"targets", len(targets),
		"records", len(records),
	)

	return func(yield func(model.BumpCandidate) bool) {
		for _, record := range records {
			latest := record.LatestVersion()
			if latest == "" {
				ctxlog.From(ctx).Debug("Skipping livecheck record without version", "cask", record.Name())
				continue
			}

			if !yield(model.BumpCandidate{Name: record.Name(), Version: latest}) {
				return
			}
		}
	}, nil
}
