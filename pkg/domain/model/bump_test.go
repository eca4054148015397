package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestRunResult_Record(t *testing.T) {
	errB := errors.New("b failed")
	errC := errors.New("c failed")

	var result model.RunResult
	result.Record(model.BumpOutcome{Candidate: model.BumpCandidate{Name: "a"}})
	gt.NoError(t, result.Err())

	result.Record(model.BumpOutcome{Candidate: model.BumpCandidate{Name: "b"}, Err: errB})
	gt.Value(t, result.Err()).Equal(errB)

	result.Record(model.BumpOutcome{Candidate: model.BumpCandidate{Name: "c"}, Err: errC})
	gt.Value(t, result.Err()).Equal(errC)

	gt.Value(t, len(result.Outcomes)).Equal(3)
	gt.Value(t, result.Failed()).Equal(2)
}

func TestLivecheckRecord(t *testing.T) {
	r := &model.LivecheckRecord{Cask: "a", Version: &model.LivecheckVersion{Latest: "2.0"}}
	gt.Value(t, r.Name()).Equal("a")
	gt.Value(t, r.LatestVersion()).Equal("2.0")

	empty := &model.LivecheckRecord{Cask: "b"}
	gt.Value(t, empty.LatestVersion()).Equal("")
}
