package model_test

import (
	"testing"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestManifestEntry_FullName(t *testing.T) {
	gt.Value(t, model.ManifestEntry{Tap: "user/tap", Name: "app"}.FullName()).Equal("user/tap/app")
	gt.Value(t, model.ManifestEntry{Name: "app"}.FullName()).Equal("app")
}

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "single", raw: "app", want: []string{"app"}},
		{name: "comma", raw: "a,b", want: []string{"a", "b"}},
		{name: "mixed with blanks", raw: "a, b\n\nc ,, d", want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, model.SplitNames(tt.raw)).Equal(tt.want)
		})
	}
}
