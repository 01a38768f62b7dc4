package changelog

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ryclarke/changelog-tool/scm"
)

func testClassifier(releaseIDs ...int) *Classifier {
	return &Classifier{
		Releases:          mapset.NewSet(releaseIDs...),
		TypeConvention:    typeConv,
		ProductConvention: productConv,
		DefaultType:       "Other",
		DefaultProduct:    "General",
	}
}

func TestClassify(t *testing.T) {
	release := &scm.Milestone{ID: 10, Title: "1.0"}

	tests := map[string]struct {
		mr     *scm.MergeRequest
		want   Classification
		wantOk bool
	}{
		"no milestone is skipped": {
			mr: &scm.MergeRequest{ID: 1, Labels: []string{"CL:Feature"}},
		},
		"milestone outside release set is skipped": {
			mr: &scm.MergeRequest{ID: 2, Milestone: &scm.Milestone{ID: 99, Title: "backlog"}},
		},
		"defaults apply without matching labels": {
			mr:     &scm.MergeRequest{ID: 3, Milestone: release},
			want:   Classification{Version: "1.0", Product: "General", ChangeType: "Other"},
			wantOk: true,
		},
		"labels drive both axes": {
			mr:     &scm.MergeRequest{ID: 4, Milestone: release, Labels: []string{"CL:Bugfix", "P:Core"}},
			want:   Classification{Version: "1.0", Product: "Core", ChangeType: "Bugfix"},
			wantOk: true,
		},
		"unrelated labels fall back to defaults": {
			mr:     &scm.MergeRequest{ID: 5, Milestone: release, Labels: []string{"bug", "wip"}},
			want:   Classification{Version: "1.0", Product: "General", ChangeType: "Other"},
			wantOk: true,
		},
	}

	classifier := testClassifier(10)

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := classifier.Classify(tt.mr)

			if ok != tt.wantOk {
				t.Fatalf("Classify() ok = %v, want %v", ok, tt.wantOk)
			}

			if got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Classify is deterministic: repeated calls with the same inputs agree.
func TestClassifyDeterministic(t *testing.T) {
	classifier := testClassifier(10)
	mr := &scm.MergeRequest{
		ID:        1,
		Labels:    []string{"CL:Feature", "P:Core"},
		Milestone: &scm.Milestone{ID: 10, Title: "1.0"},
	}

	first, firstOk := classifier.Classify(mr)

	for i := 0; i < 10; i++ {
		got, ok := classifier.Classify(mr)
		if got != first || ok != firstOk {
			t.Fatalf("Classify() = %+v, %v; want %+v, %v", got, ok, first, firstOk)
		}
	}
}

func TestNewClassifier(t *testing.T) {
	ctx := loadFixture(t)

	classifier := NewClassifier(ctx, &scm.Milestone{ID: 10, Title: "1.0"}, &scm.Milestone{ID: 11, Title: "1.1"})

	if !classifier.Releases.Contains(10) || !classifier.Releases.Contains(11) {
		t.Errorf("Expected release set to contain both milestones, got %v", classifier.Releases)
	}

	if classifier.DefaultProduct != "General" || classifier.DefaultType != "Other" {
		t.Errorf("Unexpected defaults: %q / %q", classifier.DefaultProduct, classifier.DefaultType)
	}

	if classifier.TypeConvention != typeConv || classifier.ProductConvention != productConv {
		t.Errorf("Unexpected conventions: %+v / %+v", classifier.TypeConvention, classifier.ProductConvention)
	}
}
