package roster

import (
	"reflect"
	"testing"
)

func TestDetectDrops(t *testing.T) {
	t.Parallel()

	got := DetectDrops([]string{"A", "B", "C"}, []string{"B", "C", "D"})
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("expected only A dropped, got %v", got)
	}
}

func TestDetectDrops_EdgeCases(t *testing.T) {
	t.Parallel()

	if got := DetectDrops(nil, []string{"A"}); len(got) != 0 {
		t.Fatalf("empty previous set must yield no drops, got %v", got)
	}
	if got := DetectDrops([]string{"A", "B"}, nil); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("empty current set drops everything, got %v", got)
	}
	if got := DetectDrops([]string{"A", "A", "B"}, []string{"B"}); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("duplicate previous ids must not duplicate drops, got %v", got)
	}
	if got := DetectDrops([]string{"", "A"}, []string{"A"}); len(got) != 0 {
		t.Fatalf("blank ids are ignored, got %v", got)
	}
}
