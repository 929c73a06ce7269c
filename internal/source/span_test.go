package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans merge into covering span",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span changes nothing",
			span:     Span{File: 1, Start: 10, End: 40},
			other:    Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "overlap extends start",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 5, End: 12},
			expected: Span{File: 1, Start: 5, End: 20},
		},
		{
			name:     "different file is ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Collapse(t *testing.T) {
	span := Span{File: 3, Start: 12, End: 30}

	start := span.CollapseToStart()
	if start != (Span{File: 3, Start: 12, End: 12}) {
		t.Errorf("CollapseToStart() = %+v", start)
	}
	end := span.CollapseToEnd()
	if end != (Span{File: 3, Start: 30, End: 30}) {
		t.Errorf("CollapseToEnd() = %+v", end)
	}
	if !start.Empty() || !end.Empty() {
		t.Error("collapsed spans must be empty")
	}
}

func TestSpan_Contains(t *testing.T) {
	span := Span{File: 1, Start: 10, End: 20}

	tests := []struct {
		off  uint32
		want bool
	}{
		{9, false},
		{10, true},
		{19, true},
		{20, false},
	}
	for _, tt := range tests {
		if got := span.Contains(tt.off); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestSpan_LenEmpty(t *testing.T) {
	if (Span{Start: 5, End: 5}).Len() != 0 {
		t.Error("zero-length span must have Len 0")
	}
	if !(Span{Start: 5, End: 5}).Empty() {
		t.Error("zero-length span must be Empty")
	}
	if (Span{Start: 5, End: 9}).Len() != 4 {
		t.Error("Len() mismatch")
	}
}
