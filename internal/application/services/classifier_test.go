package services

import (
	"testing"

	"github.com/bimakw/holder-insight/internal/domain/entities"
	"github.com/bimakw/holder-insight/internal/testutil"
)

func TestClassifyHolder_NoTransactions(t *testing.T) {
	details := ClassifyHolder(nil)

	if details.HolderType != entities.HolderTypeLongTerm {
		t.Errorf("expected %q, got %q", entities.HolderTypeLongTerm, details.HolderType)
	}
	if details.TransactionCount != 0 || details.InCount != 0 || details.OutCount != 0 {
		t.Errorf("expected all counts zero, got %d/%d/%d",
			details.TransactionCount, details.InCount, details.OutCount)
	}
}

func TestClassifyHolder_BoundaryRatio(t *testing.T) {
	// 1 outbound of 10 total is exactly 0.1, which is not < 0.1: flipper
	details := ClassifyHolder(testutil.Changes(9, 1))
	if details.HolderType != entities.HolderTypeFlipper {
		t.Errorf("expected %q at ratio 0.1, got %q", entities.HolderTypeFlipper, details.HolderType)
	}
}

func TestClassifyHolder_AllInbound(t *testing.T) {
	details := ClassifyHolder(testutil.Changes(9, 0))
	if details.HolderType != entities.HolderTypeLongTerm {
		t.Errorf("expected %q, got %q", entities.HolderTypeLongTerm, details.HolderType)
	}
	if details.InCount != 9 {
		t.Errorf("expected 9 inbound, got %d", details.InCount)
	}
	if details.OutCount != 0 {
		t.Errorf("expected 0 outbound, got %d", details.OutCount)
	}
}

func TestClassifyHolder_BelowBoundary(t *testing.T) {
	// 1 outbound of 11 total is ~0.09: long-term
	details := ClassifyHolder(testutil.Changes(10, 1))
	if details.HolderType != entities.HolderTypeLongTerm {
		t.Errorf("expected %q below the ratio, got %q", entities.HolderTypeLongTerm, details.HolderType)
	}
}

func TestClassifyHolder_MostlyOutbound(t *testing.T) {
	details := ClassifyHolder(testutil.Changes(2, 8))
	if details.HolderType != entities.HolderTypeFlipper {
		t.Errorf("expected %q, got %q", entities.HolderTypeFlipper, details.HolderType)
	}
}

func TestDisplayCount_Formatting(t *testing.T) {
	cases := []struct {
		count entities.DisplayCount
		want  string
	}{
		{0, "0"},
		{42, "42"},
		{99, "99"},
		{100, "more than 100"},
		{135, "more than 100"},
	}
	for _, tc := range cases {
		if got := tc.count.String(); got != tc.want {
			t.Errorf("DisplayCount(%d).String() = %q, want %q", int(tc.count), got, tc.want)
		}
	}
}

func TestDisplayCount_MarshalJSON(t *testing.T) {
	cases := []struct {
		count entities.DisplayCount
		want  string
	}{
		{99, "99"},
		{100, `"more than 100"`},
	}
	for _, tc := range cases {
		data, err := tc.count.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != tc.want {
			t.Errorf("DisplayCount(%d) marshaled to %s, want %s", int(tc.count), data, tc.want)
		}
	}
}

func TestClassifyHolder_CountsAtCap(t *testing.T) {
	details := ClassifyHolder(testutil.Changes(100, 0))
	if details.InCount.String() != "more than 100" {
		t.Errorf("expected capped inbound display, got %q", details.InCount.String())
	}
	if details.OutCount.String() != "0" {
		t.Errorf("expected outbound 0, got %q", details.OutCount.String())
	}
}
