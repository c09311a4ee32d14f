package services

import (
	"testing"
)

func TestFormatReceiptNumber(t *testing.T) {
	got := FormatReceiptNumber("SSF", 2026, 1)
	if got != "SSF-RCP-2026-000001" {
		t.Errorf("FormatReceiptNumber = %q, want SSF-RCP-2026-000001", got)
	}
}

func TestFormatReceiptNumber_Padding(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "SSF-RCP-2026-000001"},
		{42, "SSF-RCP-2026-000042"},
		{999999, "SSF-RCP-2026-999999"},
		// Past six digits the number simply grows, it is never truncated.
		{1000000, "SSF-RCP-2026-1000000"},
	}
	for _, c := range cases {
		got := FormatReceiptNumber("SSF", 2026, c.seq)
		if got != c.want {
			t.Errorf("FormatReceiptNumber(seq=%d) = %q, want %q", c.seq, got, c.want)
		}
	}
}

func TestFormatReceiptNumber_OrgCode(t *testing.T) {
	got := FormatReceiptNumber("HOPE", 2025, 7)
	if got != "HOPE-RCP-2025-000007" {
		t.Errorf("FormatReceiptNumber = %q, want HOPE-RCP-2025-000007", got)
	}
}
