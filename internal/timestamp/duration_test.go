package timestamp

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		elapsed int
		want    string
	}{
		{210, "  3:30"},
		{0, "  0:00"},
		{30, "  0:30"},
		{1350, " 22:30"},
		{6000, " 100:00"},
		{-1290, " -22:-30"},
		// Floor hours with truncated minutes, as written by clock lines.
		{-30, " -1:-30"},
		{-29, " -1:-29"},
		{-60, " -1:00"},
		{-90, " -2:-30"},
		{-1230, " -21:-30"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.elapsed); got != tc.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestElapsedAcrossMonthBoundary(t *testing.T) {
	start := DateTime{Year: 2025, Month: 1, Day: 31, Hour: 23, Minute: 30}
	end := DateTime{Year: 2025, Month: 2, Day: 1, Hour: 0, Minute: 15}
	if got := Elapsed(start, end); got != 45 {
		t.Fatalf("Elapsed() = %d, want 45", got)
	}
	if got := Elapsed(end, start); got != -45 {
		t.Fatalf("Elapsed() reversed = %d, want -45", got)
	}
}

func TestElapsedAcrossLeapDay(t *testing.T) {
	start := DateTime{Year: 2024, Month: 2, Day: 28, Hour: 12}
	end := DateTime{Year: 2024, Month: 3, Day: 1, Hour: 12}
	if got := Elapsed(start, end); got != 2*1440 {
		t.Fatalf("Elapsed() = %d, want %d", got, 2*1440)
	}
}
