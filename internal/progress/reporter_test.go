package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Task: "Exporting digests", Out: &buf}
	r.Start(2)
	r.Update(1, "2026-10-17")
	r.Update(2, "2026-10-16")
	r.Finish()

	want := "Exporting digests: 2 steps\n[1/2] 2026-10-17\n[2/2] 2026-10-16\nExporting digests: done\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("Probing").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
