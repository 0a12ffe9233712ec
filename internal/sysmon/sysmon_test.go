package sysmon

import "testing"

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSample_MemoryNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
	if s.TotalMemory == 0 {
		t.Error("expected non-zero TotalMemory on a running system")
	}
}

func TestLogicalCores(t *testing.T) {
	if n := LogicalCores(); n < 1 {
		t.Errorf("LogicalCores() = %d, want >= 1", n)
	}
}

func TestHostInfo(t *testing.T) {
	h := HostInfo()
	if h.LogicalCores < 1 {
		t.Errorf("LogicalCores = %d, want >= 1", h.LogicalCores)
	}
	if h.PhysicalCores > h.LogicalCores {
		t.Errorf("PhysicalCores %d exceeds LogicalCores %d", h.PhysicalCores, h.LogicalCores)
	}
}
