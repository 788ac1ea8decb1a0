package lotka

import (
	"os"
	"path/filepath"
	"testing"
)

func buildTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(2)
	m.SetGrowthRate(0, 1.5)
	m.SetGrowthRate(1, -0.75)
	if err := m.SetSelfLimitation(0, 0.01); err != nil {
		t.Fatalf("set self-limitation: %v", err)
	}
	if err := m.SetPredationLoss(1, 0, 0.1); err != nil {
		t.Fatalf("set loss: %v", err)
	}
	if err := m.SetPredationGain(1, 0, 0.075); err != nil {
		t.Fatalf("set gain: %v", err)
	}
	return m
}

func TestModelFileRoundTrip(t *testing.T) {
	m := buildTestModel(t)
	path := filepath.Join(t.TempDir(), "model.txt")

	if err := m.WriteFile(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if got.Species() != m.Species() {
		t.Fatalf("species = %d, want %d", got.Species(), m.Species())
	}
	for i := 0; i < 2; i++ {
		if got.GrowthRate(i) != m.GrowthRate(i) {
			t.Errorf("growth rate %d: got %g, want %g", i, got.GrowthRate(i), m.GrowthRate(i))
		}
		if got.SelfLimitation(i) != m.SelfLimitation(i) {
			t.Errorf("self-limitation %d: got %g, want %g", i, got.SelfLimitation(i), m.SelfLimitation(i))
		}
		for j := 0; j < 2; j++ {
			if got.PredationLoss(i, j) != m.PredationLoss(i, j) {
				t.Errorf("loss (%d,%d): got %g, want %g", i, j, got.PredationLoss(i, j), m.PredationLoss(i, j))
			}
			if got.PredationGain(i, j) != m.PredationGain(i, j) {
				t.Errorf("gain (%d,%d): got %g, want %g", i, j, got.PredationGain(i, j), m.PredationGain(i, j))
			}
		}
	}
}

// The file layout is the storage layout: setting loss for predator 1 and
// prey 0 lands in matrix row 0 (the prey), column 1 (the predator).
func TestFileLayoutMatchesStorageOrder(t *testing.T) {
	m := New(2)
	if err := m.SetPredationLoss(1, 0, 0.1); err != nil {
		t.Fatalf("set loss: %v", err)
	}
	path := filepath.Join(t.TempDir(), "model.txt")
	if err := m.WriteFile(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read raw file: %v", err)
	}
	want := "2\n0 0\n0 0\n0 0.1\n0 0\n0 0\n0 0\n"
	if string(data) != want {
		t.Errorf("file content:\n%q\nwant:\n%q", data, want)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadFileTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.txt")
	if err := os.WriteFile(path, []byte("2\n1.0 2.0\n0.1\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Error("expected error for truncated file")
	}
}
