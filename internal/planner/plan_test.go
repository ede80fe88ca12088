package planner

import "testing"

func TestTransferPlanCounts(t *testing.T) {
	plan := NewTransferPlan()
	if plan.FileCount() != 0 || plan.DirCount() != 0 {
		t.Errorf("empty plan counts = (%d, %d)", plan.FileCount(), plan.DirCount())
	}

	plan.AddDir("/music/album", "/mnt/usb/album")
	plan.AddFile("/music/album/a.mp3", "/mnt/usb/album/a.mp3")
	plan.AddFile("/music/album/b.mp3", "/mnt/usb/album/b.mp3")

	if plan.FileCount() != 2 {
		t.Errorf("FileCount = %d, want 2", plan.FileCount())
	}
	if plan.DirCount() != 1 {
		t.Errorf("DirCount = %d, want 1", plan.DirCount())
	}
	if len(plan.SourceFiles) != len(plan.DestFiles) {
		t.Error("file lists out of alignment")
	}
	if len(plan.SourceDirs) != len(plan.DestDirs) {
		t.Error("directory lists out of alignment")
	}
}
