package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func acceptAll(string) (bool, error) { return true, nil }

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScan_emptyDirCollectsNothing(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	var count int
	err := Scan(ctx, dir, acceptAll, func(string) error {
		count++
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d entries, want 0", count)
	}
}

func TestScan_collectsFilesAtAnyDepth(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writeFile(t, filepath.Join(dir, "root.txt"))
	writeFile(t, filepath.Join(dir, "a", "b", "deep.txt"))

	paths, err := Find(ctx, dir, acceptAll, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	got := make(map[string]bool)
	for _, p := range paths {
		got[p] = true
	}
	if len(got) != 2 || !got[filepath.Join(dir, "root.txt")] || !got[filepath.Join(dir, "a", "b", "deep.txt")] {
		t.Errorf("paths = %v", paths)
	}
}

func TestScan_directoriesAreNotOfferedToFilter(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writeFile(t, filepath.Join(dir, "sub", "f.txt"))

	var offered []string
	filter := func(path string) (bool, error) {
		offered = append(offered, path)
		return true, nil
	}
	if err := Scan(ctx, dir, filter, func(string) error { return nil }, nil); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(offered) != 1 || offered[0] != filepath.Join(dir, "sub", "f.txt") {
		t.Errorf("filter saw %v, want only the file inside sub", offered)
	}
}

func TestScan_shallowEntriesCollectedBeforeDeep(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// "a_dir" sorts before "z.txt" within the root listing, but the walk
	// queues directories and finishes the current level first.
	writeFile(t, filepath.Join(dir, "a_dir", "inner.txt"))
	writeFile(t, filepath.Join(dir, "z.txt"))

	paths, err := Find(ctx, dir, acceptAll, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := []string{
		filepath.Join(dir, "z.txt"),
		filepath.Join(dir, "a_dir", "inner.txt"),
	}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestScan_filterErrorAbortsScan(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writeFile(t, filepath.Join(dir, "a.txt"))
	writeFile(t, filepath.Join(dir, "b.txt"))

	boom := errors.New("filter boom")
	var collected int
	err := Scan(ctx, dir, func(string) (bool, error) {
		return false, boom
	}, func(string) error {
		collected++
		return nil
	}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Scan err = %v, want filter error", err)
	}
	if collected != 0 {
		t.Errorf("collected %d entries after filter error, want 0", collected)
	}
}

func TestScan_collectorErrorAbortsScan(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writeFile(t, filepath.Join(dir, "a.txt"))
	writeFile(t, filepath.Join(dir, "b.txt"))

	boom := errors.New("collector boom")
	var calls int
	err := Scan(ctx, dir, acceptAll, func(string) error {
		calls++
		return boom
	}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Scan err = %v, want collector error", err)
	}
	if calls != 1 {
		t.Errorf("collector called %d times after its first error, want 1", calls)
	}
}

func TestScan_missingRootCompletesEmpty(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	var count int
	err := Scan(ctx, filepath.Join(dir, "nope"), acceptAll, func(string) error {
		count++
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d entries from a missing root, want 0", count)
	}
}

func TestScan_fileRootOfferedDirectly(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	path := filepath.Join(dir, "only.txt")
	writeFile(t, path)

	paths, err := Find(ctx, path, acceptAll, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(paths) != 1 || paths[0] != path {
		t.Errorf("paths = %v, want [%s]", paths, path)
	}
}

func TestScan_unreadableDirSkippedRestContinues(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := t.TempDir()
	ctx := context.Background()

	locked := filepath.Join(dir, "locked")
	writeFile(t, filepath.Join(locked, "hidden.txt"))
	writeFile(t, filepath.Join(dir, "visible.txt"))
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	var metrics Metrics
	paths, err := Find(ctx, dir, acceptAll, &Options{Metrics: &metrics})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(paths) != 1 || paths[0] != filepath.Join(dir, "visible.txt") {
		t.Errorf("paths = %v, want only visible.txt", paths)
	}
	if got := metrics.Skipped.Load(); got != 1 {
		t.Errorf("Skipped = %d, want 1", got)
	}
}

func TestScan_canceledContextAborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Scan(ctx, dir, acceptAll, func(string) error { return nil }, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Scan err = %v, want context.Canceled", err)
	}
}

func TestScan_throttledScanCollectsEverything(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		writeFile(t, filepath.Join(dir, name))
	}

	paths, err := Find(ctx, dir, acceptAll, &Options{MaxFilesPerSecond: 10000})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(paths) != 3 {
		t.Errorf("got %d paths, want 3", len(paths))
	}
}

func TestScan_metricsCountActivity(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writeFile(t, filepath.Join(dir, "keep.txt"))
	writeFile(t, filepath.Join(dir, "drop.log"))
	writeFile(t, filepath.Join(dir, "sub", "keep2.txt"))

	filter := func(path string) (bool, error) {
		return filepath.Ext(path) != ".log", nil
	}
	var metrics Metrics
	if err := Scan(ctx, dir, filter, func(string) error { return nil }, &Options{Metrics: &metrics}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := metrics.Dirs.Load(); got != 2 {
		t.Errorf("Dirs = %d, want 2", got)
	}
	if got := metrics.Entries.Load(); got != 3 {
		t.Errorf("Entries = %d, want 3", got)
	}
	if got := metrics.Accepted.Load(); got != 2 {
		t.Errorf("Accepted = %d, want 2", got)
	}
}

func TestAdd_acceptedPathReachesCollector(t *testing.T) {
	var collected []string
	err := Add("/tmp/known.txt", acceptAll, func(path string) error {
		collected = append(collected, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(collected) != 1 || collected[0] != "/tmp/known.txt" {
		t.Errorf("collected = %v, want [/tmp/known.txt]", collected)
	}
}

func TestAdd_rejectedPathNotCollected(t *testing.T) {
	reject := func(string) (bool, error) { return false, nil }
	var collected int
	err := Add("/tmp/known.txt", reject, func(string) error {
		collected++
		return nil
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if collected != 0 {
		t.Errorf("collector called %d times for a rejected path, want 0", collected)
	}
}

func TestAdd_pathWithoutFileName(t *testing.T) {
	for _, path := range []string{".", "..", "/", "/a/.."} {
		err := Add(path, acceptAll, func(string) error { return nil })
		if !errors.Is(err, ErrMissingFileName) {
			t.Errorf("Add(%q) err = %v, want ErrMissingFileName", path, err)
		}
	}
}

func TestFind_emptyResultIsNotNil(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	paths, err := Find(ctx, dir, acceptAll, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if paths == nil {
		t.Error("Find returned nil slice for an empty scan, want empty non-nil")
	}
}

func TestFind_errorReturnsNoPartialResults(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writeFile(t, filepath.Join(dir, "a.txt"))
	writeFile(t, filepath.Join(dir, "b.txt"))

	boom := errors.New("late failure")
	var seen int
	filter := func(string) (bool, error) {
		seen++
		if seen > 1 {
			return false, boom
		}
		return true, nil
	}
	paths, err := Find(ctx, dir, filter, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Find err = %v, want the filter error", err)
	}
	if paths != nil {
		t.Errorf("Find returned partial results %v alongside an error", paths)
	}
}
