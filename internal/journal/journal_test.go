package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/tatianab/cyber-temple/internal/game"
	"github.com/tatianab/cyber-temple/internal/models"
)

var _ game.Observer = (*Journal)(nil)

type fakePub struct{ kinds []string }

func (f *fakePub) Publish(typ string, _ any) { f.kinds = append(f.kinds, typ) }

func readRecords(t *testing.T, path string) []Record {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd.NewReader: %v", err)
	}
	defer dec.Close()

	var out []Record
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		var r Record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("Unmarshal %q: %v", sc.Text(), err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return out
}

func TestJournalRotatesHourly(t *testing.T) {
	dir := t.TempDir()
	pub := &fakePub{}
	j := New(dir, pub)

	clock := time.Date(2026, 3, 1, 9, 59, 0, 0, time.UTC)
	j.now = func() time.Time { return clock }

	j.PhaseChanged(1, models.PhaseDayMap, models.PhaseNightBar)
	j.Logged(1, models.PhaseNightBar, models.LogEntry{ID: "a", Text: "Night falls.", Type: models.LogInfo})
	clock = clock.Add(2 * time.Minute)
	j.Logged(1, models.PhaseNightBar, models.LogEntry{ID: "b", Text: "Red thread tied!", Type: models.LogSuccess})
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "session-*.jsonl.zst"))
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(files)
	if len(files) != 2 {
		t.Fatalf("Expected 2 hourly files, got %v", files)
	}

	first := readRecords(t, files[0])
	if len(first) != 2 || first[0].Kind != KindPhase || first[0].From != "DAY_MAP" || first[0].Phase != "NIGHT_BAR" {
		t.Errorf("Unexpected first hour %+v", first)
	}
	second := readRecords(t, files[1])
	if len(second) != 1 || second[0].Text != "Red thread tied!" || second[0].Type != models.LogSuccess {
		t.Errorf("Unexpected second hour %+v", second)
	}
	if len(pub.kinds) != 3 || pub.kinds[0] != KindPhase || pub.kinds[2] != KindLog {
		t.Errorf("Unexpected published kinds %v", pub.kinds)
	}
}

func TestJournalWithoutDir(t *testing.T) {
	pub := &fakePub{}
	j := New("", pub)
	j.Logged(2, models.PhaseDayMap, models.LogEntry{Text: "Day 2."})
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(pub.kinds) != 1 {
		t.Errorf("Expected one published record, got %d", len(pub.kinds))
	}
}

func TestJournalReopensHour(t *testing.T) {
	dir := t.TempDir()
	clock := time.Date(2026, 3, 1, 9, 10, 0, 0, time.UTC)
	for i, text := range []string{"Day 1.", "Day 2."} {
		j := New(dir)
		j.now = func() time.Time { return clock }
		j.Logged(i+1, models.PhaseDayMap, models.LogEntry{Text: text})
		if err := j.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	got := readRecords(t, filepath.Join(dir, "session-2026-03-01-09.jsonl.zst"))
	if len(got) != 2 || got[0].Text != "Day 1." || got[1].Text != "Day 2." {
		t.Errorf("Expected both sessions in one hour file, got %+v", got)
	}
}
