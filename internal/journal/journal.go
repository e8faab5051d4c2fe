// Package journal records what happens in a session: every player log entry
// and every phase change. It is write-only; nothing reads it back into a game.
//
// Records are JSON lines in zstd files named session-YYYY-MM-DD-HH.jsonl.zst,
// one file per UTC hour of the record's timestamp.
package journal

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/tatianab/cyber-temple/internal/models"
)

// Record kinds.
const (
	KindLog   = "log"
	KindPhase = "phase"
)

// Record is one journal line.
type Record struct {
	At    time.Time      `json:"at"`
	Kind  string         `json:"kind"`
	Phase string         `json:"phase"`
	Day   int            `json:"day"`
	Text  string         `json:"text,omitempty"`
	Type  models.LogType `json:"type,omitempty"`
	From  string         `json:"from,omitempty"`
}

// Publisher receives every record as it is written, e.g. the observer hub.
type Publisher interface {
	Publish(typ string, payload any)
}

// Journal implements game.Observer.
type Journal struct {
	dir  string
	pubs []Publisher
	now  func() time.Time

	mu   sync.Mutex
	hour string
	f    *os.File
	zw   *zstd.Encoder
	enc  *json.Encoder
}

// New creates a journal writing under dir. An empty dir disables the files
// and only feeds the publishers.
func New(dir string, pubs ...Publisher) *Journal {
	return &Journal{dir: dir, pubs: pubs, now: time.Now}
}

func (j *Journal) Logged(day int, phase models.Phase, e models.LogEntry) {
	j.emit(Record{Kind: KindLog, Phase: phase.String(), Day: day, Text: e.Text, Type: e.Type})
}

func (j *Journal) PhaseChanged(day int, from, to models.Phase) {
	j.emit(Record{Kind: KindPhase, Phase: to.String(), From: from.String(), Day: day})
}

func (j *Journal) emit(r Record) {
	r.At = j.now().UTC()
	if j.dir != "" {
		if err := j.write(r); err != nil {
			log.Printf("journal: %v", err)
		}
	}
	for _, p := range j.pubs {
		p.Publish(r.Kind, r)
	}
}

// write appends r to the file of its hour and flushes the zstd block, so a
// crash loses at most the record being written.
func (j *Journal) write(r Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if hour := r.At.Format("2006-01-02-15"); hour != j.hour {
		if err := j.closeFile(); err != nil {
			return err
		}
		if err := j.openFile(hour); err != nil {
			return err
		}
	}
	if err := j.enc.Encode(r); err != nil {
		return err
	}
	return j.zw.Flush()
}

// openFile appends to the hour's file. Reopening an hour adds a new zstd
// frame; readers decode concatenated frames as one stream.
func (j *Journal) openFile(hour string) error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(j.dir, "session-"+hour+".jsonl.zst")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		f.Close()
		return err
	}
	j.f, j.zw, j.enc, j.hour = f, zw, json.NewEncoder(zw), hour
	return nil
}

func (j *Journal) closeFile() error {
	if j.zw == nil {
		return nil
	}
	err := j.zw.Close()
	if cerr := j.f.Close(); err == nil {
		err = cerr
	}
	j.f, j.zw, j.enc, j.hour = nil, nil, nil, ""
	return err
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.closeFile()
}
