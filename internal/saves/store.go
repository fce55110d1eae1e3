package saves

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tetralife/internal/logging"
	"tetralife/pkg/sims/life"
)

// Latest is the slot overwritten by every save and read by an unnamed load.
const Latest = "latest"

// Ext is the file extension of save slots.
const Ext = ".yaml"

// LoadError reports a save slot that is missing or unreadable. The caller's
// universe is never touched when it is returned.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load save %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a slot that could not be written or flushed.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("write save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Store reads and writes save slots in a directory.
type Store struct {
	dir string
	now func() time.Time
	log *zap.Logger
}

// NewStore returns a store rooted at dir. A nil logger discards output.
func NewStore(dir string, log *zap.Logger) *Store {
	return &Store{dir: dir, now: time.Now, log: logging.OrNop(log)}
}

// Dir returns the directory holding the slots.
func (s *Store) Dir() string { return s.dir }

// Path returns the file backing a slot. An empty name means Latest.
func (s *Store) Path(name string) string {
	if name == "" {
		name = Latest
	}
	return filepath.Join(s.dir, name+Ext)
}

// Save snapshots u into the latest slot and a slot named after the current
// Unix time. Both files hold identical bytes. It returns the paths written.
func (s *Store) Save(u *life.Universe) ([]string, error) {
	return s.SaveRecord(Snapshot(u))
}

// SaveRecord writes rec to the latest slot and a timestamped slot.
func (s *Store) SaveRecord(rec Record) ([]string, error) {
	data, err := Encode(rec)
	if err != nil {
		return nil, &SaveError{Path: s.dir, Err: err}
	}
	stamp := strconv.FormatInt(s.now().Unix(), 10)
	return s.write(data, Latest, stamp)
}

// SaveAs writes rec to a single named slot.
func (s *Store) SaveAs(name string, rec Record) (string, error) {
	if err := checkName(name); err != nil {
		return "", &SaveError{Path: s.Path(name), Err: err}
	}
	data, err := Encode(rec)
	if err != nil {
		return "", &SaveError{Path: s.Path(name), Err: err}
	}
	paths, err := s.write(data, name)
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

func (s *Store) write(data []byte, names ...string) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, &SaveError{Path: s.dir, Err: err}
	}
	var (
		paths []string
		errs  []error
	)
	for _, name := range names {
		path := s.Path(name)
		if err := writeSynced(path, data); err != nil {
			s.log.Warn("save slot not written", zap.String("path", path), zap.Error(err))
			errs = append(errs, &SaveError{Path: path, Err: err})
			continue
		}
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}

// writeSynced writes data to a temporary file beside path, flushes it and
// renames it into place. The previous contents of path survive any failure.
func writeSynced(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads and validates a slot. An empty name means Latest. Any failure is
// a *LoadError.
func (s *Store) Load(name string) (Record, error) {
	if name == "" {
		name = Latest
	}
	if err := checkName(name); err != nil {
		return Record{}, &LoadError{Name: name, Err: err}
	}
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return Record{}, &LoadError{Name: name, Err: err}
	}
	rec, err := Decode(data)
	if err != nil {
		return Record{}, &LoadError{Name: name, Err: err}
	}
	return rec, nil
}

// List returns the slot names in the directory, sorted. A missing directory
// yields no names.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(names)
	return names, nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid slot name %q", name)
	}
	return nil
}
