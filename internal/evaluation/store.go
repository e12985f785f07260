package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tacktile/interview-agent/internal/metrics"
)

// Store persists evaluation artifacts as pretty-printed UTF-8 JSON files.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a store rooted at dir (created on first save).
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Save writes the result to a new file named
// {candidate}_{position}_{YYYYMMDD_HHMMSS}.json and records the path in
// metadata.saved_to. A failed write is the caller's problem: losing the
// artifact defeats the system's purpose, so errors propagate.
func (s *Store) Save(result *Result) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create evaluations dir: %w", err)
	}

	name := fileName(result.Metadata.CandidateName, result.Metadata.Position, s.now())
	path := filepath.Join(s.dir, name)

	result.Metadata.SavedTo = path

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create evaluation file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err = enc.Encode(result); err != nil {
		return "", fmt.Errorf("write evaluation %s: %w", path, err)
	}

	metrics.EvaluationsSaved.Inc()
	return path, nil
}

// Load reads back a persisted artifact by file name.
func (s *Store) Load(filename string) (*Result, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("read evaluation: %w", err)
	}
	var result Result
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode evaluation %s: %w", filename, err)
	}
	return &result, nil
}

// List returns the file names of all persisted artifacts, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, filepath.Base(e))
	}
	sort.Strings(names)
	return names, nil
}

// fileName derives a collision-resistant artifact name from candidate
// identity and a second-resolution timestamp.
func fileName(candidate, position string, ts time.Time) string {
	return fmt.Sprintf("%s_%s_%s.json",
		sanitize(candidate), sanitize(position), ts.Format("20060102_150405"))
}

// sanitize makes an untrusted name safe for use as a path segment: spaces
// become underscores, path separators become dashes.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	return s
}
