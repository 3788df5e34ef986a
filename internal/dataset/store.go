package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbitset/internal/config"
)

const (
	manifestFile = "metadata.json"
	labelsFile   = "labels.csv"
)

var labelHeader = []string{
	"path", "regime", "class", "index", "shape", "seed",
	"markers", "petals", "spikes", "keypoint", "keypoint_x", "keypoint_y",
}

// Store persists a dataset run under its root directory.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Manifest struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Seed      int64         `json:"seed"`
	Samples   int           `json:"samples"`
	Elapsed   float64       `json:"elapsed_seconds"`
	Config    config.Config `json:"config"`
}

// Label describes one persisted sample.
type Label struct {
	Path     string
	Regime   string
	Class    string
	Index    int
	Shape    string
	Seed     int64
	Markers  int
	Petals   int
	Spikes   int
	Keypoint int
	// KeypointX and KeypointY are -1 when no keypoint was drawn.
	KeypointX int
	KeypointY int
}

func (s *Store) SaveManifest(m *Manifest) error {
	f, err := os.Create(filepath.Join(s.baseDir, manifestFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func (s *Store) SaveLabels(labels []Label) error {
	f, err := os.Create(filepath.Join(s.baseDir, labelsFile))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(labelHeader); err != nil {
		return err
	}
	for _, l := range labels {
		row := []string{
			l.Path, l.Regime, l.Class, strconv.Itoa(l.Index), l.Shape,
			strconv.FormatInt(l.Seed, 10),
			strconv.Itoa(l.Markers), strconv.Itoa(l.Petals), strconv.Itoa(l.Spikes),
			strconv.Itoa(l.Keypoint), strconv.Itoa(l.KeypointX), strconv.Itoa(l.KeypointY),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *Store) Load() (*Manifest, error) {
	return loadManifest(filepath.Join(s.baseDir, manifestFile))
}

func (s *Store) LoadLabels() ([]Label, error) {
	f, err := os.Open(filepath.Join(s.baseDir, labelsFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(labelHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Label{}, nil
	}

	labels := make([]Label, 0, len(records)-1)
	for i, rec := range records[1:] {
		ints := make([]int, 0, 7)
		for _, col := range []int{3, 6, 7, 8, 9, 10, 11} {
			v, err := strconv.Atoi(rec[col])
			if err != nil {
				return nil, fmt.Errorf("labels row %d column %s: %w", i+1, labelHeader[col], err)
			}
			ints = append(ints, v)
		}
		seed, err := strconv.ParseInt(rec[5], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("labels row %d column seed: %w", i+1, err)
		}
		labels = append(labels, Label{
			Path: rec[0], Regime: rec[1], Class: rec[2], Index: ints[0], Shape: rec[4], Seed: seed,
			Markers: ints[1], Petals: ints[2], Spikes: ints[3],
			Keypoint: ints[4], KeypointX: ints[5], KeypointY: ints[6],
		})
	}
	return labels, nil
}

// List returns the manifests of every dataset directly under dir.
func List(dir string) ([]Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Manifest{}, nil
		}
		return nil, err
	}

	runs := make([]Manifest, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m, err := loadManifest(filepath.Join(dir, entry.Name(), manifestFile))
		if err != nil {
			continue
		}
		runs = append(runs, *m)
	}
	return runs, nil
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
