package dataset

import (
	"fmt"
	"hash/fnv"
	"path/filepath"

	"github.com/san-kum/orbitset/internal/orbit"
)

// Job identifies one sample of the dataset.
type Job struct {
	Regime orbit.Regime
	Family orbit.Family
	Index  int
}

// Plan expands regimes × families × count with the regime outermost and
// the sample index innermost.
func Plan(regimes []orbit.Regime, families []orbit.Family, count int) []Job {
	jobs := make([]Job, 0, len(regimes)*len(families)*count)
	for _, r := range regimes {
		for _, f := range families {
			for i := 0; i < count; i++ {
				jobs = append(jobs, Job{Regime: r, Family: f, Index: i})
			}
		}
	}
	return jobs
}

// RelPath is the job's file path relative to the dataset root:
// <regime>/<class>/<class>_<index>.<ext>
func (j Job) RelPath(ext string) string {
	class := j.Family.String()
	return filepath.Join(j.Regime.String(), class, fmt.Sprintf("%s_%d.%s", class, j.Index, ext))
}

// Seed derives the job's own random seed from the run seed so every sample
// draws from an independent stream regardless of scheduling.
func (j Job) Seed(base int64) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%s/%s/%d", base, j.Regime, j.Family, j.Index)
	return int64(h.Sum64() & (1<<63 - 1))
}
