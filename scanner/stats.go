package scanner

import (
	"sync"
	"time"
)

// RegionStats summarizes one region's enumeration.
type RegionStats struct {
	TypesSupported int
	TypesMatched   int
	TypesListed    int
	TypesNotListed int
	Resources      int
	Duration       time.Duration
	CatalogError   bool

	pending int
}

// Stats summarizes a whole run. Written by workers under a single mutex;
// read only after the run finishes.
type Stats struct {
	mu      sync.Mutex
	regions map[string]*RegionStats

	Elapsed time.Duration
}

func newStats(regions []string) *Stats {
	s := &Stats{regions: make(map[string]*RegionStats, len(regions))}
	for _, region := range regions {
		s.regions[region] = &RegionStats{}
	}
	return s
}

// Region returns the stats for one region, or nil if unknown.
func (s *Stats) Region(region string) *RegionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regions[region]
}

func (s *Stats) recordCatalog(region string, supported int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[region].TypesSupported = supported
}

func (s *Stats) recordCatalogError(region string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[region].CatalogError = true
}

func (s *Stats) setPending(region string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := s.regions[region]
	rs.TypesMatched = n
	rs.pending = n
}

func (s *Stats) recordListed(region string, resources int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := s.regions[region]
	rs.TypesListed++
	rs.Resources += resources
}

func (s *Stats) recordNotListed(region string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[region].TypesNotListed++
}

// finishTask decrements the region's outstanding task count. When it reaches
// zero the region's duration is fixed and true is returned once.
func (s *Stats) finishTask(region string, start time.Time) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs := s.regions[region]
	rs.pending--
	if rs.pending != 0 {
		return false, 0
	}
	rs.Duration = time.Since(start)
	return true, rs.Duration
}
