// Package inventory holds the report model for an enumeration run: run
// metadata plus per-region, per-type listings. The report is populated
// during the run and serialized exactly once at the end.
package inventory

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/btree"
)

// RunMetadata is captured once at run start and immutable afterwards, except
// for the denied/not-listed records the scanner appends as it goes.
type RunMetadata struct {
	AccountID            string                       `json:"account_id"`
	AccountPrincipal     string                       `json:"account_principal"`
	DeniedListOperations map[string][]string          `json:"denied_list_operations"`
	NotListedOperations  map[string]map[string]string `json:"not_listed_operations"`
	Invocation           string                       `json:"invocation"`
	RunTimestamp         string                       `json:"run_timestamp"`
}

// TypeListing accumulates the discovered identifiers of one resource type,
// kept sorted and deduplicated. In counts-only mode it marshals as a bare
// count instead of an identifier array.
type TypeListing struct {
	set        *btree.BTreeG[string]
	countsOnly bool
}

func newTypeListing(countsOnly bool) *TypeListing {
	return &TypeListing{
		set: btree.NewG[string](8, func(a, b string) bool {
			return a < b
		}),
		countsOnly: countsOnly,
	}
}

// Add inserts identifiers, ignoring duplicates.
func (l *TypeListing) Add(identifiers ...string) {
	for _, identifier := range identifiers {
		l.set.ReplaceOrInsert(identifier)
	}
}

// Len returns the number of distinct identifiers.
func (l *TypeListing) Len() int {
	return l.set.Len()
}

// Identifiers returns the identifiers in sorted order.
func (l *TypeListing) Identifiers() []string {
	identifiers := make([]string, 0, l.set.Len())
	l.set.Ascend(func(identifier string) bool {
		identifiers = append(identifiers, identifier)
		return true
	})
	return identifiers
}

// MarshalJSON emits the sorted identifier array, or the count in counts-only
// mode.
func (l *TypeListing) MarshalJSON() ([]byte, error) {
	if l.countsOnly {
		return json.Marshal(l.Len())
	}
	return json.Marshal(l.Identifiers())
}

// Report is the sole persisted artifact of a run. Workers write disjoint
// (region, type) keys; the collection itself is guarded by a mutex.
type Report struct {
	mu sync.Mutex

	Metadata RunMetadata                        `json:"_metadata"`
	Regions  map[string]map[string]*TypeListing `json:"regions"`

	countsOnly bool
}

// NewReport creates a report pre-populated with empty entries for every
// target region, so regions with no findings still appear in the output.
func NewReport(meta RunMetadata, regions []string, countsOnly bool) *Report {
	meta.DeniedListOperations = make(map[string][]string, len(regions))
	meta.NotListedOperations = make(map[string]map[string]string, len(regions))

	regionMap := make(map[string]map[string]*TypeListing, len(regions))
	for _, region := range regions {
		meta.DeniedListOperations[region] = []string{}
		meta.NotListedOperations[region] = map[string]string{}
		regionMap[region] = make(map[string]*TypeListing)
	}

	return &Report{
		Metadata:   meta,
		Regions:    regionMap,
		countsOnly: countsOnly,
	}
}

// AddListing records discovered identifiers for one (region, type) pair.
// Types with no identifiers are omitted from the report.
func (r *Report) AddListing(region, resourceType string, identifiers []string) {
	if len(identifiers) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	regionListings, ok := r.Regions[region]
	if !ok {
		regionListings = make(map[string]*TypeListing)
		r.Regions[region] = regionListings
	}

	listing, ok := regionListings[resourceType]
	if !ok {
		listing = newTypeListing(r.countsOnly)
		regionListings[resourceType] = listing
	}
	listing.Add(identifiers...)
}

// RecordNotListed marks one (region, type) pair as not listed with a reason
// code. Access-denied pairs are additionally kept in the sorted
// denied_list_operations list.
func (r *Report) RecordNotListed(region, resourceType, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notListed, ok := r.Metadata.NotListedOperations[region]
	if !ok {
		notListed = map[string]string{}
		r.Metadata.NotListedOperations[region] = notListed
	}
	notListed[resourceType] = reason

	if reason == "access_denied" {
		r.insertDeniedLocked(region, resourceType)
	}
}

// RecordRegionError records a region-level failure, such as an unreadable
// type catalog.
func (r *Report) RecordRegionError(region, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insertDeniedLocked(region, message)
}

func (r *Report) insertDeniedLocked(region, entry string) {
	denied := r.Metadata.DeniedListOperations[region]
	i := sort.SearchStrings(denied, entry)
	if i < len(denied) && denied[i] == entry {
		return
	}
	denied = append(denied, "")
	copy(denied[i+1:], denied[i:])
	denied[i] = entry
	r.Metadata.DeniedListOperations[region] = denied
}

// Totals returns the number of distinct identifiers, listed types, and
// not-listed types across all regions.
func (r *Report) Totals() (resources, resourceTypes, notListed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, regionListings := range r.Regions {
		for _, listing := range regionListings {
			resourceTypes++
			resources += listing.Len()
		}
	}
	for _, entries := range r.Metadata.NotListedOperations {
		notListed += len(entries)
	}
	return resources, resourceTypes, notListed
}
