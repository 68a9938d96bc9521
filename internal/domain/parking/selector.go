package parking

import (
	"errors"
	"sort"
	"time"
)

var ErrNoAvailableSector = errors.New("no available sector")

// SelectorPolicy orders candidate sectors; the first element of the sorted
// slice wins. Candidates are pre-filtered to operational sectors with free
// places, so policies only decide preference.
type SelectorPolicy interface {
	Rank(candidates []*Sector)
}

// SelectSector picks the sector a walk-in entry is routed to. Pure read: the
// caller pairs the choice with a version-checked place reservation inside
// the same transaction.
func SelectSector(p *Parking, sectors []*Sector, requestedType *SectorType, now time.Time) (*Sector, error) {
	candidates := make([]*Sector, 0, len(sectors))
	for _, s := range sectors {
		if !s.IsOperationalAt(now) {
			continue
		}
		if requestedType != nil && s.Type() != *requestedType {
			continue
		}
		if !s.HasCapacity() {
			continue
		}
		candidates = append(candidates, s)
	}
	if len(candidates) == 0 {
		return nil, ErrNoAvailableSector
	}

	policyFor(p.Strategy()).Rank(candidates)
	return candidates[0], nil
}

func policyFor(strategy Strategy) SelectorPolicy {
	switch strategy {
	case StrategyMostFreePlaces:
		return mostFreePlaces{}
	default:
		return leastOccupied{}
	}
}

// leastOccupied prefers the lowest occupancy ratio, tie-broken by highest
// weight, then by name so the choice is fully deterministic.
type leastOccupied struct{}

func (leastOccupied) Rank(candidates []*Sector) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := candidates[i].OccupancyRatio(), candidates[j].OccupancyRatio()
		if ri != rj {
			return ri < rj
		}
		return breakTie(candidates[i], candidates[j])
	})
}

// mostFreePlaces prefers the most absolute free places, with the same
// weight-then-name tie-break.
type mostFreePlaces struct{}

func (mostFreePlaces) Rank(candidates []*Sector) {
	sort.SliceStable(candidates, func(i, j int) bool {
		fi, fj := candidates[i].FreePlaces(), candidates[j].FreePlaces()
		if fi != fj {
			return fi > fj
		}
		return breakTie(candidates[i], candidates[j])
	})
}

func breakTie(a, b *Sector) bool {
	if a.Weight() != b.Weight() {
		return a.Weight() > b.Weight()
	}
	return a.Name() < b.Name()
}
