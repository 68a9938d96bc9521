package parking

import "errors"

var (
	ErrInvalidSectorType = errors.New("invalid sector type")
	ErrInvalidStrategy   = errors.New("invalid sector determination strategy")
)

type SectorType string

const (
	SectorCovered     SectorType = "covered"
	SectorUncovered   SectorType = "uncovered"
	SectorUnderground SectorType = "underground"
)

func NewSectorType(value string) (SectorType, error) {
	st := SectorType(value)
	if !st.IsValid() {
		return "", ErrInvalidSectorType
	}
	return st, nil
}

func (st SectorType) String() string {
	return string(st)
}

func (st SectorType) IsValid() bool {
	switch st {
	case SectorCovered, SectorUncovered, SectorUnderground:
		return true
	default:
		return false
	}
}

// Strategy names the policy a parking uses to route walk-in entries to a
// sector.
type Strategy string

const (
	// StrategyLeastOccupied picks the sector with the lowest occupancy
	// ratio. Baseline policy.
	StrategyLeastOccupied Strategy = "LEAST_OCCUPIED"
	// StrategyMostFreePlaces picks the sector with the most absolute free
	// places.
	StrategyMostFreePlaces Strategy = "MOST_FREE_PLACES"
)

func (s Strategy) String() string {
	return string(s)
}

func (s Strategy) IsValid() bool {
	switch s {
	case StrategyLeastOccupied, StrategyMostFreePlaces:
		return true
	default:
		return false
	}
}
