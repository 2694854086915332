package pairMatching

import (
	"fmt"
	"sort"

	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/config"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/utils"
)

// Matching holds and manages a single applicant-apartment matching instance
type Matching struct {
	// Applicant desired prices, sorted ascending
	applicants []int
	// Apartment prices, sorted ascending
	apartments []int
	// Maximum allowed absolute difference for a valid pairing
	tolerance int
	// Pairings confirmed by the last Match call
	pairs []Pair
	// Program configuration
	config *config.Config
}

// Pair represents a single confirmed applicant-apartment pairing
type Pair struct {
	Applicant int
	Apartment int
}

// NewMatching constructs a well-formed instance of Matching from two value sequences and a tolerance
func NewMatching(applicants []int, apartments []int, tolerance int, cfg *config.Config) (*Matching, error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("tolerance must not be negative, got %d", tolerance)
	}

	matching := new(Matching)

	matching.config = cfg
	matching.tolerance = tolerance

	// Copy both sequences so that sorting doesn't mutate the caller's slices
	matching.applicants = make([]int, len(applicants))
	copy(matching.applicants, applicants)
	matching.apartments = make([]int, len(apartments))
	copy(matching.apartments, apartments)

	sort.Ints(matching.applicants)
	sort.Ints(matching.apartments)

	return matching, nil
}

// Match pairs up applicants and apartments with a two-pointer sweep over both sorted sequences
// and returns the number of confirmed pairings. A pairing is valid if its values are at most
// tolerance apart; every applicant and every apartment is used at most once.
// The sweep yields a maximum matching: in sorted order an optimal matching never needs to cross
// pairs, so greedily pairing the first compatible values and otherwise advancing the smaller
// side is safe.
func (m *Matching) Match() int {
	m.pairs = make([]Pair, 0)

	i := 0
	j := 0
	for i < len(m.applicants) && j < len(m.apartments) {
		if utils.WithinTolerance(m.applicants[i], m.apartments[j], m.tolerance) {
			m.pairs = append(m.pairs, Pair{Applicant: m.applicants[i], Apartment: m.apartments[j]})
			i++
			j++
		} else if m.applicants[i] < m.apartments[j] {
			// Applicant value is too low to ever match this or any later apartment
			i++
		} else {
			// Apartment value is too low to ever match this or any later applicant
			j++
		}
	}

	return len(m.pairs)
}

// Count returns the number of pairings confirmed by the last Match call
func (m *Matching) Count() int {
	return len(m.pairs)
}

// Pairs returns a copy of the pairings confirmed by the last Match call, ascending in both values
func (m *Matching) Pairs() []Pair {
	pairs := make([]Pair, len(m.pairs))
	copy(pairs, m.pairs)
	return pairs
}

// Tolerance returns the maximum allowed pairing difference of this instance
func (m *Matching) Tolerance() int {
	return m.tolerance
}
