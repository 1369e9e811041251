package awardservice

import (
	"fmt"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

// Policy picks the single candidate group for one award round from a pool
// sorted by arrival.
type Policy func(pool []domain.Application) (groupID int64, ok bool)

// FirstApplicantGroup gives the group of the earliest bid exclusive
// consideration. Bids from other groups are discarded even when they would
// reach the roster size on their own.
func FirstApplicantGroup(pool []domain.Application) (int64, bool) {
	if len(pool) == 0 {
		return 0, false
	}
	return pool[0].GroupID, true
}

// LargestGroup picks the group with the most bids, the earliest one on a tie.
func LargestGroup(pool []domain.Application) (int64, bool) {
	counts := make(map[int64]int, len(pool))
	var best int64
	found := false
	for _, app := range pool {
		counts[app.GroupID]++
		if !found || counts[app.GroupID] > counts[best] {
			best = app.GroupID
			found = true
		}
	}
	return best, found
}

// Select splits the pool into the roster of the candidate group and the
// discarded rest. It reports ErrNotEnoughFromAnyGroup when either the pool
// or the candidate group is outside the roster bounds, keeping the split
// so the caller can tell the two cases apart.
func Select(pool []domain.Application, policy Policy) (roster, discarded []domain.Application, err error) {
	if len(pool) < domain.MinRosterSize || len(pool) > domain.MaxPoolSize {
		return nil, nil, domain.ErrNotEnoughFromAnyGroup
	}
	groupID, ok := policy(pool)
	if !ok {
		return nil, nil, domain.ErrNotEnoughFromAnyGroup
	}
	for _, app := range pool {
		if app.GroupID == groupID {
			roster = append(roster, app)
		} else {
			discarded = append(discarded, app)
		}
	}
	if len(roster) < domain.MinRosterSize || len(roster) > domain.MaxPoolSize {
		return roster, discarded, domain.ErrNotEnoughFromAnyGroup
	}
	return roster, discarded, nil
}

var policies = map[string]Policy{
	"first-applicant": FirstApplicantGroup,
	"largest-group":   LargestGroup,
}

func PolicyByName(name string) (Policy, error) {
	policy, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("unknown award policy %q", name)
	}
	return policy, nil
}
