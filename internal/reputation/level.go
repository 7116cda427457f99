package reputation

import (
	"Nexus/models"
	"sort"
)

// SortTiers orders a freshly loaded table by min_points.
func SortTiers(tiers []models.MemberLevel) {
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinPoints < tiers[j].MinPoints
	})
}

// ValidateTiers checks that the (sorted) table partitions [0, ∞):
// the first tier starts at 0, every next min_points is the previous
// max_points+1, ids grow with min_points, and only the last tier is open.
func ValidateTiers(tiers []models.MemberLevel) error {
	if len(tiers) == 0 {
		return configErrorf("no tier available")
	}
	if tiers[0].MinPoints != 0 {
		return configErrorf("first tier %q starts at %d, want 0", tiers[0].Name, tiers[0].MinPoints)
	}
	for i, t := range tiers {
		if t.MaxPoints != nil && *t.MaxPoints < t.MinPoints {
			return configErrorf("tier %q has max_points %d below min_points %d", t.Name, *t.MaxPoints, t.MinPoints)
		}
		last := i == len(tiers)-1
		if last {
			if t.MaxPoints != nil {
				return configErrorf("top tier %q must be unbounded", t.Name)
			}
			break
		}
		next := tiers[i+1]
		if t.MaxPoints == nil {
			return configErrorf("tier %q is unbounded but is not the top tier", t.Name)
		}
		if next.MinPoints <= t.MinPoints {
			return configErrorf("tier %q min_points %d not above %q", next.Name, next.MinPoints, t.Name)
		}
		if next.ID <= t.ID {
			return configErrorf("tier ids must increase with min_points (%d after %d)", next.ID, t.ID)
		}
		switch {
		case next.MinPoints > *t.MaxPoints+1:
			return configErrorf("gap between %q and %q (%d..%d)", t.Name, next.Name, *t.MaxPoints+1, next.MinPoints-1)
		case next.MinPoints <= *t.MaxPoints:
			return configErrorf("%q overlaps %q at %d", t.Name, next.Name, next.MinPoints)
		}
	}
	return nil
}

// ResolveLevel returns the tier whose range contains points. tiers must be
// sorted and valid; an empty table is a ConfigurationError.
func ResolveLevel(points int64, tiers []models.MemberLevel) (models.MemberLevel, error) {
	if len(tiers) == 0 {
		return models.MemberLevel{}, configErrorf("no tier available")
	}
	if points < 0 {
		return models.MemberLevel{}, invalid("points", "negative balance")
	}
	found := -1
	for i, t := range tiers {
		if t.MinPoints > points {
			break
		}
		found = i
	}
	if found < 0 || !tiers[found].Contains(points) {
		return models.MemberLevel{}, configErrorf("no tier contains %d points", points)
	}
	return tiers[found], nil
}

// NextLevel returns the tier after current, or nil at the top.
func NextLevel(current models.MemberLevel, tiers []models.MemberLevel) *models.MemberLevel {
	for i, t := range tiers {
		if t.ID == current.ID && i+1 < len(tiers) {
			next := tiers[i+1]
			return &next
		}
	}
	return nil
}
