package reputation

import (
	"Nexus/models"
	"fmt"
)

// MutualFunc reports whether viewer and target follow each other.
type MutualFunc func() (bool, error)

// CanView decides profile visibility. viewerID 0 is anonymous. mutual is
// only consulted for friends-only profiles.
func CanView(viewerID, targetID uint64, vis models.Visibility, mutual MutualFunc) (bool, error) {
	if viewerID != 0 && viewerID == targetID {
		return true, nil
	}
	switch vis {
	case models.VisibilityPublic:
		return true, nil
	case models.VisibilityPrivate:
		return false, nil
	case models.VisibilityFriends:
		if viewerID == 0 {
			return false, nil
		}
		return mutual()
	default:
		return false, invalid("profile_visibility", fmt.Sprintf("unknown value %q", vis))
	}
}

func ValidVisibility(vis models.Visibility) bool {
	switch vis {
	case models.VisibilityPublic, models.VisibilityFriends, models.VisibilityPrivate:
		return true
	}
	return false
}
