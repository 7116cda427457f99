package reputation

import (
	"Nexus/models"
	"fmt"
)

type RequirementKind string

const (
	KindPublic         RequirementKind = "public"
	KindAuthenticated  RequirementKind = "authenticated"
	KindMinMemberLevel RequirementKind = "min_member_level"
	KindRole           RequirementKind = "role"
	KindEmailVerified  RequirementKind = "email_verified"
	KindAllOf          RequirementKind = "all_of"
)

// Requirement describes what a caller must be to use a feature.
type Requirement struct {
	Kind  RequirementKind
	Tier  models.MemberTier // min_member_level
	Roles []models.Role     // role
	All   []Requirement     // all_of
}

func Public() Requirement        { return Requirement{Kind: KindPublic} }
func Authenticated() Requirement { return Requirement{Kind: KindAuthenticated} }
func EmailVerified() Requirement { return Requirement{Kind: KindEmailVerified} }

func MinMemberLevel(tier models.MemberTier) Requirement {
	return Requirement{Kind: KindMinMemberLevel, Tier: tier}
}

func AnyRole(roles ...models.Role) Requirement {
	return Requirement{Kind: KindRole, Roles: roles}
}

func AllOf(reqs ...Requirement) Requirement {
	return Requirement{Kind: KindAllOf, All: reqs}
}

// VideoPlayback follows the videos module's require_login_to_watch switch.
func VideoPlayback(requireLogin bool) Requirement {
	if requireLogin {
		return Authenticated()
	}
	return Public()
}

var (
	RichTextMedia       = Authenticated()
	PersonalProfilePage = AllOf(MinMemberLevel(models.TierSilver), EmailVerified())
	AdminOnly           = AnyRole(models.RoleAdmin)
	Moderator           = AnyRole(models.RoleAdmin, models.RoleEditor)
)

var tierRank = map[models.MemberTier]int{
	models.TierBronze:  1,
	models.TierSilver:  2,
	models.TierGold:    3,
	models.TierPremium: 4,
	models.TierSVIP:    5,
}

// TierRank orders member tiers; anything unknown ranks 0, below bronze.
func TierRank(tier models.MemberTier) int {
	return tierRank[tier]
}

func KnownTier(tier models.MemberTier) bool {
	_, ok := tierRank[tier]
	return ok
}

// Allow reports whether member (nil = anonymous) satisfies req. It does not
// look at member status; callers refuse inactive members separately.
func Allow(member *models.Member, req Requirement) (bool, error) {
	switch req.Kind {
	case KindPublic:
		return true, nil
	case KindAuthenticated:
		return member != nil, nil
	case KindMinMemberLevel:
		if !KnownTier(req.Tier) {
			return false, invalid("tier", fmt.Sprintf("unknown member level %q", req.Tier))
		}
		if member == nil {
			return false, nil
		}
		return TierRank(member.MemberLevel) >= TierRank(req.Tier), nil
	case KindRole:
		if len(req.Roles) == 0 {
			return false, invalid("roles", "empty role set")
		}
		if member == nil {
			return false, nil
		}
		for _, r := range req.Roles {
			if member.Role == r {
				return true, nil
			}
		}
		return false, nil
	case KindEmailVerified:
		return member != nil && member.EmailVerified, nil
	case KindAllOf:
		if len(req.All) == 0 {
			return false, invalid("requirement", "all_of without members")
		}
		for _, sub := range req.All {
			ok, err := Allow(member, sub)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	default:
		return false, invalid("requirement", fmt.Sprintf("unknown kind %q", req.Kind))
	}
}
