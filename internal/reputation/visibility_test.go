package reputation

import (
	"Nexus/models"
	"errors"
	"testing"
)

func mutualIs(v bool) MutualFunc {
	return func() (bool, error) { return v, nil }
}

func mustNotCall(t *testing.T) MutualFunc {
	return func() (bool, error) {
		t.Fatal("follow lookup should not happen")
		return false, nil
	}
}

func TestCanView(t *testing.T) {
	cases := []struct {
		name           string
		viewer, target uint64
		vis            models.Visibility
		mutual         bool
		want           bool
	}{
		{"self private", 7, 7, models.VisibilityPrivate, false, true},
		{"self friends", 7, 7, models.VisibilityFriends, false, true},
		{"public anonymous", 0, 7, models.VisibilityPublic, false, true},
		{"public other", 3, 7, models.VisibilityPublic, false, true},
		{"private other", 3, 7, models.VisibilityPrivate, true, false},
		{"private anonymous", 0, 7, models.VisibilityPrivate, false, false},
		{"friends anonymous", 0, 7, models.VisibilityFriends, true, false},
		{"friends mutual", 3, 7, models.VisibilityFriends, true, true},
		{"friends one way", 3, 7, models.VisibilityFriends, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CanView(c.viewer, c.target, c.vis, mutualIs(c.mutual))
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("CanView = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCanView_SkipsFollowLookup(t *testing.T) {
	for _, vis := range []models.Visibility{models.VisibilityPublic, models.VisibilityPrivate} {
		if _, err := CanView(3, 7, vis, mustNotCall(t)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := CanView(7, 7, models.VisibilityFriends, mustNotCall(t)); err != nil {
		t.Fatal(err)
	}
}

func TestCanView_Errors(t *testing.T) {
	if _, err := CanView(3, 7, "hidden", mutualIs(true)); !IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	boom := errors.New("db down")
	_, err := CanView(3, 7, models.VisibilityFriends, func() (bool, error) { return false, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
