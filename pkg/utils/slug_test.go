package utils_test

import (
	"errors"
	"testing"

	"github.com/slmontgomery/bugtracking/pkg/utils"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Website rewrite", "website-rewrite"},
		{"  Login page 500s  ", "login-page-500s"},
		{"Émile's Tracker", "emile-s-tracker"},
	}
	for _, tc := range cases {
		if got := utils.Slugify(tc.title); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestUniqueSlugNoCollision(t *testing.T) {
	got, err := utils.UniqueSlug("Website rewrite", func(string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "website-rewrite" {
		t.Fatalf("got %q", got)
	}
}

func TestUniqueSlugSuffixStartsAtTwo(t *testing.T) {
	taken := map[string]bool{"website-rewrite": true, "website-rewrite-2": true}
	var checked []string
	got, err := utils.UniqueSlug("Website rewrite", func(candidate string) (bool, error) {
		checked = append(checked, candidate)
		return taken[candidate], nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "website-rewrite-3" {
		t.Fatalf("got %q", got)
	}
	want := []string{"website-rewrite", "website-rewrite-2", "website-rewrite-3"}
	if len(checked) != len(want) {
		t.Fatalf("checked %v", checked)
	}
	for i := range want {
		if checked[i] != want[i] {
			t.Fatalf("candidate %d was %q, want %q", i, checked[i], want[i])
		}
	}
}

func TestUniqueSlugPropagatesLookupError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := utils.UniqueSlug("Website rewrite", func(string) (bool, error) {
		return false, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}
