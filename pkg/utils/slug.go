package utils

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Slugify derives the URL-safe key for a title.
func Slugify(title string) string {
	return slug.Make(title)
}

// UniqueSlug derives a slug for title that is unique within its scope.
// exists reports whether a candidate is already taken; on collision the
// base gets a numeric suffix, starting at 2.
func UniqueSlug(title string, exists func(candidate string) (bool, error)) (string, error) {
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
