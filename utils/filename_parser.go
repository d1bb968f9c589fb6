package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"outfit-recommender/models"
)

// ErrMalformedFileName is returned for file names that do not carry the wardrobe tags
var ErrMalformedFileName = errors.New("malformed wardrobe file name")

// UnisexTag matches every requested gender
const UnisexTag = "unisex"

var wardrobeExtRegex = regexp.MustCompile(`\.(jpg|jpeg)$`)

// IsWardrobeImage reports whether a file name has a .jpg or .jpeg extension (case-insensitive)
func IsWardrobeImage(filename string) bool {
	return wardrobeExtRegex.MatchString(strings.ToLower(filename))
}

// ParseWardrobeFileName parses a filename following the pattern:
// CATEGORY_GENDER_OCCASION_ANYTHING.JPG
// Example: shirt_female_party_01.jpg
// The name is lower-cased and split on '_'; everything after the third token is ignored.
func ParseWardrobeFileName(filename string) (models.ItemTags, error) {
	parts := strings.Split(strings.ToLower(filename), "_")
	if len(parts) < 4 {
		return models.ItemTags{}, fmt.Errorf("%w: expected at least 4 parts separated by '_', got %d in %q", ErrMalformedFileName, len(parts), filename)
	}

	return models.ItemTags{
		Category:    parts[0],
		GenderTag:   parts[1],
		OccasionTag: parts[2],
	}, nil
}

// NormalizeTag trims and lower-cases a requested gender or occasion
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// MatchesFilter reports whether an item with the given tags is wanted for the
// requested gender and occasion. Requested values must already be normalized.
//
// An item is rejected when the requested gender is neither its gender tag nor
// "unisex" and its own tag is not "unisex". A "unisex" request therefore accepts
// every gender tag.
func MatchesFilter(tags models.ItemTags, gender, occasion string) bool {
	if gender != tags.GenderTag && gender != UnisexTag && tags.GenderTag != UnisexTag {
		return false
	}
	return tags.OccasionTag == occasion
}
