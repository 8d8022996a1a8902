package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"launchpad/contexts/startup-marketplace/startup-service/domain/entities"
	domainerrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
)

const (
	MinNameLength        = 2
	MinTaglineLength     = 10
	MinDescriptionLength = 50
	MaxCategories        = 20
	MinRating            = 1
	MaxRating            = 5
	MaxCommentLength     = 2000
)

var websitePattern = regexp.MustCompile(`^https?://.+`)

// NormalizeStartup trims free-text fields and categories in place and then
// checks every field rule. The returned error wraps ErrInvalidStartup.
func NormalizeStartup(startup *entities.Startup) error {
	startup.Name = strings.TrimSpace(startup.Name)
	startup.Tagline = strings.TrimSpace(startup.Tagline)
	startup.Industry = strings.TrimSpace(startup.Industry)
	startup.TargetAudience = strings.TrimSpace(startup.TargetAudience)
	startup.Website = strings.TrimSpace(startup.Website)
	startup.Categories = NormalizeTags(startup.Categories)

	switch {
	case utf8.RuneCountInString(startup.Name) < MinNameLength:
		return invalid("name must be at least %d characters", MinNameLength)
	case utf8.RuneCountInString(startup.Tagline) < MinTaglineLength:
		return invalid("tagline must be at least %d characters", MinTaglineLength)
	case utf8.RuneCountInString(startup.Description) < MinDescriptionLength:
		return invalid("description must be at least %d characters", MinDescriptionLength)
	case startup.Industry == "":
		return invalid("industry is required")
	case len(startup.Categories) == 0:
		return invalid("at least one category is required")
	case len(startup.Categories) > MaxCategories:
		return invalid("at most %d categories are allowed", MaxCategories)
	case !startup.BusinessType.Valid():
		return invalid("business type must be B2B or B2C")
	case startup.TargetAudience == "":
		return invalid("target audience is required")
	case !websitePattern.MatchString(startup.Website):
		return invalid("please enter a valid URL")
	}
	return nil
}

// ValidateFeedback checks rating bounds and comment size.
func ValidateFeedback(rating int, comment string) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", domainerrors.ErrInvalidFeedback, MinRating, MaxRating)
	}
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return fmt.Errorf("%w: comment must be at most %d characters", domainerrors.ErrInvalidFeedback, MaxCommentLength)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domainerrors.ErrInvalidStartup}, args...)...)
}
