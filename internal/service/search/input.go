package search

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

const (
	// MaxKeywords is the number of keyword terms one search accepts.
	MaxKeywords = 3
	// MaxKeywordLength bounds a single keyword, in characters.
	MaxKeywordLength = 255
)

// SearchInput holds the parameters of a keyword search.
type SearchInput struct {
	Keywords []string
	// Mode is the raw restriction mode; empty means ANY.
	Mode     string
	Identity string
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	supplied := 0
	for _, kw := range i.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		supplied++
		if utf8.RuneCountInString(kw) > MaxKeywordLength {
			errs = append(errs, domain.FieldError{Field: "keywords", Message: "keyword longer than 255 characters"})
		}
	}
	if supplied > MaxKeywords {
		errs = append(errs, domain.FieldError{Field: "keywords", Message: "at most 3 keywords"})
	}

	if _, ok := domain.ParseRestrictionMode(i.Mode); !ok {
		errs = append(errs, domain.FieldError{Field: "restriction", Message: "must be ANY or ALL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizedKeywords returns the keywords with whitespace collapsed and
// blanks and case-insensitive repeats removed.
func (i SearchInput) normalizedKeywords() []string {
	return dedupeKeywords(i.Keywords)
}
