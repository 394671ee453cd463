package deal

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrEmptySlug = errors.New("slug cannot be empty")

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type Slug struct {
	value string
}

// Slugify lower-cases the title and collapses every run of non-alphanumerics to one dash.
func Slugify(title string) (Slug, error) {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return Slug{}, ErrEmptySlug
	}
	return Slug{value: s}, nil
}

func ParseSlug(s string) (Slug, error) {
	if strings.TrimSpace(s) == "" {
		return Slug{}, ErrEmptySlug
	}
	return Slug{value: s}, nil
}

// WithSuffix yields "<slug>-n", used to resolve collisions.
func (s Slug) WithSuffix(n int) Slug {
	return Slug{value: s.value + "-" + strconv.Itoa(n)}
}

func (s Slug) String() string {
	return s.value
}

// DiscountPercent is round((1 - from/list) * 100), defined only when list > from.
func DiscountPercent(fromPriceCents, listPriceCents *int64) *int {
	if fromPriceCents == nil || listPriceCents == nil {
		return nil
	}
	from, list := *fromPriceCents, *listPriceCents
	if from <= 0 || list <= 0 || list <= from {
		return nil
	}
	pct := int(math.Round((1 - float64(from)/float64(list)) * 100))
	return &pct
}

// TimeLeftDays rounds the remaining time up to whole days; nil once the deal has ended.
func TimeLeftDays(endsAt *time.Time, now time.Time) *int {
	if endsAt == nil {
		return nil
	}
	diff := endsAt.Sub(now)
	if diff <= 0 {
		return nil
	}
	days := int(math.Ceil(diff.Hours() / 24))
	return &days
}
