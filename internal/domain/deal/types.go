package deal

import "errors"

var (
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidOptionStatus = errors.New("invalid option status")
)

type Category string

const (
	CategoryHotel      Category = "hotel"
	CategoryRestaurant Category = "restaurant"
	CategoryExperience Category = "experience"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryHotel, CategoryRestaurant, CategoryExperience:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type OptionStatus string

const (
	OptionStatusActive   OptionStatus = "active"
	OptionStatusInactive OptionStatus = "inactive"
)

func (s OptionStatus) String() string {
	return string(s)
}

func (s OptionStatus) IsValid() bool {
	switch s {
	case OptionStatusActive, OptionStatusInactive:
		return true
	default:
		return false
	}
}

func NewOptionStatus(s string) (OptionStatus, error) {
	st := OptionStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidOptionStatus
	}
	return st, nil
}

// SortOrder selects the catalog listing order.
type SortOrder string

const (
	SortPopular SortOrder = "popular"
	SortPrice   SortOrder = "price"
	SortEnding  SortOrder = "ending"
)

// ParseSortOrder never fails: unknown values fall back to popular.
func ParseSortOrder(s string) SortOrder {
	switch s {
	case "price", "priceAscending":
		return SortPrice
	case "ending", "endingSoonest":
		return SortEnding
	default:
		return SortPopular
	}
}
