package deal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrNonPositivePrice = errors.New("price must be greater than zero")
	ErrEmptyOptionName  = errors.New("option name cannot be empty")
	ErrInvalidStock     = errors.New("stock counters must be non-negative")
)

const DefaultOptionName = "Standard"

// Details holds the descriptive, freely editable part of a deal.
type Details struct {
	Teaser         string
	Description    string
	ImageURL       string
	ListPriceCents *int64
	MerchantName   string
	BadgeText      string
	PromoCode      string
	PromoNote      string
	RatingAvg      *float64
	RatingCount    *int32
	FeaturedRank   *int32
	EndsAt         *time.Time
}

type Deal struct {
	id        uuid.UUID
	slug      Slug
	title     string
	category  Category
	details   Details
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewDeal(title string, category Category, slug Slug, details Details, active bool) (*Deal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if slug.String() == "" {
		return nil, ErrEmptySlug
	}
	if details.ListPriceCents != nil && *details.ListPriceCents <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Deal{
		id:       uuid.New(),
		slug:     slug,
		title:    title,
		category: category,
		details:  details,
		isActive: active,
	}, nil
}

func ReconstructDeal(
	id uuid.UUID,
	slug Slug,
	title string,
	category Category,
	details Details,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Deal {
	return &Deal{
		id:        id,
		slug:      slug,
		title:     title,
		category:  category,
		details:   details,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Rename keeps the slug; published URLs stay stable after edits.
func (d *Deal) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	d.title = title
	return nil
}

func (d *Deal) ChangeCategory(c Category) error {
	if !c.IsValid() {
		return ErrInvalidCategory
	}
	d.category = c
	return nil
}

func (d *Deal) ReplaceDetails(details Details) error {
	if details.ListPriceCents != nil && *details.ListPriceCents <= 0 {
		return ErrNonPositivePrice
	}
	d.details = details
	return nil
}

func (d *Deal) SetImageURL(url string) {
	d.details.ImageURL = url
}

func (d *Deal) SetActive(active bool) {
	d.isActive = active
}

func (d *Deal) ToggleActive() {
	d.isActive = !d.isActive
}

func (d *Deal) ID() uuid.UUID        { return d.id }
func (d *Deal) Slug() Slug           { return d.slug }
func (d *Deal) Title() string        { return d.title }
func (d *Deal) Category() Category   { return d.category }
func (d *Deal) Details() Details     { return d.details }
func (d *Deal) IsActive() bool       { return d.isActive }
func (d *Deal) CreatedAt() time.Time { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time { return d.updatedAt }

type Option struct {
	id                 uuid.UUID
	dealID             uuid.UUID
	name               string
	priceCents         int64
	originalPriceCents *int64
	stockTotal         int32
	stockSold          int32
	status             OptionStatus
}

func NewOption(dealID uuid.UUID, name string, priceCents int64, originalPriceCents *int64) (*Option, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyOptionName
	}
	if priceCents <= 0 {
		return nil, ErrNonPositivePrice
	}
	if originalPriceCents != nil && *originalPriceCents <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Option{
		id:                 uuid.New(),
		dealID:             dealID,
		name:               name,
		priceCents:         priceCents,
		originalPriceCents: originalPriceCents,
		status:             OptionStatusActive,
	}, nil
}

func ReconstructOption(
	id, dealID uuid.UUID,
	name string,
	priceCents int64,
	originalPriceCents *int64,
	stockTotal, stockSold int32,
	status OptionStatus,
) *Option {
	return &Option{
		id:                 id,
		dealID:             dealID,
		name:               name,
		priceCents:         priceCents,
		originalPriceCents: originalPriceCents,
		stockTotal:         stockTotal,
		stockSold:          stockSold,
		status:             status,
	}
}

func (o *Option) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyOptionName
	}
	o.name = name
	return nil
}

func (o *Option) Reprice(priceCents int64, originalPriceCents *int64) error {
	if priceCents <= 0 {
		return ErrNonPositivePrice
	}
	if originalPriceCents != nil && *originalPriceCents <= 0 {
		return ErrNonPositivePrice
	}
	o.priceCents = priceCents
	o.originalPriceCents = originalPriceCents
	return nil
}

func (o *Option) SetStock(total, sold int32) error {
	if total < 0 || sold < 0 {
		return ErrInvalidStock
	}
	o.stockTotal = total
	o.stockSold = sold
	return nil
}

func (o *Option) SetStatus(status OptionStatus) error {
	if !status.IsValid() {
		return ErrInvalidOptionStatus
	}
	o.status = status
	return nil
}

func (o *Option) IsActive() bool { return o.status == OptionStatusActive }

func (o *Option) ID() uuid.UUID              { return o.id }
func (o *Option) DealID() uuid.UUID          { return o.dealID }
func (o *Option) Name() string               { return o.name }
func (o *Option) PriceCents() int64          { return o.priceCents }
func (o *Option) OriginalPriceCents() *int64 { return o.originalPriceCents }
func (o *Option) StockTotal() int32          { return o.stockTotal }
func (o *Option) StockSold() int32           { return o.stockSold }
func (o *Option) Status() OptionStatus       { return o.status }
