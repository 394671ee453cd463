package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/infra"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/pkg/patch"
	"travel-deals/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound   = errs.New("deal not found")
	ErrOptionNotFound = errs.New("deal option not found")
	ErrInvalidImage   = errs.New("invalid image upload")
)

const maxSlugAttempts = 1000

type DealInput struct {
	Title          string
	Category       string
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
	Active         bool
	// PriceCents creates the default option when set.
	PriceCents *int64
}

// DealPatch leaves nil fields untouched.
type DealPatch struct {
	Title          *string
	Category       *string
	Teaser         *string
	Description    *string
	ImageURL       *string
	RemoveImage    bool
	ListPriceCents *int64
	MerchantName   *string
	BadgeText      *string
	PromoCode      *string
	PromoNote      *string
	RatingAvg      *float64
	RatingCount    *int32
	FeaturedRank   *int32
	EndsAt         *time.Time
	Active         *bool
	PriceCents     *int64
}

type OptionInput struct {
	Name               string
	PriceCents         int64
	OriginalPriceCents *int64
	StockTotal         int32
}

type OptionPatch struct {
	Name               *string
	PriceCents         *int64
	OriginalPriceCents *int64
	StockTotal         *int32
	StockSold          *int32
	Status             *string
}

type CreateDealResult struct {
	DealID uuid.UUID
	Slug   string
}

type AdminCommands interface {
	CreateDeal(ctx context.Context, in DealInput) (*CreateDealResult, error)
	UpdateDeal(ctx context.Context, dealID uuid.UUID, p DealPatch) error
	ToggleDeal(ctx context.Context, dealID uuid.UUID) (bool, error)
	AddOption(ctx context.Context, dealID uuid.UUID, in OptionInput) (uuid.UUID, error)
	UpdateOption(ctx context.Context, optionID uuid.UUID, p OptionPatch) error
	UploadDealImage(ctx context.Context, dealID uuid.UUID, filename string, data []byte) (string, error)
}

type adminCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog CatalogInvalidator
	images  ImageStore
}

func NewAdminCommands(uow shared.UnitOfWork, catalog CatalogInvalidator, images ImageStore) AdminCommands {
	return &adminCommandsImpl{
		uow:     uow,
		catalog: catalog,
		images:  images,
	}
}

func (a *adminCommandsImpl) CreateDeal(ctx context.Context, in DealInput) (*CreateDealResult, error) {
	category, err := deal.NewCategory(strings.TrimSpace(in.Category))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	base, err := deal.Slugify(in.Title)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	if in.PriceCents != nil && *in.PriceCents <= 0 {
		return nil, errs.Mark(deal.ErrNonPositivePrice, ErrInvalidRequest)
	}

	var result *CreateDealResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slug, err := uniqueSlug(ctx, tx, base)
		if err != nil {
			return err
		}

		d, err := deal.NewDeal(in.Title, category, slug, in.details(), in.Active)
		if err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}
		if err := tx.Deals().Create(ctx, tx.DB(), d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if in.PriceCents != nil {
			opt, err := deal.NewOption(d.ID(), deal.DefaultOptionName, *in.PriceCents, nil)
			if err != nil {
				return errs.Mark(err, ErrInvalidRequest)
			}
			if err := tx.Deals().CreateOption(ctx, tx.DB(), opt); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		result = &CreateDealResult{DealID: d.ID(), Slug: slug.String()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.invalidate(ctx)
	return result, nil
}

func uniqueSlug(ctx context.Context, tx shared.Tx, base deal.Slug) (deal.Slug, error) {
	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		exists, err := tx.Deals().SlugExists(ctx, tx.DB(), candidate)
		if err != nil {
			return deal.Slug{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base.WithSuffix(i)
	}
	return deal.Slug{}, errs.Mark(errs.Newf("no free slug for %q", base.String()), ErrInvalidRequest)
}

func (a *adminCommandsImpl) UpdateDeal(ctx context.Context, dealID uuid.UUID, p DealPatch) error {
	if p.PriceCents != nil && *p.PriceCents <= 0 {
		return errs.Mark(deal.ErrNonPositivePrice, ErrInvalidRequest)
	}

	var replacedImage string
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := findDeal(ctx, tx, dealID)
		if err != nil {
			return err
		}
		previousImage := d.Details().ImageURL

		if err := p.apply(d); err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}
		if err := tx.Deals().Update(ctx, tx.DB(), d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if p.PriceCents != nil {
			if err := upsertDefaultOption(ctx, tx, d.ID(), *p.PriceCents); err != nil {
				return err
			}
		}

		replacedImage = ""
		if previousImage != d.Details().ImageURL {
			replacedImage = previousImage
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.removeImage(ctx, replacedImage)
	a.invalidate(ctx)
	return nil
}

// upsertDefaultOption reprices the first option, or creates "Standard" when the deal has none.
func upsertDefaultOption(ctx context.Context, tx shared.Tx, dealID uuid.UUID, priceCents int64) error {
	opt, err := tx.Deals().FirstOption(ctx, tx.DB(), dealID)
	switch {
	case err == nil:
		if err := opt.Reprice(priceCents, opt.OriginalPriceCents()); err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}
		if err := tx.Deals().UpdateOption(ctx, tx.DB(), opt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		created, err := deal.NewOption(dealID, deal.DefaultOptionName, priceCents, nil)
		if err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}
		if err := tx.Deals().CreateOption(ctx, tx.DB(), created); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func (a *adminCommandsImpl) ToggleDeal(ctx context.Context, dealID uuid.UUID) (bool, error) {
	var active bool
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := findDeal(ctx, tx, dealID)
		if err != nil {
			return err
		}
		d.ToggleActive()
		if err := tx.Deals().Update(ctx, tx.DB(), d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		active = d.IsActive()
		return nil
	})
	if err != nil {
		return false, err
	}

	a.invalidate(ctx)
	return active, nil
}

func (a *adminCommandsImpl) AddOption(ctx context.Context, dealID uuid.UUID, in OptionInput) (uuid.UUID, error) {
	opt, err := deal.NewOption(dealID, in.Name, in.PriceCents, in.OriginalPriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRequest)
	}
	if err := opt.SetStock(in.StockTotal, 0); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRequest)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := findDeal(ctx, tx, dealID); err != nil {
			return err
		}
		if err := tx.Deals().CreateOption(ctx, tx.DB(), opt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	a.invalidate(ctx)
	return opt.ID(), nil
}

func (a *adminCommandsImpl) UpdateOption(ctx context.Context, optionID uuid.UUID, p OptionPatch) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		opt, err := tx.Deals().FindOption(ctx, tx.DB(), optionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOptionNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := p.apply(opt); err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}
		if err := tx.Deals().UpdateOption(ctx, tx.DB(), opt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.invalidate(ctx)
	return nil
}

// UploadDealImage stores the file before touching the row and removes the
// previous upload only after the new URL is committed.
func (a *adminCommandsImpl) UploadDealImage(ctx context.Context, dealID uuid.UUID, filename string, data []byte) (string, error) {
	publicURL, err := a.images.Save(ctx, filename, data)
	if err != nil {
		return "", err
	}

	var previous string
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := findDeal(ctx, tx, dealID)
		if err != nil {
			return err
		}
		previous = d.Details().ImageURL
		d.SetImageURL(publicURL)
		if err := tx.Deals().Update(ctx, tx.DB(), d); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		a.removeImage(ctx, publicURL)
		return "", err
	}

	a.removeImage(ctx, previous)
	a.invalidate(ctx)
	return publicURL, nil
}

func findDeal(ctx context.Context, tx shared.Tx, dealID uuid.UUID) (*deal.Deal, error) {
	d, err := tx.Deals().FindForUpdate(ctx, tx.DB(), dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return d, nil
}

func (a *adminCommandsImpl) removeImage(ctx context.Context, publicURL string) {
	if publicURL == "" {
		return
	}
	if err := a.images.Remove(ctx, publicURL); err != nil {
		slog.Warn("failed to remove deal image", "url", publicURL, "error", err.Error())
	}
}

func (a *adminCommandsImpl) invalidate(ctx context.Context) {
	if err := a.catalog.Invalidate(ctx); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err.Error())
	}
}

func (in DealInput) details() deal.Details {
	return deal.Details{
		Teaser:         strings.TrimSpace(in.Teaser),
		Description:    strings.TrimSpace(in.Description),
		ImageURL:       strings.TrimSpace(in.ImageURL),
		ListPriceCents: in.ListPriceCents,
		MerchantName:   strings.TrimSpace(in.MerchantName),
		BadgeText:      strings.TrimSpace(in.BadgeText),
		PromoCode:      strings.TrimSpace(in.PromoCode),
		PromoNote:      strings.TrimSpace(in.PromoNote),
		RatingAvg:      in.RatingAvg,
		RatingCount:    in.RatingCount,
		FeaturedRank:   in.FeaturedRank,
		EndsAt:         in.EndsAt,
	}
}

func (p DealPatch) apply(d *deal.Deal) error {
	if p.Title != nil {
		if err := d.Rename(*p.Title); err != nil {
			return err
		}
	}
	if p.Category != nil {
		category, err := deal.NewCategory(*p.Category)
		if err != nil {
			return err
		}
		if err := d.ChangeCategory(category); err != nil {
			return err
		}
	}

	cur := d.Details()
	next := deal.Details{
		Teaser:         patch.Coalesce(p.Teaser, cur.Teaser),
		Description:    patch.Coalesce(p.Description, cur.Description),
		ImageURL:       patch.Coalesce(p.ImageURL, cur.ImageURL),
		ListPriceCents: patch.CoalescePtr(p.ListPriceCents, cur.ListPriceCents),
		MerchantName:   patch.Coalesce(p.MerchantName, cur.MerchantName),
		BadgeText:      patch.Coalesce(p.BadgeText, cur.BadgeText),
		PromoCode:      patch.Coalesce(p.PromoCode, cur.PromoCode),
		PromoNote:      patch.Coalesce(p.PromoNote, cur.PromoNote),
		RatingAvg:      patch.CoalescePtr(p.RatingAvg, cur.RatingAvg),
		RatingCount:    patch.CoalescePtr(p.RatingCount, cur.RatingCount),
		FeaturedRank:   patch.CoalescePtr(p.FeaturedRank, cur.FeaturedRank),
		EndsAt:         patch.CoalescePtr(p.EndsAt, cur.EndsAt),
	}
	if p.RemoveImage {
		next.ImageURL = ""
	}
	if err := d.ReplaceDetails(next); err != nil {
		return err
	}

	if p.Active != nil {
		d.SetActive(*p.Active)
	}
	return nil
}

func (p OptionPatch) apply(o *deal.Option) error {
	if p.Name != nil {
		if err := o.Rename(*p.Name); err != nil {
			return err
		}
	}
	if p.PriceCents != nil || p.OriginalPriceCents != nil {
		price := patch.Coalesce(p.PriceCents, o.PriceCents())
		original := patch.CoalescePtr(p.OriginalPriceCents, o.OriginalPriceCents())
		if err := o.Reprice(price, original); err != nil {
			return err
		}
	}
	if p.StockTotal != nil || p.StockSold != nil {
		total := patch.Coalesce(p.StockTotal, o.StockTotal())
		sold := patch.Coalesce(p.StockSold, o.StockSold())
		if err := o.SetStock(total, sold); err != nil {
			return err
		}
	}
	if p.Status != nil {
		status, err := deal.NewOptionStatus(*p.Status)
		if err != nil {
			return err
		}
		if err := o.SetStatus(status); err != nil {
			return err
		}
	}
	return nil
}
