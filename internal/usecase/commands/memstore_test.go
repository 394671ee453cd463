//go:build unit

package commands_test

import (
	"context"
	"slices"
	"sort"
	"time"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/domain/order"
	"travel-deals/internal/domain/user"
	"travel-deals/internal/infra"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/usecase/shared"

	"github.com/google/uuid"
)

type eventState string

const (
	eventQueued eventState = "queued"
	eventSent   eventState = "sent"
	eventFailed eventState = "failed"
)

type eventRow struct {
	ev        shared.OutboxEvent
	state     eventState
	lastError string
}

// memStore is an in-memory UnitOfWork. Within restores the previous state when
// fn fails, and fail injects an error into the named operation.
type memStore struct {
	orders      map[uuid.UUID]*order.Order
	deals       map[uuid.UUID]*deal.Deal
	options     map[uuid.UUID]*deal.Option
	purchasable map[uuid.UUID]*order.PurchasableOption
	users       map[uuid.UUID]*shared.UserSnapshot
	events      []*eventRow
	lastLogins  map[uuid.UUID]int

	fail        map[string]error
	withinCalls int
}

func newMemStore() *memStore {
	return &memStore{
		orders:      map[uuid.UUID]*order.Order{},
		deals:       map[uuid.UUID]*deal.Deal{},
		options:     map[uuid.UUID]*deal.Option{},
		purchasable: map[uuid.UUID]*order.PurchasableOption{},
		users:       map[uuid.UUID]*shared.UserSnapshot{},
		lastLogins:  map[uuid.UUID]int{},
		fail:        map[string]error{},
	}
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func (s *memStore) injected(op string) error {
	return s.fail[op]
}

type memSnapshot struct {
	orders     map[uuid.UUID]*order.Order
	deals      map[uuid.UUID]*deal.Deal
	options    map[uuid.UUID]*deal.Option
	users      map[uuid.UUID]*shared.UserSnapshot
	events     []eventRow
	lastLogins map[uuid.UUID]int
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		orders:     cloneMap(s.orders),
		deals:      cloneMap(s.deals),
		options:    cloneMap(s.options),
		users:      map[uuid.UUID]*shared.UserSnapshot{},
		lastLogins: cloneMap(s.lastLogins),
	}
	for id, u := range s.users {
		c := *u
		snap.users[id] = &c
	}
	for _, r := range s.events {
		snap.events = append(snap.events, *r)
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.orders, s.deals, s.options, s.users, s.lastLogins = snap.orders, snap.deals, snap.options, snap.users, snap.lastLogins
	s.events = nil
	for i := range snap.events {
		r := snap.events[i]
		s.events = append(s.events, &r)
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.withinCalls++
	snap := s.snapshot()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) CommandReads() shared.CommandReads {
	return memReads{s: s}
}

// Seeding helpers

func (s *memStore) addPurchasable(opt *order.PurchasableOption) {
	s.purchasable[opt.OptionID] = opt
}

func (s *memStore) addUser(u *shared.UserSnapshot) {
	c := *u
	s.users[u.ID] = &c
}

func (s *memStore) addOrder(o *order.Order) {
	s.orders[o.ID()] = copyOrder(o)
}

func (s *memStore) addDeal(d *deal.Deal, opts ...*deal.Option) {
	s.deals[d.ID()] = copyDeal(d)
	for _, o := range opts {
		s.options[o.ID()] = copyOption(o)
	}
}

func (s *memStore) addEvent(ev shared.OutboxEvent) {
	s.events = append(s.events, &eventRow{ev: ev, state: eventQueued})
}

func (s *memStore) eventsOfKind(kind string) []shared.OutboxEvent {
	var out []shared.OutboxEvent
	for _, r := range s.events {
		if r.ev.Kind == kind {
			out = append(out, r.ev)
		}
	}
	return out
}

func (s *memStore) eventState(id uuid.UUID) *eventRow {
	for _, r := range s.events {
		if r.ev.ID == id {
			return r
		}
	}
	return nil
}

func (s *memStore) dealOptions(dealID uuid.UUID) []*deal.Option {
	var out []*deal.Option
	for _, o := range s.options {
		if o.DealID() == dealID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func copyOrder(o *order.Order) *order.Order {
	return order.Reconstruct(o.ID(), o.UserID(), o.Status(), o.Subtotal(), o.Total(), o.Currency(),
		o.PaymentSessionID(), o.PaidAt(), slices.Clone(o.Items()), o.CreatedAt(), o.UpdatedAt())
}

func copyDeal(d *deal.Deal) *deal.Deal {
	return deal.ReconstructDeal(d.ID(), d.Slug(), d.Title(), d.Category(), d.Details(), d.IsActive(), d.CreatedAt(), d.UpdatedAt())
}

func copyOption(o *deal.Option) *deal.Option {
	return deal.ReconstructOption(o.ID(), o.DealID(), o.Name(), o.PriceCents(), o.OriginalPriceCents(),
		o.StockTotal(), o.StockSold(), o.Status())
}

type memTx struct{ s *memStore }

func (t *memTx) Orders() shared.OrderRepository           { return memOrders{s: t.s} }
func (t *memTx) Deals() shared.DealRepository             { return memDeals{s: t.s} }
func (t *memTx) Users() shared.UserRepository             { return memUsers{s: t.s} }
func (t *memTx) OrderEvents() shared.OrderEventRepository { return memEvents{s: t.s} }
func (t *memTx) Reads() shared.CommandReads               { return memReads{s: t.s} }
func (t *memTx) DB() pgquery.DBTX                         { return nil }

type memReads struct{ s *memStore }

func (r memReads) PurchasableOption(_ context.Context, optionID uuid.UUID) (*order.PurchasableOption, error) {
	if err := r.s.injected("PurchasableOption"); err != nil {
		return nil, err
	}
	opt, ok := r.s.purchasable[optionID]
	if !ok {
		return nil, notFound("option")
	}
	c := *opt
	return &c, nil
}

func (r memReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if err := r.s.injected("UserByID"); err != nil {
		return nil, err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	c := *u
	return &c, nil
}

func (r memReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	if err := r.s.injected("UserByEmail"); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, notFound("user")
}

func (r memReads) UserByGoogleID(_ context.Context, googleID string) (*shared.UserSnapshot, error) {
	for _, u := range r.s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			c := *u
			return &c, nil
		}
	}
	return nil, notFound("user")
}

type memOrders struct{ s *memStore }

func (r memOrders) Create(_ context.Context, _ pgquery.DBTX, o *order.Order) error {
	if err := r.s.injected("Orders.Create"); err != nil {
		return err
	}
	r.s.orders[o.ID()] = copyOrder(o)
	return nil
}

func (r memOrders) AttachSession(_ context.Context, _ pgquery.DBTX, orderID uuid.UUID, sessionID string) error {
	if err := r.s.injected("Orders.AttachSession"); err != nil {
		return err
	}
	o, ok := r.s.orders[orderID]
	if !ok || o.PaymentSessionID() != nil {
		return notFound("order")
	}
	updated := copyOrder(o)
	if err := updated.AttachSession(sessionID); err != nil {
		return err
	}
	r.s.orders[orderID] = updated
	return nil
}

func (r memOrders) FindForUpdate(_ context.Context, _ pgquery.DBTX, orderID uuid.UUID) (*order.Order, error) {
	if err := r.s.injected("Orders.FindForUpdate"); err != nil {
		return nil, err
	}
	o, ok := r.s.orders[orderID]
	if !ok {
		return nil, notFound("order")
	}
	return copyOrder(o), nil
}

func (r memOrders) MarkPaid(_ context.Context, _ pgquery.DBTX, o *order.Order, from []order.Status) (bool, error) {
	if err := r.s.injected("Orders.MarkPaid"); err != nil {
		return false, err
	}
	stored, ok := r.s.orders[o.ID()]
	if !ok || !slices.Contains(from, stored.Status()) {
		return false, nil
	}
	r.s.orders[o.ID()] = copyOrder(o)
	return true, nil
}

func (r memOrders) ListExpirable(_ context.Context, _ pgquery.DBTX, createdBefore time.Time, limit int32) ([]*order.Order, error) {
	if err := r.s.injected("Orders.ListExpirable"); err != nil {
		return nil, err
	}
	var out []*order.Order
	for _, o := range r.s.orders {
		if o.Status() == order.StatusCreated && o.CreatedAt().Before(createdBefore) {
			out = append(out, copyOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	if int32(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memOrders) Transition(_ context.Context, _ pgquery.DBTX, o *order.Order, from order.Status) (bool, error) {
	stored, ok := r.s.orders[o.ID()]
	if !ok || stored.Status() != from {
		return false, nil
	}
	r.s.orders[o.ID()] = copyOrder(o)
	return true, nil
}

type memDeals struct{ s *memStore }

func (r memDeals) Create(_ context.Context, _ pgquery.DBTX, d *deal.Deal) error {
	if err := r.s.injected("Deals.Create"); err != nil {
		return err
	}
	r.s.deals[d.ID()] = copyDeal(d)
	return nil
}

func (r memDeals) Update(_ context.Context, _ pgquery.DBTX, d *deal.Deal) error {
	if err := r.s.injected("Deals.Update"); err != nil {
		return err
	}
	if _, ok := r.s.deals[d.ID()]; !ok {
		return notFound("deal")
	}
	r.s.deals[d.ID()] = copyDeal(d)
	return nil
}

func (r memDeals) FindForUpdate(_ context.Context, _ pgquery.DBTX, id uuid.UUID) (*deal.Deal, error) {
	d, ok := r.s.deals[id]
	if !ok {
		return nil, notFound("deal")
	}
	return copyDeal(d), nil
}

func (r memDeals) SlugExists(_ context.Context, _ pgquery.DBTX, slug deal.Slug) (bool, error) {
	for _, d := range r.s.deals {
		if d.Slug().String() == slug.String() {
			return true, nil
		}
	}
	return false, nil
}

func (r memDeals) CreateOption(_ context.Context, _ pgquery.DBTX, opt *deal.Option) error {
	r.s.options[opt.ID()] = copyOption(opt)
	return nil
}

func (r memDeals) UpdateOption(_ context.Context, _ pgquery.DBTX, opt *deal.Option) error {
	if _, ok := r.s.options[opt.ID()]; !ok {
		return notFound("option")
	}
	r.s.options[opt.ID()] = copyOption(opt)
	return nil
}

func (r memDeals) FindOption(_ context.Context, _ pgquery.DBTX, id uuid.UUID) (*deal.Option, error) {
	o, ok := r.s.options[id]
	if !ok {
		return nil, notFound("option")
	}
	return copyOption(o), nil
}

func (r memDeals) FirstOption(_ context.Context, _ pgquery.DBTX, dealID uuid.UUID) (*deal.Option, error) {
	opts := r.s.dealOptions(dealID)
	if len(opts) == 0 {
		return nil, notFound("option")
	}
	return copyOption(opts[0]), nil
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, _ pgquery.DBTX, u *user.User) error {
	if err := r.s.injected("Users.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email().Value() {
			return infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		}
	}
	r.s.users[u.ID()] = &shared.UserSnapshot{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		GoogleID:     u.GoogleID(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
	return nil
}

func (r memUsers) LinkGoogleID(_ context.Context, _ pgquery.DBTX, userID uuid.UUID, googleID string) error {
	u, ok := r.s.users[userID]
	if !ok || u.GoogleID != nil {
		return notFound("user")
	}
	u.GoogleID = &googleID
	return nil
}

func (r memUsers) UpdateLastLogin(_ context.Context, _ pgquery.DBTX, userID uuid.UUID) error {
	if err := r.s.injected("Users.UpdateLastLogin"); err != nil {
		return err
	}
	r.s.lastLogins[userID]++
	return nil
}

type memEvents struct{ s *memStore }

func (r memEvents) Enqueue(_ context.Context, _ pgquery.DBTX, ev shared.OutboxEvent) error {
	if err := r.s.injected("OrderEvents.Enqueue"); err != nil {
		return err
	}
	r.s.addEvent(ev)
	return nil
}

func (r memEvents) ClaimQueued(_ context.Context, _ pgquery.DBTX, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	var out []shared.OutboxEvent
	for _, row := range r.s.events {
		if row.state == eventQueued && !row.ev.RunAt.After(now) {
			out = append(out, row.ev)
			if int32(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r memEvents) MarkSent(_ context.Context, _ pgquery.DBTX, id uuid.UUID) error {
	row := r.s.eventState(id)
	row.state = eventSent
	return nil
}

func (r memEvents) MarkRetry(_ context.Context, _ pgquery.DBTX, id uuid.UUID, lastError string, runAt time.Time) error {
	row := r.s.eventState(id)
	row.ev.Attempts++
	row.ev.RunAt = runAt
	row.lastError = lastError
	return nil
}

func (r memEvents) MarkFailed(_ context.Context, _ pgquery.DBTX, id uuid.UUID, lastError string) error {
	row := r.s.eventState(id)
	row.ev.Attempts++
	row.state = eventFailed
	row.lastError = lastError
	return nil
}
