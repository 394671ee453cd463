package queries

import (
	"context"

	"travel-deals/internal/infra"
	"travel-deals/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

const orderHistoryLimit = 50

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]OrderListItem, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderListItem, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{
		readStore: readStore,
	}
}

// GetOrder hides other users' orders behind the same not-found answer.
func (q *orderQueriesImpl) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if view.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderListItem, error) {
	return q.readStore.ListByUser(ctx, userID, orderHistoryLimit)
}
