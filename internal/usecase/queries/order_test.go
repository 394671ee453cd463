//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"travel-deals/internal/infra"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/queries"
	"travel-deals/tests/common/builder"
	queriesmock "travel-deals/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_GetOrder(t *testing.T) {
	owner := uuid.New()
	view := builder.NewOrderBuilder().WithUser(owner).BuildView()

	testCases := []struct {
		name    string
		userID  uuid.UUID
		found   *queries.OrderView
		findErr error
		errIs   error
	}{
		{name: "owner sees the order", userID: owner, found: view},
		{name: "other user gets not found", userID: uuid.New(), found: view, errIs: queries.ErrOrderNotFound},
		{name: "missing order", userID: owner, findErr: infra.WrapRepoErr("order not found", nil, infra.KindNotFound), errIs: queries.ErrOrderNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockOrderReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), view.ID).Return(tc.found, tc.findErr)

			got, err := queries.NewOrderQueries(store).GetOrder(context.Background(), tc.userID, view.ID)
			if tc.errIs != nil {
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, tc.errIs))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestOrderQueries_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOrderReadStore(ctrl)
	userID := uuid.New()
	items := []queries.OrderListItem{builder.NewOrderBuilder().WithUser(userID).BuildListItem()}

	store.EXPECT().ListByUser(gomock.Any(), userID, int32(50)).Return(items, nil)
	got, err := queries.NewOrderQueries(store).ListOrders(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	store.EXPECT().ListByUser(gomock.Any(), userID, int32(50)).Return(nil, errors.New("db down"))
	_, err = queries.NewOrderQueries(store).ListOrders(context.Background(), userID)
	assert.Error(t, err)
}
