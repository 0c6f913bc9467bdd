package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/notify"
	"app/internal/store"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistUsecase() (*usecase.WishlistUsecase, *notify.Feed) {
	feed := notify.NewFeed()
	uc := usecase.NewWishlistUsecase(fixtureCatalog(), store.NewRegistry(newMemStore()), feed)
	return uc, feed
}

func TestWishlistUsecase_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, feed := newWishlistUsecase()

	out, err := uc.AddToWishlist(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)

	n := lastNotification(t, feed)
	assert.Equal(t, notify.TypeSuccess, n.Type)
	assert.Equal(t, "Added to wishlist", n.Title)

	//再追加は状態も通知も増やさない
	before := len(feed.Items())
	out, err = uc.AddToWishlist(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
	assert.Len(t, feed.Items(), before)
}

func TestWishlistUsecase_AddUnknownProduct(t *testing.T) {
	uc, _ := newWishlistUsecase()

	_, err := uc.AddToWishlist(context.Background(), "u1", "no-such-id")
	assertHTTPError(t, err, http.StatusBadRequest, "invalid product_id")
}

func TestWishlistUsecase_Contains(t *testing.T) {
	ctx := context.Background()
	uc, _ := newWishlistUsecase()

	in, err := uc.Contains(ctx, "u1", "1")
	require.NoError(t, err)
	assert.False(t, in)

	_, err = uc.AddToWishlist(ctx, "u1", "1")
	require.NoError(t, err)

	in, err = uc.Contains(ctx, "u1", "1")
	require.NoError(t, err)
	assert.True(t, in)
}

func TestWishlistUsecase_Remove(t *testing.T) {
	ctx := context.Background()
	uc, feed := newWishlistUsecase()

	_, err := uc.AddToWishlist(ctx, "u1", "2")
	require.NoError(t, err)

	out, err := uc.RemoveFromWishlist(ctx, "u1", "2")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)

	n := lastNotification(t, feed)
	assert.Equal(t, notify.TypeInfo, n.Type)
	assert.Contains(t, n.Message, "Handbag")

	//存在しないものを消しても200で通知なし
	before := len(feed.Items())
	out, err = uc.RemoveFromWishlist(ctx, "u1", "2")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.Len(t, feed.Items(), before)
}

func TestWishlistUsecase_Unauthorized(t *testing.T) {
	uc, _ := newWishlistUsecase()
	ctx := context.Background()

	_, err := uc.GetWishlist(ctx, "")
	assertHTTPError(t, err, http.StatusUnauthorized, "unauthorized")

	_, err = uc.AddToWishlist(ctx, "", "1")
	assertHTTPError(t, err, http.StatusUnauthorized, "unauthorized")
}

func TestOrderUsecase_ListOrders(t *testing.T) {
	uc := usecase.NewOrderUsecase(fixtureCatalog())

	out, err := uc.ListOrders(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)

	_, err = uc.ListOrders(context.Background(), "")
	assertHTTPError(t, err, http.StatusUnauthorized, "unauthorized")
}
