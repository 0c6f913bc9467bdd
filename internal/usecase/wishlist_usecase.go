package usecase

import (
	"context"
	"net/http"

	"app/internal/catalog"
	"app/internal/domain/model"
	"app/internal/notify"
	"app/internal/store"
)

// WishlistUsecaseは /wishlist の業務ロジック。
type WishlistUsecase struct {
	catalog  *catalog.Catalog
	stores   *store.Registry
	notifier notify.Sink
}

// DI
func NewWishlistUsecase(c *catalog.Catalog, stores *store.Registry, notifier notify.Sink) *WishlistUsecase {
	return &WishlistUsecase{
		catalog:  c,
		stores:   stores,
		notifier: notifier,
	}
}

type WishlistResponse struct {
	Items []model.Product `json:"items"`
	Count int             `json:"count"`
}

func (u *WishlistUsecase) GetWishlist(ctx context.Context, userID string) (WishlistResponse, error) {
	if userID == "" {
		return WishlistResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.buildResponse(ctx, userID), nil
}

// 冪等な追加。既に入っていても200で現状を返す。
func (u *WishlistUsecase) AddToWishlist(ctx context.Context, userID string, productID string) (WishlistResponse, error) {
	if userID == "" {
		return WishlistResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return WishlistResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, ok := u.catalog.FindByID(productID)
	if !ok {
		return WishlistResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if added := u.stores.Wishlist(ctx, userID).Add(ctx, p); added {
		u.notifier.Success("Added to wishlist", p.Name+" has been added to your wishlist")
	}

	return u.buildResponse(ctx, userID), nil
}

// 冪等な削除。
func (u *WishlistUsecase) RemoveFromWishlist(ctx context.Context, userID string, productID string) (WishlistResponse, error) {
	if userID == "" {
		return WishlistResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return WishlistResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	wl := u.stores.Wishlist(ctx, userID)
	p, existed := wl.Get(productID)
	if wl.Remove(ctx, productID) && existed {
		u.notifier.Info("Removed from wishlist", p.Name+" has been removed from your wishlist")
	}

	return u.buildResponse(ctx, userID), nil
}

func (u *WishlistUsecase) Contains(ctx context.Context, userID string, productID string) (bool, error) {
	if userID == "" {
		return false, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.stores.Wishlist(ctx, userID).Contains(productID), nil
}

func (u *WishlistUsecase) buildResponse(ctx context.Context, userID string) WishlistResponse {
	items := u.stores.Wishlist(ctx, userID).Items()
	return WishlistResponse{
		Items: items,
		Count: len(items),
	}
}
