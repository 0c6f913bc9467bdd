package usecase

import (
	"context"
	"net/http"

	"app/internal/catalog"
	"app/internal/domain/model"
	"app/internal/notify"
	"app/internal/store"
)

// CartUsecaseは /cart の業務ロジック。
// 商品の解決はカタログで行い、明細にはその時点のスナップショットを入れる。
type CartUsecase struct {
	catalog  *catalog.Catalog
	stores   *store.Registry
	notifier notify.Sink
}

// DI
func NewCartUsecase(c *catalog.Catalog, stores *store.Registry, notifier notify.Sink) *CartUsecase {
	return &CartUsecase{
		catalog:  c,
		stores:   stores,
		notifier: notifier,
	}
}

type CartResponse struct {
	Items      []model.CartItem `json:"items"`
	TotalItems int              `json:"total_items"`
	TotalPrice float64          `json:"total_price"`
}

// OAS: AddCartRequest
type AddCartInput struct {
	ProductID string
	Quantity  int
}

func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.buildCartResponse(ctx, userID), nil
}

// AddToCartはカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, ok := u.catalog.FindByID(in.ProductID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if !p.InStock {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}

	u.stores.Cart(ctx, userID).Add(ctx, p, in.Quantity)
	u.notifier.Success("Added to cart", p.Name+" has been added to your cart")

	return u.buildCartResponse(ctx, userID), nil
}

// 数量変更（絶対値）。0以下は削除と同じ。無いIDは何もしない。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID string, productID string, quantity int) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart := u.stores.Cart(ctx, userID)
	if removed := cart.SetQuantity(ctx, productID, quantity); removed {
		u.notifier.Info("Item removed from cart", "")
	}

	return u.buildCartResponse(ctx, userID), nil
}

// 明細削除（冪等）
func (u *CartUsecase) RemoveItem(ctx context.Context, userID string, productID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart := u.stores.Cart(ctx, userID)
	it, existed := cart.Get(productID)
	if cart.Remove(ctx, productID) && existed {
		u.notifier.Info("Removed from cart", it.Product.Name+" has been removed from your cart")
	}

	return u.buildCartResponse(ctx, userID), nil
}

func (u *CartUsecase) ClearCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	u.stores.Cart(ctx, userID).Clear(ctx)
	u.notifier.Success("Cart cleared", "All items have been removed from your cart")

	return u.buildCartResponse(ctx, userID), nil
}

func (u *CartUsecase) buildCartResponse(ctx context.Context, userID string) CartResponse {
	cart := u.stores.Cart(ctx, userID)
	return CartResponse{
		Items:      cart.Items(),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}
