package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

type CartItemDTO struct {
	Product  ProductDTO `json:"product"`
	Quantity int        `json:"quantity"`
}

type CartResponse struct {
	Items      []CartItemDTO `json:"items"`
	TotalItems int           `json:"total_items"`
	TotalPrice float64       `json:"total_price"`
}

type AddCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func mustDecodeCart(t *testing.T, body []byte) CartResponse {
	t.Helper()
	var v CartResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(CartResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func Test_Cart_AddDuplicate_Patch_Delete_Clear(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()
	access := registerAndLogin(t, c, ctx)

	//GET /cart 初回は空であるか
	resp, body := c.doJSON(ctx, t, http.MethodGet, "/cart", access, nil)
	requireStatus(t, resp, http.StatusOK, body)

	cart := mustDecodeCart(t, body)
	if len(cart.Items) != 0 || cart.TotalItems != 0 {
		t.Fatalf("cart should be empty: body=%s", string(body))
	}

	//POST /cartでqty=2を追加できるか
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/cart", access, mustMarshal(t, AddCartRequest{ProductID: "1", Quantity: 2}))
	requireStatus(t, resp, http.StatusOK, body)

	cart = mustDecodeCart(t, body)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("cart should have qty=2: body=%s", string(body))
	}

	//同一商品を qty=1 で追加すると合計3になるか
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/cart", access, mustMarshal(t, AddCartRequest{ProductID: "1", Quantity: 1}))
	requireStatus(t, resp, http.StatusOK, body)

	cart = mustDecodeCart(t, body)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("quantity should be 3 after duplicate add: body=%s", string(body))
	}

	//PATCH /cart/{productId} で qty=5 に変更できるか
	resp, body = c.doJSON(ctx, t, http.MethodPatch, "/cart/1", access, mustMarshal(t, UpdateCartItemRequest{Quantity: 5}))
	requireStatus(t, resp, http.StatusOK, body)

	cart = mustDecodeCart(t, body)
	if cart.Items[0].Quantity != 5 || cart.TotalItems != 5 {
		t.Fatalf("quantity should be 5 after patch: body=%s", string(body))
	}

	//qty=0へのPATCHは削除と同じ
	resp, body = c.doJSON(ctx, t, http.MethodPatch, "/cart/1", access, mustMarshal(t, UpdateCartItemRequest{Quantity: 0}))
	requireStatus(t, resp, http.StatusOK, body)

	cart = mustDecodeCart(t, body)
	if len(cart.Items) != 0 {
		t.Fatalf("patch to 0 should remove item: body=%s", string(body))
	}

	//複数商品を入れてDELETE /cartで全消し
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/cart", access, mustMarshal(t, AddCartRequest{ProductID: "1", Quantity: 1}))
	requireStatus(t, resp, http.StatusOK, body)
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/cart", access, mustMarshal(t, AddCartRequest{ProductID: "3", Quantity: 1}))
	requireStatus(t, resp, http.StatusOK, body)

	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/cart", access, nil)
	requireStatus(t, resp, http.StatusOK, body)

	cart = mustDecodeCart(t, body)
	if len(cart.Items) != 0 || cart.TotalPrice != 0 {
		t.Fatalf("cart should be empty after clear: body=%s", string(body))
	}
}

func Test_Cart_TotalPriceUsesSnapshotPrice(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()
	access := registerAndLogin(t, c, ctx)

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/cart", access, mustMarshal(t, AddCartRequest{ProductID: "1", Quantity: 2}))
	requireStatus(t, resp, http.StatusOK, body)

	cart := mustDecodeCart(t, body)
	want := cart.Items[0].Product.Price * 2
	if cart.TotalPrice != want {
		t.Fatalf("total=%v want=%v body=%s", cart.TotalPrice, want, string(body))
	}
}

func Test_Cart_InvalidAdds(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()
	access := registerAndLogin(t, c, ctx)

	//qty=0は400
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/cart", access, mustMarshal(t, AddCartRequest{ProductID: "1", Quantity: 0}))
	requireStatus(t, resp, http.StatusBadRequest, body)

	er := mustDecodeError(t, body)
	if er.Error != "invalid quantity" {
		t.Fatalf("error should be 'invalid quantity': body=%s", string(body))
	}

	//存在しない商品は400
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/cart", access, mustMarshal(t, AddCartRequest{ProductID: "no-such-id", Quantity: 1}))
	requireStatus(t, resp, http.StatusBadRequest, body)

	//在庫なし商品（seedのid=8）は400
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/cart", access, mustMarshal(t, AddCartRequest{ProductID: "8", Quantity: 1}))
	requireStatus(t, resp, http.StatusBadRequest, body)

	er = mustDecodeError(t, body)
	if er.Error != "out of stock" {
		t.Fatalf("error should be 'out of stock': body=%s", string(body))
	}
}

func Test_Cart_RequiresAuth(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/cart", "", nil)
	requireStatus(t, resp, http.StatusUnauthorized, body)
}
