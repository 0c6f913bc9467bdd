package model

// カートの明細
// 追加時点の商品スナップショットを必ず保存。
// 後から商品の価格や在庫が変わっても明細には反映しない。
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
