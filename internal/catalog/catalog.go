package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"app/internal/domain/model"
)

//go:embed seed.json
var seedJSON []byte

type seed struct {
	Products   []model.Product  `json:"products"`
	Categories []model.Category `json:"categories"`
	Orders     []model.Order    `json:"orders"`
}

// Catalogは静的な商品フィード。読み取り専用で、コアからは一切変更しない。
type Catalog struct {
	products   []model.Product
	byID       map[string]model.Product
	categories []model.Category
	orders     []model.Order
}

// Loadは同梱のシードデータからカタログを作る。
func Load() (*Catalog, error) {
	var s seed
	if err := json.Unmarshal(seedJSON, &s); err != nil {
		return nil, fmt.Errorf("catalog seed: %w", err)
	}
	return New(s.Products, s.Categories, s.Orders), nil
}

// Newはテストなどで任意のデータからカタログを作る。
func New(products []model.Product, categories []model.Category, orders []model.Order) *Catalog {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products:   products,
		byID:       byID,
		categories: categories,
		orders:     orders,
	}
}

// 商品一覧（カタログの元の並び順）
func (c *Catalog) Products() []model.Product {
	return c.products
}

func (c *Catalog) FindByID(id string) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Categories() []model.Category {
	return c.categories
}

// 指定ユーザーの注文フィード
func (c *Catalog) OrdersByUserID(userID string) []model.Order {
	out := make([]model.Order, 0)
	for _, o := range c.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
