package model

// カタログの商品。ProductCatalog側が持つ読み取り専用データ。
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"original_price,omitempty"` // 割引前の参考価格（price以上）
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory,omitempty"`
	Brand          string            `json:"brand"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"in_stock"`
	Tags           []string          `json:"tags"`
	Variants       []ProductVariant  `json:"variants,omitempty"`
	Specifications map[string]string `json:"specifications"`
}

// 商品バリエーション（色・サイズなど）
type ProductVariant struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Value string   `json:"value"`
	Price *float64 `json:"price,omitempty"`
	Image string   `json:"image,omitempty"`
}

type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Subcategories []string `json:"subcategories"`
}
