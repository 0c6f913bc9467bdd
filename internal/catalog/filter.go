package catalog

import (
	"sort"
	"strings"

	"app/internal/domain/model"
)

type SortKey string

const (
	SortNewest    SortKey = "newest" // カタログの元の並びを保つ
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortReviews   SortKey = "reviews"
)

// 未知のキーはnewest扱い
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortReviews:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Queryは1回の絞り込み条件。URLクエリから組み立てる想定で、永続化しない。
type Query struct {
	Category string   // 空なら条件なし。categoryに対する部分一致（大文字小文字無視）
	Search   string   // name / description / brand のいずれかに部分一致
	MinPrice *float64 // 下限（含む）
	MaxPrice *float64 // 上限（含む）
	Sort     SortKey
}

// Applyはカタログとクエリから並び替え済みの商品列を作る純関数。
// 入力のスライスは変更せず、常に新しいスライスを返す。
func Apply(products []model.Product, q Query) []model.Product {
	category := strings.ToLower(q.Category)
	search := strings.ToLower(q.Search)

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	//同値は元の相対順を保つ（stable必須）
	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortReviews:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Reviews > filtered[j].Reviews })
	default:
		// newest：並び替えなし
	}

	return filtered
}

func matchesSearch(p model.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Brand), search)
}
