package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/catalog"
	"app/internal/domain/model"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ProductUsecaseは公開カタログの検索と詳細。
type ProductUsecase struct {
	catalog *catalog.Catalog
}

// DI
func NewProductUsecase(c *catalog.Catalog) *ProductUsecase {
	return &ProductUsecase{catalog: c}
}

// GET /productsの入力DTO
// MinPrice/MaxPriceはパース済みの値を受け取る（不正な文字列はhandler側で未指定にする）
type ListProductsInput struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	SortKey  string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if len(in.Search) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}

	items := catalog.Apply(u.catalog.Products(), catalog.Query{
		Category: strings.TrimSpace(in.Category),
		Search:   strings.TrimSpace(in.Search),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     catalog.ParseSortKey(in.SortKey), // 未知のキーはnewest
	})

	return ProductListOutput{
		Items: items,
		Total: len(items),
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, ok := u.catalog.FindByID(productID)
	if !ok {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}

func (u *ProductUsecase) ListCategories(ctx context.Context) []model.Category {
	return u.catalog.Categories()
}
