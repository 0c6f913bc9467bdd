package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products と /categories の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.GET("/categories", h.categories)
}

func (h *ProductHandler) list(c echo.Context) error {
	category := c.QueryParam("category")
	search := c.QueryParam("search")
	sortKey := c.QueryParam("sortKey")

	//minPrice/maxPriceは数値として読めない場合「未指定」として扱う
	var minPrice *float64
	if v := c.QueryParam("minPrice"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			minPrice = &x
		}
	}

	var maxPrice *float64
	if v := c.QueryParam("maxPrice"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			maxPrice = &x
		}
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Category: category,
		Search:   search,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		SortKey:  sortKey,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProductDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.ListCategories(c.Request().Context()))
}
