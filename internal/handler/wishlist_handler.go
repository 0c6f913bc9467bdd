package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /wishlistのHTTP
type WishlistHandler struct {
	uc *usecase.WishlistUsecase
}

// DI
func NewWishlistHandler(uc *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

type AddWishlistRequest struct {
	ProductID string `json:"product_id"`
}

type WishlistMembershipResponse struct {
	InWishlist bool `json:"in_wishlist"`
}

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/wishlist")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.getWishlist)
	g.POST("", h.add)
	g.GET("/:productId", h.contains)
	g.DELETE("/:productId", h.remove)
}

func (h *WishlistHandler) getWishlist(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *WishlistHandler) add(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToWishlist(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *WishlistHandler) contains(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	in, err := h.uc.Contains(c.Request().Context(), userID, c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, WishlistMembershipResponse{InWishlist: in})
}

func (h *WishlistHandler) remove(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.RemoveFromWishlist(c.Request().Context(), userID, c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
