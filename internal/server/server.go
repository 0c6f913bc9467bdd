package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlersはルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Wishlist     *handler.WishlistHandler
	Order        *handler.OrderHandler
	Notification *handler.NotificationHandler
}

// Newはルート登録済みのechoを作る。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	h.Auth.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg)
	h.Wishlist.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Notification.RegisterRoutes(e, cfg)

	return e
}

// Serverを起動する
func Start(addr string, cfg config.Config, h Handlers) error {
	return New(cfg, h).Start(addr)
}
