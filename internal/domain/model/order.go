package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 注文（読み取り専用フィード。注文作成や決済はこのサービスでは扱わない）
type Order struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
	Status            OrderStatus `json:"status"`
	ShippingAddress   Address     `json:"shipping_address"`
	PaymentMethod     string      `json:"payment_method"`
	OrderDate         time.Time   `json:"order_date"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
}

// 注文時点の商品情報を保存する
type OrderItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default,omitempty"`
}
