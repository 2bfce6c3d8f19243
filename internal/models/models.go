package models

import (
	"time"
)

type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	SubCategory   string   `json:"sub_category,omitempty"`
	Price         int64    `json:"price"`
	DisplayPrice  string   `json:"display_price"`
	OriginalPrice int64    `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Description   string   `json:"description"`
	Badge         string   `json:"badge,omitempty"`
	SKU           string   `json:"sku"`
	Features      []string `json:"features"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Features = append([]string(nil), p.Features...)
	return out
}

type Selection struct {
	Size        string `json:"selected_size"`
	Dimensions  string `json:"selected_dimensions"`
	Height      string `json:"selected_height"`
	Measurement string `json:"selected_measurement"`
}

type CartLine struct {
	Product   Product   `json:"product"`
	Selection Selection `json:"selection"`
	Quantity  int       `json:"quantity"`
	Price     int64     `json:"price"`
}

func (l CartLine) Clone() CartLine {
	out := l
	out.Product = l.Product.Clone()
	return out
}

func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Order Placed"
	StatusPacked         OrderStatus = "Packed"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// OrderLifecycle is the fixed tracking sequence, in order.
var OrderLifecycle = []OrderStatus{
	StatusPlaced,
	StatusPacked,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s OrderStatus) Index() int {
	for i, st := range OrderLifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) Valid() bool {
	return s.Index() >= 0
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

var GuestCustomer = Customer{Name: "Guest", Email: "guest@example.com"}

type Order struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"date"`
	Total     int64       `json:"total"`
	Status    OrderStatus `json:"status"`
	Branch    string      `json:"branch"`
	Items     []CartLine  `json:"items"`
	Customer  Customer    `json:"customer"`
}

// Clone returns a copy whose items share nothing with o.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]CartLine, len(o.Items))
		for i, l := range o.Items {
			out.Items[i] = l.Clone()
		}
	}
	return out
}

// CloneOrders deep-copies a history.
func CloneOrders(orders []Order) []Order {
	if orders == nil {
		return nil
	}
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

func (u User) Customer() Customer {
	return Customer{Name: u.Name, Email: u.Email}
}

type AdminRole string

const (
	RoleSuper AdminRole = "super"
	RoleAdmin AdminRole = "admin"
)

type AdminStatus string

const (
	AdminPending  AdminStatus = "pending"
	AdminApproved AdminStatus = "approved"
	AdminRejected AdminStatus = "rejected"
)

type AdminAccount struct {
	ID           int64       `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"password_hash"`
	Role         AdminRole   `json:"role"`
	Status       AdminStatus `json:"status"`
	IsMain       bool        `json:"is_main"`
}
