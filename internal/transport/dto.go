package transport

import (
	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/internal/order"
	"github.com/Skotchmaster/sleepsound/internal/pricing"
)

type ProductListResponse struct {
	Items []models.Product `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

type SearchResponse struct {
	Query string           `json:"query"`
	Items []models.Product `json:"items"`
	Total int64            `json:"total"`
}

type QuoteRequest struct {
	pricing.Configuration
}

type AddToCartRequest struct {
	ProductID int              `json:"product_id"`
	Selection models.Selection `json:"selection"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

type CartResponse struct {
	Items     []models.CartLine `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  int64             `json:"subtotal"`
}

type DetailRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type CheckoutRequest struct {
	Branch string `json:"branch"`
}

type TrackingResponse struct {
	Order models.Order `json:"order"`
	Steps []order.Step `json:"steps"`
}

type RegisterUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminRegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AdminLoginResponse struct {
	Account   AdminView `json:"account"`
	ExpiresAt int64     `json:"expires_at"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type SetPriceRequest struct {
	Price int64 `json:"price"`
}

// AdminView is an admin account without its password hash.
type AdminView struct {
	ID       int64              `json:"id"`
	Username string             `json:"username"`
	Role     models.AdminRole   `json:"role"`
	Status   models.AdminStatus `json:"status"`
	IsMain   bool               `json:"is_main"`
}

func NewAdminView(a models.AdminAccount) AdminView {
	return AdminView{ID: a.ID, Username: a.Username, Role: a.Role, Status: a.Status, IsMain: a.IsMain}
}

func NewAdminViews(accounts []models.AdminAccount) []AdminView {
	out := make([]AdminView, len(accounts))
	for i, a := range accounts {
		out[i] = NewAdminView(a)
	}
	return out
}

type AdminAccountsResponse struct {
	Accounts []AdminView `json:"accounts"`
	Pending  []AdminView `json:"pending"`
}
