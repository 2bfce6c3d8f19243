package session

import (
	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/internal/pricing"
)

type View string

const (
	ViewHome       View = "home"
	ViewTracking   View = "tracking"
	ViewAdmin      View = "admin"
	ViewAdminLogin View = "adminLogin"
)

// Detail is the in-progress configuration of the open product.
type Detail struct {
	Config       pricing.Configuration `json:"config"`
	CurrentPrice int64                 `json:"current_price"`
}

// State is a read-only snapshot handed to the render callback.
type State struct {
	View View `json:"view"`

	Cart      []models.CartLine `json:"cart"`
	CartCount int               `json:"cart_count"`
	Subtotal  int64             `json:"subtotal"`
	CartOpen  bool              `json:"cart_open"`

	User  *models.Customer     `json:"user,omitempty"`
	Admin *models.AdminAccount `json:"admin,omitempty"`

	SelectedCategory string `json:"selected_category,omitempty"`
	SubFilter        string `json:"sub_filter,omitempty"`
	SearchQuery      string `json:"search_query,omitempty"`

	Product *models.Product `json:"product,omitempty"`
	Detail  *Detail         `json:"detail,omitempty"`

	AuthOpen      bool   `json:"auth_open"`
	CheckoutOpen  bool   `json:"checkout_open"`
	CategoryModal string `json:"category_modal,omitempty"`

	LastOrder *models.Order `json:"last_order,omitempty"`

	Slide           int  `json:"slide"`
	CarouselRunning bool `json:"carousel_running"`
}

// idle reports whether the home page is showing with nothing open on top.
func (c *Controller) idleLocked() bool {
	return c.product == nil &&
		c.category == "" &&
		c.search == "" &&
		c.view == ViewHome &&
		!c.authOpen &&
		!c.checkoutOpen &&
		c.categoryModal == ""
}

func (c *Controller) stateLocked() State {
	st := State{
		View:             c.view,
		Cart:             c.cart.Snapshot(),
		CartCount:        c.cart.ItemCount(),
		Subtotal:         c.cart.Subtotal(),
		CartOpen:         c.cartOpen,
		SelectedCategory: c.category,
		SubFilter:        c.subFilter,
		SearchQuery:      c.search,
		AuthOpen:         c.authOpen,
		CheckoutOpen:     c.checkoutOpen,
		CategoryModal:    c.categoryModal,
		Slide:            c.slide,
		CarouselRunning:  c.carousel != nil,
	}
	if c.user != nil {
		cust := c.user.Customer()
		st.User = &cust
	}
	if c.admin != nil {
		a := *c.admin
		a.PasswordHash = ""
		st.Admin = &a
	}
	if c.product != nil {
		p := c.product.Clone()
		st.Product = &p
		d := c.detail
		st.Detail = &d
	}
	if c.lastOrder != nil {
		o := c.lastOrder.Clone()
		st.LastOrder = &o
	}
	return st
}
