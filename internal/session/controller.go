package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Skotchmaster/sleepsound/internal/admin"
	"github.com/Skotchmaster/sleepsound/internal/cart"
	"github.com/Skotchmaster/sleepsound/internal/catalog"
	"github.com/Skotchmaster/sleepsound/internal/debounce"
	"github.com/Skotchmaster/sleepsound/internal/events"
	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/internal/order"
	"github.com/Skotchmaster/sleepsound/internal/pricing"
	"github.com/Skotchmaster/sleepsound/internal/storage"
	"github.com/Skotchmaster/sleepsound/internal/users"
	"github.com/Skotchmaster/sleepsound/pkg/logging"
)

var (
	ErrValidation = errors.New("validation")
	ErrPersist    = errors.New("persist failed")
)

const (
	DefaultCustomSizeDelay  = 500 * time.Millisecond
	DefaultSearchDelay      = 150 * time.Millisecond
	DefaultCarouselInterval = 6 * time.Second
	DefaultSlides           = 3

	keyCustomSize = "custom_size"
	keySearch     = "search"
)

type Options struct {
	Store     storage.Store
	Publisher events.Publisher
	Branches  []string

	CustomSizeDelay  time.Duration
	SearchDelay      time.Duration
	CarouselInterval time.Duration
	Slides           int

	// Notify runs after every committed action, outside the controller lock.
	Notify func(State)

	Now  func() time.Time
	Rand func(n int) int
}

func (o *Options) setDefaults() {
	if o.Publisher == nil {
		o.Publisher = events.Nop{}
	}
	if len(o.Branches) == 0 {
		o.Branches = catalog.DefaultBranches
	}
	if o.CustomSizeDelay <= 0 {
		o.CustomSizeDelay = DefaultCustomSizeDelay
	}
	if o.SearchDelay <= 0 {
		o.SearchDelay = DefaultSearchDelay
	}
	if o.CarouselInterval <= 0 {
		o.CarouselInterval = DefaultCarouselInterval
	}
	if o.Slides <= 0 {
		o.Slides = DefaultSlides
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Controller owns the shopping session. Actions run one at a time under mu;
// each one computes the next values with the pure ledgers, persists them,
// swaps them in, then publishes and notifies.
type Controller struct {
	mu sync.Mutex

	opts      Options
	store     storage.Store
	pub       events.Publisher
	processor *order.Processor
	debounce  *debounce.Scheduler

	catalog catalog.Catalog
	cart    cart.Ledger
	book    order.Book
	users   users.Directory
	admins  admin.Registry

	user  *models.User
	admin *models.AdminAccount

	view          View
	category      string
	subFilter     string
	search        string
	product       *models.Product
	detail        Detail
	cartOpen      bool
	authOpen      bool
	checkoutOpen  bool
	categoryModal string
	lastOrder     *models.Order

	slide    int
	carousel chan struct{}
	closed   bool
}

// New restores the session from the store. Unreadable collections fall back
// to their defaults; the admin list is seeded and written back when missing.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrValidation)
	}
	opts.setDefaults()
	l := logging.FromContext(ctx).With("svc", "session.new")

	c := &Controller{
		opts:      opts,
		store:     opts.Store,
		pub:       opts.Publisher,
		processor: order.NewProcessor(opts.Branches),
		debounce:  debounce.New(),
		view:      ViewHome,
	}
	c.processor.Now = opts.Now
	if opts.Rand != nil {
		c.processor.Rand = opts.Rand
	}

	c.cart = cart.New(storage.Load(ctx, c.store, storage.KeyCart, []models.CartLine{}))
	c.book = order.NewBook(storage.Load(ctx, c.store, storage.KeyOrders, []models.Order{}))
	c.users = users.New(storage.Load(ctx, c.store, storage.KeyUsers, []models.User{}))
	c.catalog = catalog.Seed().ApplyPrices(storage.Load(ctx, c.store, storage.KeyProducts, []models.Product{}))

	stored := storage.Load(ctx, c.store, storage.KeyAdmins, []models.AdminAccount(nil))
	admins, err := admin.New(stored)
	if err != nil {
		return nil, err
	}
	c.admins = admins
	if len(stored) != len(admins.Accounts()) {
		if err := storage.Save(ctx, c.store, map[string]any{storage.KeyAdmins: admins.Accounts()}); err != nil {
			l.Warn("seed_admins_error", "error", err)
		}
	}

	c.mu.Lock()
	c.syncCarouselLocked()
	c.mu.Unlock()

	l.Info("session_restored", "cart_lines", c.cart.Len(), "orders", c.book.Len(), "users", c.users.Len())
	return c, nil
}

// Close stops timers. Pending debounced actions are dropped.
func (c *Controller) Close() {
	c.debounce.Close()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopCarouselLocked()
}

type change struct {
	save  map[string]any
	apply func()

	topic string
	key   string
	event map[string]any
}

// run executes fn under the lock. Nothing from fn is applied unless the save
// succeeds.
func (c *Controller) run(ctx context.Context, fn func() (change, error)) error {
	c.mu.Lock()
	ch, err := fn()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if len(ch.save) > 0 {
		if err := storage.Save(ctx, c.store, ch.save); err != nil {
			c.mu.Unlock()
			logging.FromContext(ctx).Error("persist_error", "type", ch.event["type"], "error", err)
			return fmt.Errorf("%w: %v", ErrPersist, err)
		}
	}
	if ch.apply != nil {
		ch.apply()
	}
	c.syncCarouselLocked()
	st := c.stateLocked()
	c.mu.Unlock()

	if ch.event != nil {
		events.Emit(ctx, c.pub, ch.topic, ch.key, ch.event)
	}
	c.notify(st)
	return nil
}

func (c *Controller) notify(st State) {
	if c.opts.Notify != nil {
		c.opts.Notify(st)
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) Branches() []string {
	return append([]string(nil), c.opts.Branches...)
}

// Products lists the catalog narrowed by the active search, category and sub
// filter.
func (c *Controller) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Filter(catalog.Query{Search: c.search, Category: c.category, SubCategory: c.subFilter})
}

func (c *Controller) Catalog() catalog.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog
}

func (c *Controller) Product(id int) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Get(id)
}

// Quote prices a configuration for a product without touching session state.
func (c *Controller) Quote(id int, cfg pricing.Configuration) (catalog.PriceDisplay, error) {
	p, err := c.Product(id)
	if err != nil {
		return catalog.PriceDisplay{}, err
	}
	return catalog.Display(p, pricing.Compute(p.Price, cfg)), nil
}

// navigation

func (c *Controller) GoHome(ctx context.Context) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: func() {
			c.category = ""
			c.product = nil
			c.subFilter = ""
			c.search = ""
			c.view = ViewHome
		}}, nil
	})
}

func (c *Controller) OpenCategoryModal(ctx context.Context, category string) error {
	return c.run(ctx, func() (change, error) {
		if !validCategory(category) {
			return change{}, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
		}
		return change{apply: func() { c.categoryModal = category }}, nil
	})
}

func (c *Controller) CloseCategoryModal(ctx context.Context) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: func() { c.categoryModal = "" }}, nil
	})
}

func validCategory(category string) bool {
	for _, cat := range catalog.Categories() {
		if cat == category {
			return true
		}
	}
	return false
}

func (c *Controller) SelectCategory(ctx context.Context, category string) error {
	return c.run(ctx, func() (change, error) {
		if !validCategory(category) {
			return change{}, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
		}
		return change{apply: func() {
			c.category = category
			c.product = nil
			c.categoryModal = ""
			c.subFilter = ""
			c.search = ""
			c.view = ViewHome
		}}, nil
	})
}

// SetSubFilter toggles: selecting the active filter again clears it.
func (c *Controller) SetSubFilter(ctx context.Context, filter string) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: func() {
			if c.subFilter == filter {
				c.subFilter = ""
			} else {
				c.subFilter = filter
			}
		}}, nil
	})
}

func (c *Controller) SetSlide(ctx context.Context, index int) error {
	return c.run(ctx, func() (change, error) {
		if index < 0 || index >= c.opts.Slides {
			return change{}, fmt.Errorf("%w: slide %d out of range", ErrValidation, index)
		}
		return change{apply: func() { c.slide = index }}, nil
	})
}

func (c *Controller) GoToTracking(ctx context.Context) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: c.goToTrackingLocked}, nil
	})
}

func (c *Controller) goToTrackingLocked() {
	c.view = ViewTracking
	c.product = nil
	c.category = ""
}

func (c *Controller) GoToAdmin(ctx context.Context) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: func() {
			if c.admin != nil {
				c.view = ViewAdmin
			} else {
				c.view = ViewAdminLogin
			}
			c.product = nil
			c.category = ""
			c.cartOpen = false
			c.authOpen = false
			c.checkoutOpen = false
			c.categoryModal = ""
		}}, nil
	})
}

// Search stores the query at once and settles the view after the search
// delay. A newer query replaces a pending one.
func (c *Controller) Search(ctx context.Context, query string) {
	c.mu.Lock()
	c.search = query
	c.syncCarouselLocked()
	c.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	c.debounce.Schedule(keySearch, c.opts.SearchDelay, func() {
		_ = c.run(bg, func() (change, error) {
			return change{apply: func() {
				c.product = nil
				c.view = ViewHome
			}}, nil
		})
	})
}

// modals

func (c *Controller) ToggleCart(ctx context.Context, open bool) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: func() { c.cartOpen = open }}, nil
	})
}

func (c *Controller) ToggleCheckout(ctx context.Context, open bool) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: func() {
			c.checkoutOpen = open
			if open {
				c.cartOpen = false
			}
		}}, nil
	})
}

func (c *Controller) ToggleAuth(ctx context.Context, open bool) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: func() {
			c.authOpen = open
			if open {
				c.cartOpen = false
				c.categoryModal = ""
				c.checkoutOpen = false
			}
		}}, nil
	})
}

// product detail

func (c *Controller) SelectProduct(ctx context.Context, id int) (models.Product, error) {
	var selected models.Product
	err := c.run(ctx, func() (change, error) {
		p, err := c.catalog.Get(id)
		if err != nil {
			return change{}, err
		}
		selected = p
		return change{apply: func() {
			c.debounce.Cancel(keyCustomSize)
			c.product = &p
			c.view = ViewHome
			c.detail = Detail{Config: pricing.DefaultConfiguration(), CurrentPrice: p.Price}
		}}, nil
	})
	return selected, err
}

// detail fields accepted by UpdateDetail and UpdateCustomSize
const (
	FieldSize         = "size"
	FieldDimensions   = "dimensions"
	FieldMeasurement  = "measurement"
	FieldHeight       = "height"
	FieldCustomLength = "customLength"
	FieldCustomWidth  = "customWidth"
)

func setField(cfg *pricing.Configuration, field, value string) error {
	switch field {
	case FieldSize:
		cfg.Size = value
	case FieldDimensions:
		cfg.Dimensions = value
	case FieldMeasurement:
		cfg.Measurement = pricing.Unit(value)
	case FieldHeight:
		cfg.Thickness = value
	case FieldCustomLength:
		cfg.CustomLength = value
	case FieldCustomWidth:
		cfg.CustomWidth = value
	default:
		return fmt.Errorf("%w: unknown detail field %q", ErrValidation, field)
	}
	return nil
}

// UpdateDetail changes a discrete option and reprices immediately.
func (c *Controller) UpdateDetail(ctx context.Context, field, value string) (Detail, error) {
	var out Detail
	err := c.run(ctx, func() (change, error) {
		if c.product == nil {
			return change{}, fmt.Errorf("%w: no product open", ErrValidation)
		}
		if field == FieldCustomLength || field == FieldCustomWidth {
			return change{}, fmt.Errorf("%w: %s is debounced, use UpdateCustomSize", ErrValidation, field)
		}
		cfg := c.detail.Config
		if err := setField(&cfg, field, value); err != nil {
			return change{}, err
		}
		out = Detail{Config: cfg, CurrentPrice: pricing.Compute(c.product.Price, cfg)}
		return change{apply: func() { c.detail = out }}, nil
	})
	return out, err
}

// UpdateCustomSize records a typed custom length or width and reprices once
// typing has been quiet for the custom size delay.
func (c *Controller) UpdateCustomSize(ctx context.Context, field, value string) error {
	if field != FieldCustomLength && field != FieldCustomWidth {
		return fmt.Errorf("%w: unknown custom size field %q", ErrValidation, field)
	}

	c.mu.Lock()
	if c.product == nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: no product open", ErrValidation)
	}
	if err := setField(&c.detail.Config, field, value); err != nil {
		c.mu.Unlock()
		return err
	}
	productID := c.product.ID
	c.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	c.debounce.Schedule(keyCustomSize, c.opts.CustomSizeDelay, func() {
		_ = c.run(bg, func() (change, error) {
			if c.product == nil || c.product.ID != productID {
				return change{}, nil
			}
			price := pricing.Compute(c.product.Price, c.detail.Config)
			return change{apply: func() { c.detail.CurrentPrice = price }}, nil
		})
	})
	return nil
}

// cart

func (c *Controller) addLocked(p models.Product, sel models.Selection, price *int64) (change, models.CartLine) {
	next, line := c.cart.Add(p, sel, price)
	return change{
		save: map[string]any{storage.KeyCart: next.Snapshot()},
		apply: func() {
			c.cart = next
			c.cartOpen = true
		},
		topic: events.TopicCart,
		key:   fmt.Sprint(p.ID),
		event: map[string]any{
			"type":       "line_added",
			"product_id": p.ID,
			"selection":  line.Selection,
			"quantity":   line.Quantity,
			"price":      line.Price,
		},
	}, line
}

// AddToCart adds a product at its catalog price. The cart opens afterwards.
func (c *Controller) AddToCart(ctx context.Context, productID int, sel models.Selection) (models.CartLine, error) {
	var line models.CartLine
	err := c.run(ctx, func() (change, error) {
		p, err := c.catalog.Get(productID)
		if err != nil {
			return change{}, err
		}
		var ch change
		ch, line = c.addLocked(p, sel, nil)
		return ch, nil
	})
	return line, err
}

// AddCurrentToCart commits the open product with its configured price.
func (c *Controller) AddCurrentToCart(ctx context.Context) (models.CartLine, error) {
	var line models.CartLine
	err := c.run(ctx, func() (change, error) {
		if c.product == nil {
			return change{}, fmt.Errorf("%w: no product open", ErrValidation)
		}
		// settles any pending custom size recompute
		price := pricing.Compute(c.product.Price, c.detail.Config)
		p := c.product.Clone()
		p.Price = price
		var ch change
		ch, line = c.addLocked(p, cart.SelectionFor(c.detail.Config), &price)
		commit := ch.apply
		ch.apply = func() {
			c.debounce.Cancel(keyCustomSize)
			c.detail.CurrentPrice = price
			commit()
		}
		return ch, nil
	})
	return line, err
}

func (c *Controller) RemoveLine(ctx context.Context, index int) error {
	return c.run(ctx, func() (change, error) {
		next, removed, err := c.cart.Remove(index)
		if err != nil {
			return change{}, err
		}
		return change{
			save:  map[string]any{storage.KeyCart: next.Snapshot()},
			apply: func() { c.cart = next },
			topic: events.TopicCart,
			key:   fmt.Sprint(removed.Product.ID),
			event: map[string]any{"type": "line_removed", "product_id": removed.Product.ID, "index": index},
		}, nil
	})
}

func (c *Controller) UpdateQuantity(ctx context.Context, index, delta int) (models.CartLine, error) {
	var line models.CartLine
	err := c.run(ctx, func() (change, error) {
		next, updated, err := c.cart.UpdateQuantity(index, delta)
		if err != nil {
			return change{}, err
		}
		line = updated
		return change{
			save:  map[string]any{storage.KeyCart: next.Snapshot()},
			apply: func() { c.cart = next },
			topic: events.TopicCart,
			key:   fmt.Sprint(updated.Product.ID),
			event: map[string]any{"type": "quantity_updated", "product_id": updated.Product.ID, "quantity": updated.Quantity},
		}, nil
	})
	return line, err
}

// orders

// ConfirmOrder places the cart as an order and empties the cart in the same
// write. The view moves to tracking.
func (c *Controller) ConfirmOrder(ctx context.Context, branch string) (models.Order, error) {
	var placed models.Order
	err := c.run(ctx, func() (change, error) {
		var customer *models.Customer
		if c.user != nil {
			cust := c.user.Customer()
			customer = &cust
		}
		book, o, err := c.processor.Place(c.book, c.cart, branch, customer)
		if err != nil {
			return change{}, err
		}
		placed = o
		empty := cart.Ledger{}
		return change{
			save: map[string]any{
				storage.KeyOrders: book.Orders(),
				storage.KeyCart:   empty.Snapshot(),
			},
			apply: func() {
				c.book = book
				c.cart = empty
				c.checkoutOpen = false
				c.lastOrder = &o
				c.goToTrackingLocked()
			},
			topic: events.TopicOrder,
			key:   o.ID,
			event: map[string]any{
				"type":     "order_placed",
				"order_id": o.ID,
				"total":    o.Total,
				"branch":   o.Branch,
				"items":    len(o.Items),
				"customer": o.Customer.Email,
			},
		}, nil
	})
	return placed, err
}

// TrackOrder looks an order up by its exact id.
func (c *Controller) TrackOrder(id string) (models.Order, []order.Step, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Order{}, nil, fmt.Errorf("%w: order id required", ErrValidation)
	}
	c.mu.Lock()
	o, err := c.book.FindByID(id)
	c.mu.Unlock()
	if err != nil {
		return models.Order{}, nil, err
	}
	return o, order.TrackingSteps(o), nil
}

// shopper accounts

func (c *Controller) RegisterUser(ctx context.Context, name, email, password, confirm string) (models.User, error) {
	var created models.User
	err := c.run(ctx, func() (change, error) {
		dir, u, err := c.users.Register(name, email, password, confirm, c.opts.Now())
		if err != nil {
			return change{}, err
		}
		created = u
		return change{
			save: map[string]any{storage.KeyUsers: dir.Users()},
			apply: func() {
				c.users = dir
				c.user = &u
				c.authOpen = false
			},
			topic: events.TopicUser,
			key:   fmt.Sprint(u.ID),
			event: map[string]any{"type": "user_registered", "user_id": u.ID},
		}, nil
	})
	return created, err
}

func (c *Controller) LoginUser(ctx context.Context, email, password string) (models.User, error) {
	var found models.User
	err := c.run(ctx, func() (change, error) {
		u, err := c.users.Login(email, password)
		if err != nil {
			return change{}, err
		}
		found = u
		return change{apply: func() {
			c.user = &u
			c.authOpen = false
		}}, nil
	})
	return found, err
}

// Logout ends both the shopper and the admin session.
func (c *Controller) Logout(ctx context.Context) error {
	return c.run(ctx, func() (change, error) {
		return change{apply: c.logoutLocked}, nil
	})
}

func (c *Controller) logoutLocked() {
	c.user = nil
	c.admin = nil
	if c.view == ViewAdmin {
		c.view = ViewHome
	}
}
