package session

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Skotchmaster/sleepsound/internal/admin"
	"github.com/Skotchmaster/sleepsound/internal/events"
	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/internal/order"
	"github.com/Skotchmaster/sleepsound/internal/pricing"
	"github.com/Skotchmaster/sleepsound/internal/storage"
	"github.com/Skotchmaster/sleepsound/internal/users"
	"github.com/Skotchmaster/sleepsound/pkg/db"
	"github.com/Skotchmaster/sleepsound/pkg/hash"
)

func TestMain(m *testing.M) {
	hash.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

var testBranches = []string{"Andheri", "Thane"}

// flakyStore fails writes while broken is set.
type flakyStore struct {
	storage.Store
	broken atomic.Bool
}

func (s *flakyStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if s.broken.Load() {
		return errors.New("write refused")
	}
	return s.Store.SetMany(ctx, entries)
}

type harness struct {
	c       *Controller
	store   *flakyStore
	rec     *events.Recorder
	mu      sync.Mutex
	renders int
}

func (h *harness) Renders() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.renders
}

func newStore(t *testing.T) storage.Store {
	t.Helper()
	gdb, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	s, err := storage.NewGormStore(context.Background(), gdb)
	require.NoError(t, err)
	return s
}

func newHarnessWith(t *testing.T, store storage.Store, tweak func(*Options)) *harness {
	t.Helper()

	h := &harness{store: &flakyStore{Store: store}, rec: &events.Recorder{}}
	opts := Options{
		Store:            h.store,
		Publisher:        h.rec,
		Branches:         testBranches,
		CustomSizeDelay:  20 * time.Millisecond,
		SearchDelay:      10 * time.Millisecond,
		CarouselInterval: time.Hour,
		Now:              func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) },
		Notify: func(State) {
			h.mu.Lock()
			h.renders++
			h.mu.Unlock()
		},
	}
	if tweak != nil {
		tweak(&opts)
	}
	c, err := New(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	h.c = c
	return h
}

func newHarness(t *testing.T) *harness {
	return newHarnessWith(t, newStore(t), nil)
}

func TestNew_SeedsAdminsAndStartsIdle(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	h := newHarnessWith(t, store, nil)

	st := h.c.State()
	assert.Equal(t, ViewHome, st.View)
	assert.Empty(t, st.Cart)
	assert.True(t, st.CarouselRunning)

	saved := storage.Load(context.Background(), store, storage.KeyAdmins, []models.AdminAccount(nil))
	require.Len(t, saved, 1)
	assert.True(t, saved[0].IsMain)
}

func TestNew_RestoresAndToleratesCorruptData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		storage.KeyCart:     []byte(`{broken`),
		storage.KeyOrders:   []byte(`[{"id":"SS-2025-4444","total":500,"status":"Packed","branch":"Thane"}]`),
		storage.KeyProducts: []byte(`[{"id":1,"price":11111}]`),
		storage.KeyAdmins:   []byte(`"nope"`),
	}))

	h := newHarnessWith(t, store, nil)

	assert.Empty(t, h.c.State().Cart)

	o, steps, err := h.c.TrackOrder("SS-2025-4444")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPacked, o.Status)
	assert.True(t, steps[1].Current)

	p, err := h.c.Product(1)
	require.NoError(t, err)
	assert.EqualValues(t, 11111, p.Price)
	assert.Equal(t, "₹11,111", p.DisplayPrice)

	_, err = h.c.AdminLogin(ctx, admin.MainUsername, admin.MainPassword)
	assert.NoError(t, err)
}

func TestController_AddToCartMergesAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.AddToCart(ctx, 1, models.Selection{})
	require.NoError(t, err)
	line, err := h.c.AddToCart(ctx, 1, models.Selection{Size: pricing.SizeSingle, Dimensions: "72x30", Height: "4", Measurement: "Inches"})
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	st := h.c.State()
	require.Len(t, st.Cart, 1)
	assert.True(t, st.CartOpen)
	assert.Equal(t, 2, st.CartCount)
	assert.EqualValues(t, 2*12999, st.Subtotal)

	saved := storage.Load(ctx, h.store, storage.KeyCart, []models.CartLine(nil))
	require.Len(t, saved, 1)
	assert.Equal(t, 2, saved[0].Quantity)

	assert.Equal(t, []string{"line_added", "line_added"}, h.rec.Types(events.TopicCart))
	assert.Equal(t, 2, h.Renders())

	_, err = h.c.AddToCart(ctx, 999, models.Selection{})
	assert.Error(t, err)
}

func TestController_CartLineOps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.AddToCart(ctx, 1, models.Selection{})
	require.NoError(t, err)
	_, err = h.c.AddToCart(ctx, 2, models.Selection{Size: pricing.SizeQueen})
	require.NoError(t, err)

	line, err := h.c.UpdateQuantity(ctx, 0, -100)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	line, err = h.c.UpdateQuantity(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, line.Quantity)

	_, err = h.c.UpdateQuantity(ctx, 5, 1)
	assert.Error(t, err)
	require.Error(t, h.c.RemoveLine(ctx, -1))
	assert.Len(t, h.c.State().Cart, 2)

	require.NoError(t, h.c.RemoveLine(ctx, 0))
	st := h.c.State()
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 2, st.Cart[0].Product.ID)
}

func TestController_DetailPricingScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	p, err := h.c.SelectProduct(ctx, 1)
	require.NoError(t, err)
	st := h.c.State()
	require.NotNil(t, st.Detail)
	assert.EqualValues(t, p.Price, st.Detail.CurrentPrice)
	assert.False(t, st.CarouselRunning)

	d, err := h.c.UpdateDetail(ctx, FieldHeight, "8")
	require.NoError(t, err)
	assert.EqualValues(t, 14999, d.CurrentPrice)

	_, err = h.c.UpdateDetail(ctx, FieldHeight, "4")
	require.NoError(t, err)
	_, err = h.c.UpdateDetail(ctx, FieldDimensions, pricing.CustomDimensions)
	require.NoError(t, err)

	require.NoError(t, h.c.UpdateCustomSize(ctx, FieldCustomLength, "80"))
	require.NoError(t, h.c.UpdateCustomSize(ctx, FieldCustomLength, "84"))
	require.NoError(t, h.c.UpdateCustomSize(ctx, FieldCustomWidth, "36"))

	require.Eventually(t, func() bool {
		return h.c.State().Detail.CurrentPrice == 18699
	}, time.Second, 5*time.Millisecond)

	line, err := h.c.AddCurrentToCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, "84x36", line.Selection.Dimensions)
	assert.EqualValues(t, 18699, line.Price)
	assert.EqualValues(t, 18699, h.c.State().Subtotal)
}

func TestController_DetailValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.UpdateDetail(ctx, FieldSize, pricing.SizeKing)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, h.c.UpdateCustomSize(ctx, FieldCustomLength, "80"), ErrValidation)
	_, err = h.c.AddCurrentToCart(ctx)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = h.c.SelectProduct(ctx, 3)
	require.NoError(t, err)
	_, err = h.c.UpdateDetail(ctx, "colour", "red")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = h.c.UpdateDetail(ctx, FieldCustomWidth, "40")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, h.c.UpdateCustomSize(ctx, FieldSize, "King"), ErrValidation)
}

func TestController_CustomSizeDroppedWhenProductChanges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarnessWith(t, newStore(t), func(o *Options) { o.CustomSizeDelay = 30 * time.Millisecond })

	_, err := h.c.SelectProduct(ctx, 1)
	require.NoError(t, err)
	_, err = h.c.UpdateDetail(ctx, FieldDimensions, pricing.CustomDimensions)
	require.NoError(t, err)
	require.NoError(t, h.c.UpdateCustomSize(ctx, FieldCustomLength, "144"))

	p2, err := h.c.SelectProduct(ctx, 2)
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)
	st := h.c.State()
	assert.Equal(t, p2.ID, st.Product.ID)
	assert.EqualValues(t, p2.Price, st.Detail.CurrentPrice)
}

func TestController_AddCurrentSettlesPendingCustomSize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarnessWith(t, newStore(t), func(o *Options) { o.CustomSizeDelay = time.Hour })

	_, err := h.c.SelectProduct(ctx, 1)
	require.NoError(t, err)
	_, err = h.c.UpdateDetail(ctx, FieldDimensions, pricing.CustomDimensions)
	require.NoError(t, err)
	require.NoError(t, h.c.UpdateCustomSize(ctx, FieldCustomLength, "84"))
	require.NoError(t, h.c.UpdateCustomSize(ctx, FieldCustomWidth, "36"))
	assert.NotEqualValues(t, 18699, h.c.State().Detail.CurrentPrice, "recompute still pending")

	line, err := h.c.AddCurrentToCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, "84x36", line.Selection.Dimensions)
	assert.EqualValues(t, 18699, line.Price)
	assert.EqualValues(t, 18699, line.Product.Price)

	st := h.c.State()
	assert.EqualValues(t, 18699, st.Detail.CurrentPrice)
	assert.EqualValues(t, 18699, st.Subtotal)
	assert.False(t, h.c.debounce.Pending(keyCustomSize))
}

func TestController_ReturnedOrdersDoNotAliasHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.AddToCart(ctx, 1, models.Selection{})
	require.NoError(t, err)
	placed, err := h.c.ConfirmOrder(ctx, "Andheri")
	require.NoError(t, err)

	placed.Items[0].Quantity = 50
	tracked, _, err := h.c.TrackOrder(placed.ID)
	require.NoError(t, err)
	tracked.Items[0].Quantity = 99
	tracked.Items[0].Price = 1
	h.c.State().LastOrder.Items[0].Quantity = 77
	listed, err := h.c.AdminOrders(admin.MainID)
	require.NoError(t, err)
	listed[0].Items[0].Price = 2

	stored, _, err := h.c.TrackOrder(placed.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 1, stored.Items[0].Quantity)
	assert.EqualValues(t, 12999, stored.Items[0].Price)
	assert.Equal(t, stored.Total, stored.Items[0].LineTotal())
	assert.Equal(t, 1, h.c.State().LastOrder.Items[0].Quantity)
}

func TestController_ConfirmOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.AddToCart(ctx, 1, models.Selection{})
	require.NoError(t, err)
	_, err = h.c.AddToCart(ctx, 3, models.Selection{})
	require.NoError(t, err)

	_, err = h.c.ConfirmOrder(ctx, "  ")
	assert.ErrorIs(t, err, order.ErrValidation)
	assert.Len(t, h.c.State().Cart, 2)

	o, err := h.c.ConfirmOrder(ctx, "Thane")
	require.NoError(t, err)
	assert.Regexp(t, `^SS-2026-\d{4}$`, o.ID)
	assert.EqualValues(t, 12999+8999, o.Total)
	assert.Equal(t, models.GuestCustomer, o.Customer)

	st := h.c.State()
	assert.Empty(t, st.Cart)
	assert.Equal(t, ViewTracking, st.View)
	require.NotNil(t, st.LastOrder)
	assert.Equal(t, o.ID, st.LastOrder.ID)

	assert.Empty(t, storage.Load(ctx, h.store, storage.KeyCart, []models.CartLine{{}}))
	saved := storage.Load(ctx, h.store, storage.KeyOrders, []models.Order(nil))
	require.Len(t, saved, 1)
	assert.Equal(t, o.ID, saved[0].ID)

	assert.Equal(t, []string{"order_placed"}, h.rec.Types(events.TopicOrder))

	empty, err := h.c.ConfirmOrder(ctx, "Andheri")
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	orders, err := h.c.AdminOrders(admin.MainID)
	require.NoError(t, err)
	assert.Equal(t, empty.ID, orders[0].ID)
}

func TestController_ConfirmOrderWriteFailureKeepsCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.AddToCart(ctx, 1, models.Selection{})
	require.NoError(t, err)

	h.store.broken.Store(true)
	_, err = h.c.ConfirmOrder(ctx, "Thane")
	assert.ErrorIs(t, err, ErrPersist)

	st := h.c.State()
	assert.Len(t, st.Cart, 1)
	assert.Nil(t, st.LastOrder)
	orders, err := h.c.AdminOrders(admin.MainID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, h.rec.Types(events.TopicOrder))
}

func TestController_ConfirmOrderUsesLoggedInUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.RegisterUser(ctx, "Asha", "asha@example.com", "pw", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Asha", h.c.State().User.Name)

	o, err := h.c.ConfirmOrder(ctx, "Andheri")
	require.NoError(t, err)
	assert.Equal(t, models.Customer{Name: "Asha", Email: "asha@example.com"}, o.Customer)
}

func TestController_TrackOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	_, _, err := h.c.TrackOrder("   ")
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = h.c.TrackOrder("SS-2026-0000")
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestController_UserAccounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)
	h := newHarnessWith(t, store, nil)

	require.NoError(t, h.c.ToggleAuth(ctx, true))
	assert.True(t, h.c.State().AuthOpen)

	_, err := h.c.RegisterUser(ctx, "Asha", "asha@example.com", "pw", "px")
	assert.ErrorIs(t, err, users.ErrValidation)

	_, err = h.c.RegisterUser(ctx, "Asha", "asha@example.com", "pw", "pw")
	require.NoError(t, err)
	assert.False(t, h.c.State().AuthOpen)

	require.NoError(t, h.c.Logout(ctx))
	assert.Nil(t, h.c.State().User)

	_, err = h.c.LoginUser(ctx, "asha@example.com", "bad")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)

	// a fresh session on the same store sees the account
	h2 := newHarnessWith(t, store, nil)
	u, err := h2.c.LoginUser(ctx, "asha@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)
	assert.Equal(t, []string{"user_registered"}, h.rec.Types(events.TopicUser))
}

func TestController_SearchDebounce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.SelectProduct(ctx, 1)
	require.NoError(t, err)

	h.c.Search(ctx, "so")
	h.c.Search(ctx, "sofa")
	assert.Equal(t, "sofa", h.c.State().SearchQuery)

	require.Eventually(t, func() bool {
		return h.c.State().Product == nil
	}, time.Second, 5*time.Millisecond)

	ids := []int{}
	for _, p := range h.c.Products() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{4, 9}, ids)
}

func TestController_Navigation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	require.Error(t, h.c.SelectCategory(ctx, "Garden"))
	require.NoError(t, h.c.OpenCategoryModal(ctx, "Office"))
	assert.Equal(t, "Office", h.c.State().CategoryModal)

	require.NoError(t, h.c.SelectCategory(ctx, "Office"))
	st := h.c.State()
	assert.Equal(t, "Office", st.SelectedCategory)
	assert.Empty(t, st.CategoryModal)
	assert.Len(t, h.c.Products(), 3)

	require.NoError(t, h.c.SetSubFilter(ctx, "Bookshelves"))
	assert.Len(t, h.c.Products(), 1)
	require.NoError(t, h.c.SetSubFilter(ctx, "Bookshelves"))
	assert.Len(t, h.c.Products(), 3)

	require.NoError(t, h.c.ToggleCheckout(ctx, true))
	assert.False(t, h.c.State().CartOpen)

	require.NoError(t, h.c.GoToAdmin(ctx))
	st = h.c.State()
	assert.Equal(t, ViewAdminLogin, st.View)
	assert.False(t, st.CheckoutOpen)
	assert.Empty(t, st.SelectedCategory)

	require.NoError(t, h.c.GoHome(ctx))
	assert.Equal(t, ViewHome, h.c.State().View)

	require.Error(t, h.c.SetSlide(ctx, 3))
	require.NoError(t, h.c.SetSlide(ctx, 2))
	assert.Equal(t, 2, h.c.State().Slide)
}

func TestController_Carousel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarnessWith(t, newStore(t), func(o *Options) { o.CarouselInterval = 5 * time.Millisecond })

	require.Eventually(t, func() bool {
		return h.c.State().Slide != 0
	}, time.Second, time.Millisecond)

	_, err := h.c.SelectProduct(ctx, 1)
	require.NoError(t, err)
	st := h.c.State()
	assert.False(t, st.CarouselRunning)
	frozen := st.Slide
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, frozen, h.c.State().Slide)
	assert.Less(t, frozen, DefaultSlides)

	require.NoError(t, h.c.GoHome(ctx))
	assert.True(t, h.c.State().CarouselRunning)

	require.NoError(t, h.c.ToggleAuth(ctx, true))
	assert.False(t, h.c.State().CarouselRunning)
}

func TestController_AdminConsole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)
	h := newHarnessWith(t, store, nil)

	_, err := h.c.AddToCart(ctx, 1, models.Selection{})
	require.NoError(t, err)
	o, err := h.c.ConfirmOrder(ctx, "Andheri")
	require.NoError(t, err)

	_, err = h.c.AdminLogin(ctx, admin.MainUsername, "wrong")
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	main, err := h.c.AdminLogin(ctx, admin.MainUsername, admin.MainPassword)
	require.NoError(t, err)
	assert.Equal(t, ViewAdmin, h.c.State().View)
	id, ok := h.c.AdminID()
	require.True(t, ok)
	assert.Equal(t, main.ID, id)

	_, err = h.c.UpdateOrderStatus(ctx, 404, o.ID, models.StatusPacked)
	assert.ErrorIs(t, err, admin.ErrForbidden)
	_, err = h.c.UpdateOrderStatus(ctx, main.ID, o.ID, "Lost")
	assert.ErrorIs(t, err, order.ErrValidation)

	updated, err := h.c.UpdateOrderStatus(ctx, main.ID, o.ID, models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)
	back, err := h.c.UpdateOrderStatus(ctx, main.ID, o.ID, models.StatusPacked)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPacked, back.Status)

	stats, err := h.c.AdminStats(main.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.EqualValues(t, 12999, stats.TotalSales)
	assert.Equal(t, order.BranchStats{Branch: "Andheri", Count: 1, Sales: 12999}, stats.Branches[0])

	p, err := h.c.SetPrice(ctx, main.ID, 1, 9999)
	require.NoError(t, err)
	assert.Equal(t, "₹9,999", p.DisplayPrice)
	_, err = h.c.SetPrice(ctx, main.ID, 1, 0)
	assert.Error(t, err)
	_, err = h.c.SetPrice(ctx, main.ID, 999, 10)
	assert.Error(t, err)

	_, err = h.c.RemoveAdmin(ctx, main.ID, main.ID)
	assert.ErrorIs(t, err, admin.ErrMainAdmin)

	assert.Equal(t, []string{"order_placed", "order_status_updated", "order_status_updated"}, h.rec.Types(events.TopicOrder))
	assert.Equal(t, []string{"price_updated"}, h.rec.Types(events.TopicProduct))

	// prices and statuses survive a restart
	h2 := newHarnessWith(t, store, nil)
	p, err = h2.c.Product(1)
	require.NoError(t, err)
	assert.EqualValues(t, 9999, p.Price)
	got, _, err := h2.c.TrackOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPacked, got.Status)
}

func TestController_AdminAccounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t)

	req, err := h.c.AdminRegister(ctx, "ravi", "pw", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.AdminPending, req.Status)

	_, err = h.c.AdminLogin(ctx, "ravi", "pw")
	assert.ErrorIs(t, err, admin.ErrPending)
	_, err = h.c.AdminOrders(req.ID)
	assert.ErrorIs(t, err, admin.ErrForbidden)

	_, err = h.c.ApproveAdmin(ctx, req.ID, req.ID)
	assert.ErrorIs(t, err, admin.ErrForbidden)

	approved, err := h.c.ApproveAdmin(ctx, admin.MainID, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AdminApproved, approved.Status)

	_, err = h.c.AdminLogin(ctx, "ravi", "pw")
	require.NoError(t, err)
	_, err = h.c.AdminOrders(req.ID)
	require.NoError(t, err)

	accounts, err := h.c.AdminAccounts(req.ID)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	// removing the signed-in account ends the session
	_, err = h.c.RemoveAdmin(ctx, admin.MainID, req.ID)
	require.NoError(t, err)
	st := h.c.State()
	assert.Nil(t, st.Admin)
	assert.Equal(t, ViewHome, st.View)

	_, err = h.c.RejectAdmin(ctx, admin.MainID, req.ID)
	assert.ErrorIs(t, err, admin.ErrNotFound)

	assert.Equal(t,
		[]string{"admin_requested", "admin_approved", "admin_logged_in", "admin_removed"},
		h.rec.Types(events.TopicAdmin))
}

func TestController_Quote(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	cfg := pricing.DefaultConfiguration()
	cfg.Thickness = "8"

	q, err := h.c.Quote(1, cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 14999, q.Price)
	assert.Equal(t, 35, q.DiscountPercent)

	_, err = h.c.Quote(404, cfg)
	assert.Error(t, err)
}
