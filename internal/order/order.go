package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/Skotchmaster/sleepsound/internal/cart"
	"github.com/Skotchmaster/sleepsound/internal/models"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
)

// Book is the order history, most recent first. Methods return a new Book.
type Book struct {
	orders []models.Order
}

func NewBook(orders []models.Order) Book {
	return Book{orders: models.CloneOrders(orders)}
}

func (b Book) Orders() []models.Order {
	return models.CloneOrders(b.orders)
}

func (b Book) Len() int { return len(b.orders) }

// FindByID returns the most recent order with the exact id.
func (b Book) FindByID(id string) (models.Order, error) {
	for _, o := range b.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return models.Order{}, fmt.Errorf("%w: order %q", ErrNotFound, id)
}

// UpdateStatus sets any lifecycle status, forward or backward.
func (b Book) UpdateStatus(id string, status models.OrderStatus) (Book, models.Order, error) {
	if !status.Valid() {
		return b, models.Order{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	for i, o := range b.orders {
		if o.ID == id {
			orders := slices.Clone(b.orders)
			o.Status = status
			orders[i] = o
			return Book{orders: orders}, o.Clone(), nil
		}
	}
	return b, models.Order{}, fmt.Errorf("%w: order %q", ErrNotFound, id)
}

type Processor struct {
	Branches []string
	Now      func() time.Time
	Rand     func(n int) int
}

func NewProcessor(branches []string) *Processor {
	return &Processor{
		Branches: branches,
		Now:      time.Now,
		Rand:     rand.IntN,
	}
}

// NewID builds SS-<year>-<1000..9999>. Ids are not checked for uniqueness.
func (p *Processor) NewID(now time.Time) string {
	return fmt.Sprintf("SS-%04d-%d", now.Year(), 1000+p.Rand(9000))
}

func (p *Processor) validBranch(branch string) bool {
	if len(p.Branches) == 0 {
		return true
	}
	return slices.Contains(p.Branches, branch)
}

// Place snapshots the cart into a new order at the front of the book. The
// caller swaps in the returned book and an empty cart together.
func (p *Processor) Place(book Book, c cart.Ledger, branch string, customer *models.Customer) (Book, models.Order, error) {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return book, models.Order{}, fmt.Errorf("%w: branch required", ErrValidation)
	}
	if !p.validBranch(branch) {
		return book, models.Order{}, fmt.Errorf("%w: unknown branch %q", ErrValidation, branch)
	}

	cust := models.GuestCustomer
	if customer != nil {
		cust = *customer
	}

	now := p.Now()
	o := models.Order{
		ID:        p.NewID(now),
		CreatedAt: now.UTC(),
		Total:     c.Subtotal(),
		Status:    models.StatusPlaced,
		Branch:    branch,
		Items:     c.Snapshot(),
		Customer:  cust,
	}

	orders := make([]models.Order, 0, len(book.orders)+1)
	orders = append(orders, o)
	orders = append(orders, book.orders...)
	return Book{orders: orders}, o.Clone(), nil
}

type Step struct {
	Label     models.OrderStatus `json:"label"`
	Completed bool               `json:"completed"`
	Current   bool               `json:"current"`
}

func TrackingSteps(o models.Order) []Step {
	idx := o.Status.Index()
	steps := make([]Step, len(models.OrderLifecycle))
	for i, st := range models.OrderLifecycle {
		steps[i] = Step{
			Label:     st,
			Completed: i <= idx,
			Current:   i == idx,
		}
	}
	return steps
}

type BranchStats struct {
	Branch string `json:"branch"`
	Count  int    `json:"count"`
	Sales  int64  `json:"sales"`
}

type Stats struct {
	TotalOrders int           `json:"total_orders"`
	TotalSales  int64         `json:"total_sales"`
	Branches    []BranchStats `json:"branches"`
}

// Stats aggregates the book per configured branch. Orders from branches
// outside the list count toward the totals only.
func (b Book) Stats(branches []string) Stats {
	s := Stats{Branches: make([]BranchStats, len(branches))}
	index := make(map[string]int, len(branches))
	for i, br := range branches {
		s.Branches[i] = BranchStats{Branch: br}
		index[br] = i
	}
	for _, o := range b.orders {
		s.TotalOrders++
		s.TotalSales += o.Total
		if i, ok := index[o.Branch]; ok {
			s.Branches[i].Count++
			s.Branches[i].Sales += o.Total
		}
	}
	return s
}
