package cart

import (
	"errors"
	"fmt"

	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/internal/pricing"
)

var ErrValidation = errors.New("validation")

// Ledger is an immutable view of the cart: every mutation returns a new
// Ledger and leaves the receiver untouched.
type Ledger struct {
	lines []models.CartLine
}

func New(lines []models.CartLine) Ledger {
	out := make([]models.CartLine, 0, len(lines))
	for _, l := range lines {
		l = l.Clone()
		l.Selection = NormalizeSelection(l.Selection)
		if l.Quantity < 1 {
			l.Quantity = 1
		}
		out = append(out, l)
	}
	return Ledger{lines: out}
}

func NormalizeSelection(s models.Selection) models.Selection {
	if s.Size == "" {
		s.Size = pricing.SizeSingle
	}
	if s.Dimensions == "" {
		s.Dimensions = pricing.DefaultDimensions
	}
	if s.Height == "" {
		s.Height = pricing.DefaultThickness
	}
	if s.Measurement == "" {
		s.Measurement = string(pricing.Inches)
	}
	return s
}

// SelectionFor resolves a detail-page configuration into the snapshot a cart
// line keeps. Custom dimensions become a literal "LxW".
func SelectionFor(cfg pricing.Configuration) models.Selection {
	return models.Selection{
		Size:        cfg.Size,
		Dimensions:  cfg.ResolvedDimensions(),
		Height:      cfg.Thickness,
		Measurement: string(cfg.Measurement),
	}
}

func (l Ledger) find(productID int, sel models.Selection) int {
	for i, line := range l.lines {
		if line.Product.ID == productID && line.Selection == sel {
			return i
		}
	}
	return -1
}

func (l Ledger) copyLines() []models.CartLine {
	out := make([]models.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// Add merges into an existing line with the same product and selection or
// appends a new one. A non-nil price overrides the committed unit price; on a
// new line it defaults to the product price.
func (l Ledger) Add(p models.Product, sel models.Selection, price *int64) (Ledger, models.CartLine) {
	sel = NormalizeSelection(sel)
	lines := l.copyLines()

	if i := l.find(p.ID, sel); i >= 0 {
		line := lines[i]
		line.Quantity++
		if price != nil {
			line.Price = *price
		}
		lines[i] = line
		return Ledger{lines: lines}, line
	}

	line := models.CartLine{
		Product:   p.Clone(),
		Selection: sel,
		Quantity:  1,
		Price:     p.Price,
	}
	if price != nil {
		line.Price = *price
	}
	lines = append(lines, line)
	return Ledger{lines: lines}, line
}

func (l Ledger) checkIndex(index int) error {
	if index < 0 || index >= len(l.lines) {
		return fmt.Errorf("%w: line index %d out of range [0,%d)", ErrValidation, index, len(l.lines))
	}
	return nil
}

func (l Ledger) Remove(index int) (Ledger, models.CartLine, error) {
	if err := l.checkIndex(index); err != nil {
		return l, models.CartLine{}, err
	}
	removed := l.lines[index]
	lines := make([]models.CartLine, 0, len(l.lines)-1)
	lines = append(lines, l.lines[:index]...)
	lines = append(lines, l.lines[index+1:]...)
	return Ledger{lines: lines}, removed, nil
}

// UpdateQuantity applies delta with a floor of 1. Use Remove to drop a line.
func (l Ledger) UpdateQuantity(index, delta int) (Ledger, models.CartLine, error) {
	if err := l.checkIndex(index); err != nil {
		return l, models.CartLine{}, err
	}
	lines := l.copyLines()
	line := lines[index]
	line.Quantity = max(1, line.Quantity+delta)
	lines[index] = line
	return Ledger{lines: lines}, line, nil
}

func (l Ledger) Subtotal() int64 {
	var total int64
	for _, line := range l.lines {
		total += line.LineTotal()
	}
	return total
}

func (l Ledger) ItemCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

func (l Ledger) Len() int { return len(l.lines) }

func (l Ledger) Line(index int) (models.CartLine, bool) {
	if l.checkIndex(index) != nil {
		return models.CartLine{}, false
	}
	return l.lines[index].Clone(), true
}

// Snapshot deep-copies the lines.
func (l Ledger) Snapshot() []models.CartLine {
	out := make([]models.CartLine, len(l.lines))
	for i, line := range l.lines {
		out[i] = line.Clone()
	}
	return out
}
