// Package cart accumulates the breads a customer brings to the counter,
// either entered by hand or reported by the vision detector.
package cart

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ddbb-bakery/pos/internal/catalog"
)

// DefaultThreshold is the minimum detector confidence counted as an item.
const DefaultThreshold = 0.70

// Detection is one object the detector found on the tray.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Line is one product in the cart.
type Line struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// Summary totals a cart.
type Summary struct {
	Lines []Line `json:"lines"`
	Count int    `json:"count"`
	Total int64  `json:"total"`
}

// Cart counts products by code. Safe for concurrent use.
type Cart struct {
	catalog   catalog.System
	threshold float64

	mu     sync.Mutex
	counts map[string]int

	checkout sync.Mutex
}

// New creates an empty cart. A threshold outside (0, 1] falls back to
// DefaultThreshold.
func New(c catalog.System, threshold float64) *Cart {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Cart{
		catalog:   c,
		threshold: threshold,
		counts:    make(map[string]int),
	}
}

// Threshold returns the confidence cut-off applied to detections.
func (c *Cart) Threshold() float64 {
	return c.threshold
}

// Add puts n of the product with code into the cart.
func (c *Cart) Add(code string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, n)
	}
	if _, err := c.catalog.Find(code); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, code)
	}

	c.mu.Lock()
	c.counts[code] += n
	c.mu.Unlock()
	return nil
}

// AddDetections counts every detection at or above the threshold whose label
// is in the catalog, and returns how many were accepted.
func (c *Cart) AddDetections(dets []Detection) int {
	accepted := make(map[string]int)
	n := 0
	for _, d := range dets {
		if d.Confidence < c.threshold {
			continue
		}
		if _, err := c.catalog.Find(d.Label); err != nil {
			continue
		}
		accepted[d.Label]++
		n++
	}

	c.mu.Lock()
	for code, k := range accepted {
		c.counts[code] += k
	}
	c.mu.Unlock()
	return n
}

// Lines returns the cart contents ordered by product code.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	snapshot := make(map[string]int, len(c.counts))
	for code, n := range c.counts {
		snapshot[code] = n
	}
	c.mu.Unlock()

	return c.lines(snapshot)
}

// Summary returns the lines with the item count and total price.
func (c *Cart) Summary() Summary {
	lines := c.Lines()
	s := Summary{Lines: lines}
	for _, l := range lines {
		s.Count += l.Quantity
		s.Total += l.Subtotal
	}
	return s
}

// Snapshot returns the product counts keyed by code.
func (c *Cart) Snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]int, len(c.counts))
	for code, n := range c.counts {
		out[code] = n
	}
	return out
}

// Empty reports whether the cart holds nothing.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.counts) == 0
}

// Settle removes the quantities in lines, leaving anything added since they
// were read.
func (c *Cart) Settle(lines []Line) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range lines {
		n := c.counts[l.Code] - l.Quantity
		if n > 0 {
			c.counts[l.Code] = n
		} else {
			delete(c.counts, l.Code)
		}
	}
}

// Checkout hands the current lines to pay and settles them when pay
// succeeds. Checkouts of the same cart run one at a time, so a second
// checkout sees only what the first left behind.
func (c *Cart) Checkout(pay func(lines []Line) error) error {
	c.checkout.Lock()
	defer c.checkout.Unlock()

	lines := c.Lines()
	if err := pay(lines); err != nil {
		return err
	}
	c.Settle(lines)
	return nil
}

// Reset empties the cart.
func (c *Cart) Reset() {
	c.mu.Lock()
	c.counts = make(map[string]int)
	c.mu.Unlock()
}

func (c *Cart) lines(counts map[string]int) []Line {
	lines := make([]Line, 0, len(counts))
	for code, n := range counts {
		p, err := c.catalog.Find(code)
		if err != nil {
			continue
		}
		lines = append(lines, Line{
			Code:      p.Code,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  n,
			Subtotal:  p.Price * int64(n),
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Code < lines[j].Code
	})
	return lines
}
