package shop

import (
	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CartLine is a product selection inside a cart. The unit price is the
// product's effective price at the moment it was added.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Amount returns quantity times unit price
func (l CartLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is a value type: every mutation returns a new Cart, leaving the
// receiver untouched. Callers replace their copy wholesale, which also
// makes change detection trivial.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart returns an empty cart
func NewCart() Cart {
	return Cart{Lines: []CartLine{}}
}

// Add returns a new cart with the product added: quantity incremented if
// the product is already present, otherwise appended with quantity 1.
func (c Cart) Add(product catalog.Product) Cart {
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].ProductID == product.ID {
			next.Lines[i].Quantity++
			return next
		}
	}
	next.Lines = append(next.Lines, CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		UnitPrice: product.EffectivePrice(),
		Quantity:  1,
	})
	return next
}

// UpdateQuantity returns a new cart with the product's quantity adjusted
// by delta. Quantities clamp at zero and zero-quantity lines are dropped.
// Unknown product IDs leave the cart unchanged.
func (c Cart) UpdateQuantity(productID string, delta int) Cart {
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].ProductID != productID {
			continue
		}
		next.Lines[i].Quantity += delta
		if next.Lines[i].Quantity <= 0 {
			next.Lines = append(next.Lines[:i], next.Lines[i+1:]...)
		}
		return next
	}
	return next
}

// Remove returns a new cart without the given product
func (c Cart) Remove(productID string) Cart {
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].ProductID == productID {
			next.Lines = append(next.Lines[:i], next.Lines[i+1:]...)
			return next
		}
	}
	return next
}

// Subtotal sums unit price times quantity across all lines
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Amount())
	}
	return total
}

// SubtotalMoney returns the subtotal as a Money value object
func (c Cart) SubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyINR(c.Subtotal())
}

// ItemCount returns the total number of units across all lines
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// clone returns a deep copy so mutations never alias the receiver
func (c Cart) clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
