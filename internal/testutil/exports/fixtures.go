package exports

import "fmt"

// Mixed has one listing of each status and one row without an ASIN.
func Mixed() *Builder {
	return NewBuilder().
		Won("A1", "Widget", 10).
		Lost("B2", "Gadget", "Other Seller", 12.50, 12).
		Suppressed("C3", "Gizmo", 9.99).
		WithoutASIN("Nameless")
}

// Winning has n won listings with ASINs W0000, W0001 and so on.
func Winning(n int) *Builder {
	b := NewBuilder()
	for i := 0; i < n; i++ {
		b.Won(fmt.Sprintf("W%04d", i), fmt.Sprintf("Winner %d", i), 10+float64(i))
	}
	return b
}
