package domain

import "fmt"

// Size is a T-shirt effort estimate. It is the only unit of estimation in the
// system: every task carries a Size, and the engine derives hours and cost
// from it. An unrecognized size degrades to zero hours and zero cost rather
// than erroring; callers that need a real estimate should validate membership
// with ParseSize first.
type Size string

const (
	SizeUnspecified Size = ""
	SizeXS          Size = "XS"
	SizeS           Size = "S"
	SizeM           Size = "M"
	SizeL           Size = "L"
	SizeXL          Size = "XL"
)

// Sizes is the canonical ordered set of valid size categories.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL}

var sizeHours = map[Size]int{
	SizeXS: 4,
	SizeS:  8,
	SizeM:  16,
	SizeL:  24,
	SizeXL: 32,
}

var sizeDefaultCosts = map[Size]float64{
	SizeXS: 100,
	SizeS:  200,
	SizeM:  400,
	SizeL:  600,
	SizeXL: 800,
}

// ParseSize converts a string to a Size, accepting only the canonical
// categories (case-sensitive).
func ParseSize(s string) (Size, error) {
	size := Size(s)
	if !size.Valid() {
		return SizeUnspecified, fmt.Errorf("invalid size %q (expected one of XS, S, M, L, XL)", s)
	}
	return size, nil
}

// Valid reports whether s is one of the five canonical categories.
func (s Size) Valid() bool {
	_, ok := sizeHours[s]
	return ok
}

// Hours returns the canonical effort in hours for the size. The hours table is
// fixed; only costs are user-editable. Unknown sizes return 0.
func (s Size) Hours() int {
	return sizeHours[s]
}

// DefaultCost returns the canonical cost for the size before any user
// override. Unknown sizes return 0.
func (s Size) DefaultCost() float64 {
	return sizeDefaultCosts[s]
}
