package piece

import "fmt"

// Inventory is a piece and pillar budget. The same type carries both the
// total supply handed to the validity filter and, inside the search, the
// amounts still left to place.
type Inventory struct {
	Straight int `json:"straight" yaml:"straight"`
	Turns    int `json:"turns" yaml:"turns"`
	Ups      int `json:"ups" yaml:"ups"`
	Downs    int `json:"downs" yaml:"downs"`
	Pillars  int `json:"pillars" yaml:"pillars"`
}

// Validate returns ErrNegativeInventory if any field is below zero.
func (inv Inventory) Validate() error {
	fields := [...]struct {
		name string
		v    int
	}{
		{"straight", inv.Straight},
		{"turns", inv.Turns},
		{"ups", inv.Ups},
		{"downs", inv.Downs},
		{"pillars", inv.Pillars},
	}
	for _, f := range fields {
		if f.v < 0 {
			return fmt.Errorf("%w: %s = %d", ErrNegativeInventory, f.name, f.v)
		}
	}
	return nil
}

// Pieces returns the number of placeable pieces (pillars excluded).
func (inv Inventory) Pieces() int {
	return inv.Straight + inv.Turns + inv.Ups + inv.Downs
}

// Of returns the pieces consumed by p. Pillars are left at zero.
func Of(p Path) Inventory {
	return Inventory{
		Straight: p.Count(Straight),
		Turns:    p.Turns(),
		Ups:      p.Count(Uphill),
		Downs:    p.Count(Downhill),
	}
}

// Key is a stable identifier suitable for cache keys.
func (inv Inventory) Key() string {
	return fmt.Sprintf("s%d-t%d-u%d-d%d-p%d", inv.Straight, inv.Turns, inv.Ups, inv.Downs, inv.Pillars)
}

func (inv Inventory) String() string {
	return fmt.Sprintf("{straight:%d turns:%d ups:%d downs:%d pillars:%d}",
		inv.Straight, inv.Turns, inv.Ups, inv.Downs, inv.Pillars)
}
