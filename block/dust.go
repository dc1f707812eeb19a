package block

// DustShape controls whether a dust block renders/behaves as a cross (the
// default wire shape) or a centered dot with no effective connections
// (spec §4.4 Shape). Toggled by interact().
type DustShape uint8

const (
	ShapeCross DustShape = iota
	ShapeDot
)

// Dust is redstone wire: a decaying signal carrier with topology-dependent
// connections (spec §4.4).
type Dust struct {
	Base
	// Signal is the current carried strength, 0-15.
	Signal uint8
	// Shape is cross (default) or dot.
	Shape DustShape
}

func (*Dust) Kind() Kind { return KindDust }

// ShouldDrop reports true when the block below is neither solid nor slime
// (spec §4.4 Support).
func (d *Dust) ShouldDrop(lookup Lookup) bool {
	return !belowSupportValid(lookup, d.Pos)
}
