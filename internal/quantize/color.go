package quantize

import (
	"fmt"
	"math"
)

// Color is an RGB color with 8-bit channels.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Channel identifies one of the three color channels.
type Channel int

// Channels in tie-break precedence order.
const (
	Red Channel = iota
	Green
	Blue
)

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel(%d)", int(ch))
	}
}

// Channel returns the value of the given channel.
func (c Color) Channel(ch Channel) uint8 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	default:
		return c.B
	}
}

// Distance returns the Euclidean distance between c and other in RGB space.
func (c Color) Distance(other Color) float64 {
	return math.Sqrt(float64(c.distanceSq(other)))
}

// distanceSq orders colors the same way Distance does without the square root.
func (c Color) distanceSq(other Color) int {
	dr := int(c.R) - int(other.R)
	dg := int(c.G) - int(other.G)
	db := int(c.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}
