package lines

import (
	"fmt"
	"strconv"
)

// Absent is the display sentinel for missing data. Any absent price,
// point, or market renders as this, never as an error.
const Absent = "-"

// FormatPrice renders an American odds price: "+150", "-110", or the
// absent sentinel for 0
func FormatPrice(price int) string {
	if price == 0 {
		return Absent
	}
	if price > 0 {
		return fmt.Sprintf("+%d", price)
	}
	return strconv.Itoa(price)
}

// FormatSpread renders a signed spread margin: "-2.5", "+7"
func FormatSpread(point *float64) string {
	if point == nil {
		return Absent
	}
	if *point > 0 {
		return "+" + trimFloat(*point)
	}
	return trimFloat(*point)
}

// FormatTotal renders an unsigned total threshold: "224.5"
func FormatTotal(point *float64) string {
	if point == nil {
		return Absent
	}
	return trimFloat(*point)
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
