package svg

import (
	"math"
	"regexp"
	"strconv"

	"github.com/osuushi/penfill/fill"
)

// A Z command within this distance of the subpath start is already closed.
const closeGap = 0.1

var (
	commandRe = regexp.MustCompile(`[MLHVCSQTAZmlhvcsqtaz][^MLHVCSQTAZmlhvcsqtaz]*`)
	numberRe  = regexp.MustCompile(`-?[\d.]+(?:[eE][+-]?\d+)?`)
)

// ParsePathData reads the subset of the d attribute grammar a plotter fill
// cares about. M/m, L/l, H/h, V/v and Z/z map to vertices directly. Curve
// commands (C/c, S/s, Q/q, T/t, A/a) contribute only their endpoints, so a
// curved boundary degrades to its chords. Subpaths run together into one
// flat outline.
func ParsePathData(d string) []fill.Point {
	var points []fill.Point
	var currentX, currentY float64
	var startX, startY float64

	lineTo := func(x, y float64) {
		currentX, currentY = x, y
		points = append(points, fill.Point{X: currentX, Y: currentY})
	}

	for _, cmd := range commandRe.FindAllString(d, -1) {
		cmdType := cmd[0]
		args := parseFloats(numberRe.FindAllString(cmd[1:], -1))

		switch cmdType {
		case 'M':
			if len(args) >= 2 {
				lineTo(args[0], args[1])
				startX, startY = currentX, currentY
				// Extra coordinate pairs are implicit linetos.
				for i := 2; i+1 < len(args); i += 2 {
					lineTo(args[i], args[i+1])
				}
			}

		case 'm':
			if len(args) >= 2 {
				lineTo(currentX+args[0], currentY+args[1])
				startX, startY = currentX, currentY
				for i := 2; i+1 < len(args); i += 2 {
					lineTo(currentX+args[i], currentY+args[i+1])
				}
			}

		case 'L':
			for i := 0; i+1 < len(args); i += 2 {
				lineTo(args[i], args[i+1])
			}

		case 'l':
			for i := 0; i+1 < len(args); i += 2 {
				lineTo(currentX+args[i], currentY+args[i+1])
			}

		case 'H':
			for _, x := range args {
				lineTo(x, currentY)
			}

		case 'h':
			for _, dx := range args {
				lineTo(currentX+dx, currentY)
			}

		case 'V':
			for _, y := range args {
				lineTo(currentX, y)
			}

		case 'v':
			for _, dy := range args {
				lineTo(currentX, currentY+dy)
			}

		case 'Z', 'z':
			if math.Hypot(currentX-startX, currentY-startY) > closeGap {
				points = append(points, fill.Point{X: startX, Y: startY})
			}
			currentX, currentY = startX, startY

		case 'C', 'c':
			for i := 0; i+5 < len(args); i += 6 {
				if cmdType == 'C' {
					lineTo(args[i+4], args[i+5])
				} else {
					lineTo(currentX+args[i+4], currentY+args[i+5])
				}
			}

		case 'S', 's', 'Q', 'q':
			for i := 0; i+3 < len(args); i += 4 {
				if cmdType == 'S' || cmdType == 'Q' {
					lineTo(args[i+2], args[i+3])
				} else {
					lineTo(currentX+args[i+2], currentY+args[i+3])
				}
			}

		case 'T', 't':
			for i := 0; i+1 < len(args); i += 2 {
				if cmdType == 'T' {
					lineTo(args[i], args[i+1])
				} else {
					lineTo(currentX+args[i], currentY+args[i+1])
				}
			}

		case 'A', 'a':
			for i := 0; i+6 < len(args); i += 7 {
				if cmdType == 'A' {
					lineTo(args[i+5], args[i+6])
				} else {
					lineTo(currentX+args[i+5], currentY+args[i+6])
				}
			}
		}
	}

	return points
}

func parseFloats(tokens []string) []float64 {
	floats := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		floats = append(floats, f)
	}
	return floats
}
