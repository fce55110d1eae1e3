package tetra

// Axis is a lattice offset from one cube to a neighbouring cube: a single
// signed axis or a diagonal across two signed axes.
type Axis uint8

const (
	XPos Axis = iota
	XNeg
	YPos
	YNeg
	ZPos
	ZNeg
	XPosYPos
	XPosYNeg
	XNegYPos
	XNegYNeg
	XPosZPos
	XPosZNeg
	XNegZPos
	XNegZNeg
	YPosZPos
	YPosZNeg
	YNegZPos
	YNegZNeg
)

// AxisCount is the number of distinct offsets.
const AxisCount = 18

var axisDeltas = [AxisCount][3]int{
	XPos:     {1, 0, 0},
	XNeg:     {-1, 0, 0},
	YPos:     {0, 1, 0},
	YNeg:     {0, -1, 0},
	ZPos:     {0, 0, 1},
	ZNeg:     {0, 0, -1},
	XPosYPos: {1, 1, 0},
	XPosYNeg: {1, -1, 0},
	XNegYPos: {-1, 1, 0},
	XNegYNeg: {-1, -1, 0},
	XPosZPos: {1, 0, 1},
	XPosZNeg: {1, 0, -1},
	XNegZPos: {-1, 0, 1},
	XNegZNeg: {-1, 0, -1},
	YPosZPos: {0, 1, 1},
	YPosZNeg: {0, 1, -1},
	YNegZPos: {0, -1, 1},
	YNegZNeg: {0, -1, -1},
}

var axisNames = [AxisCount]string{
	"+x", "-x", "+y", "-y", "+z", "-z",
	"+x+y", "+x-y", "-x+y", "-x-y",
	"+x+z", "+x-z", "-x+z", "-x-z",
	"+y+z", "+y-z", "-y+z", "-y-z",
}

// Valid reports whether a is one of the eighteen offsets.
func (a Axis) Valid() bool { return a < AxisCount }

// Delta returns the cube offset (dx, dy, dz).
func (a Axis) Delta() (int, int, int) {
	d := axisDeltas[a]
	return d[0], d[1], d[2]
}

// Axes reports how many lattice axes the offset moves along (1 or 2).
func (a Axis) Axes() int {
	n := 0
	for _, v := range axisDeltas[a] {
		if v != 0 {
			n++
		}
	}
	return n
}

// Reverse returns the offset pointing back to the origin cube.
func (a Axis) Reverse() Axis {
	dx, dy, dz := a.Delta()
	for i, d := range axisDeltas {
		if d[0] == -dx && d[1] == -dy && d[2] == -dz {
			return Axis(i)
		}
	}
	return a
}

func (a Axis) String() string {
	if !a.Valid() {
		return "axis(?)"
	}
	return axisNames[a]
}
