package tetra

import "strconv"

// Orientation identifies one of the six tetrahedra that tile a unit cube.
type Orientation uint8

// The six orientations, named after the colour each one is drawn with.
const (
	White Orientation = iota
	Red
	LightBlue
	DarkBlue
	LightGrey
	DarkGrey
)

// Count is the number of orientations per cube.
const Count = 6

// Orientations lists every orientation in index order.
var Orientations = [Count]Orientation{White, Red, LightBlue, DarkBlue, LightGrey, DarkGrey}

var orientationNames = [Count]string{"white", "red", "light-blue", "dark-blue", "light-grey", "dark-grey"}

// Valid reports whether o is one of the six orientations.
func (o Orientation) Valid() bool { return o < Count }

// Mirrored reports whether o uses the mirrored tetrahedron mesh. Neighbouring
// tetrahedra inside a cube always alternate handedness.
func (o Orientation) Mirrored() bool { return o%2 == 0 }

func (o Orientation) String() string {
	if !o.Valid() {
		return "orientation(" + strconv.Itoa(int(o)) + ")"
	}
	return orientationNames[o]
}

// ParseOrientation resolves a name produced by String or a bare index.
func ParseOrientation(s string) (Orientation, bool) {
	for i, name := range orientationNames {
		if s == name {
			return Orientation(i), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < Count {
		return Orientation(n), true
	}
	return 0, false
}

// AxisOrder returns the axes (0=X, 1=Y, 2=Z) in decreasing coordinate order
// inside the cube: the tetrahedron is the region where
// p[order[0]] >= p[order[1]] >= p[order[2]].
func (o Orientation) AxisOrder() [3]int {
	return axisOrders[o]
}

var axisOrders = [Count][3]int{
	White:     {2, 0, 1},
	Red:       {1, 0, 2},
	LightBlue: {1, 2, 0},
	DarkBlue:  {2, 1, 0},
	LightGrey: {0, 1, 2},
	DarkGrey:  {0, 2, 1},
}
