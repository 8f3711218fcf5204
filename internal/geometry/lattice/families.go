package lattice

// familyConfig gathers every tunable constant of one lattice family in a
// single place: fractional node positions within the unit cell, the strut
// connectivity table, the diagonal inclusion probability and the sphere and
// strut radius factors applied to the requested thickness.
type familyConfig struct {
	Nodes             [][3]float64
	Edges             []edge
	DiagonalProb      float64
	NodeRadiusFactor  float64
	StrutRadiusFactor float64
}

// edge connects two node-table indices. Diagonal edges are subject to
// randomized inclusion; axial edges always connect.
type edge struct {
	A, B     int
	Diagonal bool
}

// Corner index convention for cubic cells: bit 0 = +x, bit 1 = +y, bit 2 = +z.
var cubeCorners = [][3]float64{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

var configs = map[Family]familyConfig{
	BodyCentered: {
		Nodes: append(append([][3]float64{}, cubeCorners...), [3]float64{0.5, 0.5, 0.5}),
		Edges: []edge{
			// Axial corner columns.
			{A: 0, B: 4}, {A: 1, B: 5}, {A: 2, B: 6}, {A: 3, B: 7},
			// Body diagonals to the center node.
			{A: 0, B: 8, Diagonal: true}, {A: 1, B: 8, Diagonal: true},
			{A: 2, B: 8, Diagonal: true}, {A: 3, B: 8, Diagonal: true},
			{A: 4, B: 8, Diagonal: true}, {A: 5, B: 8, Diagonal: true},
			{A: 6, B: 8, Diagonal: true}, {A: 7, B: 8, Diagonal: true},
		},
		DiagonalProb:      0.5,
		NodeRadiusFactor:  0.6,
		StrutRadiusFactor: 0.5,
	},
	FaceCentered: {
		// Face centers only: -z, +z, -y, +y, -x, +x.
		Nodes: [][3]float64{
			{0.5, 0.5, 0}, {0.5, 0.5, 1},
			{0.5, 0, 0.5}, {0.5, 1, 0.5},
			{0, 0.5, 0.5}, {1, 0.5, 0.5},
		},
		Edges: []edge{
			{A: 0, B: 1}, // axial pair
			{A: 0, B: 2, Diagonal: true}, {A: 0, B: 3, Diagonal: true},
			{A: 0, B: 4, Diagonal: true}, {A: 0, B: 5, Diagonal: true},
			{A: 1, B: 2, Diagonal: true}, {A: 1, B: 3, Diagonal: true},
			{A: 1, B: 4, Diagonal: true}, {A: 1, B: 5, Diagonal: true},
		},
		DiagonalProb:      0.4,
		NodeRadiusFactor:  0.6,
		StrutRadiusFactor: 0.5,
	},
	Diamond: {
		// Four lattice points plus four tetrahedrally offset points.
		Nodes: [][3]float64{
			{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5},
			{0.25, 0.25, 0.25}, {0.75, 0.75, 0.25},
			{0.75, 0.25, 0.75}, {0.25, 0.75, 0.75},
		},
		Edges: []edge{
			{A: 4, B: 0, Diagonal: true}, {A: 4, B: 1, Diagonal: true},
			{A: 4, B: 2, Diagonal: true}, {A: 4, B: 3, Diagonal: true},
			{A: 5, B: 1, Diagonal: true}, {A: 5, B: 2, Diagonal: true},
			{A: 6, B: 2, Diagonal: true}, {A: 6, B: 3, Diagonal: true},
			{A: 7, B: 3, Diagonal: true}, {A: 7, B: 1, Diagonal: true},
		},
		DiagonalProb:      0.6,
		NodeRadiusFactor:  0.55,
		StrutRadiusFactor: 0.45,
	},
	Octet: {
		Nodes: cubeCorners,
		Edges: []edge{
			// Axial corner columns.
			{A: 0, B: 4}, {A: 1, B: 5}, {A: 2, B: 6}, {A: 3, B: 7},
			// Face diagonals.
			{A: 0, B: 3, Diagonal: true}, {A: 1, B: 2, Diagonal: true},
			{A: 4, B: 7, Diagonal: true}, {A: 5, B: 6, Diagonal: true},
			{A: 0, B: 5, Diagonal: true}, {A: 1, B: 4, Diagonal: true},
			{A: 2, B: 7, Diagonal: true}, {A: 3, B: 6, Diagonal: true},
			{A: 0, B: 6, Diagonal: true}, {A: 2, B: 4, Diagonal: true},
			{A: 1, B: 7, Diagonal: true}, {A: 3, B: 5, Diagonal: true},
		},
		DiagonalProb:      0.3,
		NodeRadiusFactor:  0.6,
		StrutRadiusFactor: 0.5,
	},
	// The vertical variants only use the radius factors; their placement is
	// fixed-spacing, not cell-table driven.
	VerticalStrut: {StrutRadiusFactor: 0.5},
	VerticalHole:  {StrutRadiusFactor: 0.6},
	Cross:         {StrutRadiusFactor: 0.5},
	Gyroid: {
		NodeRadiusFactor:  0.4,
		StrutRadiusFactor: 0.3,
	},
}
