package meshmem

import "github.com/danmuck/meshghost/internal/meshapi"

// TwoPartTriangles holds the entities of a two-triangle, two-part test mesh
// built by NewTwoPartTriangles: one triangle per part, sharing one edge and
// its two endpoint vertices across the part boundary.
type TwoPartTriangles struct {
	Sim *Simulation

	// Part 0's triangle.
	V0, V1, V2 meshapi.Entity
	E01, E12, E20 meshapi.Entity
	F0 meshapi.Entity

	// Part 1's triangle. V1p1/V2p1 are the copies of the shared interface
	// vertices V1/V2 on part 1; E12p1 is the shared edge's copy.
	V1p1, V2p1, V3p1 meshapi.Entity
	E12p1, E23, E31 meshapi.Entity
	F1 meshapi.Entity
}

// NewTwoPartTriangles builds a 2-part simulation of topological dimension 2
// with one triangle per part, sharing an edge (classified on model edge 1)
// and its two vertices (classified on model vertices 1 and 2) across the
// part boundary. Vertex params place the shared edge on the unit interval
// [0,1]x{0} so param.Interp has something non-trivial to interpolate.
func NewTwoPartTriangles() *TwoPartTriangles {
	sim := NewSimulation(2, 2)
	m0 := sim.Mesh(0)
	m1 := sim.Mesh(1)

	t := &TwoPartTriangles{Sim: sim}

	t.V0 = m0.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 0}, meshapi.Point{-1, 0, 0}, meshapi.Param{})
	t.V1 = m0.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 1}, meshapi.Point{0, 0, 0}, meshapi.Param{0, 0, 0})
	t.V2 = m0.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 2}, meshapi.Point{0, 1, 0}, meshapi.Param{1, 0, 0})

	t.E01 = m0.CreateEntity(meshapi.DimEdge, meshapi.Classification{Dim: 1, ID: 0}, meshapi.Point{}, meshapi.Param{})
	t.E12 = m0.CreateEntity(meshapi.DimEdge, meshapi.Classification{Dim: 1, ID: 1}, meshapi.Point{}, meshapi.Param{})
	t.E20 = m0.CreateEntity(meshapi.DimEdge, meshapi.Classification{Dim: 1, ID: 2}, meshapi.Point{}, meshapi.Param{})

	t.F0 = m0.CreateEntity(meshapi.DimFace, meshapi.Classification{Dim: 2, ID: 0}, meshapi.Point{}, meshapi.Param{})

	m0.Connect(t.E01, t.V0)
	m0.Connect(t.E01, t.V1)
	m0.Connect(t.E12, t.V1)
	m0.Connect(t.E12, t.V2)
	m0.Connect(t.E20, t.V2)
	m0.Connect(t.E20, t.V0)
	m0.Connect(t.F0, t.E01)
	m0.Connect(t.F0, t.E12)
	m0.Connect(t.F0, t.E20)

	t.V1p1 = m1.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 1}, meshapi.Point{0, 0, 0}, meshapi.Param{0, 0, 0})
	t.V2p1 = m1.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 2}, meshapi.Point{0, 1, 0}, meshapi.Param{1, 0, 0})
	t.V3p1 = m1.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 3}, meshapi.Point{1, 1, 0}, meshapi.Param{})

	t.E12p1 = m1.CreateEntity(meshapi.DimEdge, meshapi.Classification{Dim: 1, ID: 1}, meshapi.Point{}, meshapi.Param{})
	t.E23 = m1.CreateEntity(meshapi.DimEdge, meshapi.Classification{Dim: 1, ID: 3}, meshapi.Point{}, meshapi.Param{})
	t.E31 = m1.CreateEntity(meshapi.DimEdge, meshapi.Classification{Dim: 1, ID: 4}, meshapi.Point{}, meshapi.Param{})

	t.F1 = m1.CreateEntity(meshapi.DimFace, meshapi.Classification{Dim: 2, ID: 1}, meshapi.Point{}, meshapi.Param{})

	m1.Connect(t.E12p1, t.V1p1)
	m1.Connect(t.E12p1, t.V2p1)
	m1.Connect(t.E23, t.V2p1)
	m1.Connect(t.E23, t.V3p1)
	m1.Connect(t.E31, t.V3p1)
	m1.Connect(t.E31, t.V1p1)
	m1.Connect(t.F1, t.E12p1)
	m1.Connect(t.F1, t.E23)
	m1.Connect(t.F1, t.E31)

	m0.SetResidence(t.V1, []int{0, 1})
	m0.SetResidence(t.V2, []int{0, 1})
	m0.SetResidence(t.E12, []int{0, 1})
	m1.SetResidence(t.V1p1, []int{0, 1})
	m1.SetResidence(t.V2p1, []int{0, 1})
	m1.SetResidence(t.E12p1, []int{0, 1})

	m0.LinkRemote(t.V1, 1, t.V1p1)
	m0.LinkRemote(t.V2, 1, t.V2p1)
	m0.LinkRemote(t.E12, 1, t.E12p1)
	m1.LinkRemote(t.V1p1, 0, t.V1)
	m1.LinkRemote(t.V2p1, 0, t.V2)
	m1.LinkRemote(t.E12p1, 0, t.E12)

	return t
}
