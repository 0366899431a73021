package meshmem

import (
	"testing"

	"github.com/danmuck/meshghost/internal/meshapi"
)

func TestDownwardAndUpAreReciprocal(t *testing.T) {
	tri := NewTwoPartTriangles()
	m0 := tri.Sim.Mesh(0)

	verts := m0.Downward(tri.E12, meshapi.DimVertex)
	if len(verts) != 2 {
		t.Fatalf("expected 2 downward vertices, got %d", len(verts))
	}

	up := m0.Up(tri.V1)
	if len(up) != 2 {
		t.Fatalf("expected V1 to be up-adjacent to 2 edges, got %d", len(up))
	}
}

func TestAdjacentSharesDownwardEntity(t *testing.T) {
	tri := NewTwoPartTriangles()
	m0 := tri.Sim.Mesh(0)

	adj := m0.Adjacent(tri.E01, meshapi.DimEdge)
	found := map[meshapi.EntityKey]bool{}
	for _, e := range adj {
		found[e.EntityKey()] = true
	}
	if !found[tri.E12.EntityKey()] || !found[tri.E20.EntityKey()] {
		t.Fatalf("expected E01 adjacent to both other triangle edges, got %v", adj)
	}
}

func TestSharedResidenceAndRemotes(t *testing.T) {
	tri := NewTwoPartTriangles()
	m0 := tri.Sim.Mesh(0)

	if !m0.IsShared(tri.V1) {
		t.Fatalf("expected V1 to be shared")
	}
	remotes := m0.Remotes(tri.V1)
	remote, ok := remotes[1]
	if !ok || remote.EntityKey() != tri.V1p1.EntityKey() {
		t.Fatalf("expected V1's remote on part 1 to be V1p1, got %+v ok=%v", remote, ok)
	}
}

func TestTagRoundTrip(t *testing.T) {
	tri := NewTwoPartTriangles()
	m0 := tri.Sim.Mesh(0)

	h := m0.CreateTag("probe", meshapi.TagTypeInt, 8)
	if m0.HasTag(tri.V0, h) {
		t.Fatalf("tag should not be set yet")
	}
	m0.SetTag(tri.V0, h, []byte{1, 0, 0, 0, 0, 0, 0, 0})
	if !m0.HasTag(tri.V0, h) {
		t.Fatalf("expected tag to be set")
	}
	m0.RemoveTag(tri.V0, h)
	if m0.HasTag(tri.V0, h) {
		t.Fatalf("expected tag to be removed")
	}
}

func TestGhostCopyBookkeeping(t *testing.T) {
	tri := NewTwoPartTriangles()
	m1 := tri.Sim.Mesh(1)
	m0 := tri.Sim.Mesh(0)

	copyEntity := m1.CreateEntity(meshapi.DimVertex, meshapi.Classification{Dim: 0, ID: 0}, meshapi.Point{-1, 0, 0}, meshapi.Param{})
	m1.MarkGhostCopy(copyEntity, 0, tri.V0)
	if !m1.IsGhost(copyEntity) {
		t.Fatalf("expected copy to be marked ghost")
	}
	if m1.Owner(copyEntity) != 0 {
		t.Fatalf("expected ghost copy owner to be 0, got %d", m1.Owner(copyEntity))
	}

	m0.AddGhost(tri.V0, 1, copyEntity)
	ghosts := m0.Ghosts(tri.V0)
	g, ok := ghosts[1]
	if !ok || g.EntityKey() != copyEntity.EntityKey() {
		t.Fatalf("expected V0's ghost on part 1 to be copyEntity, got %+v ok=%v", g, ok)
	}
}
