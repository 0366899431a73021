// Package meshapi declares the collaborator boundary the core algorithms in
// internal/param, internal/snap, and internal/ghost are written against.
//
// Ownership boundary:
// - entity handles, classification, and tag contracts
//
// - the Mesh, Geometry, Validity, and Messaging interfaces
//
// meshapi owns no mutable state and no algorithm. internal/meshmem is the
// one reference implementation shipped in this repo; production callers
// supply their own.
package meshapi
