// Package meshmem is the one reference implementation of the meshapi
// collaborator interfaces shipped in this repo: a same-process, in-memory
// mesh database, two small Geometry kernels, an injectable Validity
// predicate, and a Messaging simulation that runs every part's goroutine
// through a shared bulk-synchronous barrier. It exists for tests and the
// meshctl/meshgen demo binaries; it is not a production mesh database.
package meshmem
