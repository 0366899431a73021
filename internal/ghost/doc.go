// Package ghost implements multi-phase ghosting: planning which entities
// need a copy on which other parts, collecting each seed's downward
// closure into the plan, exchanging the planned entities over a Messaging
// round, and deleting ghost copies a later pass makes redundant.
package ghost
