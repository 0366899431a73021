package ghost

import "errors"

// ErrSelfGhost is returned by Plan.Send and Plan.SendAll when the requested
// destination part is the entity's own part. A plan never sends an entity a
// copy of itself; callers that hit this have a bug upstream (the boundary
// detection that produced the destination list included the owning part).
var ErrSelfGhost = errors.New("ghost: refusing to plan a self-ghost")

// ErrUnknownDimension is returned by PlanLayersDryRun when asked to seed
// from an empty seeds slice. PlanLayers itself is collective and tolerates
// a part contributing no seeds to a round, so it never returns this error.
var ErrUnknownDimension = errors.New("ghost: no entities at requested dimension")
