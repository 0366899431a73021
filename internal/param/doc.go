// Package param implements the parametric interpolator: the midpoint (and
// general t-weighted) parametric coordinate along one axis of a model
// entity, handling the discontinuity a periodic axis introduces.
package param
