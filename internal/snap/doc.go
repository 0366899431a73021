// Package snap implements vertex snapping: moving mesh vertices onto their
// classifying model geometry while preserving element validity, falling
// back to a digger when a direct snap would invalidate an adjacent element.
package snap
