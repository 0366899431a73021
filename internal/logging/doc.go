// Package logging wraps zerolog the way the teacher's smplog shim wrapped
// its own logger: a package-level Configure/Debugf/Infof/Warnf/Errorf
// surface with runtime/test profiles and env overrides, instead of passing
// a *zerolog.Logger through every call site.
package logging
