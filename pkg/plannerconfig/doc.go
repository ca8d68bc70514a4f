// Package plannerconfig holds the tunable parameters of the path planner.
//
// An Editor starts from the factory defaults, overlays whatever overrides were
// persisted by an earlier session and keeps that live set in memory. Operators
// change it through a View (a form with one field per parameter), every save is
// written back to a storage.StateStore, and Reset returns to the defaults.
//
// The planner itself only calls Config, which returns the live values merged with
// constants derived from the vehicle geometry. Derived constants always win over
// editable values of the same name.
package plannerconfig
