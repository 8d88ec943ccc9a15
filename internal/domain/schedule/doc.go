// Package schedule contains the core domain logic of the festival board:
// time-of-day arithmetic, act records with derived variances and lifecycle
// state, and the slip/projection engine that turns an act list into projected
// set times and remaining changeover.
//
// Everything here is pure computation over value snapshots. The package never
// mutates an act list it is given and holds no locks; concurrent readers over
// independent snapshots are safe by construction.
package schedule
