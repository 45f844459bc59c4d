// Package physics provides the pebble-accretion kernel: pure functions
// computing local gas-disk properties, drag coupling, capture cross
// sections, and mass growth rates for a single body at a single
// location and time.
//
// The main entry points are:
//
//   - [StokesNumber]: stopping time over orbital time, with the drag law
//     (Epstein, Stokes, quadratic) selected from the particle size
//   - [ClassifyRegime] and [ImpactParameterNondim]: capture regime and
//     the impact parameter in Hill units
//   - [ImpactParameter]: dimensional capture radius in meters
//   - [RelativeVelocity]: pebble-body encounter speed in m/s
//   - [GrowthRate]: accretion rate in Earth masses per year, switching
//     between 2D and 3D accretion geometry
//
// # Units
//
// Orbital distances are in AU, times in years, particle sizes in cm and
// material densities in g/cm^3. Internal disk quantities follow cgs
// conventions; velocities cross the package boundary in m/s and capture
// radii in meters. Growth rates are Earth masses per year.
//
// All functions are stateless and safe for concurrent use.
package physics
