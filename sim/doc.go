// Package sim provides the discrete-event simulation engine for an emergency
// department under stochastic patient arrivals.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - clock.go: the simulated clock and the deterministic event queue
//   - patient.go: the patient lifecycle (waiting → in-treatment → discharged)
//   - simulation.go: the controller that owns the entity model and run loop
//
// # Architecture
//
// The engine is single-threaded cooperative: every recurring behavior
// (arrival, deterioration, optimization, metrics) is an action on the event
// queue that performs its effect and re-enqueues its own next occurrence.
// Events sharing the same due time fire in scheduling order, so every run is
// reproducible under a fixed seed.
//
// The periodic optimization process is the only component that crosses the
// system boundary: it hands a read-only snapshot to an external assignment
// policy (sim/policy) and applies whatever triples come back, skipping any
// that reference patients or resources no longer available.
package sim
