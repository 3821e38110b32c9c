// Package solver drives the turn loop: each turn it asks the planner for
// per-crane destinations, synthesizes a collision-free simultaneous move,
// applies it through the engine, and records it, until every container is
// delivered or the configured turn ceiling is reached. It also encodes,
// parses and replays the per-crane action transcripts used as the program's
// output format.
package solver
