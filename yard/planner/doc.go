// Package planner implements the online planning heuristic for the crane
// yard: grid BFS reachability, per-turn target selection with kick
// accounting, greedy nearest-crane assignment, and synthesis of a
// collision-free simultaneous move vector.
//
// The planner is greedy and non-backtracking: it produces a feasible,
// reasonably short schedule, not a minimal one. All functions read
// the engine.State snapshot they are given and never mutate it.
package planner
