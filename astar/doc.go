// Package astar provides a generic, deterministic A* search.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The search is generic over node type. Frontier entries with equal f cost are
// popped in insertion order, so identical inputs always yield identical paths.
// Heuristic evaluation can be spread over a bounded worker pool with
// WithWorkers; the orchestrator still applies the results in neighbor order.
package astar
