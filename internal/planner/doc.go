// Package planner decides which frame positions a run samples.
//
// Positions spreads the requested count evenly over the video including
// both endpoints; BuildPlan wraps that with the run settings so the
// pipeline and the summary agree on what was asked for.
package planner
