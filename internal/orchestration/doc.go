// Package orchestration coordinates the concurrent execution of
// multiplication algorithms and the analysis of their results.
package orchestration
