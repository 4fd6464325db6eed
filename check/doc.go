// Package check is the property driver built on top of gen: it supplies a
// seed, materializes a value through a generator, runs a property against
// it, and on failure drives the shrink search down to a minimal
// counterexample.
//
// Sample draws a single value with no property attached, for exploring
// what a generator produces. Search runs a property across a batch of
// trials and reports an Outcome. SearchConcurrent does the same work
// spread across a worker pool via golang.org/x/sync/errgroup, short-
// circuiting every worker as soon as one finds a failure.
//
// Logging throughout this package goes through logrus, at a package-level
// logger configurable via SetLogger, matching how a caller embedding this
// driver into a larger test harness would want to redirect it.
package check
