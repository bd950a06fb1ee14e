// Package drill contains the core domain types of the study toolkit: a
// drill (a named, self-contained study snippet with its question/answer
// prose and a runnable body), the result of running one, and the report
// assembled for a whole run. These types are intentionally free of
// infrastructure concerns so they can be shared across packages.
package drill
