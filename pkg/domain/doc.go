// Package domain contains the core domain types used by the grader. These
// types represent the business concepts (unit categories, units, questions and
// grade outcomes) and are intentionally free of infrastructure concerns so they
// can be shared across packages.
package domain
