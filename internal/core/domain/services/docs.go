// Package services contains stateless domain services that coordinate
// behavior across aggregates, currently the workload-based AssignmentEngine.
package services
