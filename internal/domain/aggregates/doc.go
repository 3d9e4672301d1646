// Package aggregates defines domain-facing aggregate contracts and the error taxonomy
// their write methods report.
//
// Contracts carry no persistence or transport detail. Each one names a write boundary
// whose invariants are enforced inside a single transaction.
package aggregates
