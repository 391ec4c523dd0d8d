package constants

// ComparisonStatus is the verdict of a theoretical-vs-real comparison.
type ComparisonStatus string

// Stable values (serialized in the report as-is).
const (
	StatusCorrect ComparisonStatus = "CORRECT" // real matches, or exceeds, the entitlement
	StatusReview  ComparisonStatus = "REVIEW"  // real falls short beyond tolerance
)

// Confidence qualifies a normalized numeric extraction.
type Confidence string

const (
	ConfidenceHigh      Confidence = "high"      // parsed cleanly
	ConfidenceRecovered Confidence = "recovered" // implausible magnitude fixed by decimal reinsertion
	ConfidenceDiscarded Confidence = "discarded" // unusable; excluded from the record
)
