package variantgen

// OutcomeStatus is the closed set of terminal results a generation run can
// produce. The route layer maps these to HTTP statuses; none of them is a
// raw unhandled error.
type OutcomeStatus string

const (
	// OutcomeSuccess carries a parsed GenerationResult.
	OutcomeSuccess OutcomeStatus = "success"

	// OutcomeBlocked means the vendor's safety filter rejected the
	// prompt or the output.
	OutcomeBlocked OutcomeStatus = "blocked"

	// OutcomeMalformed means the response text could not be coerced into
	// the expected structure, even after repair.
	OutcomeMalformed OutcomeStatus = "malformed"

	// OutcomeExhausted means no attempt produced a response: either the
	// retry/fallback budget ran out or a fatal provider error aborted
	// the run.
	OutcomeExhausted OutcomeStatus = "exhausted"
)

// Outcome is the tagged result of one generation run. Exactly the fields
// for its Status are populated.
type Outcome struct {
	Status OutcomeStatus

	// Result is set for OutcomeSuccess.
	Result *GenerationResult

	// BlockReason is set for OutcomeBlocked.
	BlockReason string

	// RawExcerpt and ParseErr are set for OutcomeMalformed. RawExcerpt
	// is capped for diagnostics; it is never the full response.
	RawExcerpt string
	ParseErr   error

	// Err is set for OutcomeExhausted: the last classified provider
	// error seen.
	Err error

	// Attempts counts provider calls made during the run.
	Attempts int
}

func successOutcome(result *GenerationResult) Outcome {
	return Outcome{Status: OutcomeSuccess, Result: result}
}

func blockedOutcome(reason string) Outcome {
	return Outcome{Status: OutcomeBlocked, BlockReason: reason}
}

func malformedOutcome(rawText string, parseErr error) Outcome {
	return Outcome{
		Status:     OutcomeMalformed,
		RawExcerpt: excerpt(rawText),
		ParseErr:   parseErr,
	}
}

func exhaustedOutcome(lastErr error) Outcome {
	return Outcome{Status: OutcomeExhausted, Err: lastErr}
}
