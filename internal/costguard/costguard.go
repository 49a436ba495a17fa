// Package costguard declares the platform's static usage limits and the
// request cost estimator. Everything here is pure arithmetic over fixed
// rates; enforcing the daily budgets against persistent counters is the
// calling layer's job.
package costguard

// Daily usage limits, shared across all users of one deployment.
const (
	DailyRequests         = 50
	DailySpeechChars      = 25000 // ~ $0.375/day
	DailyGenerationTokens = 50000 // ~ $0.075/day
)

// Per-request maxima.
const (
	MaxSpeechChars  = 1000
	MaxScriptTokens = 2000
)

// Fixed per-unit rates and the currency conversion applied on invoices.
const (
	speechUSDPerKChar    = 0.015  // $0.015 per 1k characters
	generationUSDPerKTok = 0.0015 // $0.0015 per 1k tokens
	usdToTWD             = 31.0
	approxCharsPerToken  = 4
)

// TierLimits bounds a single user tier.
type TierLimits struct {
	DailyVideos      int
	DailySpeechChars int
}

var (
	FreeTier    = TierLimits{DailyVideos: 5, DailySpeechChars: 2000}
	PremiumTier = TierLimits{DailyVideos: 50, DailySpeechChars: 25000}
)

// Estimate breaks down the projected cost of one request in USD, with the
// TWD total for invoicing.
type Estimate struct {
	Speech     float64
	Generation float64
	Total      float64
	TotalTWD   float64
}

// EstimateCost projects the cost of a request from its speech character
// count and generation token count.
func EstimateCost(speechChars, generationTokens int) Estimate {
	speech := float64(speechChars) / 1000 * speechUSDPerKChar
	generation := float64(generationTokens) / 1000 * generationUSDPerKTok
	total := speech + generation
	return Estimate{
		Speech:     speech,
		Generation: generation,
		Total:      total,
		TotalTWD:   total * usdToTWD,
	}
}

// ApproxTokens estimates the token count of a text by length. Good enough
// for advisory budget checks; never used for billing.
func ApproxTokens(text string) int {
	return len(text) / approxCharsPerToken
}
