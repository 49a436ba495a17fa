package costguard

import (
	"math"
	"testing"
)

func TestEstimateCost(t *testing.T) {
	// Full daily budget: 25000 chars and 50000 tokens.
	est := EstimateCost(DailySpeechChars, DailyGenerationTokens)

	if math.Abs(est.Speech-0.375) > 1e-9 {
		t.Errorf("speech = %f, want 0.375", est.Speech)
	}
	if math.Abs(est.Generation-0.075) > 1e-9 {
		t.Errorf("generation = %f, want 0.075", est.Generation)
	}
	if math.Abs(est.Total-0.45) > 1e-9 {
		t.Errorf("total = %f, want 0.45", est.Total)
	}
	if math.Abs(est.TotalTWD-0.45*31.0) > 1e-9 {
		t.Errorf("TWD total = %f, want %f", est.TotalTWD, 0.45*31.0)
	}
}

func TestEstimateCostZero(t *testing.T) {
	est := EstimateCost(0, 0)
	if est.Total != 0 || est.TotalTWD != 0 {
		t.Fatalf("zero usage estimate = %+v", est)
	}
}

func TestApproxTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abcd", 1},
		{"abcdefgh", 2},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := ApproxTokens(tt.text); got != tt.want {
			t.Errorf("ApproxTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestTierLimits(t *testing.T) {
	if FreeTier.DailySpeechChars >= PremiumTier.DailySpeechChars {
		t.Error("free tier must allow less speech than premium")
	}
	if FreeTier.DailyVideos >= PremiumTier.DailyVideos {
		t.Error("free tier must allow fewer videos than premium")
	}
	if PremiumTier.DailySpeechChars > DailySpeechChars {
		t.Error("premium tier exceeds the deployment-wide daily budget")
	}
}
