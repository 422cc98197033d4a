// Package detector classifies a speech clip as AI-generated or human from a
// handful of acoustic statistics.
package detector

import (
	"math"
	"strings"

	"voicedetect/internal/audio"
)

// Classification is the verdict for a clip.
type Classification string

const (
	AIGenerated Classification = "AI_GENERATED"
	Human       Classification = "HUMAN"
)

const (
	// DecisionThreshold is the confidence at or above which a clip is
	// classified as AI-generated.
	DecisionThreshold = 0.35

	// NaturalExplanation is reported when no rule fires.
	NaturalExplanation = "Natural human speech variations detected"

	explanationSep = "; "
)

// Result is the outcome of scoring one clip.
type Result struct {
	Classification Classification
	// Confidence is the capped additive score in [0, 1], not a probability.
	Confidence float64
	// Reasons lists the explanation of every rule that fired, in rule order.
	Reasons     []string
	Explanation string
	// Fired names the rules that fired, for logging.
	Fired []string
	// LowEnergyVariation is set when the energy rule fired.
	LowEnergyVariation bool
}

type rule struct {
	name   string
	fires  func(Features) bool
	weight float64
	reason string
	energy bool
}

// Comparisons against NaN are false, so an undefined feature never fires.
var rules = []rule{
	{
		name:   "pitch_stability",
		fires:  func(f Features) bool { return f.PitchVariance < 15 },
		weight: 0.35,
		reason: "Unnatural pitch stability",
	},
	{
		name:   "spectral_smoothness",
		fires:  func(f Features) bool { return f.FlatnessMean > 0.18 },
		weight: 0.35,
		reason: "Spectral smoothness typical of AI",
	},
	{
		name:   "energy_variation",
		fires:  func(f Features) bool { return f.RMSVariance < 0.008 },
		weight: 0.45,
		reason: "Low energy variation typical of synthetic speech",
		energy: true,
	},
	{
		name:   "smooth_transitions",
		fires:  func(f Features) bool { return f.ZCRVariance < 0.00001 },
		weight: 0.20,
		reason: "Overly smooth signal transitions",
	},
}

// Score applies the rule table to f.
func Score(f Features) Result {
	var (
		score   float64
		reasons []string
		fired   []string
		energy  bool
	)
	for _, r := range rules {
		if !r.fires(f) {
			continue
		}
		score += r.weight
		reasons = append(reasons, r.reason)
		fired = append(fired, r.name)
		energy = energy || r.energy
	}

	res := Result{
		Confidence:         math.Min(score, 1.0),
		Fired:              fired,
		LowEnergyVariation: energy,
	}
	res.Classification = Human
	if res.Confidence >= DecisionThreshold {
		res.Classification = AIGenerated
	}

	// A low-energy-variation clip is always AI-generated. The energy rule
	// alone already outweighs DecisionThreshold, so this branch cannot run
	// unless the weights change.
	if res.LowEnergyVariation && res.Confidence < DecisionThreshold {
		res.Classification = AIGenerated
		res.Confidence = math.Max(res.Confidence, DecisionThreshold)
	}

	if len(reasons) == 0 {
		reasons = []string{NaturalExplanation}
	}
	res.Reasons = reasons
	res.Explanation = strings.Join(reasons, explanationSep)
	return res
}

// Analyze extracts features from w and scores them.
func Analyze(w audio.Waveform) (Result, Features) {
	f := Extract(w)
	return Score(f), f
}

// RoundConfidence rounds c to two decimal places for display. The
// classification is always decided on the unrounded value.
func RoundConfidence(c float64) float64 {
	return math.Round(c*100) / 100
}
