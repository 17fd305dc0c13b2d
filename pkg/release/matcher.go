package release

import (
	"regexp"
	"strconv"

	"github.com/hbollon/go-edlib"
)

// numberRegex pulls sequence numbers ("2", "3") out of cleaned titles.
var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// candidateYearRegex finds a "(YYYY)" suffix on a candidate title.
var candidateYearRegex = regexp.MustCompile(`\((19\d{2}|20\d{2})\)\s*$`)

// MatchConfidence buckets a match score.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // score < 0.70
	ConfidenceLow                           // score >= 0.70
	ConfidenceMedium                        // score >= 0.85
	ConfidenceHigh                          // score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MarshalText lets the confidence render by name in JSON output.
func (c MatchConfidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MatchResult is the best candidate for a parsed title.
type MatchResult struct {
	Title      string          `json:"title"`
	Score      float64         `json:"score"`
	Confidence MatchConfidence `json:"confidence"`
}

// MatchTitle finds the candidate closest to a parsed title using
// Jaro-Winkler similarity over cleaned titles. Shared or conflicting
// sequence numbers nudge the score up or down.
func MatchTitle(parsed string, candidates []string) MatchResult {
	return matchTitle(parsed, 0, candidates)
}

// MatchInfo is MatchTitle for a parsed record. A candidate ending in
// "(YYYY)" gains a bonus when the year equals info.Year and a penalty when
// it differs.
func MatchInfo(info *MediaInfo, candidates []string) MatchResult {
	return matchTitle(info.Title, info.Year, candidates)
}

func matchTitle(parsed string, year int, candidates []string) MatchResult {
	best := MatchResult{Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	cleaned := CleanTitle(parsed)
	parsedNumbers := numberRegex.FindAllString(cleaned, -1)

	for _, candidate := range candidates {
		title, candidateYear := splitCandidateYear(candidate)
		cleanedCandidate := CleanTitle(title)

		score := float64(edlib.JaroWinklerSimilarity(cleaned, cleanedCandidate))
		score = adjustScoreForNumbers(score, parsedNumbers, numberRegex.FindAllString(cleanedCandidate, -1))
		score = adjustScoreForYear(score, year, candidateYear)

		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Title = ""
	}
	return best
}

// splitCandidateYear separates a trailing "(YYYY)" from a candidate title.
func splitCandidateYear(candidate string) (string, int) {
	loc := candidateYearRegex.FindStringSubmatchIndex(candidate)
	if loc == nil {
		return candidate, 0
	}
	year, _ := strconv.Atoi(candidate[loc[2]:loc[3]])
	return candidate[:loc[0]], year
}

// adjustScoreForNumbers rewards a shared sequence number and penalizes a
// parsed number that the candidate lacks or contradicts.
func adjustScoreForNumbers(score float64, parsedNums, candidateNums []string) float64 {
	if len(parsedNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	candidateSet := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		candidateSet[n] = true
	}
	for _, n := range parsedNums {
		if candidateSet[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}

func adjustScoreForYear(score float64, parsed, candidate int) float64 {
	if parsed == 0 || candidate == 0 {
		return score
	}
	if parsed == candidate {
		return min(score*1.05, 1.0)
	}
	return score * 0.90
}
