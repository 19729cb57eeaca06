package matching

const (
	RecommendationExcellent = "Excellent Match - Highly Recommended"
	RecommendationLimited   = "Perfect Skills - Limited Availability"
	RecommendationGood      = "Good Match - Recommended"
	RecommendationPartial   = "Partial Match - Consider with Training"
	RecommendationPoor      = "Poor Match - Not Recommended"
)

// Recommend applies the tiers in order; the first match wins.
func Recommend(matchPercentage int, available bool) string {
	switch {
	case matchPercentage == 100 && available:
		return RecommendationExcellent
	case matchPercentage == 100:
		return RecommendationLimited
	case matchPercentage >= 75 && available:
		return RecommendationGood
	case matchPercentage >= 50:
		return RecommendationPartial
	default:
		return RecommendationPoor
	}
}
