package matching

var experienceBonuses = map[ExperienceLevel]int{
	ExperienceSenior: 30,
	ExperienceMid:    15,
	ExperienceJunior: 0,
}

// ExperienceBonus returns 0 for unrecognized levels.
func ExperienceBonus(level ExperienceLevel) int {
	return experienceBonuses[level]
}
