package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		PersonnelSeeder{},
		ProjectsSeeder{},
		AllocationsSeeder{},
	}
}
