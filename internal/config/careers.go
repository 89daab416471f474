package config

type CareersConfig struct {
	Baseline       OverrideDef `yaml:"baseline"`
	ClassCareers   []CareerDef `yaml:"class_careers"`
	MonsterCareers []CareerDef `yaml:"monster_careers"`
}

type OverrideDef struct {
	WeaponSkill int `yaml:"weapon_skill"`
	CritSkill   int `yaml:"crit_skill"`
	DodgeSkill  int `yaml:"dodge_skill"`
	Strength    int `yaml:"strength"`
	Agility     int `yaml:"agility"`
	Speed       int `yaml:"speed"`
	Willpower   int `yaml:"willpower"`
	Luck        int `yaml:"luck"`
}

// CareerDef tunes a single career away from the baseline. Class careers are
// keyed by class index, monster careers by species ID. Only the dodge skill
// is tuned in the shipped asset.
type CareerDef struct {
	Index      int    `yaml:"index"`
	Name       string `yaml:"name"`
	DodgeSkill int    `yaml:"dodge_skill"`
	Note       string `yaml:"note"`
}
