package config

type SpeciesConfig struct {
	FrameRates FrameRatesDef `yaml:"frame_rates"`
	Species    []SpeciesDef  `yaml:"species"`
}

// FrameRatesDef is the species-wide playback rate per animation category.
type FrameRatesDef struct {
	Move   float64 `yaml:"move"`
	Attack float64 `yaml:"attack"`
	Ranged float64 `yaml:"ranged"`
	Spell  float64 `yaml:"spell"`
}

type SpeciesDef struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Behavior string `yaml:"behavior"`
	Affinity string `yaml:"affinity"`

	MaleTexture   int    `yaml:"male_texture"`
	FemaleTexture int    `yaml:"female_texture"`
	CorpseArchive int    `yaml:"corpse_archive"`
	CorpseRecord  int    `yaml:"corpse_record"`
	Glow          *int   `yaml:"glow"`
	NoShadow      bool   `yaml:"no_shadow"`
	HasIdle       bool   `yaml:"has_idle"`
	Loot          string `yaml:"loot"`

	MinDamage  int    `yaml:"min_damage"`
	MaxDamage  int    `yaml:"max_damage"`
	MinHealth  int    `yaml:"min_health"`
	MaxHealth  int    `yaml:"max_health"`
	Level      int    `yaml:"level"`
	Armor      int    `yaml:"armor"`
	Weight     int    `yaml:"weight"`
	MinMetal   string `yaml:"min_metal"`
	SoulPoints int    `yaml:"soul_points"`

	CanOpenDoors  bool `yaml:"can_open_doors"`
	ParrySounds   bool `yaml:"parry_sounds"`
	SeesInvisible bool `yaml:"sees_invisible"`
	CastsMagic    bool `yaml:"casts_magic"`
	PrefersRanged bool `yaml:"prefers_ranged"`
	HasRanged1    bool `yaml:"has_ranged_1"`
	HasRanged2    bool `yaml:"has_ranged_2"`
	HasTransform  bool `yaml:"has_transform"`

	MoveFrames      []int          `yaml:"move_frames"`
	IdleFrames      []int          `yaml:"idle_frames"`
	AttackFrames    []int          `yaml:"attack_frames"`
	Alternates      []AlternateDef `yaml:"alternate_attacks"`
	RangedFrames    []int          `yaml:"ranged_frames"`
	SpellFrames     []int          `yaml:"spell_frames"`
	TransformFrames [][]int        `yaml:"transform_frames"`

	// Resist maps a damage-type name to its authored multiplier; types
	// listed under conditional collapse to 1.0 under shield block or a
	// soaking armor rating.
	Resist      map[string]float64 `yaml:"resist"`
	Conditional []string           `yaml:"conditional"`

	Note string `yaml:"note"`
}

// AlternateDef is one alternate attack sequence with its trigger chance,
// a percentage in [0,100] rolled per attack event.
type AlternateDef struct {
	Chance int   `yaml:"chance"`
	Frames []int `yaml:"frames"`
}
