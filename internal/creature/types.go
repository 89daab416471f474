package creature

import "fmt"

// DamageType is the physical damage category carried on an incoming hit.
// Codes outside the three physical categories are non-physical and carry
// no resistance modeling.
type DamageType int

const (
	DamageBlunt    DamageType = 1
	DamageSlashing DamageType = 2
	DamagePiercing DamageType = 3
)

func (d DamageType) String() string {
	switch d {
	case DamageBlunt:
		return "blunt"
	case DamageSlashing:
		return "slashing"
	case DamagePiercing:
		return "piercing"
	}
	return fmt.Sprintf("damage(%d)", int(d))
}

// Physical reports whether the code is one of the three modeled categories.
func (d DamageType) Physical() bool {
	return d >= DamageBlunt && d <= DamagePiercing
}

type BehaviorClass int

const (
	BehaviorGeneral BehaviorClass = iota
	BehaviorFlying
	BehaviorAquatic
	BehaviorSpectral
	BehaviorGuard
)

var behaviorNames = map[string]BehaviorClass{
	"general":  BehaviorGeneral,
	"flying":   BehaviorFlying,
	"aquatic":  BehaviorAquatic,
	"spectral": BehaviorSpectral,
	"guard":    BehaviorGuard,
}

type Affinity int

const (
	AffinityAnimal Affinity = iota
	AffinityDarkness
	AffinityDaylight
	AffinityWater
	AffinityUndead
	AffinityDaedra
	AffinityGolem
	AffinityHuman
)

var affinityNames = map[string]Affinity{
	"animal":   AffinityAnimal,
	"darkness": AffinityDarkness,
	"daylight": AffinityDaylight,
	"water":    AffinityWater,
	"undead":   AffinityUndead,
	"daedra":   AffinityDaedra,
	"golem":    AffinityGolem,
	"human":    AffinityHuman,
}

// WeaponMaterial is the ordered tier of weapon metals. A strike only lands
// when the weapon's material is at or above the species' minimum.
type WeaponMaterial int

const (
	MaterialNone WeaponMaterial = iota
	MaterialIron
	MaterialSteel
	MaterialSilver
	MaterialElven
	MaterialDwarven
	MaterialMithril
	MaterialAdamantium
	MaterialEbony
	MaterialOrcish
	MaterialDaedric
)

var materialNames = map[string]WeaponMaterial{
	"none":       MaterialNone,
	"iron":       MaterialIron,
	"steel":      MaterialSteel,
	"silver":     MaterialSilver,
	"elven":      MaterialElven,
	"dwarven":    MaterialDwarven,
	"mithril":    MaterialMithril,
	"adamantium": MaterialAdamantium,
	"ebony":      MaterialEbony,
	"orcish":     MaterialOrcish,
	"daedric":    MaterialDaedric,
}

// BodyPart is the struck hit location. The resistance resolver accepts it
// for forward compatibility but no current table discriminates on it.
type BodyPart int

const (
	BodyHead BodyPart = iota
	BodyRightArm
	BodyLeftArm
	BodyChest
	BodyHands
	BodyLegs
	BodyFeet
)

// ArmorProperties is the slice of an equipped armor piece the resistance
// resolver reads. Each rating gates one physical damage type.
type ArmorProperties struct {
	FractureRating int // vs blunt
	ShearRating    int // vs slashing
	DensityRating  int // vs piercing
}

// Resistance is one authored entry of a species' damage table. Conditional
// entries collapse to 1.0 when the hit was shield-blocked or the armor's
// relevant rating soaks the damage type.
type Resistance struct {
	Multiplier  float64
	Conditional bool
}

// AttackVariant is an alternate attack sequence with its trigger chance.
// Chance is a percentage in [0,100], rolled per attack event.
type AttackVariant struct {
	Frames []int
	Chance int
}

// FrameRates holds the species-wide playback rate per animation category.
type FrameRates struct {
	Move   float64
	Attack float64
	Ranged float64
	Spell  float64
}

// SpeciesProfile is the static combat/visual/behavioral record for one
// creature species. Profiles are built once from the data asset and never
// mutated; unsynchronized concurrent reads are safe.
type SpeciesProfile struct {
	ID       int
	Name     string
	Behavior BehaviorClass
	Affinity Affinity

	// Placeholder marks a roster row that reserves an ID with no data.
	// Lookups against it fail instead of computing with zeroed fields.
	Placeholder bool

	MaleTexture   int
	FemaleTexture int
	// CorpseTexture packs (archive, record); see DecodeCorpseTexture.
	CorpseTexture int
	Glow          int // palette tint, -1 = none
	NoShadow      bool
	HasIdle       bool

	MinDamage  int
	MaxDamage  int
	MinHealth  int
	MaxHealth  int
	Level      int
	Armor      int
	Weight     int
	MinMetal   WeaponMaterial
	SoulPoints int
	LootKey    string

	CanOpenDoors  bool
	ParrySounds   bool
	SeesInvisible bool
	CastsMagic    bool
	PrefersRanged bool
	HasRanged1    bool
	HasRanged2    bool
	HasTransform  bool

	MoveFrames      []int
	IdleFrames      []int
	PrimaryAttack   []int
	Alternates      []AttackVariant
	RangedFrames    []int
	SpellFrames     []int
	TransformFrames [][]int

	Rates FrameRates

	Resistances map[DamageType]Resistance
}

// ClassOverride is the fixed bundle of combat-formula inputs selected by an
// entity's career. Only DodgeSkill varies in the shipped asset.
type ClassOverride struct {
	WeaponSkill int
	CritSkill   int
	DodgeSkill  int
	Strength    int
	Agility     int
	Speed       int
	Willpower   int
	Luck        int
}

// BaselineOverride is the bundle every untuned career falls back to.
func BaselineOverride() ClassOverride {
	return ClassOverride{
		WeaponSkill: 30,
		CritSkill:   30,
		DodgeSkill:  0,
		Strength:    50,
		Agility:     50,
		Speed:       50,
		Willpower:   50,
		Luck:        50,
	}
}
