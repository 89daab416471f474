package creature

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"bestiary/internal/config"
)

// canonical authored multiplier tiers, heavy resistance to severe
// vulnerability
var canonicalMultipliers = map[float64]bool{
	0.32: true,
	0.65: true,
	1.0:  true,
	1.50: true,
	2.0:  true,
}

var damageNames = map[string]DamageType{
	"blunt":    DamageBlunt,
	"slashing": DamageSlashing,
	"piercing": DamagePiercing,
}

// Store is the immutable species roster, keyed by species ID. Built once
// from the data asset; safe for unsynchronized concurrent reads.
type Store struct {
	byID map[int]*SpeciesProfile
	ids  []int
}

// NewStore builds and validates the roster. Every defect in the asset is
// reported (joined), not just the first; a defective asset yields no store.
func NewStore(cfg *config.SpeciesConfig) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil species config: %w", ErrConfig)
	}
	s := &Store{byID: make(map[int]*SpeciesProfile, len(cfg.Species))}
	var defects []error
	for i := range cfg.Species {
		def := &cfg.Species[i]
		if _, dup := s.byID[def.ID]; dup {
			defects = append(defects, fmt.Errorf("species %d: duplicate id: %w", def.ID, ErrConfig))
			continue
		}
		p, errs := buildProfile(def, cfg.FrameRates)
		defects = append(defects, errs...)
		s.byID[def.ID] = p
		s.ids = append(s.ids, def.ID)
	}
	if len(defects) > 0 {
		return nil, errors.Join(defects...)
	}
	sort.Ints(s.ids)
	return s, nil
}

func buildProfile(def *config.SpeciesDef, rates config.FrameRatesDef) (*SpeciesProfile, []error) {
	p := &SpeciesProfile{
		ID:   def.ID,
		Name: def.Name,
		Glow: -1,
		Rates: FrameRates{
			Move:   rates.Move,
			Attack: rates.Attack,
			Ranged: rates.Ranged,
			Spell:  rates.Spell,
		},
	}

	if isPlaceholder(def) {
		p.Placeholder = true
		return p, nil
	}

	var defects []error
	fail := func(format string, args ...any) {
		defects = append(defects, fmt.Errorf("species %d: %s: %w", def.ID, fmt.Sprintf(format, args...), ErrConfig))
	}

	if def.Name == "" {
		fail("missing name")
	}
	var ok bool
	if p.Behavior, ok = behaviorNames[strings.ToLower(def.Behavior)]; !ok {
		fail("unknown behavior %q", def.Behavior)
	}
	if p.Affinity, ok = affinityNames[strings.ToLower(def.Affinity)]; !ok {
		fail("unknown affinity %q", def.Affinity)
	}
	if p.MinMetal, ok = materialNames[strings.ToLower(def.MinMetal)]; !ok {
		fail("unknown material %q", def.MinMetal)
	}

	p.MaleTexture = def.MaleTexture
	p.FemaleTexture = def.FemaleTexture
	p.CorpseTexture = EncodeCorpseTexture(def.CorpseArchive, def.CorpseRecord)
	if def.CorpseRecord < 0 || def.CorpseRecord > 0xFFFF {
		fail("corpse record %d outside 16 bits", def.CorpseRecord)
	}
	if def.Glow != nil {
		p.Glow = *def.Glow
	}
	p.NoShadow = def.NoShadow
	p.HasIdle = def.HasIdle
	p.LootKey = def.Loot

	p.MinDamage = def.MinDamage
	p.MaxDamage = def.MaxDamage
	p.MinHealth = def.MinHealth
	p.MaxHealth = def.MaxHealth
	p.Level = def.Level
	p.Armor = def.Armor
	p.Weight = def.Weight
	p.SoulPoints = def.SoulPoints
	if def.MinDamage > def.MaxDamage {
		fail("damage range %d..%d inverted", def.MinDamage, def.MaxDamage)
	}
	if def.MinHealth > def.MaxHealth {
		fail("health range %d..%d inverted", def.MinHealth, def.MaxHealth)
	}

	p.CanOpenDoors = def.CanOpenDoors
	p.ParrySounds = def.ParrySounds
	p.SeesInvisible = def.SeesInvisible
	p.CastsMagic = def.CastsMagic
	p.PrefersRanged = def.PrefersRanged
	p.HasRanged1 = def.HasRanged1
	p.HasRanged2 = def.HasRanged2
	p.HasTransform = def.HasTransform

	p.MoveFrames = def.MoveFrames
	p.IdleFrames = def.IdleFrames
	p.PrimaryAttack = def.AttackFrames
	p.RangedFrames = def.RangedFrames
	p.SpellFrames = def.SpellFrames
	p.TransformFrames = def.TransformFrames

	if len(p.MoveFrames) == 0 {
		fail("no move frames")
	}
	if len(p.PrimaryAttack) == 0 {
		fail("no primary attack frames")
	}
	if p.HasIdle && len(p.IdleFrames) == 0 {
		fail("has_idle set but no idle frames")
	}
	if p.CastsMagic && len(p.SpellFrames) == 0 {
		fail("casts_magic set but no spell frames")
	}
	if (p.HasRanged1 || p.HasRanged2) && len(p.RangedFrames) == 0 {
		fail("ranged attack set but no ranged frames")
	}
	if p.HasTransform && len(p.TransformFrames) == 0 {
		fail("has_transform set but no transform frames")
	}

	if len(def.Alternates) > 4 {
		fail("%d alternate attacks, at most 4 allowed", len(def.Alternates))
	}
	for i, alt := range def.Alternates {
		if alt.Chance < 0 || alt.Chance > 100 {
			fail("alternate %d chance %d outside [0,100]", i, alt.Chance)
		}
		if len(alt.Frames) == 0 {
			fail("alternate %d has no frames", i)
		}
		p.Alternates = append(p.Alternates, AttackVariant{Frames: alt.Frames, Chance: alt.Chance})
	}

	p.Resistances = make(map[DamageType]Resistance, len(def.Resist))
	for name, mult := range def.Resist {
		dt, ok := damageNames[strings.ToLower(name)]
		if !ok {
			fail("unknown damage type %q in resist table", name)
			continue
		}
		if !canonicalMultipliers[mult] {
			fail("resist %s multiplier %v not a canonical tier", name, mult)
		}
		p.Resistances[dt] = Resistance{Multiplier: mult}
	}
	for _, name := range def.Conditional {
		dt, ok := damageNames[strings.ToLower(name)]
		if !ok {
			fail("unknown damage type %q in conditional list", name)
			continue
		}
		r, ok := p.Resistances[dt]
		if !ok {
			fail("conditional %s has no authored resist entry", name)
			continue
		}
		r.Conditional = true
		p.Resistances[dt] = r
	}

	return p, defects
}

// isPlaceholder recognizes roster rows that only reserve an ID.
func isPlaceholder(def *config.SpeciesDef) bool {
	return def.Name == "" && def.MaxHealth == 0 && len(def.AttackFrames) == 0 &&
		len(def.MoveFrames) == 0 && def.Behavior == "" && def.Affinity == ""
}

// Get returns the profile for a species ID. A reserved placeholder row
// resolves to ErrConfig so nothing downstream computes with zeroed fields.
func (s *Store) Get(id int) (*SpeciesProfile, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("species %d: %w", id, ErrNotFound)
	}
	if p.Placeholder {
		return nil, fmt.Errorf("species %d is a reserved placeholder: %w", id, ErrConfig)
	}
	return p, nil
}

// GetByName resolves a species by display name, case-insensitively. Cold
// path; per-hit resolution goes through Get.
func (s *Store) GetByName(name string) (*SpeciesProfile, error) {
	for _, id := range s.ids {
		p := s.byID[id]
		if !p.Placeholder && strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("species %q: %w", name, ErrNotFound)
}

// IDs returns the roster's species IDs in ascending order, placeholders
// included.
func (s *Store) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the roster size, placeholders included.
func (s *Store) Len() int { return len(s.ids) }
