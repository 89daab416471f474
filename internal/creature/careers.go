package creature

import (
	"fmt"

	"bestiary/internal/config"
)

// Careers resolves an entity's career identity to its fixed bundle of
// combat-formula overrides. Two disjoint key spaces: class careers for
// humanoid enemies, monster careers keyed by species ID for the rest.
type Careers struct {
	baseline ClassOverride
	class    map[int]ClassOverride
	monster  map[int]ClassOverride
}

// NewCareers builds the two override tables from the data asset. Tuned
// entries start from the baseline and apply their dodge override.
func NewCareers(cfg *config.CareersConfig) (*Careers, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil careers config: %w", ErrConfig)
	}
	base := ClassOverride{
		WeaponSkill: cfg.Baseline.WeaponSkill,
		CritSkill:   cfg.Baseline.CritSkill,
		DodgeSkill:  cfg.Baseline.DodgeSkill,
		Strength:    cfg.Baseline.Strength,
		Agility:     cfg.Baseline.Agility,
		Speed:       cfg.Baseline.Speed,
		Willpower:   cfg.Baseline.Willpower,
		Luck:        cfg.Baseline.Luck,
	}
	if base == (ClassOverride{}) {
		base = BaselineOverride()
	}
	c := &Careers{
		baseline: base,
		class:    make(map[int]ClassOverride, len(cfg.ClassCareers)),
		monster:  make(map[int]ClassOverride, len(cfg.MonsterCareers)),
	}
	for _, def := range cfg.ClassCareers {
		if _, dup := c.class[def.Index]; dup {
			return nil, fmt.Errorf("class career %d: duplicate index: %w", def.Index, ErrConfig)
		}
		c.class[def.Index] = tuned(base, def)
	}
	for _, def := range cfg.MonsterCareers {
		if _, dup := c.monster[def.Index]; dup {
			return nil, fmt.Errorf("monster career %d: duplicate index: %w", def.Index, ErrConfig)
		}
		c.monster[def.Index] = tuned(base, def)
	}
	return c, nil
}

func tuned(base ClassOverride, def config.CareerDef) ClassOverride {
	out := base
	out.DodgeSkill = def.DodgeSkill
	return out
}

// Resolve returns the override bundle for a career. A miss returns the
// baseline on purpose: untuned careers get baseline stats rather than an
// error.
func (c *Careers) Resolve(isClass bool, index int) ClassOverride {
	table := c.monster
	if isClass {
		table = c.class
	}
	if out, ok := table[index]; ok {
		return out
	}
	return c.baseline
}

// Baseline returns the bundle unmatched careers fall back to.
func (c *Careers) Baseline() ClassOverride { return c.baseline }
