package creature

import "fmt"

// armorSoakThreshold is the rating at or above which a piece of armor
// absorbs its damage type well enough to cancel a conditional vulnerability.
const armorSoakThreshold = 300

// ResolveResistance computes the multiplier applied to incoming damage of
// the given type against the struck species.
//
// damageCode follows the combat system's wire values: 1=blunt, 2=slashing,
// 3=piercing; higher codes are non-physical and always resolve to 1.0.
// Codes below 1 are rejected. bodyPart is accepted for forward
// compatibility with location-based tables; no current table discriminates
// on it. armor may be nil.
func (s *Store) ResolveResistance(id int, bodyPart BodyPart, damageCode int, shieldBlocked bool, armor *ArmorProperties) (float64, error) {
	p, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	return p.resolveResistance(bodyPart, damageCode, shieldBlocked, armor)
}

func (p *SpeciesProfile) resolveResistance(_ BodyPart, damageCode int, shieldBlocked bool, armor *ArmorProperties) (float64, error) {
	if damageCode < 1 {
		return 0, fmt.Errorf("damage code %d: %w", damageCode, ErrInvalidArgument)
	}
	dt := DamageType(damageCode)
	if !dt.Physical() {
		return 1.0, nil
	}
	r, ok := p.Resistances[dt]
	if !ok {
		return 1.0, nil
	}
	if r.Conditional && (shieldBlocked || armorSoaks(armor, dt)) {
		return 1.0, nil
	}
	return r.Multiplier, nil
}

func armorSoaks(armor *ArmorProperties, dt DamageType) bool {
	if armor == nil {
		return false
	}
	switch dt {
	case DamageBlunt:
		return armor.FractureRating >= armorSoakThreshold
	case DamageSlashing:
		return armor.ShearRating >= armorSoakThreshold
	case DamagePiercing:
		return armor.DensityRating >= armorSoakThreshold
	}
	return false
}
