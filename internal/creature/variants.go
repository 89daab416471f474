package creature

import "fmt"

// Percenter supplies the uniform draw for variant selection. *rand.Rand
// satisfies it; tests stub it.
type Percenter interface {
	Float64() float64
}

// AttackSelection is the outcome of one attack event: the frame sequence to
// play (with -1 pause sentinels) and its playback rate. Variant is 0 for
// the primary sequence, 1..4 for an alternate.
type AttackSelection struct {
	Frames  []int
	FPS     float64
	Variant int
}

// SelectAttack picks which attack sequence plays for one attack event.
//
// Alternates are tried in declared order; each rolls an independent
// percentage in [0,100) and the first one whose roll lands under its chance
// wins. Later alternates are therefore only reachable when earlier ones did
// not trigger, which makes their effective rate lower than their declared
// chance. That ordering is the authored contract, not a bug to normalize.
func SelectAttack(p *SpeciesProfile, rng Percenter) (AttackSelection, error) {
	if p == nil {
		return AttackSelection{}, fmt.Errorf("nil profile: %w", ErrInvalidArgument)
	}
	if len(p.PrimaryAttack) == 0 {
		return AttackSelection{}, fmt.Errorf("species %d has no primary attack frames: %w", p.ID, ErrConfig)
	}
	for i, alt := range p.Alternates {
		roll := rng.Float64() * 100
		if roll < float64(alt.Chance) {
			return AttackSelection{Frames: alt.Frames, FPS: p.Rates.Attack, Variant: i + 1}, nil
		}
	}
	return AttackSelection{Frames: p.PrimaryAttack, FPS: p.Rates.Attack, Variant: 0}, nil
}
