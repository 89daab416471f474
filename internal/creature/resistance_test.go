package creature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idSpriggan    = 2
	idOrc         = 7
	idGargoyle    = 22
	idPlaceholder = 39
	idKnight      = 145
)

func defaultStore(t *testing.T) *Store {
	t.Helper()
	s, err := DefaultStore()
	require.NoError(t, err)
	return s
}

func TestResolveResistance_SprigganPiercing(t *testing.T) {
	s := defaultStore(t)
	m, err := s.ResolveResistance(idSpriggan, BodyChest, int(DamagePiercing), false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.32, m)
}

func TestResolveResistance_GargoyleBluntUnconditional(t *testing.T) {
	s := defaultStore(t)
	for _, blocked := range []bool{false, true} {
		for _, armor := range []*ArmorProperties{nil, {FractureRating: 400, ShearRating: 400, DensityRating: 400}} {
			m, err := s.ResolveResistance(idGargoyle, BodyHead, int(DamageBlunt), blocked, armor)
			require.NoError(t, err)
			assert.Equal(t, 2.0, m, "blocked=%v armor=%v", blocked, armor)
		}
	}
}

func TestResolveResistance_OrcSlashing(t *testing.T) {
	s := defaultStore(t)
	m, err := s.ResolveResistance(idOrc, BodyLegs, int(DamageSlashing), false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.65, m)
}

func TestResolveResistance_ConditionalCollapses(t *testing.T) {
	s := defaultStore(t)

	// authored vulnerability applies with no shield and no armor
	m, err := s.ResolveResistance(idKnight, BodyChest, int(DamageBlunt), false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.50, m)

	// shield block collapses it
	m, err = s.ResolveResistance(idKnight, BodyChest, int(DamageBlunt), true, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)

	// an armor rating at the threshold collapses it too
	m, err = s.ResolveResistance(idKnight, BodyChest, int(DamageBlunt), false, &ArmorProperties{FractureRating: 300})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)

	// a rating just under the threshold does not
	m, err = s.ResolveResistance(idKnight, BodyChest, int(DamageBlunt), false, &ArmorProperties{FractureRating: 299})
	require.NoError(t, err)
	assert.Equal(t, 1.50, m)

	// the wrong rating does not gate blunt
	m, err = s.ResolveResistance(idKnight, BodyChest, int(DamageBlunt), false, &ArmorProperties{ShearRating: 400, DensityRating: 400})
	require.NoError(t, err)
	assert.Equal(t, 1.50, m)
}

func TestResolveResistance_NonPhysicalAlwaysNeutral(t *testing.T) {
	s := defaultStore(t)
	for _, code := range []int{4, 5, 12, 255} {
		for _, id := range []int{idSpriggan, idGargoyle, idKnight} {
			m, err := s.ResolveResistance(id, BodyChest, code, false, nil)
			require.NoError(t, err)
			assert.Equal(t, 1.0, m, "species %d code %d", id, code)
		}
	}
}

func TestResolveResistance_InvalidDamageCode(t *testing.T) {
	s := defaultStore(t)
	for _, code := range []int{0, -1, -7} {
		_, err := s.ResolveResistance(idOrc, BodyChest, code, false, nil)
		assert.ErrorIs(t, err, ErrInvalidArgument, "code %d", code)
	}
}

func TestResolveResistance_UnknownSpecies(t *testing.T) {
	s := defaultStore(t)
	_, err := s.ResolveResistance(200, BodyChest, int(DamageBlunt), false, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveResistance_PlaceholderSpecies(t *testing.T) {
	s := defaultStore(t)
	_, err := s.ResolveResistance(idPlaceholder, BodyChest, int(DamageBlunt), false, nil)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestResolveResistance_BodyPartInert(t *testing.T) {
	s := defaultStore(t)
	parts := []BodyPart{BodyHead, BodyRightArm, BodyLeftArm, BodyChest, BodyHands, BodyLegs, BodyFeet}
	var last float64
	for i, part := range parts {
		m, err := s.ResolveResistance(idSpriggan, part, int(DamagePiercing), false, nil)
		require.NoError(t, err)
		if i > 0 {
			assert.Equal(t, last, m)
		}
		last = m
	}
}

func TestResolveResistance_OnlyCanonicalMultipliers(t *testing.T) {
	s := defaultStore(t)
	canonical := map[float64]bool{0.32: true, 0.65: true, 1.0: true, 1.50: true, 2.0: true}
	for _, id := range s.IDs() {
		if _, err := s.Get(id); err != nil {
			continue // placeholder rows
		}
		for code := 1; code <= 3; code++ {
			for _, blocked := range []bool{false, true} {
				m, err := s.ResolveResistance(id, BodyChest, code, blocked, nil)
				require.NoError(t, err)
				assert.Truef(t, canonical[m], "species %d code %d blocked=%v got %v", id, code, blocked, m)
			}
		}
	}
}
