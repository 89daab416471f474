package creature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bestiary/internal/config"
)

func defaultCareers(t *testing.T) *Careers {
	t.Helper()
	c, err := DefaultCareers()
	require.NoError(t, err)
	return c
}

func TestCareers_MageDodgeOverride(t *testing.T) {
	c := defaultCareers(t)
	got := c.Resolve(true, 0)
	want := BaselineOverride()
	want.DodgeSkill = -30
	assert.Equal(t, want, got)
}

func TestCareers_UnmatchedClassFallsBackToBaseline(t *testing.T) {
	c := defaultCareers(t)
	assert.Equal(t, BaselineOverride(), c.Resolve(true, 99))
	assert.Equal(t, BaselineOverride(), c.Resolve(true, -1))
}

func TestCareers_UntunedMonsterFallsBackToBaseline(t *testing.T) {
	c := defaultCareers(t)
	// the rat is deliberately untuned in the shipped asset
	assert.Equal(t, BaselineOverride(), c.Resolve(false, 0))
}

func TestCareers_MonsterKeySpaceIsDisjoint(t *testing.T) {
	c := defaultCareers(t)
	// zombie (species 17) is tuned as a monster career; class index 17
	// is the knight with a different dodge value
	zombie := c.Resolve(false, 17)
	knight := c.Resolve(true, 17)
	assert.Equal(t, -25, zombie.DodgeSkill)
	assert.Equal(t, -20, knight.DodgeSkill)
}

func TestCareers_OnlyDodgeVaries(t *testing.T) {
	c := defaultCareers(t)
	base := BaselineOverride()
	for idx := 0; idx < 18; idx++ {
		got := c.Resolve(true, idx)
		got.DodgeSkill = base.DodgeSkill
		assert.Equalf(t, base, got, "class career %d tunes more than dodge", idx)
	}
}

func TestNewCareers_EmptyBaselineDefaults(t *testing.T) {
	c, err := NewCareers(&config.CareersConfig{})
	require.NoError(t, err)
	assert.Equal(t, BaselineOverride(), c.Baseline())
}

func TestNewCareers_DuplicateIndex(t *testing.T) {
	_, err := NewCareers(&config.CareersConfig{
		ClassCareers: []config.CareerDef{
			{Index: 3, Name: "Sorcerer", DodgeSkill: -25},
			{Index: 3, Name: "Sorcerer", DodgeSkill: -10},
		},
	})
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewCareers_NilConfig(t *testing.T) {
	_, err := NewCareers(nil)
	assert.ErrorIs(t, err, ErrConfig)
}
