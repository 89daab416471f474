package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const speciesDoc = `
frame_rates:
  move: 8
  attack: 10
species:
  - id: 0
    name: Rat
    behavior: general
    affinity: animal
    min_metal: none
    min_damage: 1
    max_damage: 3
    min_health: 9
    max_health: 14
    level: 1
    move_frames: [0, 1, 2, 3]
    attack_frames: [0, 1, -1, 2]
    alternate_attacks:
      - chance: 30
        frames: [2, -1, 1, 0]
    resist: {blunt: 0.65}
    conditional: [blunt]
`

const careersDoc = `
baseline:
  weapon_skill: 30
  crit_skill: 30
  strength: 50
  agility: 50
  speed: 50
  willpower: 50
  luck: 50
class_careers:
  - {index: 0, name: Mage, dodge_skill: -30}
monster_careers:
  - {index: 17, name: Zombie, dodge_skill: -25}
`

func TestParseSpecies(t *testing.T) {
	sc, err := ParseSpecies([]byte(speciesDoc))
	require.NoError(t, err)

	assert.Equal(t, 8.0, sc.FrameRates.Move)
	require.Len(t, sc.Species, 1)

	rat := sc.Species[0]
	assert.Equal(t, "Rat", rat.Name)
	assert.Equal(t, []int{0, 1, -1, 2}, rat.AttackFrames)
	require.Len(t, rat.Alternates, 1)
	assert.Equal(t, 30, rat.Alternates[0].Chance)
	assert.Equal(t, 0.65, rat.Resist["blunt"])
	assert.Equal(t, []string{"blunt"}, rat.Conditional)
}

func TestParseCareers(t *testing.T) {
	cc, err := ParseCareers([]byte(careersDoc))
	require.NoError(t, err)

	assert.Equal(t, 30, cc.Baseline.WeaponSkill)
	require.Len(t, cc.ClassCareers, 1)
	assert.Equal(t, -30, cc.ClassCareers[0].DodgeSkill)
	require.Len(t, cc.MonsterCareers, 1)
	assert.Equal(t, 17, cc.MonsterCareers[0].Index)
}

func TestParseSpecies_Malformed(t *testing.T) {
	_, err := ParseSpecies([]byte("species: {not: [a, roster"))
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "species.yaml"), []byte(speciesDoc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "careers.yaml"), []byte(careersDoc), 0644))

	sc, cc, err := LoadAll(dir)
	require.NoError(t, err)
	assert.Len(t, sc.Species, 1)
	assert.Len(t, cc.ClassCareers, 1)
}

func TestLoadAll_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "species.yaml"), []byte(speciesDoc), 0644))

	_, _, err := LoadAll(dir)
	assert.Error(t, err)
}
