package pokemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestStatPatch_Apply_SingleField(t *testing.T) {
	base := BaseStats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90}

	StatPatch{Speed: intPtr(120)}.Apply(&base)

	assert.Equal(t, BaseStats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 120}, base)
}

func TestStatPatch_Apply_ZeroValueIsApplied(t *testing.T) {
	base := BaseStats{HP: 35, Speed: 90}

	StatPatch{HP: intPtr(0)}.Apply(&base)

	assert.Equal(t, 0, base.HP)
	assert.Equal(t, 90, base.Speed)
}

func TestStatPatch_Apply_Empty(t *testing.T) {
	base := BaseStats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90}
	want := base

	StatPatch{}.Apply(&base)

	assert.Equal(t, want, base)
}

func TestStatPatch_Apply_AllFields(t *testing.T) {
	base := BaseStats{}

	StatPatch{
		HP:        intPtr(1),
		Attack:    intPtr(2),
		Defense:   intPtr(3),
		Speed:     intPtr(4),
		SpAttack:  intPtr(5),
		SpDefense: intPtr(6),
	}.Apply(&base)

	assert.Equal(t, BaseStats{HP: 1, Attack: 2, Defense: 3, SpAttack: 5, SpDefense: 6, Speed: 4}, base)
}
