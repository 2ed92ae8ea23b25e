package pokemon

// Name holds the localized names of a pokémon. English is the only
// required language.
type Name struct {
	English  string `json:"english"`
	Japanese string `json:"japanese,omitempty"`
	Chinese  string `json:"chinese,omitempty"`
	French   string `json:"french,omitempty"`
}

// BaseStats is the six-stat combat block. The JSON keys mirror the
// catalog data format, spaces included.
type BaseStats struct {
	HP        int `json:"HP"`
	Attack    int `json:"Attack"`
	Defense   int `json:"Defense"`
	SpAttack  int `json:"Sp. Attack"`
	SpDefense int `json:"Sp. Defense"`
	Speed     int `json:"Speed"`
}

// Pokemon represents a catalog entry. ID is assigned by the client
// (the pokédex number), not by the store.
type Pokemon struct {
	ID    int       `json:"id"`
	Name  Name      `json:"name"`
	Types []string  `json:"type"`
	Base  BaseStats `json:"base"`
	Image string    `json:"image,omitempty"`
}

// StatPatch is a sparse update of the base-stat block. Pointer fields
// distinguish "not sent" from an explicit zero.
type StatPatch struct {
	HP        *int `json:"hp,omitempty"`
	Attack    *int `json:"attack,omitempty"`
	Defense   *int `json:"defense,omitempty"`
	Speed     *int `json:"speed,omitempty"`
	SpAttack  *int `json:"spAttack,omitempty"`
	SpDefense *int `json:"spDefense,omitempty"`
}

// Apply copies the fields present in the patch onto the stat block,
// leaving absent fields untouched.
func (p StatPatch) Apply(b *BaseStats) {
	if p.HP != nil {
		b.HP = *p.HP
	}
	if p.Attack != nil {
		b.Attack = *p.Attack
	}
	if p.Defense != nil {
		b.Defense = *p.Defense
	}
	if p.Speed != nil {
		b.Speed = *p.Speed
	}
	if p.SpAttack != nil {
		b.SpAttack = *p.SpAttack
	}
	if p.SpDefense != nil {
		b.SpDefense = *p.SpDefense
	}
}
