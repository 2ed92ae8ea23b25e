package repository

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/mattn/go-sqlite3"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/infrastructure/database"
)

type pokemonRepository struct {
	db *database.DB
}

// NewPokemonRepository creates a new catalog repository
func NewPokemonRepository(db *database.DB) pokemon.Repository {
	return &pokemonRepository{db: db}
}

const pokemonColumns = `id, name_english, name_japanese, name_chinese, name_french, types, hp, attack, defense, sp_attack, sp_defense, speed, image`

func (r *pokemonRepository) Create(p *pokemon.Pokemon) error {
	types, err := json.Marshal(p.Types)
	if err != nil {
		return err
	}

	// The primary key makes this a single conditional write: the
	// insert itself fails when the id is taken.
	_, err = r.db.Exec(
		`INSERT INTO pokemons (`+pokemonColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name.English, p.Name.Japanese, p.Name.Chinese, p.Name.French, string(types),
		p.Base.HP, p.Base.Attack, p.Base.Defense, p.Base.SpAttack, p.Base.SpDefense, p.Base.Speed,
		p.Image,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return pokemon.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *pokemonRepository) GetByID(id int) (*pokemon.Pokemon, error) {
	row := r.db.QueryRow(`SELECT `+pokemonColumns+` FROM pokemons WHERE id = ?`, id)
	return scanPokemon(row)
}

func (r *pokemonRepository) List() ([]pokemon.Pokemon, error) {
	rows, err := r.db.Query(`SELECT ` + pokemonColumns + ` FROM pokemons ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]pokemon.Pokemon, 0)
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *p)
	}
	return entries, rows.Err()
}

func (r *pokemonRepository) UpdateStats(id int, patch pokemon.StatPatch) (*pokemon.Pokemon, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(&p.Base)

	_, err = r.db.Exec(
		`UPDATE pokemons SET hp = ?, attack = ?, defense = ?, sp_attack = ?, sp_defense = ?, speed = ? WHERE id = ?`,
		p.Base.HP, p.Base.Attack, p.Base.Defense, p.Base.SpAttack, p.Base.SpDefense, p.Base.Speed, id,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pokemonRepository) Delete(id int) (*pokemon.Pokemon, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.Exec(`DELETE FROM pokemons WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pokemonRepository) ReplaceAll(entries []pokemon.Pokemon) error {
	if _, err := r.db.Exec(`DELETE FROM pokemons`); err != nil {
		return err
	}

	for i := range entries {
		if err := r.Create(&entries[i]); err != nil {
			return err
		}
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanPokemon(row scanner) (*pokemon.Pokemon, error) {
	p := &pokemon.Pokemon{}
	var japanese, chinese, french, image sql.NullString
	var types string

	err := row.Scan(
		&p.ID, &p.Name.English, &japanese, &chinese, &french, &types,
		&p.Base.HP, &p.Base.Attack, &p.Base.Defense, &p.Base.SpAttack, &p.Base.SpDefense, &p.Base.Speed,
		&image,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pokemon.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Name.Japanese = japanese.String
	p.Name.Chinese = chinese.String
	p.Name.French = french.String
	p.Image = image.String

	if err := json.Unmarshal([]byte(types), &p.Types); err != nil {
		return nil, err
	}
	return p, nil
}
