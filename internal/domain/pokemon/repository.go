package pokemon

// Repository defines the contract for catalog storage operations
type Repository interface {
	// Create inserts a new entry. Returns ErrDuplicateID if an entry
	// with the same id already exists (enforced by the store in a
	// single conditional write).
	Create(p *Pokemon) error
	GetByID(id int) (*Pokemon, error)
	List() ([]Pokemon, error)
	// UpdateStats applies a sparse stat patch and returns the updated
	// entry. Returns ErrNotFound if no entry has that id.
	UpdateStats(id int, patch StatPatch) (*Pokemon, error)
	// Delete removes an entry and returns the removed value.
	Delete(id int) (*Pokemon, error)
	// ReplaceAll wipes the catalog and bulk-inserts the given entries.
	ReplaceAll(entries []Pokemon) error
}
