package types

// ReadTx provides read-only access to one scope's records inside a storage
// transaction. Implementations return copies; callers never alias store state.
type ReadTx interface {
	// GetCat retrieves the cat with the given ID.
	// Returns ErrNotFound if no cat exists with that ID in the scope.
	GetCat(id uint64) (*Cat, error)

	// GetListing retrieves the active listing for the given cat ID.
	// Returns ErrNotListed if the cat has no active listing.
	GetListing(catID uint64) (*Listing, error)

	// Events returns the scope's notification log in emission order.
	Events() ([]*Event, error)
}

// Tx provides read-write access to one scope's records inside a single
// atomic storage transaction. If the transaction function passed to
// Store.Update returns an error, none of the writes take effect.
type Tx interface {
	ReadTx

	// NextCatID allocates the next monotonic cat ID for the scope.
	// IDs start at 1 and are never reused.
	NextCatID() (uint64, error)

	// PutCat inserts or overwrites a cat record keyed by its ID.
	PutCat(cat *Cat) error

	// PutListing inserts a listing keyed by its cat ID.
	// Returns ErrAlreadyListed if a listing already exists for that cat;
	// duplicate keys are rejected, never silently overwritten.
	PutListing(listing *Listing) error

	// DeleteListing removes the listing for the given cat ID.
	// Returns ErrNotListed if no listing exists.
	DeleteListing(catID uint64) error

	// AppendEvent appends a record to the scope's notification log,
	// assigning the next sequence number.
	AppendEvent(ev *Event) error
}

// Store is the backend-agnostic per-scope key-value store the ledger runs on.
// Each Update call is one serializable, all-or-nothing unit; the registry,
// ledger, and market facade never require two transactions to complete one
// logical transition.
type Store interface {
	// InitScope creates empty cat and listing storage plus a fresh ID
	// counter for the scope. Returns ErrAlreadyInitialized on repeat.
	InitScope(scope Account) error

	// Update runs fn inside a read-write transaction against the scope's
	// records. All writes commit together or not at all. Returns
	// ErrNotInitialized if the scope was never initialized.
	Update(scope Account, fn func(Tx) error) error

	// View runs fn inside a read-only transaction.
	// Returns ErrNotInitialized if the scope was never initialized.
	View(scope Account, fn func(ReadTx) error) error

	// Close releases backend resources. Idempotent.
	Close() error
}
