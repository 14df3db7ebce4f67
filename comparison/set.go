package comparison

// Policy constants for the comparison view: comparing needs at least
// Min items, the selection is capped at Max to keep the table legible.
const (
	Min = 2
	Max = 5
)

// Result is the structured outcome of a selection operation. Duplicate
// and at-capacity adds are expected user paths, reported through the
// Success flag rather than an error.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Ids     []int  `json:"ids"`
}

// Set is a bounded, insertion-ordered set of product ids over a
// durable Store. Concurrent writers are not synchronized; the last
// write wins.
type Set struct {
	store Store
}

func NewSet(store Store) *Set {
	return &Set{store: store}
}

func (s *Set) Add(id int) (Result, error) {
	ids, err := s.store.Load()
	if err != nil {
		return Result{}, err
	}

	if contains(ids, id) {
		return Result{Success: false, Message: "already-in-comparison", Ids: ids}, nil
	}

	if len(ids) >= Max {
		return Result{Success: false, Message: "comparison-limit-reached", Ids: ids}, nil
	}

	ids = append(ids, id)
	if err := s.store.Save(ids); err != nil {
		return Result{}, err
	}

	return Result{Success: true, Message: "ok", Ids: ids}, nil
}

// Remove succeeds whether or not id is a member.
func (s *Set) Remove(id int) (Result, error) {
	ids, err := s.store.Load()
	if err != nil {
		return Result{}, err
	}

	updated := make([]int, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			updated = append(updated, existing)
		}
	}

	if err := s.store.Save(updated); err != nil {
		return Result{}, err
	}

	return Result{Success: true, Message: "ok", Ids: updated}, nil
}

// Toggle inverts membership, the single entry point the UI uses.
func (s *Set) Toggle(id int) (Result, error) {
	member, err := s.Contains(id)
	if err != nil {
		return Result{}, err
	}

	if member {
		return s.Remove(id)
	}

	return s.Add(id)
}

func (s *Set) Clear() error {
	return s.store.Save([]int{})
}

func (s *Set) Contains(id int) (bool, error) {
	ids, err := s.store.Load()
	if err != nil {
		return false, err
	}

	return contains(ids, id), nil
}

func (s *Set) Ids() ([]int, error) {
	return s.store.Load()
}

func contains(ids []int, id int) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
