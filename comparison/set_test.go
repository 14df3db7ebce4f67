package comparison

import (
	"errors"
	"testing"

	"gotest.tools/assert"
)

// memStore keeps the persisted value in memory for set tests.
type memStore struct {
	ids     []int
	loadErr error
	saveErr error
}

func (m *memStore) Load() ([]int, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	ids := make([]int, len(m.ids))
	copy(ids, m.ids)
	return ids, nil
}

func (m *memStore) Save(ids []int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.ids = ids
	return nil
}

func TestSetAdd(t *testing.T) {
	store := &memStore{}
	set := NewSet(store)

	result, err := set.Add(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Success)
	assert.Equal(t, "ok", result.Message)
	assert.Equal(t, 1, len(result.Ids))

	// duplicate add is a reported no-op
	result, err = set.Add(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Success)
	assert.Equal(t, "already-in-comparison", result.Message)
	assert.Equal(t, 1, len(result.Ids))

	for id := 2; id <= Max; id++ {
		result, err = set.Add(id)
		assert.Equal(t, nil, err)
		assert.Equal(t, true, result.Success)
	}

	// at capacity the set is left unchanged
	result, err = set.Add(6)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Success)
	assert.Equal(t, "comparison-limit-reached", result.Message)
	assert.Equal(t, Max, len(result.Ids))
	for i, id := range store.ids {
		assert.Equal(t, i+1, id)
	}

	// store failures propagate
	store.saveErr = errors.New("err-save")
	store.ids = nil
	_, err = set.Add(1)
	assert.Equal(t, "err-save", err.Error())

	store.saveErr = nil
	store.loadErr = errors.New("err-load")
	_, err = set.Add(1)
	assert.Equal(t, "err-load", err.Error())
}

func TestSetRemove(t *testing.T) {
	store := &memStore{ids: []int{1, 2, 3}}
	set := NewSet(store)

	result, err := set.Remove(2)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Success)
	assert.Equal(t, 2, len(result.Ids))
	assert.Equal(t, 1, result.Ids[0])
	assert.Equal(t, 3, result.Ids[1])

	// removing an absent id still succeeds
	result, err = set.Remove(99)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Success)
	assert.Equal(t, 2, len(result.Ids))
}

func TestSetToggle(t *testing.T) {
	store := &memStore{}
	set := NewSet(store)

	// absent: toggle adds
	result, err := set.Toggle(4)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Success)
	assert.Equal(t, 1, len(result.Ids))

	member, err := set.Contains(4)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, member)

	// present: toggle removes
	result, err = set.Toggle(4)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Success)
	assert.Equal(t, 0, len(result.Ids))

	member, err = set.Contains(4)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, member)
}

func TestSetClear(t *testing.T) {
	store := &memStore{ids: []int{1, 2, 3}}
	set := NewSet(store)

	assert.Equal(t, nil, set.Clear())

	ids, err := set.Ids()
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(ids))
}

func TestSetInsertionOrderPreserved(t *testing.T) {
	store := &memStore{}
	set := NewSet(store)

	for _, id := range []int{42, 7, 19} {
		_, err := set.Add(id)
		assert.Equal(t, nil, err)
	}

	ids, err := set.Ids()
	assert.Equal(t, nil, err)
	assert.Equal(t, 42, ids[0])
	assert.Equal(t, 7, ids[1])
	assert.Equal(t, 19, ids[2])
}
