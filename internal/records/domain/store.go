package domain

import (
	"fmt"

	"recordbook-server/internal/infra/utils"
)

type ChangeKind string

const (
	ChangeAppended ChangeKind = "appended"
	ChangeUpdated  ChangeKind = "updated"
	ChangeRemoved  ChangeKind = "removed"
	ChangeReplaced ChangeKind = "replaced"
	ChangeRestored ChangeKind = "restored"
)

// ChangeEvent describes one mutation of a Store. Rows is the content of the
// store after the mutation and is shared by every observer of the event.
type ChangeEvent struct {
	Kind  ChangeKind
	Index int
	Row   Row
	Rows  []Row
}

type Observer func(ChangeEvent)

type IDGenerator func() ID

type StoreOption func(*Store)

func WithIDGenerator(gen IDGenerator) StoreOption {
	return func(s *Store) {
		s.newID = gen
	}
}

// Store is the ordered row list of a sheet. It is not safe for concurrent
// use; the owning sheet serializes access.
type Store struct {
	rows      []Row
	observers []Observer
	newID     IDGenerator
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		rows: make([]Row, 0),
		newID: func() ID {
			return ID(utils.GenerateUUID())
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Store) Len() int {
	return len(s.rows)
}

func (s *Store) Rows() []Row {
	return cloneRows(s.rows)
}

func (s *Store) At(index int) (Row, error) {
	if err := s.checkIndex(index); err != nil {
		return Row{}, err
	}
	return s.rows[index].Clone(), nil
}

func (s *Store) Get(id ID) (Row, error) {
	index := s.IndexOf(id)
	if index < 0 {
		return Row{}, ErrRowNotFound
	}
	return s.rows[index].Clone(), nil
}

// IndexOf returns the current position of the row with the given ID, or -1.
func (s *Store) IndexOf(id ID) int {
	for i, r := range s.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Append(fields []string) Row {
	row := Row{ID: s.newID(), Fields: copyFields(fields)}
	s.rows = append(s.rows, row)
	s.notify(ChangeAppended, len(s.rows)-1, row)
	return row.Clone()
}

func (s *Store) UpdateAt(index int, fields []string) (Row, error) {
	if err := s.checkIndex(index); err != nil {
		return Row{}, err
	}
	s.rows[index].Fields = copyFields(fields)
	row := s.rows[index]
	s.notify(ChangeUpdated, index, row)
	return row.Clone(), nil
}

func (s *Store) UpdateByID(id ID, fields []string) (Row, error) {
	index := s.IndexOf(id)
	if index < 0 {
		return Row{}, ErrRowNotFound
	}
	return s.UpdateAt(index, fields)
}

func (s *Store) RemoveAt(index int) (Row, error) {
	if err := s.checkIndex(index); err != nil {
		return Row{}, err
	}
	row := s.rows[index]
	s.rows = append(s.rows[:index:index], s.rows[index+1:]...)
	s.notify(ChangeRemoved, index, row)
	return row, nil
}

func (s *Store) RemoveByID(id ID) (Row, error) {
	index := s.IndexOf(id)
	if index < 0 {
		return Row{}, ErrRowNotFound
	}
	return s.RemoveAt(index)
}

// ReplaceAll discards the current rows and installs the given tuples, each
// under a fresh ID.
func (s *Store) ReplaceAll(rows [][]string) {
	next := make([]Row, len(rows))
	for i, fields := range rows {
		next[i] = Row{ID: s.newID(), Fields: copyFields(fields)}
	}
	s.rows = next
	s.notify(ChangeReplaced, -1, Row{})
}

// Restore installs previously persisted rows keeping their IDs.
func (s *Store) Restore(rows []Row) {
	s.rows = cloneRows(rows)
	s.notify(ChangeRestored, -1, Row{})
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("%w: index %d, length %d", ErrRowIndexOutOfRange, index, len(s.rows))
	}
	return nil
}

func (s *Store) notify(kind ChangeKind, index int, row Row) {
	if len(s.observers) == 0 {
		return
	}
	event := ChangeEvent{
		Kind:  kind,
		Index: index,
		Row:   row.Clone(),
		Rows:  cloneRows(s.rows),
	}
	for _, o := range s.observers {
		o(event)
	}
}

func copyFields(fields []string) []string {
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}
