package document

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"design-api/internal/design/interactions"
	"design-api/internal/design/models"
)

// ============================================================
// Document Store
// ============================================================

// ErrShapeNotFound reports a lookup of an id the document does not hold.
var ErrShapeNotFound = errors.New("shape not found")

// Store holds the document's shape map. Shapes are stored and handed out
// by value; every edit goes through the interaction model and replaces
// the whole record under the lock.
type Store struct {
	mu     sync.Mutex
	shapes map[string]models.Shape
}

func NewStore() *Store {
	return &Store{
		shapes: make(map[string]models.Shape),
	}
}

// PutShape inserts a shape, assigning an id when it has none, and
// returns the stored record.
func (s *Store) PutShape(shape models.Shape) models.Shape {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shape.ID == "" {
		shape.ID = uuid.NewString()
	}
	s.shapes[shape.ID] = shape
	return shape
}

// Shape looks up a shape by id.
func (s *Store) Shape(id string) (models.Shape, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shape, ok := s.shapes[id]
	return shape, ok
}

// DeleteShape removes a shape and every interaction in the document that
// pointed at it, so no dangling destinations survive the delete.
func (s *Store) DeleteShape(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shapes[id]; !ok {
		return false
	}
	delete(s.shapes, id)

	for sid, shape := range s.shapes {
		if len(shape.Interactions) == 0 {
			continue
		}
		shape.Interactions = interactions.RemoveAllTo(shape.Interactions, id)
		s.shapes[sid] = shape
	}
	return true
}

// Objects returns a snapshot of the shape map for derivation functions.
func (s *Store) Objects() models.ObjectsMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() models.ObjectsMap {
	objects := make(models.ObjectsMap, len(s.shapes))
	for id, shape := range s.shapes {
		objects[id] = shape
	}
	return objects
}

// Apply runs fn against a shape's interaction list under the lock and
// stores the list it returns. fn receives the shape and a snapshot of
// the whole document, matching the interaction model's signatures.
func (s *Store) Apply(shapeID string, fn func(shape models.Shape, objects models.ObjectsMap) ([]models.Interaction, error)) (models.Shape, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shape, ok := s.shapes[shapeID]
	if !ok {
		return models.Shape{}, ErrShapeNotFound
	}

	list, err := fn(shape, s.snapshotLocked())
	if err != nil {
		return models.Shape{}, err
	}

	shape.Interactions = list
	s.shapes[shapeID] = shape
	return shape, nil
}

// Len reports the number of shapes in the document.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.shapes)
}
