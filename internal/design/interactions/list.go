package interactions

import (
	"fmt"

	"design-api/internal/design/models"
)

// ============================================================
// Interaction lists
// ============================================================

// A shape holds its interactions as an ordered list. The helpers below
// never mutate the input slice; callers store the returned one.

// Add appends an interaction to the list.
func Add(list []models.Interaction, it models.Interaction) ([]models.Interaction, error) {
	if err := Validate(it); err != nil {
		return list, err
	}
	out := make([]models.Interaction, len(list), len(list)+1)
	copy(out, list)
	return append(out, it), nil
}

// Update replaces the interaction at index.
func Update(list []models.Interaction, index int, it models.Interaction) ([]models.Interaction, error) {
	if index < 0 || index >= len(list) {
		return list, fmt.Errorf("%w: interaction index %d out of range", ErrInvalidArgument, index)
	}
	if err := Validate(it); err != nil {
		return list, err
	}
	out := make([]models.Interaction, len(list))
	copy(out, list)
	out[index] = it
	return out, nil
}

// Remove drops the interaction at index, keeping order.
func Remove(list []models.Interaction, index int) ([]models.Interaction, error) {
	if index < 0 || index >= len(list) {
		return list, fmt.Errorf("%w: interaction index %d out of range", ErrInvalidArgument, index)
	}
	out := make([]models.Interaction, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...), nil
}

// RemoveAllTo drops every interaction pointing at shapeID. Used when a
// destination shape is deleted, so no dangling references survive the
// shape they target.
func RemoveAllTo(list []models.Interaction, shapeID string) []models.Interaction {
	var out []models.Interaction
	for _, it := range list {
		if it.Destination != nil && *it.Destination == shapeID {
			continue
		}
		out = append(out, it)
	}
	return out
}
