package interactions

import (
	"errors"
	"fmt"

	"design-api/internal/design/models"
)

// ============================================================
// Interaction Model
// ============================================================

// ErrInvalidArgument reports a malformed interaction record or an
// argument outside its enum. It is a contract violation of the caller,
// not a recoverable user error.
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultDelay is the delay, in milliseconds, assigned when an
// interaction first switches to the after-delay event.
const DefaultDelay = 100

// Default returns the interaction every shape starts with.
func Default() models.Interaction {
	return models.Interaction{
		EventType:  models.EventClick,
		ActionType: models.ActionNavigate,
	}
}

// Validate checks that an interaction record is well-formed. Optional
// fields belonging to an inactive classifier value are allowed: the
// model keeps them sparse and never prunes.
func Validate(it models.Interaction) error {
	if !it.EventType.Valid() {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidArgument, it.EventType)
	}
	if !it.ActionType.Valid() {
		return fmt.Errorf("%w: unknown action type %q", ErrInvalidArgument, it.ActionType)
	}
	if it.Delay != nil && *it.Delay < 0 {
		return fmt.Errorf("%w: negative delay %d", ErrInvalidArgument, *it.Delay)
	}
	if it.OverlayPosType != "" && !it.OverlayPosType.Valid() {
		return fmt.Errorf("%w: unknown overlay positioning %q", ErrInvalidArgument, it.OverlayPosType)
	}
	return nil
}

// SetEventType switches the event classifier. Fields of the previous
// event type stay in place so switching back restores them.
func SetEventType(it models.Interaction, et models.EventType) (models.Interaction, error) {
	if err := Validate(it); err != nil {
		return it, err
	}
	if !et.Valid() {
		return it, fmt.Errorf("%w: unknown event type %q", ErrInvalidArgument, et)
	}
	if it.EventType == et {
		return it, nil
	}

	it.EventType = et
	if et == models.EventAfterDelay && it.Delay == nil {
		d := DefaultDelay
		it.Delay = &d
	}
	return it, nil
}

// SetActionType switches the action classifier and fills in defaults
// for the fields the new type requires, keeping any value already
// present from an earlier switch.
func SetActionType(it models.Interaction, at models.ActionType) (models.Interaction, error) {
	if err := Validate(it); err != nil {
		return it, err
	}
	if !at.Valid() {
		return it, fmt.Errorf("%w: unknown action type %q", ErrInvalidArgument, at)
	}
	if it.ActionType == at {
		return it, nil
	}

	it.ActionType = at
	switch at {
	case models.ActionNavigate, models.ActionCloseOverlay:
		// Destination carries forward, nil when never set.
	case models.ActionOpenOverlay:
		if it.OverlayPosType == "" {
			it.OverlayPosType = models.OverlayCenter
		}
		if it.OverlayPosition == nil {
			it.OverlayPosition = &models.Point{}
		}
	case models.ActionOpenURL:
		if it.URL == nil {
			u := ""
			it.URL = &u
		}
	case models.ActionPrevScreen:
		// No extra fields.
	}
	return it, nil
}

// SetDestination points the interaction at another shape. destination
// must be nil or a key of objects. For open-overlay the positioning is
// reset to center and the overlay position re-derived against the new
// destination.
func SetDestination(it models.Interaction, destination *string, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error) {
	if err := Validate(it); err != nil {
		return it, err
	}
	switch it.ActionType {
	case models.ActionNavigate, models.ActionOpenOverlay, models.ActionCloseOverlay:
	default:
		return it, fmt.Errorf("%w: action %q has no destination", ErrInvalidArgument, it.ActionType)
	}
	if destination != nil {
		if _, ok := objects[*destination]; !ok {
			return it, fmt.Errorf("%w: destination %q not in document", ErrInvalidArgument, *destination)
		}
	}

	it.Destination = destination
	if it.ActionType == models.ActionOpenOverlay {
		it.OverlayPosType = models.OverlayCenter
		pos := CalcOverlayPosition(destination, shape, objects, models.OverlayCenter)
		it.OverlayPosition = &pos
	}
	return it, nil
}

// SetOverlayPosType changes how the overlay is placed inside its frame.
// Manual keeps the current position untouched; every other value
// re-derives it.
func SetOverlayPosType(it models.Interaction, pt models.OverlayPositioning, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error) {
	if err := Validate(it); err != nil {
		return it, err
	}
	if !pt.Valid() {
		return it, fmt.Errorf("%w: unknown overlay positioning %q", ErrInvalidArgument, pt)
	}
	if it.ActionType != models.ActionOpenOverlay {
		return it, fmt.Errorf("%w: action %q has no overlay", ErrInvalidArgument, it.ActionType)
	}

	it.OverlayPosType = pt
	if pt != models.OverlayManual {
		pos := CalcOverlayPosition(it.Destination, shape, objects, pt)
		it.OverlayPosition = &pos
	}
	return it, nil
}

// ToggleOverlayPosType selects pt, or falls back to manual when pt is
// already selected (clicking the active choice toggles it off).
func ToggleOverlayPosType(it models.Interaction, pt models.OverlayPositioning, shape models.Shape, objects models.ObjectsMap) (models.Interaction, error) {
	if !pt.Valid() {
		return it, fmt.Errorf("%w: unknown overlay positioning %q", ErrInvalidArgument, pt)
	}
	effective := pt
	if it.OverlayPosType == pt {
		effective = models.OverlayManual
	}
	return SetOverlayPosType(it, effective, shape, objects)
}

// SetOverlayPosition overwrites the overlay position directly. Used for
// manual drag placement, so nothing is re-derived.
func SetOverlayPosition(it models.Interaction, p models.Point) (models.Interaction, error) {
	if err := Validate(it); err != nil {
		return it, err
	}
	if it.ActionType != models.ActionOpenOverlay {
		return it, fmt.Errorf("%w: action %q has no overlay", ErrInvalidArgument, it.ActionType)
	}

	it.OverlayPosition = &p
	return it, nil
}

// CalcOverlayPosition derives where the overlay frame sits inside the
// frame that originates the interaction. A nil destination yields the
// origin; a dangling destination id degrades to a zero-size overlay box.
func CalcOverlayPosition(destination *string, shape models.Shape, objects models.ObjectsMap, pt models.OverlayPositioning) models.Point {
	if destination == nil {
		return models.Point{}
	}

	overlay := objects[*destination].Selrect

	origFrame := shape
	if !shape.IsFrame() {
		origFrame = objects[shape.FrameID]
	}
	frame := origFrame.Selrect

	switch pt {
	case models.OverlayCenter:
		return models.Point{X: (frame.Width - overlay.Width) / 2, Y: (frame.Height - overlay.Height) / 2}
	case models.OverlayTopLeft:
		return models.Point{}
	case models.OverlayTopRight:
		return models.Point{X: frame.Width - overlay.Width, Y: 0}
	case models.OverlayTopCenter:
		return models.Point{X: (frame.Width - overlay.Width) / 2, Y: 0}
	case models.OverlayBottomLeft:
		return models.Point{X: 0, Y: frame.Height - overlay.Height}
	case models.OverlayBottomRight:
		return models.Point{X: frame.Width - overlay.Width, Y: frame.Height - overlay.Height}
	case models.OverlayBottomCenter:
		return models.Point{X: (frame.Width - overlay.Width) / 2, Y: frame.Height - overlay.Height}
	default:
		// Manual placement is owned by the caller.
		return models.Point{}
	}
}
