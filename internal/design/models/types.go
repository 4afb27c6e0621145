package models

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding box in document coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ============================================================
// Shapes
// ============================================================

type ShapeType string

const (
	ShapeFrame  ShapeType = "frame"
	ShapeGroup  ShapeType = "group"
	ShapeRect   ShapeType = "rect"
	ShapeCircle ShapeType = "circle"
	ShapePath   ShapeType = "path"
	ShapeText   ShapeType = "text"
	ShapeBool   ShapeType = "bool"
)

// Shape is a node in the design document tree. FrameID points at the
// containing frame and is empty for top-level frames.
type Shape struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         ShapeType     `json:"type"`
	FrameID      string        `json:"frame_id,omitempty"`
	Selrect      Rect          `json:"selrect"`
	Interactions []Interaction `json:"interactions,omitempty"`
}

// IsFrame reports whether the shape is a top-level container (artboard).
func (s Shape) IsFrame() bool {
	return s.Type == ShapeFrame
}

// ObjectsMap is the document's shape map. Lookups may miss: frame and
// destination references are weak, absence is a normal state.
type ObjectsMap map[string]Shape

// ============================================================
// Interaction classifiers
// ============================================================

type EventType string

const (
	EventClick      EventType = "click"
	EventMouseOver  EventType = "mouse-over"
	EventMousePress EventType = "mouse-press"
	EventMouseEnter EventType = "mouse-enter"
	EventMouseLeave EventType = "mouse-leave"
	EventAfterDelay EventType = "after-delay"
)

func (e EventType) Valid() bool {
	switch e {
	case EventClick, EventMouseOver, EventMousePress, EventMouseEnter, EventMouseLeave, EventAfterDelay:
		return true
	}
	return false
}

type ActionType string

const (
	ActionNavigate     ActionType = "navigate"
	ActionOpenOverlay  ActionType = "open-overlay"
	ActionCloseOverlay ActionType = "close-overlay"
	ActionPrevScreen   ActionType = "prev-screen"
	ActionOpenURL      ActionType = "open-url"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionNavigate, ActionOpenOverlay, ActionCloseOverlay, ActionPrevScreen, ActionOpenURL:
		return true
	}
	return false
}

// OverlayPositioning places an overlay inside its origin frame. Manual
// means the position was dragged by hand and is never derived.
type OverlayPositioning string

const (
	OverlayManual       OverlayPositioning = "manual"
	OverlayCenter       OverlayPositioning = "center"
	OverlayTopLeft      OverlayPositioning = "top-left"
	OverlayTopRight     OverlayPositioning = "top-right"
	OverlayTopCenter    OverlayPositioning = "top-center"
	OverlayBottomLeft   OverlayPositioning = "bottom-left"
	OverlayBottomRight  OverlayPositioning = "bottom-right"
	OverlayBottomCenter OverlayPositioning = "bottom-center"
)

func (p OverlayPositioning) Valid() bool {
	switch p {
	case OverlayManual, OverlayCenter, OverlayTopLeft, OverlayTopRight, OverlayTopCenter,
		OverlayBottomLeft, OverlayBottomRight, OverlayBottomCenter:
		return true
	}
	return false
}

// ============================================================
// Interaction
// ============================================================

// Interaction binds a user-triggered event on a shape to an action.
// Optional fields are sparse: a field set for one classifier value is
// left in place when the classifier changes, so switching back restores
// the previous value instead of a default.
type Interaction struct {
	EventType  EventType  `json:"event_type"`
	ActionType ActionType `json:"action_type"`

	// after-delay
	Delay *int `json:"delay,omitempty"`

	// navigate / open-overlay / close-overlay
	Destination *string `json:"destination,omitempty"`

	// open-overlay
	OverlayPosType  OverlayPositioning `json:"overlay_pos_type,omitempty"`
	OverlayPosition *Point             `json:"overlay_position,omitempty"`

	// open-url
	URL *string `json:"url,omitempty"`
}
