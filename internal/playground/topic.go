package playground

// TopicID is the anchor id of a lesson section.
type TopicID string

const (
	TopicBoxModel    TopicID = "box-model"
	TopicFlexbox     TopicID = "flexbox"
	TopicGrid        TopicID = "grid"
	TopicPositioning TopicID = "positioning"
	TopicZIndex      TopicID = "z-index"
	TopicTransform   TopicID = "transform"
)

// TopicIDs lists the topics in page order.
func TopicIDs() []TopicID {
	return []TopicID{TopicBoxModel, TopicFlexbox, TopicGrid, TopicPositioning, TopicZIndex, TopicTransform}
}

// ParseTopicID resolves an anchor id. Unknown ids yield false.
func ParseTopicID(s string) (TopicID, bool) {
	for _, id := range TopicIDs() {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

// Info is the heading shown above a lesson.
type Info struct {
	ID          TopicID
	Title       string
	Description string
}

// Topic is one lesson: a parameter store with its control panel, live preview and
// stylesheet generator.
type Topic interface {
	Info() Info
	Controls() []Control
	Preview() Region
	Stylesheet() string
	// Reset restores every field to its default.
	Reset()
}

// NewTopic creates a topic with default values.
func NewTopic(id TopicID) (Topic, bool) {
	switch id {
	case TopicBoxModel:
		return NewBoxModel(), true
	case TopicFlexbox:
		return NewFlexbox(), true
	case TopicGrid:
		return NewGrid(), true
	case TopicPositioning:
		return NewPositioning(), true
	case TopicZIndex:
		return NewLayers(), true
	case TopicTransform:
		return NewTransforms(), true
	default:
		return nil, false
	}
}
