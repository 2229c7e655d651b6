package playground

import "github.com/google/uuid"

// Session holds one store per topic for the lifetime of a single learner session. Nothing
// is persisted; a new session starts from the defaults.
type Session struct {
	ID     string
	topics []Topic
}

// NewSession creates every topic with its defaults, in page order.
func NewSession() *Session {
	s := &Session{ID: uuid.NewString()}
	for _, id := range TopicIDs() {
		t, _ := NewTopic(id)
		s.topics = append(s.topics, t)
	}
	return s
}

// Topics returns the topics in page order.
func (s *Session) Topics() []Topic {
	return append([]Topic(nil), s.topics...)
}

// Topic resolves an anchor id. Unknown ids report false and leave the session untouched.
func (s *Session) Topic(id TopicID) (Topic, bool) {
	for _, t := range s.topics {
		if t.Info().ID == id {
			return t, true
		}
	}
	return nil, false
}

// Index returns the page position of id, or -1.
func (s *Session) Index(id TopicID) int {
	for i, t := range s.topics {
		if t.Info().ID == id {
			return i
		}
	}
	return -1
}

// Reset restores the defaults of every topic.
func (s *Session) Reset() {
	for _, t := range s.topics {
		t.Reset()
	}
}
