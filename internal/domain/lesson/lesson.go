package lesson

import "errors"

// Lesson is a saved piece of study content. The ID is assigned by the
// store on insert.
type Lesson struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}

// New validates and builds an unsaved lesson.
func New(name, content string) (*Lesson, error) {
	if name == "" {
		return nil, errors.New("lesson name cannot be empty")
	}
	if content == "" {
		return nil, errors.New("lesson content cannot be empty")
	}
	return &Lesson{Name: name, Content: content}, nil
}
