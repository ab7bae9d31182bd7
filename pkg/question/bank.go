package question

import (
	"bytes"
	"encoding/json"
)

// Bank maps category keys to their question sequences. Key order
// is fixed by the category table at build time, so repeated builds
// of unchanged input serialize byte-identically. A Bank is built
// once per run and never mutated afterwards.
type Bank struct {
	keys  []string
	byKey map[string][]Question
}

// NewBank creates an empty bank.
func NewBank() *Bank {
	return &Bank{byKey: make(map[string][]Question)}
}

// Add appends questions under a key, registering the key on first
// use. Adding an empty slice still registers the key, so mapped
// categories with no surviving questions appear in the artifact
// with an empty list.
func (b *Bank) Add(key string, questions []Question) {
	if _, ok := b.byKey[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.byKey[key] = append(b.byKey[key], questions...)
}

// Get returns the questions stored under a key.
func (b *Bank) Get(key string) ([]Question, bool) {
	questions, ok := b.byKey[key]
	return questions, ok
}

// Keys returns the category keys in registration order.
func (b *Bank) Keys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// Count returns the total number of questions across all keys.
func (b *Bank) Count() int {
	total := 0
	for _, questions := range b.byKey {
		total += len(questions)
	}
	return total
}

// CountFor returns the number of questions under one key.
func (b *Bank) CountFor(key string) int {
	return len(b.byKey[key])
}

// MarshalJSON emits an object whose keys appear in registration
// order, keeping the artifact deterministic across runs.
func (b *Bank) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyData, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyData)
		buf.WriteByte(':')

		questions := b.byKey[key]
		if questions == nil {
			questions = []Question{}
		}
		questionData, err := json.Marshal(questions)
		if err != nil {
			return nil, err
		}
		buf.Write(questionData)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
