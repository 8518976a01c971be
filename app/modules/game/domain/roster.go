package gamedomain

import "strings"

// Roster collects bowler names before a game starts. It always holds between
// MinPlayers and MaxPlayers slots, starting with a single empty one.
type Roster struct {
	names []string
}

// NewRoster returns a roster with one empty slot.
func NewRoster() *Roster {
	return &Roster{names: []string{""}}
}

// Add appends an empty slot. It reports false when the roster is full.
func (r *Roster) Add() bool {
	if len(r.names) >= MaxPlayers {
		return false
	}
	r.names = append(r.names, "")
	return true
}

// Remove drops the slot at index. The last remaining slot cannot be removed.
func (r *Roster) Remove(index int) bool {
	if len(r.names) <= MinPlayers || index < 0 || index >= len(r.names) {
		return false
	}
	r.names = append(r.names[:index], r.names[index+1:]...)
	return true
}

// Rename sets the name in the slot at index.
func (r *Roster) Rename(index int, name string) bool {
	if index < 0 || index >= len(r.names) {
		return false
	}
	r.names[index] = name
	return true
}

// Names returns a copy of the slot names.
func (r *Roster) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of slots.
func (r *Roster) Len() int { return len(r.names) }

// Ready reports whether every slot has a non-blank name.
func (r *Roster) Ready() bool {
	for _, n := range r.names {
		if strings.TrimSpace(n) == "" {
			return false
		}
	}
	return true
}

// Start begins a game with the roster's bowlers.
func (r *Roster) Start() (*Game, error) {
	return NewGame(r.names)
}
