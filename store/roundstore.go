package store

import (
	"errors"

	"github.com/adaolisa/uno/round"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownRoundID = errors.New("unknown round ID")
	ErrNilRound       = errors.New("round is nil")
)

// RoundStore holds rounds by ID
type RoundStore interface {
	Find(roundID string) (*round.Round, error)
	Add(r *round.Round) (string, error)
	Remove(roundID string)
	ActiveRoundIDs() []string
}

// InMemoryRoundStore maps round id to round
type InMemoryRoundStore struct {
	Rounds map[string]*round.Round
}

// NewInMemoryRoundStore constructs an InMemoryRoundStore
func NewInMemoryRoundStore() *InMemoryRoundStore {
	return &InMemoryRoundStore{
		Rounds: map[string]*round.Round{},
	}
}

// NewID returns a fresh round ID
func NewID() string {
	return uuid.NewV4().String()
}

// Find returns the round with the given ID
func (s *InMemoryRoundStore) Find(roundID string) (*round.Round, error) {
	r, ok := s.Rounds[roundID]
	if !ok {
		return nil, ErrUnknownRoundID
	}
	return r, nil
}

// Add stores a round under a fresh ID
func (s *InMemoryRoundStore) Add(r *round.Round) (string, error) {
	if r == nil {
		return "", ErrNilRound
	}
	id := NewID()
	s.Rounds[id] = r
	return id, nil
}

// Remove drops the round with the given ID, if present
func (s *InMemoryRoundStore) Remove(roundID string) {
	delete(s.Rounds, roundID)
}

// ActiveRoundIDs returns the IDs of all rounds still in play
func (s *InMemoryRoundStore) ActiveRoundIDs() []string {
	ids := []string{}
	for id, r := range s.Rounds {
		if !r.HasEnded() {
			ids = append(ids, id)
		}
	}
	return ids
}
