package world

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered "the same", even though they may be implemented
// differently.
//
// What the outside perceives is what the renderer gets from Sprites(), plus
// whether the World accepts gestures and the score.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	sprites := w.Sprites()
	Serialize(buf, int64(len(sprites)))
	for _, s := range sprites {
		Serialize(buf, s.Kind)
		Serialize(buf, s.Visual)
		Serialize(buf, s.Transform)
		Serialize(buf, s.Erased)
	}
	Serialize(buf, int64(w.state))
	Serialize(buf, w.Score)
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough.
// - If the RegressionId changed, the refactoring changed what the player
// sees.
func RegressionId(p *Playthrough) (string, error) {
	w, err := NewWorldFromPlaythrough(*p)
	if err != nil {
		return "", fmt.Errorf("regression: %w", err)
	}

	hash := sha256.New()
	hash.Write(w.StateBytes())
	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
