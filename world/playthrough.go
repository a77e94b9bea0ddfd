package world

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// SimulationVersion changes every time the World changes in a way that makes
// old playthroughs play out differently.
const SimulationVersion = 2

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
const InputVersion = 1

// Playthrough represents all the input sent to a World during a session.
// Given this input and a compatible simulation, the same World is generated in
// the end, frame by frame.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Params            Params
	Catalog           []Asset
	Id                uuid.UUID
	Seed              int64
	History           []PlayerInput
}

func NewPlaythrough(releaseVersion int64, seed int64, params Params,
	catalog []Asset) Playthrough {
	return Playthrough{
		InputVersion:      InputVersion,
		SimulationVersion: SimulationVersion,
		ReleaseVersion:    releaseVersion,
		Params:            params,
		Catalog:           slices.Clone(catalog),
		Id:                uuid.New(),
		Seed:              seed,
	}
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	Serialize(buf, p.Params)
	SerializeSlice(buf, p.Catalog)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.Catalog = slices.Clone(p.Catalog)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	raw, err := Unzip(data)
	if err != nil {
		return p, fmt.Errorf("unzip playthrough: %w", err)
	}
	buf := bytes.NewBuffer(raw)
	if err = Deserialize(buf, &p.InputVersion); err != nil {
		return p, fmt.Errorf("read input version: %w", err)
	}
	if p.InputVersion != InputVersion {
		return p, fmt.Errorf("can't deserialize this playthrough - we are "+
			"at InputVersion %d and playthrough was generated with "+
			"InputVersion %d", InputVersion, p.InputVersion)
	}
	err = errors.Join(
		Deserialize(buf, &p.SimulationVersion),
		Deserialize(buf, &p.ReleaseVersion),
		Deserialize(buf, &p.Params),
		DeserializeSlice(buf, &p.Catalog),
		Deserialize(buf, &p.Id),
		Deserialize(buf, &p.Seed),
		DeserializeSlice(buf, &p.History))
	if err != nil {
		return p, fmt.Errorf("read playthrough: %w", err)
	}
	return p, nil
}

// NewWorldFromPlaythrough creates the World the playthrough started with.
func NewWorldFromPlaythrough(p Playthrough) (*World, error) {
	if p.SimulationVersion != SimulationVersion {
		return nil, fmt.Errorf("can't play this playthrough - we are at "+
			"SimulationVersion %d and playthrough was generated with "+
			"SimulationVersion %d", SimulationVersion, p.SimulationVersion)
	}
	return NewWorld(p.Seed, p.Params, p.Catalog)
}
