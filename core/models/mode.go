package models

// Mode is the physics/weapon combination a record was set in.
type Mode int

const (
	ModePQLWeapons Mode = iota
	ModePQLStrafe
	ModeVQLWeapons
	ModeVQLStrafe
	ModeVQ3
	ModeCPM

	// ModeCount is the number of known modes.
	ModeCount = 6
)

var modeNames = [ModeCount]string{
	"PQL Weapons",
	"PQL Strafe",
	"VQL Weapons",
	"VQL Strafe",
	"VQ3",
	"CPM",
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < ModeCount
}

func (m Mode) String() string {
	if !m.Valid() {
		return "-"
	}
	return modeNames[m]
}
