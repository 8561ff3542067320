package booking

// Party is the side of a booking an actor speaks for.
type Party string

const (
	PartyClient   Party = "CLIENT"
	PartyProvider Party = "PROVIDER"
	PartySystem   Party = "SYSTEM"
)

func (p Party) String() string { return string(p) }

type Kind string

const (
	KindRoom   Kind = "ROOM"
	KindSitter Kind = "SITTER"
)
