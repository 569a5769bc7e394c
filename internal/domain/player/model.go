package player

import "fmt"

// Position represents football roster slots used in spending rollups.
type Position string

const (
	PositionQuarterback Position = "QB"
	PositionRunningBack Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd    Position = "TE"
	PositionKicker      Position = "K"
	PositionDefense     Position = "DEF"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
	PositionKicker:       {},
	PositionDefense:      {},
}

// Player is an athlete identity mirrored from the external provider.
type Player struct {
	ID            string
	LeagueID      string
	Name          string
	Position      Position
	ExternalRefID int64
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("player league id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
