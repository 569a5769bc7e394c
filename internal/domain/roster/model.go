package roster

import (
	"sort"
	"time"
)

// Snapshot is the set of player ids a team's roster held at the last
// completed sync pass. It is the "previous" side of drop detection: the next
// pass diffs the freshly fetched set against it before writing anything.
type Snapshot struct {
	LeagueID  string
	TeamID    string
	PlayerIDs []string
	SyncedAt  time.Time
}

// PlayerSet returns the snapshot's players as a membership set.
func (s Snapshot) PlayerSet() map[string]struct{} {
	out := make(map[string]struct{}, len(s.PlayerIDs))
	for _, id := range s.PlayerIDs {
		if id == "" {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}

// DetectDrops returns previous minus current, sorted. Additions are not this
// function's business; a player in current but not previous is ignored.
func DetectDrops(previous, current []string) []string {
	currentSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(previous))
	out := make([]string, 0)
	for _, id := range previous {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, kept := currentSet[id]; !kept {
			out = append(out, id)
		}
	}

	sort.Strings(out)
	return out
}
