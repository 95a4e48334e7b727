package memory

import (
	"context"
	"sync"

	"github.com/maelvns/footlogic/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
	order []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	order := make([]string, 0, len(players))
	for _, item := range players {
		items[item.ID] = item
		order = append(order, item.ID)
	}

	return &PlayerRepository{items: items, order: order}
}

func (r *PlayerRepository) ListByClub(_ context.Context, clubID, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		item := r.items[id]
		if item.ClubID != clubID {
			continue
		}
		if teamID != "" && item.TeamID != teamID {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range r.order {
		item := r.items[id]
		for _, wanted := range playerIDs {
			if item.ID == wanted {
				out = append(out, item)
				break
			}
		}
	}

	return out, nil
}
