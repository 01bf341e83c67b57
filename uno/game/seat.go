package game

// seat binds a player to its hand and per-match bookkeeping.
type seat struct {
	player      Player
	hand        *Hand
	score       int
	forcedDraws int
	drew        bool
}

func newSeat(player Player) *seat {
	return &seat{
		player: player,
		hand:   NewHand(),
	}
}

func (s *seat) Name() string {
	return s.player.Name()
}

func (s *seat) view() SeatView {
	return SeatView{
		ID:          s.player.ID(),
		Name:        s.player.Name(),
		Kind:        s.player.Kind(),
		Cards:       s.hand.Size(),
		Hand:        s.hand.Cards(),
		Score:       s.score,
		ForcedDraws: s.forcedDraws,
	}
}
