package mahjong

// Player 一局内的单个玩家状态, 分数跨局延续
type Player struct {
	score     int64
	hand      *Hand
	discards  *Discards
	available bool
}

func NewPlayer(tiles []Tile, score int64) (*Player, error) {
	hand, err := NewHand(tiles)
	if err != nil {
		return nil, err
	}
	return &Player{
		score:     score,
		hand:      hand,
		discards:  NewDiscards(),
		available: true,
	}, nil
}

func (p *Player) Score() int64 {
	return p.score
}

func (p *Player) AddScore(delta int64) {
	p.score += delta
}

func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) Discards() *Discards {
	return p.discards
}

func (p *Player) Available() bool {
	return p.available
}

func (p *Player) SetAvailable(available bool) {
	p.available = available
}

func (p *Player) Draw(tile Tile) error {
	return p.hand.Add(tile)
}

func (p *Player) Discard(tile Tile) error {
	if err := p.hand.Remove(tile); err != nil {
		return err
	}
	return p.discards.Add(tile)
}
