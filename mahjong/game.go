package mahjong

import "fmt"

// Game 整场对局: 桌况配置 + 当前局 + 已归档的各局
type Game struct {
	table   string
	config  *Config
	metas   []PlayerMeta
	round   *Round
	past    []*Round
	uma     []float64
	lobby   int32
	counter Counter
}

// Counter 整场的动作计数
type Counter struct {
	Draw    int32
	Discard int32
	Chi     int32
	Pon     int32
	Kan     int32
}

func NewGame() *Game {
	return &Game{lobby: -1}
}

func (g *Game) SetTable(table string) {
	g.table = table
}

func (g *Game) Table() string {
	return g.table
}

func (g *Game) SetConfig(config Config) {
	g.config = &config
}

func (g *Game) Config() *Config {
	return g.config
}

func (g *Game) SetLobby(lobby int32) {
	g.lobby = lobby
}

func (g *Game) SetPlayers(metas []PlayerMeta) {
	g.metas = metas
}

func (g *Game) PlayerMetas() []PlayerMeta {
	return g.metas
}

func (g *Game) PlayerCount() int32 {
	if g.config != nil && g.config.Sanma {
		return NP3
	}
	return NP4
}

func (g *Game) Round() *Round {
	return g.round
}

func (g *Game) PastRounds() []*Round {
	return g.past
}

func (g *Game) Uma() []float64 {
	return g.uma
}

func (g *Game) SetUma(uma []float64) {
	g.uma = uma
}

func (g *Game) Counter() *Counter {
	return &g.counter
}

// StartRound 开始新的一局, 并核对分数是否从上一局正确延续
func (g *Game) StartRound(init RoundInit) error {
	if g.config == nil {
		return seqErrorf("init", "round started before game config")
	}
	if g.round != nil && !g.round.Ended() {
		return seqErrorf("init", "previous round has not ended")
	}
	round, err := NewRound(int32(len(g.past)), init, g.PlayerCount())
	if err != nil {
		return err
	}
	if len(g.past) > 0 {
		prev := g.past[len(g.past)-1]
		for i, prevPlayer := range prev.Players() {
			cur := round.Players()[i].Score()
			if prevPlayer.Score() != cur {
				return consistencyError(
					fmt.Sprintf("score of player %d carried into round %d", i, round.Index()),
					prevPlayer.Score(), cur)
			}
		}
	}
	g.round = round
	return nil
}

// ArchiveRound 当前局移入历史, 此后不再变更
func (g *Game) ArchiveRound() error {
	if g.round == nil {
		return seqErrorf("archive", "no round in progress")
	}
	if !g.round.Ended() {
		return seqErrorf("archive", "round has not ended")
	}
	g.past = append(g.past, g.round)
	return nil
}

func (g *Game) CountDraw() {
	g.counter.Draw++
}

func (g *Game) CountDiscard() {
	g.counter.Discard++
}

func (g *Game) CountCall(callType CallType) {
	switch callType {
	case CallChi:
		g.counter.Chi++
	case CallPon:
		g.counter.Pon++
	case CallMinKan, CallAnKan, CallKaKan:
		g.counter.Kan++
	}
}
