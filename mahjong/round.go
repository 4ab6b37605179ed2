package mahjong

import "fmt"

// LastTile 记录最近一次摸牌/舍牌, 供后续事件校验
type LastTile struct {
	Player int32
	Tile   Tile
}

// RoundState 一局中各家共享的场况
type RoundState struct {
	Oya   int32
	Combo int32
	Reach int32
	Dice  [2]int32
	Dora  []Tile
}

// Round 一局: 从配牌到和牌或流局
type Round struct {
	index       int32
	state       *RoundState
	players     []*Player
	lastDiscard *LastTile
	lastDraw    *LastTile
	reason      string
	ended       bool
}

func NewRound(index int32, init RoundInit, playerCount int32) (*Round, error) {
	if int32(len(init.Hands)) != playerCount {
		return nil, seqErrorf("init", "expected %d hands, got %d", playerCount, len(init.Hands))
	}
	if int32(len(init.Scores)) != playerCount {
		return nil, seqErrorf("init", "expected %d scores, got %d", playerCount, len(init.Scores))
	}
	if !init.Dora.Valid() {
		return nil, seqErrorf("init", "invalid dora indicator %d", init.Dora)
	}
	r := &Round{
		index: index,
		state: &RoundState{
			Oya:   init.Oya,
			Combo: init.Combo,
			Reach: init.Reach,
			Dice:  init.Dice,
			Dora:  []Tile{init.Dora},
		},
	}
	for i := range playerCount {
		player, err := NewPlayer(init.Hands[i], init.Scores[i])
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		r.players = append(r.players, player)
	}
	return r, nil
}

func (r *Round) Index() int32 {
	return r.index
}

func (r *Round) State() *RoundState {
	return r.state
}

func (r *Round) Players() []*Player {
	return r.players
}

func (r *Round) Ended() bool {
	return r.ended
}

func (r *Round) Reason() string {
	return r.reason
}

func (r *Round) LastDiscard() *LastTile {
	return r.lastDiscard
}

func (r *Round) player(seat int32) (*Player, error) {
	if seat < 0 || int(seat) >= len(r.players) {
		return nil, seqErrorf("round", "invalid seat %d", seat)
	}
	return r.players[seat], nil
}

func (r *Round) inProgress(op string) error {
	if r.ended {
		return seqErrorf(op, "round already ended")
	}
	return nil
}

func (r *Round) Draw(seat int32, tile Tile) error {
	if err := r.inProgress("draw"); err != nil {
		return err
	}
	player, err := r.player(seat)
	if err != nil {
		return err
	}
	if err := player.Draw(tile); err != nil {
		return err
	}
	r.lastDraw = &LastTile{Player: seat, Tile: tile}
	return nil
}

func (r *Round) Discard(seat int32, tile Tile) error {
	if err := r.inProgress("discard"); err != nil {
		return err
	}
	player, err := r.player(seat)
	if err != nil {
		return err
	}
	if err := player.Discard(tile); err != nil {
		return err
	}
	r.lastDiscard = &LastTile{Player: seat, Tile: tile}
	return nil
}

// Call 副露: 鸣他家舍牌前先校验牌河指针
func (r *Round) Call(caller, callee int32, callType CallType, mentsu []Tile) error {
	if err := r.inProgress("call"); err != nil {
		return err
	}
	callerP, err := r.player(caller)
	if err != nil {
		return err
	}
	calleeP, err := r.player(callee)
	if err != nil {
		return err
	}
	if callType.Claimed() {
		if err := r.validateClaim(callee, mentsu); err != nil {
			return err
		}
		if err := callerP.Hand().Expose(callType, mentsu, callee); err != nil {
			return err
		}
		return calleeP.Discards().MarkTaken(caller)
	}
	return callerP.Hand().Expose(callType, mentsu, SeatNull)
}

func (r *Round) validateClaim(callee int32, mentsu []Tile) error {
	if r.lastDiscard == nil {
		return seqErrorf("call", "no discard to claim")
	}
	if r.lastDiscard.Player != callee {
		return seqErrorf("call",
			"player who discarded last (%d) does not match callee (%d)",
			r.lastDiscard.Player, callee)
	}
	found := false
	for _, tile := range mentsu {
		if tile == r.lastDiscard.Tile {
			found = true
			break
		}
	}
	if !found {
		return seqErrorf("call",
			"last discarded tile %v is not included in mentsu %v",
			r.lastDiscard.Tile, mentsu)
	}
	return nil
}

// Reach 立直: step1宣言须紧跟本家摸牌, step2扣注并校验快照
func (r *Round) Reach(seat, step int32, scores []int64) error {
	if err := r.inProgress("reach"); err != nil {
		return err
	}
	player, err := r.player(seat)
	if err != nil {
		return err
	}
	switch step {
	case 1:
		if r.lastDraw == nil || r.lastDraw.Player != seat {
			return seqErrorf("reach",
				"reach declaration must follow player %d's own draw", seat)
		}
		return player.Hand().SetReach()
	case 2:
		if !player.Hand().Reach() {
			return seqErrorf("reach", "stake without declaration by player %d", seat)
		}
		player.AddScore(-ReachStake)
		r.state.Reach++
		if scores != nil {
			return r.validateScores(scores)
		}
		return nil
	default:
		return seqErrorf("reach", "unexpected step value %d", step)
	}
}

func (r *Round) AddDora(indicator Tile) error {
	if err := r.inProgress("dora"); err != nil {
		return err
	}
	if !indicator.Valid() {
		return seqErrorf("dora", "invalid dora indicator %d", indicator)
	}
	r.state.Dora = append(r.state.Dora, indicator)
	return nil
}

func (r *Round) validateScores(reported []int64) error {
	if len(reported) < len(r.players) {
		return seqErrorf("scores", "expected %d scores, got %d", len(r.players), len(reported))
	}
	for i, player := range r.players {
		if player.Score() != reported[i] {
			return consistencyError(
				fmt.Sprintf("score of player %d", i), player.Score(), reported[i])
		}
	}
	return nil
}

func (r *Round) validateBa(ba Ba) error {
	if r.state.Reach != ba.Reach {
		return consistencyError("#reach sticks on table", r.state.Reach, ba.Reach)
	}
	if r.state.Combo != ba.Combo {
		return consistencyError("#combo sticks on table", r.state.Combo, ba.Combo)
	}
	return nil
}

func (r *Round) validateFurikomi(loser int32, machi Tile) error {
	if r.lastDiscard == nil {
		return seqErrorf("agari", "ron without any discard")
	}
	if r.lastDiscard.Player != loser {
		return seqErrorf("agari",
			"loser (%d) and the player who discarded last (%d) do not match",
			loser, r.lastDiscard.Player)
	}
	if r.lastDiscard.Tile != machi {
		return seqErrorf("agari",
			"machi tile %v and the tile lastly discarded %v do not match",
			machi, r.lastDiscard.Tile)
	}
	return nil
}

// Agari 和牌: 先逐项核对上报值, 再套用分差并清空立直棒
func (r *Round) Agari(data AgariData) error {
	if err := r.inProgress("agari"); err != nil {
		return err
	}
	winner, err := r.player(data.Winner)
	if err != nil {
		return err
	}
	if err := r.validateScores(data.Scores); err != nil {
		return err
	}
	if err := r.validateBa(data.Ba); err != nil {
		return err
	}
	if data.Loser != SeatNull {
		if len(data.Machi) == 0 {
			return seqErrorf("agari", "ron without machi tiles")
		}
		if err := r.validateFurikomi(data.Loser, data.Machi[0]); err != nil {
			return err
		}
	} else if r.lastDraw == nil || r.lastDraw.Player != data.Winner {
		return seqErrorf("agari",
			"tsumo by player %d does not follow own draw", data.Winner)
	}

	// 不重算点数, 只校验和牌手全部包含于上报的牌列中
	allowed := make(map[Tile]struct{}, len(data.Hand)+len(data.Machi))
	for _, tile := range data.Hand {
		allowed[tile] = struct{}{}
	}
	for _, tile := range data.Machi {
		allowed[tile] = struct{}{}
	}
	for _, tile := range winner.Hand().Closed().Slice() {
		if _, ok := allowed[tile]; !ok {
			return consistencyError("winning hand",
				winner.Hand().Closed(), GetTilesName(data.Hand))
		}
	}

	for i, player := range r.players {
		if i < len(data.Gains) {
			player.AddScore(data.Gains[i])
		}
	}
	r.state.Reach = 0
	if data.Final != nil {
		if err := r.validateScores(data.Final.Scores); err != nil {
			return err
		}
	}
	r.ended = true
	return nil
}

// Ryuukyoku 流局: 校验上报值与亮出的手牌, 终局时处理残留立直棒
func (r *Round) Ryuukyoku(data RyuukyokuData) error {
	if err := r.inProgress("ryuukyoku"); err != nil {
		return err
	}
	if err := r.validateScores(data.Scores); err != nil {
		return err
	}
	if err := r.validateBa(data.Ba); err != nil {
		return err
	}
	if err := r.validateRevealedHands(data.Hands); err != nil {
		return err
	}

	for i, player := range r.players {
		if i < len(data.Gains) {
			player.AddScore(data.Gains[i])
		}
	}
	r.reason = data.Reason
	if data.Final != nil {
		if r.state.Reach > 0 {
			if err := r.awardReachSticks(); err != nil {
				return err
			}
		}
		if err := r.validateScores(data.Final.Scores); err != nil {
			return err
		}
	}
	r.ended = true
	return nil
}

func (r *Round) validateRevealedHands(hands [][]Tile) error {
	for i, player := range r.players {
		if i >= len(hands) || hands[i] == nil {
			continue
		}
		if !player.Hand().Closed().EqualTiles(hands[i]) {
			return consistencyError(
				fmt.Sprintf("hand of player %d", i),
				player.Hand().Closed(), GetTilesName(hands[i]))
		}
	}
	return nil
}

// 终局残留的立直棒归唯一分数最高者; 并列最高不在支持范围内
func (r *Round) awardReachSticks() error {
	tops := r.TopPlayers()
	if len(tops) != 1 {
		return seqErrorf("ryuukyoku",
			"unsupported: %d players tied for top score with %d reach sticks outstanding",
			len(tops), r.state.Reach)
	}
	tops[0].AddScore(int64(r.state.Reach) * ReachStake)
	r.state.Reach = 0
	return nil
}

func (r *Round) TopPlayers() []*Player {
	var top int64
	for i, player := range r.players {
		if i == 0 || player.Score() > top {
			top = player.Score()
		}
	}
	var tops []*Player
	for _, player := range r.players {
		if player.Score() == top {
			tops = append(tops, player)
		}
	}
	return tops
}

func (r *Round) Bye(seat int32) error {
	player, err := r.player(seat)
	if err != nil {
		return err
	}
	player.SetAvailable(false)
	return nil
}

func (r *Round) Resume(seat int32) error {
	player, err := r.player(seat)
	if err != nil {
		return err
	}
	player.SetAvailable(true)
	return nil
}
