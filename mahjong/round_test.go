package mahjong_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_mjlog/mahjong"
)

func testInit(scores ...int64) mahjong.RoundInit {
	if scores == nil {
		scores = []int64{25000, 25000, 25000, 25000}
	}
	return mahjong.RoundInit{
		Round: 0,
		Combo: 0,
		Reach: 0,
		Dice:  [2]int32{2, 4},
		Dora:  60,
		Oya:   0,
		Hands: [][]mahjong.Tile{
			{0, 8, 16, 17, 18},
			{4, 100},
			{52, 53, 54, 55},
			{120, 121},
		},
		Scores: scores,
	}
}

func newRound(t *testing.T, scores ...int64) *mahjong.Round {
	t.Helper()
	round, err := mahjong.NewRound(0, testInit(scores...), mahjong.NP4)
	if err != nil {
		t.Fatal(err)
	}
	return round
}

func TestNewRoundCountMismatch(t *testing.T) {
	init := testInit()
	init.Hands = init.Hands[:3]
	if _, err := mahjong.NewRound(0, init, mahjong.NP4); err == nil {
		t.Error("NewRound accepted 3 hands for 4 players")
	}
	init = testInit()
	init.Scores = init.Scores[:2]
	if _, err := mahjong.NewRound(0, init, mahjong.NP4); err == nil {
		t.Error("NewRound accepted 2 scores for 4 players")
	}
	init = testInit()
	init.Dora = -1
	if _, err := mahjong.NewRound(0, init, mahjong.NP4); err == nil {
		t.Error("NewRound accepted an invalid dora indicator")
	}
}

func TestRoundDrawDiscard(t *testing.T) {
	round := newRound(t)
	if err := round.Draw(1, 64); err != nil {
		t.Fatal(err)
	}
	if err := round.Discard(1, 4); err != nil {
		t.Fatal(err)
	}
	last := round.LastDiscard()
	if last == nil || last.Player != 1 || last.Tile != 4 {
		t.Errorf("LastDiscard = %+v, want player 1 tile 4", last)
	}
	river := round.Players()[1].Discards()
	if !river.Tiles().Contains(4) {
		t.Error("discarded tile missing from river")
	}
	// discarding a tile not in hand
	if err := round.Discard(1, 99); err == nil {
		t.Error("Discard accepted a tile not in hand")
	}
}

func TestRoundClaimValidation(t *testing.T) {
	round := newRound(t)
	// no discard yet
	if err := round.Call(0, 1, mahjong.CallChi, []mahjong.Tile{4, 0, 8}); err == nil {
		t.Error("claim without a discard must fail")
	}
	if err := round.Draw(1, 64); err != nil {
		t.Fatal(err)
	}
	if err := round.Discard(1, 4); err != nil {
		t.Fatal(err)
	}
	// wrong callee
	if err := round.Call(0, 2, mahjong.CallChi, []mahjong.Tile{4, 0, 8}); err == nil {
		t.Error("claim from the wrong seat must fail")
	}
	// mentsu without the discarded tile
	if err := round.Call(0, 1, mahjong.CallPon, []mahjong.Tile{16, 17, 18}); err == nil {
		t.Error("claim of an undiscarded tile must fail")
	}
	if err := round.Call(0, 1, mahjong.CallChi, []mahjong.Tile{4, 0, 8}); err != nil {
		t.Fatal(err)
	}
	taken := round.Players()[1].Discards().Taken()
	if len(taken) != 1 || taken[0] != 0 {
		t.Errorf("taken = %v, want [0]", taken)
	}
}

func TestRoundAnKanNeedsNoDiscard(t *testing.T) {
	round := newRound(t)
	if err := round.Call(2, 2, mahjong.CallAnKan, []mahjong.Tile{52, 53}); err != nil {
		t.Fatal(err)
	}
	melds := round.Players()[2].Hand().Melds()
	if len(melds) != 1 || melds[0].Type != mahjong.CallAnKan {
		t.Fatalf("melds = %v", melds)
	}
	if melds[0].From != mahjong.SeatNull {
		t.Errorf("From = %d, want SeatNull", melds[0].From)
	}
}

func TestRoundReachFlow(t *testing.T) {
	round := newRound(t)
	// declaration before own draw
	if err := round.Reach(0, 1, nil); err == nil {
		t.Error("reach declaration before a draw must fail")
	}
	// stake before declaration
	if err := round.Reach(0, 2, nil); err == nil {
		t.Error("reach stake before declaration must fail")
	}
	if err := round.Draw(0, 64); err != nil {
		t.Fatal(err)
	}
	if err := round.Reach(0, 1, nil); err != nil {
		t.Fatal(err)
	}
	scores := []int64{24000, 25000, 25000, 25000}
	if err := round.Reach(0, 2, scores); err != nil {
		t.Fatal(err)
	}
	if got := round.Players()[0].Score(); got != 24000 {
		t.Errorf("score after stake = %d, want 24000", got)
	}
	if round.State().Reach != 1 {
		t.Errorf("reach sticks = %d, want 1", round.State().Reach)
	}
}

func TestRoundReachSnapshotMismatch(t *testing.T) {
	round := newRound(t)
	if err := round.Draw(0, 64); err != nil {
		t.Fatal(err)
	}
	if err := round.Reach(0, 1, nil); err != nil {
		t.Fatal(err)
	}
	err := round.Reach(0, 2, []int64{25000, 25000, 25000, 25000})
	var cerr *mahjong.ConsistencyError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConsistencyError", err)
	}
}

func TestRoundAgariTsumo(t *testing.T) {
	round := newRound(t)
	if err := round.Draw(0, 100); err != nil {
		t.Fatal(err)
	}
	data := mahjong.AgariData{
		Winner: 0,
		Loser:  mahjong.SeatNull,
		Hand:   []mahjong.Tile{0, 8, 16, 17, 18},
		Machi:  []mahjong.Tile{100},
		Ba:     mahjong.Ba{Combo: 0, Reach: 0},
		Scores: []int64{25000, 25000, 25000, 25000},
		Gains:  []int64{3000, -1000, -1000, -1000},
	}
	if err := round.Agari(data); err != nil {
		t.Fatal(err)
	}
	if !round.Ended() {
		t.Error("round not ended after agari")
	}
	want := []int64{28000, 24000, 24000, 24000}
	for i, player := range round.Players() {
		if player.Score() != want[i] {
			t.Errorf("player %d score = %d, want %d", i, player.Score(), want[i])
		}
	}
	// no further events once ended
	if err := round.Draw(1, 64); err == nil {
		t.Error("Draw accepted after round end")
	}
}

func TestRoundAgariTsumoWithoutDraw(t *testing.T) {
	round := newRound(t)
	data := mahjong.AgariData{
		Winner: 0,
		Loser:  mahjong.SeatNull,
		Hand:   []mahjong.Tile{0, 8, 16, 17, 18},
		Machi:  []mahjong.Tile{100},
		Scores: []int64{25000, 25000, 25000, 25000},
	}
	if err := round.Agari(data); err == nil {
		t.Error("tsumo without a preceding draw must fail")
	}
}

func TestRoundAgariRon(t *testing.T) {
	round := newRound(t)
	if err := round.Draw(1, 64); err != nil {
		t.Fatal(err)
	}
	if err := round.Discard(1, 100); err != nil {
		t.Fatal(err)
	}
	data := mahjong.AgariData{
		Winner: 0,
		Loser:  1,
		Hand:   []mahjong.Tile{0, 8, 16, 17, 18},
		Machi:  []mahjong.Tile{100},
		Scores: []int64{25000, 25000, 25000, 25000},
		Gains:  []int64{3900, -3900, 0, 0},
	}
	if err := round.Agari(data); err != nil {
		t.Fatal(err)
	}
	if got := round.Players()[1].Score(); got != 21100 {
		t.Errorf("loser score = %d, want 21100", got)
	}
}

func TestRoundAgariRonWrongMachi(t *testing.T) {
	round := newRound(t)
	if err := round.Draw(1, 64); err != nil {
		t.Fatal(err)
	}
	if err := round.Discard(1, 100); err != nil {
		t.Fatal(err)
	}
	data := mahjong.AgariData{
		Winner: 0,
		Loser:  1,
		Hand:   []mahjong.Tile{0, 8, 16, 17, 18},
		Machi:  []mahjong.Tile{99},
		Scores: []int64{25000, 25000, 25000, 25000},
	}
	if err := round.Agari(data); err == nil {
		t.Error("ron on a tile other than the last discard must fail")
	}
}

func TestRoundAgariHandMismatch(t *testing.T) {
	round := newRound(t)
	if err := round.Draw(0, 100); err != nil {
		t.Fatal(err)
	}
	data := mahjong.AgariData{
		Winner: 0,
		Loser:  mahjong.SeatNull,
		// reported hand omits tile 18 which the model still holds
		Hand:   []mahjong.Tile{0, 8, 16, 17},
		Machi:  []mahjong.Tile{100},
		Scores: []int64{25000, 25000, 25000, 25000},
	}
	err := round.Agari(data)
	var cerr *mahjong.ConsistencyError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConsistencyError", err)
	}
}

func TestRoundAgariBaMismatch(t *testing.T) {
	round := newRound(t)
	if err := round.Draw(0, 100); err != nil {
		t.Fatal(err)
	}
	data := mahjong.AgariData{
		Winner: 0,
		Loser:  mahjong.SeatNull,
		Hand:   []mahjong.Tile{0, 8, 16, 17, 18},
		Machi:  []mahjong.Tile{100},
		Ba:     mahjong.Ba{Combo: 0, Reach: 2},
		Scores: []int64{25000, 25000, 25000, 25000},
	}
	err := round.Agari(data)
	var cerr *mahjong.ConsistencyError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConsistencyError", err)
	}
}

func TestRoundRyuukyoku(t *testing.T) {
	round := newRound(t)
	data := mahjong.RyuukyokuData{
		Reason: "yao9",
		Hands:  [][]mahjong.Tile{nil, {4, 100}, nil, nil},
		Scores: []int64{25000, 25000, 25000, 25000},
		Gains:  []int64{-1000, 3000, -1000, -1000},
	}
	if err := round.Ryuukyoku(data); err != nil {
		t.Fatal(err)
	}
	if !round.Ended() {
		t.Error("round not ended after ryuukyoku")
	}
	if round.Reason() != "yao9" {
		t.Errorf("reason = %q, want yao9", round.Reason())
	}
	if got := round.Players()[1].Score(); got != 28000 {
		t.Errorf("player 1 score = %d, want 28000", got)
	}
}

func TestRoundRyuukyokuRevealedHandMismatch(t *testing.T) {
	round := newRound(t)
	data := mahjong.RyuukyokuData{
		Hands:  [][]mahjong.Tile{nil, {4, 99}, nil, nil},
		Scores: []int64{25000, 25000, 25000, 25000},
	}
	err := round.Ryuukyoku(data)
	var cerr *mahjong.ConsistencyError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConsistencyError", err)
	}
}

func TestRoundRyuukyokuAwardsReachSticks(t *testing.T) {
	round := newRound(t, 25000, 26000, 24000, 23000)
	if err := round.Draw(0, 64); err != nil {
		t.Fatal(err)
	}
	if err := round.Reach(0, 1, nil); err != nil {
		t.Fatal(err)
	}
	if err := round.Reach(0, 2, nil); err != nil {
		t.Fatal(err)
	}
	data := mahjong.RyuukyokuData{
		Ba:     mahjong.Ba{Combo: 0, Reach: 1},
		Scores: []int64{24000, 26000, 24000, 23000},
		Final: &mahjong.FinalResult{
			Scores: []int64{24000, 27000, 24000, 23000},
			Uma:    []float64{-10, 30, -10, -10},
		},
	}
	if err := round.Ryuukyoku(data); err != nil {
		t.Fatal(err)
	}
	if got := round.Players()[1].Score(); got != 27000 {
		t.Errorf("top player score = %d, want 27000 with the stick", got)
	}
	if round.State().Reach != 0 {
		t.Errorf("reach sticks = %d, want 0 after award", round.State().Reach)
	}
}

func TestRoundRyuukyokuTiedTopUnsupported(t *testing.T) {
	round := newRound(t)
	if err := round.Draw(0, 64); err != nil {
		t.Fatal(err)
	}
	if err := round.Reach(0, 1, nil); err != nil {
		t.Fatal(err)
	}
	if err := round.Reach(0, 2, nil); err != nil {
		t.Fatal(err)
	}
	data := mahjong.RyuukyokuData{
		Ba:     mahjong.Ba{Combo: 0, Reach: 1},
		Scores: []int64{24000, 25000, 25000, 25000},
		Final: &mahjong.FinalResult{
			Scores: []int64{24000, 25000, 25000, 25000},
		},
	}
	if err := round.Ryuukyoku(data); err == nil {
		t.Error("tied top with outstanding sticks must be rejected")
	}
}

func TestRoundByeResume(t *testing.T) {
	round := newRound(t)
	if err := round.Bye(3); err != nil {
		t.Fatal(err)
	}
	if round.Players()[3].Available() {
		t.Error("player still available after bye")
	}
	if err := round.Resume(3); err != nil {
		t.Fatal(err)
	}
	if !round.Players()[3].Available() {
		t.Error("player not available after resume")
	}
	if err := round.Bye(7); err == nil {
		t.Error("bye with an invalid seat must fail")
	}
}

func TestRoundAddDora(t *testing.T) {
	round := newRound(t)
	if err := round.AddDora(70); err != nil {
		t.Fatal(err)
	}
	dora := round.State().Dora
	if len(dora) != 2 || dora[1] != 70 {
		t.Errorf("dora = %v, want [60 70]", dora)
	}
	if err := round.AddDora(-2); err == nil {
		t.Error("invalid indicator accepted")
	}
}
