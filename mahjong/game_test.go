package mahjong_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_mjlog/mahjong"
)

func endRound(t *testing.T, round *mahjong.Round, gains []int64) {
	t.Helper()
	scores := make([]int64, len(round.Players()))
	for i, player := range round.Players() {
		scores[i] = player.Score()
	}
	if err := round.Ryuukyoku(mahjong.RyuukyokuData{Scores: scores, Gains: gains}); err != nil {
		t.Fatal(err)
	}
}

func TestGameStartRoundRequiresConfig(t *testing.T) {
	game := mahjong.NewGame()
	if err := game.StartRound(testInit()); err == nil {
		t.Error("StartRound accepted before SetConfig")
	}
}

func TestGamePlayerCount(t *testing.T) {
	game := mahjong.NewGame()
	game.SetConfig(mahjong.Config{})
	if got := game.PlayerCount(); got != mahjong.NP4 {
		t.Errorf("PlayerCount() = %d, want %d", got, mahjong.NP4)
	}
	game.SetConfig(mahjong.Config{Sanma: true})
	if got := game.PlayerCount(); got != mahjong.NP3 {
		t.Errorf("PlayerCount() = %d, want %d", got, mahjong.NP3)
	}
}

func TestGameRoundLifecycle(t *testing.T) {
	game := mahjong.NewGame()
	game.SetConfig(mahjong.Config{Kui: true, Red: true})
	if err := game.ArchiveRound(); err == nil {
		t.Error("ArchiveRound accepted with no round")
	}
	if err := game.StartRound(testInit()); err != nil {
		t.Fatal(err)
	}
	if err := game.ArchiveRound(); err == nil {
		t.Error("ArchiveRound accepted with the round still running")
	}
	if err := game.StartRound(testInit()); err == nil {
		t.Error("StartRound accepted with the previous round still running")
	}
	endRound(t, game.Round(), []int64{1000, -1000, 0, 0})
	if err := game.ArchiveRound(); err != nil {
		t.Fatal(err)
	}
	if len(game.PastRounds()) != 1 {
		t.Fatalf("past rounds = %d, want 1", len(game.PastRounds()))
	}
}

func TestGameScoreContinuity(t *testing.T) {
	game := mahjong.NewGame()
	game.SetConfig(mahjong.Config{})
	if err := game.StartRound(testInit()); err != nil {
		t.Fatal(err)
	}
	endRound(t, game.Round(), []int64{1000, -1000, 0, 0})
	if err := game.ArchiveRound(); err != nil {
		t.Fatal(err)
	}
	// next round must carry the scores forward
	err := game.StartRound(testInit(25000, 25000, 25000, 25000))
	var cerr *mahjong.ConsistencyError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConsistencyError", err)
	}
	if err := game.StartRound(testInit(26000, 24000, 25000, 25000)); err != nil {
		t.Fatal(err)
	}
	if got := game.Round().Index(); got != 1 {
		t.Errorf("round index = %d, want 1", got)
	}
}

func TestGameCounter(t *testing.T) {
	game := mahjong.NewGame()
	game.CountDraw()
	game.CountDraw()
	game.CountDiscard()
	game.CountCall(mahjong.CallChi)
	game.CountCall(mahjong.CallPon)
	game.CountCall(mahjong.CallAnKan)
	game.CountCall(mahjong.CallKaKan)
	game.CountCall(mahjong.CallMinKan)
	game.CountCall(mahjong.CallNuki)
	counter := game.Counter()
	if counter.Draw != 2 || counter.Discard != 1 {
		t.Errorf("draw/discard = %d/%d, want 2/1", counter.Draw, counter.Discard)
	}
	if counter.Chi != 1 || counter.Pon != 1 || counter.Kan != 3 {
		t.Errorf("chi/pon/kan = %d/%d/%d, want 1/1/3", counter.Chi, counter.Pon, counter.Kan)
	}
}
