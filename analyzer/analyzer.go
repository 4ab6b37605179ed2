package analyzer

import (
	"fmt"
	"strings"

	"github.com/topfreegames/pitaya/v3/pkg/logger"

	"github.com/kevin-chtw/tw_mjlog/mahjong"
	"github.com/kevin-chtw/tw_mjlog/mjlog"
)

// Analyze folds a structured log into a Game, validating every
// reported quantity on the way. On the first inconsistency the
// in-progress round is dumped for diagnosis and the error returned;
// nothing is recovered.
func Analyze(log *mjlog.Log) (*mahjong.Game, error) {
	game := mahjong.NewGame()
	if err := analyze(game, log); err != nil {
		dumpGame(game)
		return game, err
	}
	return game, nil
}

func analyze(game *mahjong.Game, log *mjlog.Log) error {
	// SHUFFLE and TAIKYOKU carry no state
	config, ok := log.Meta["GO"].(*mjlog.GameConfig)
	if !ok {
		return fmt.Errorf("log carries no GO event")
	}
	game.SetTable(config.Table)
	game.SetConfig(config.Config)
	game.SetLobby(config.Lobby)
	roster, ok := log.Meta["UN"].(*mjlog.Roster)
	if !ok {
		return fmt.Errorf("log carries no UN event")
	}
	game.SetPlayers(roster.Players)

	for _, round := range log.Rounds {
		for _, event := range round {
			if err := applyEvent(game, event); err != nil {
				return fmt.Errorf("%s: %w", event.Tag(), err)
			}
		}
	}
	return nil
}

func applyEvent(game *mahjong.Game, event mjlog.Event) error {
	if _, ok := event.(*mjlog.Init); !ok && game.Round() == nil {
		return fmt.Errorf("event before round start")
	}
	switch e := event.(type) {
	case *mjlog.Init:
		if err := game.StartRound(e.RoundInit); err != nil {
			return err
		}
		logRound(game)
		return nil
	case *mjlog.Draw:
		game.CountDraw()
		return game.Round().Draw(e.Player, e.Tile)
	case *mjlog.Discard:
		game.CountDiscard()
		return game.Round().Discard(e.Player, e.Tile)
	case *mjlog.Call:
		game.CountCall(e.Type)
		logger.Log.Debugf("player %d: %s from %d: %s",
			e.Caller, e.Type, e.Callee, mahjong.GetTilesName(e.Mentsu))
		return game.Round().Call(e.Caller, e.Callee, e.Type, e.Mentsu)
	case *mjlog.Reach:
		return game.Round().Reach(e.Player, e.Step, e.Scores)
	case *mjlog.Dora:
		return game.Round().AddDora(e.Indicator)
	case *mjlog.Agari:
		logAgari(e)
		if err := game.Round().Agari(e.AgariData); err != nil {
			return err
		}
		if e.Final != nil {
			game.SetUma(e.Final.Uma)
		}
		return game.ArchiveRound()
	case *mjlog.Ryuukyoku:
		if e.Reason != "" {
			logger.Log.Infof("ryuukyoku: %s", mjlog.ReasonName(e.Reason))
		}
		if err := game.Round().Ryuukyoku(e.RyuukyokuData); err != nil {
			return err
		}
		if e.Final != nil {
			game.SetUma(e.Final.Uma)
		}
		return game.ArchiveRound()
	case *mjlog.Bye:
		return game.Round().Bye(e.Player)
	case *mjlog.Resume:
		return game.Round().Resume(e.Index)
	}
	return fmt.Errorf("unhandled event")
}

// 和牌只记录上报的番种与点数, 不做重算
func logAgari(e *mjlog.Agari) {
	if e.Loser == mahjong.SeatNull {
		logger.Log.Infof("player %d wins by tsumo", e.Winner)
	} else {
		logger.Log.Infof("player %d wins by ron from player %d", e.Winner, e.Loser)
	}
	for _, yaku := range e.Yaku {
		logger.Log.Infof("  %s: %d han", mjlog.YakuName(yaku.ID), yaku.Han)
	}
	for _, yakuman := range e.Yakuman {
		logger.Log.Infof("  %s", mjlog.YakuName(yakuman))
	}
	logger.Log.Infof("  fu: %d, point: %d, %s",
		e.Ten.Fu, e.Ten.Point, mjlog.LimitName(e.Ten.Limit))
}

func logRound(game *mahjong.Game) {
	round := game.Round()
	logger.Log.Debugf("round %d started:\n%s",
		round.Index(), strings.Join(round.DumpLines(0), "\n"))
}

func dumpGame(game *mahjong.Game) {
	lines := game.DumpLines(0)
	if len(lines) == 0 {
		return
	}
	logger.Log.Errorf("game state at failure:\n%s", strings.Join(lines, "\n"))
}
