package mahjong

import (
	"fmt"
	"strconv"
	"strings"
)

// 诊断用的状态快照, 排查不一致时随错误一起输出

func indent(lines []string, level int) []string {
	prefix := strings.Repeat("  ", level)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, prefix+line)
	}
	return out
}

func (s *RoundState) DumpLines(level int) []string {
	lines := []string{
		fmt.Sprintf("Oya:   %d", s.Oya),
		fmt.Sprintf("Dice:  %d, %d", s.Dice[0], s.Dice[1]),
		fmt.Sprintf("Combo: %d", s.Combo),
		fmt.Sprintf("Reach: %d", s.Reach),
		fmt.Sprintf("Dora:  %s", GetTilesName(s.Dora)),
	}
	return indent(lines, level)
}

func (h *Hand) DumpLines(level int) []string {
	var lines []string
	switch {
	case h.reach:
		lines = append(lines, "Menzen, Reach")
	case h.menzen:
		lines = append(lines, "Menzen")
	}
	lines = append(lines, h.closed.String())
	for _, meld := range h.melds {
		lines = append(lines, fmt.Sprintf("%s: %s", meld.Type, meld.Tiles))
	}
	if h.nuki.Len() > 0 {
		lines = append(lines, "Nuki: "+h.nuki.String())
	}
	return indent(lines, level)
}

func (d *Discards) DumpLines(level int) []string {
	takens := make([]string, 0, len(d.taken))
	for _, seat := range d.taken {
		if seat == SeatNull {
			takens = append(takens, " ")
		} else {
			takens = append(takens, strconv.Itoa(int(seat)))
		}
	}
	lines := []string{
		d.tiles.String(),
		strings.Join(takens, " "),
	}
	return indent(lines, level)
}

func (p *Player) DumpLines(level int) []string {
	lines := []string{fmt.Sprintf("Score: %d", p.score)}
	if !p.available {
		lines = append(lines, "Disconnected")
	}
	lines = append(lines, "Hand:")
	lines = append(lines, p.hand.DumpLines(1)...)
	lines = append(lines, "Discards:")
	lines = append(lines, p.discards.DumpLines(1)...)
	return indent(lines, level)
}

func (r *Round) DumpLines(level int) []string {
	lines := []string{fmt.Sprintf("Round: %d", r.index)}
	lines = append(lines, "  State:")
	lines = append(lines, r.state.DumpLines(2)...)
	if r.lastDiscard != nil {
		lines = append(lines, "  Last Discard:")
		lines = append(lines, fmt.Sprintf("    Player: %d", r.lastDiscard.Player))
		lines = append(lines, fmt.Sprintf("    Tile:   %s", r.lastDiscard.Tile))
	}
	lines = append(lines, "  Players:")
	for _, player := range r.players {
		lines = append(lines, player.DumpLines(2)...)
	}
	if r.reason != "" {
		lines = append(lines, "  Ryuukyoku: "+r.reason)
	}
	return indent(lines, level)
}

func (g *Game) DumpLines(level int) []string {
	var lines []string
	if g.table != "" {
		lines = append(lines, "Table: "+g.table)
	}
	for i, meta := range g.metas {
		lines = append(lines, fmt.Sprintf(
			"%d: %3d [Dan], %8.2f, %s", i, meta.Dan, meta.Rate, meta.Name))
	}
	if g.round != nil {
		lines = append(lines, g.round.DumpLines(0)...)
	}
	return indent(lines, level)
}
