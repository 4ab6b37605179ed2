package mjlog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kevin-chtw/tw_mjlog/mahjong"
)

// Parse turns one raw element into its canonical event. Decoding is
// pure; an unrecognized tag or a malformed attribute yields a
// DecodeError and no partial result.
func Parse(node Node) (Event, error) {
	switch node.Tag {
	case "GO":
		return parseGo(node)
	case "UN":
		if len(node.Attr) == 1 {
			return parseResume(node)
		}
		return parseUn(node)
	case "TAIKYOKU":
		return parseTaikyoku(node)
	case "SHUFFLE":
		return parseShuffle(node)
	case "INIT":
		return parseInit(node)
	case "DORA":
		return parseDora(node)
	case "N":
		return parseCall(node)
	case "REACH":
		return parseReach(node)
	case "AGARI":
		return parseAgari(node)
	case "RYUUKYOKU":
		return parseRyuukyoku(node)
	case "BYE":
		return parseBye(node)
	}
	if len(node.Tag) > 1 {
		switch node.Tag[0] {
		case 'T', 'U', 'V', 'W':
			return parseDraw(node)
		case 'D', 'E', 'F', 'G':
			return parseDiscard(node)
		}
	}
	return nil, decodeErrorf(node, "unrecognized tag")
}

// ParseNodes decodes every node in order.
func ParseNodes(nodes []Node) ([]Event, error) {
	events := make([]Event, 0, len(nodes))
	for _, node := range nodes {
		event, err := Parse(node)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

///////////////////////////////////////////////////////////////////////

func attr(node Node, key string) (string, error) {
	val, ok := node.Attr[key]
	if !ok {
		return "", decodeErrorf(node, "missing attribute %q", key)
	}
	return val, nil
}

func intAttr(node Node, key string) (int32, error) {
	val, err := attr(node, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return 0, decodeErrorf(node, "attribute %q: %v", key, err)
	}
	return int32(n), nil
}

func splitInts(node Node, key, val string) ([]int32, error) {
	if val == "" {
		return nil, nil
	}
	parts := strings.Split(val, ",")
	out := make([]int32, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return nil, decodeErrorf(node, "attribute %q: %v", key, err)
		}
		out = append(out, int32(n))
	}
	return out, nil
}

func intListAttr(node Node, key string) ([]int32, error) {
	val, err := attr(node, key)
	if err != nil {
		return nil, err
	}
	return splitInts(node, key, val)
}

func tileListAttr(node Node, key string) ([]mahjong.Tile, error) {
	vals, err := intListAttr(node, key)
	if err != nil {
		return nil, err
	}
	return toTiles(vals), nil
}

func toTiles(vals []int32) []mahjong.Tile {
	tiles := make([]mahjong.Tile, 0, len(vals))
	for _, v := range vals {
		tiles = append(tiles, mahjong.Tile(v))
	}
	return tiles
}

// 日志中的分数以百点为单位, 解码时即放大
func scoreListAttr(node Node, key string) ([]int64, error) {
	vals, err := intListAttr(node, key)
	if err != nil {
		return nil, err
	}
	scores := make([]int64, 0, len(vals))
	for _, v := range vals {
		scores = append(scores, int64(v)*mahjong.ScoreScale)
	}
	return scores, nil
}

func unquote(node Node, val string) (string, error) {
	name, err := url.PathUnescape(val)
	if err != nil {
		return "", decodeErrorf(node, "percent-decode %q: %v", val, err)
	}
	return name, nil
}

///////////////////////////////////////////////////////////////////////

func parseShuffle(node Node) (Event, error) {
	seed, err := attr(node, "seed")
	if err != nil {
		return nil, err
	}
	ref, err := attr(node, "ref")
	if err != nil {
		return nil, err
	}
	return &Shuffle{Seed: seed, Ref: ref}, nil
}

// The GO type attribute packs every rule switch into one byte. The
// test/tokujou/joukyu bits select the table tier by a fixed table.
func parseGo(node Node) (Event, error) {
	flags, err := intAttr(node, "type")
	if err != nil {
		return nil, err
	}
	test := flags&0x01 == 0
	tokujou := flags&0x20 != 0
	joukyu := flags&0x80 != 0
	var table string
	switch {
	case tokujou && joukyu:
		table = "tenhou"
	case test:
		table = "test"
	case tokujou:
		table = "tokujou"
	case joukyu:
		table = "joukyu"
	default:
		table = "dan-i"
	}
	event := &GameConfig{
		Table: table,
		Config: mahjong.Config{
			Red:    flags&0x02 == 0,
			Kui:    flags&0x04 == 0,
			TonNan: flags&0x08 != 0,
			Sanma:  flags&0x10 != 0,
			Soku:   flags&0x40 != 0,
		},
		Lobby: -1,
	}
	if _, ok := node.Attr["lobby"]; ok {
		if event.Lobby, err = intAttr(node, "lobby"); err != nil {
			return nil, err
		}
	}
	return event, nil
}

func parseUn(node Node) (Event, error) {
	var names []string
	for _, key := range []string{"n0", "n1", "n2", "n3"} {
		val, ok := node.Attr[key]
		if !ok {
			continue
		}
		name, err := unquote(node, val)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	dans := []int32{-1, -1, -1, -1}
	if _, ok := node.Attr["dan"]; ok {
		var err error
		if dans, err = intListAttr(node, "dan"); err != nil {
			return nil, err
		}
	}
	rateVal, err := attr(node, "rate")
	if err != nil {
		return nil, err
	}
	var rates []float64
	for _, part := range strings.Split(rateVal, ",") {
		rate, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, decodeErrorf(node, "attribute \"rate\": %v", err)
		}
		rates = append(rates, rate)
	}
	sexVal, err := attr(node, "sx")
	if err != nil {
		return nil, err
	}
	sexes := strings.Split(sexVal, ",")
	if len(rates) < len(names) || len(dans) < len(names) || len(sexes) < len(names) {
		return nil, decodeErrorf(node, "roster field lengths do not cover %d names", len(names))
	}
	event := &Roster{}
	for i, name := range names {
		event.Players = append(event.Players, mahjong.PlayerMeta{
			Name: name,
			Dan:  dans[i],
			Rate: rates[i],
			Sex:  sexes[i],
		})
	}
	return event, nil
}

// A single-attribute UN element is a reconnection: the key is nX with
// X the seat, the value the percent-encoded name.
func parseResume(node Node) (Event, error) {
	for key, val := range node.Attr {
		if len(key) != 2 || key[0] != 'n' || key[1] < '0' || key[1] > '3' {
			return nil, decodeErrorf(node, "unexpected resume attribute %q", key)
		}
		name, err := unquote(node, val)
		if err != nil {
			return nil, err
		}
		return &Resume{Index: int32(key[1] - '0'), Name: name}, nil
	}
	return nil, decodeErrorf(node, "empty resume element")
}

func parseTaikyoku(node Node) (Event, error) {
	oya, err := intAttr(node, "oya")
	if err != nil {
		return nil, err
	}
	return &Taikyoku{Oya: oya}, nil
}

func parseInit(node Node) (Event, error) {
	seed, err := intListAttr(node, "seed")
	if err != nil {
		return nil, err
	}
	if len(seed) != 6 {
		return nil, decodeErrorf(node, "seed must hold 6 values, got %d", len(seed))
	}
	scores, err := scoreListAttr(node, "ten")
	if err != nil {
		return nil, err
	}
	oya, err := intAttr(node, "oya")
	if err != nil {
		return nil, err
	}
	var hands [][]mahjong.Tile
	for _, key := range []string{"hai0", "hai1", "hai2", "hai3"} {
		if _, ok := node.Attr[key]; !ok {
			continue
		}
		hand, err := tileListAttr(node, key)
		if err != nil {
			return nil, err
		}
		hands = append(hands, hand)
	}
	return &Init{RoundInit: mahjong.RoundInit{
		Round:  seed[0],
		Combo:  seed[1],
		Reach:  seed[2],
		Dice:   [2]int32{seed[3], seed[4]},
		Dora:   mahjong.Tile(seed[5]),
		Oya:    oya,
		Hands:  hands,
		Scores: scores,
	}}, nil
}

// Draw and discard tags carry both fields in the tag itself: the
// first letter encodes the seat, the digits the tile.
func parseDraw(node Node) (Event, error) {
	tile, err := tagTile(node)
	if err != nil {
		return nil, err
	}
	return &Draw{Player: int32(node.Tag[0] - 'T'), Tile: tile}, nil
}

func parseDiscard(node Node) (Event, error) {
	tile, err := tagTile(node)
	if err != nil {
		return nil, err
	}
	return &Discard{Player: int32(node.Tag[0] - 'D'), Tile: tile}, nil
}

func tagTile(node Node) (mahjong.Tile, error) {
	n, err := strconv.ParseInt(node.Tag[1:], 10, 32)
	if err != nil {
		return mahjong.TileNull, decodeErrorf(node, "tile suffix: %v", err)
	}
	return mahjong.Tile(n), nil
}

// DrawTag re-encodes a draw back into its raw tag form.
func DrawTag(player int32, tile mahjong.Tile) string {
	return string(rune('T'+player)) + strconv.Itoa(int(tile))
}

// DiscardTag re-encodes a discard back into its raw tag form.
func DiscardTag(player int32, tile mahjong.Tile) string {
	return string(rune('D'+player)) + strconv.Itoa(int(tile))
}

func parseReach(node Node) (Event, error) {
	who, err := intAttr(node, "who")
	if err != nil {
		return nil, err
	}
	step, err := intAttr(node, "step")
	if err != nil {
		return nil, err
	}
	if step != 1 && step != 2 {
		return nil, decodeErrorf(node, "unexpected step value %d", step)
	}
	event := &Reach{Player: who, Step: step}
	// Old logs carry no score snapshot.
	if _, ok := node.Attr["ten"]; ok {
		if event.Scores, err = scoreListAttr(node, "ten"); err != nil {
			return nil, err
		}
	}
	return event, nil
}

func parseDora(node Node) (Event, error) {
	hai, err := intAttr(node, "hai")
	if err != nil {
		return nil, err
	}
	return &Dora{Indicator: mahjong.Tile(hai)}, nil
}

func parseBa(node Node) (mahjong.Ba, error) {
	vals, err := intListAttr(node, "ba")
	if err != nil {
		return mahjong.Ba{}, err
	}
	if len(vals) != 2 {
		return mahjong.Ba{}, decodeErrorf(node, "ba must hold 2 values, got %d", len(vals))
	}
	return mahjong.Ba{Combo: vals[0], Reach: vals[1]}, nil
}

// sc interleaves每家的当前分与分差
func parseSc(node Node) (scores, gains []int64, err error) {
	vals, err := scoreListAttr(node, "sc")
	if err != nil {
		return nil, nil, err
	}
	if len(vals)%2 != 0 {
		return nil, nil, decodeErrorf(node, "sc holds an odd number of values")
	}
	for i := 0; i < len(vals); i += 2 {
		scores = append(scores, vals[i])
		gains = append(gains, vals[i+1])
	}
	return scores, gains, nil
}

// owari interleaves最终分(百点)与顺位马
func parseOwari(node Node) (*mahjong.FinalResult, error) {
	val, ok := node.Attr["owari"]
	if !ok {
		return nil, nil
	}
	parts := strings.Split(val, ",")
	if len(parts)%2 != 0 {
		return nil, decodeErrorf(node, "owari holds an odd number of values")
	}
	final := &mahjong.FinalResult{}
	for i := 0; i < len(parts); i += 2 {
		score, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return nil, decodeErrorf(node, "attribute \"owari\": %v", err)
		}
		uma, err := strconv.ParseFloat(parts[i+1], 64)
		if err != nil {
			return nil, decodeErrorf(node, "attribute \"owari\": %v", err)
		}
		final.Scores = append(final.Scores, int64(score*float64(mahjong.ScoreScale)))
		final.Uma = append(final.Uma, uma)
	}
	return final, nil
}

func parseAgari(node Node) (Event, error) {
	winner, err := intAttr(node, "who")
	if err != nil {
		return nil, err
	}
	fromWho, err := intAttr(node, "fromWho")
	if err != nil {
		return nil, err
	}
	hand, err := tileListAttr(node, "hai")
	if err != nil {
		return nil, err
	}
	machi, err := tileListAttr(node, "machi")
	if err != nil {
		return nil, err
	}
	dora, err := tileListAttr(node, "doraHai")
	if err != nil {
		return nil, err
	}
	var uraDora []mahjong.Tile
	if _, ok := node.Attr["doraHaiUra"]; ok {
		if uraDora, err = tileListAttr(node, "doraHaiUra"); err != nil {
			return nil, err
		}
	}
	var yaku []Yaku
	if val, ok := node.Attr["yaku"]; ok {
		vals, err := splitInts(node, "yaku", val)
		if err != nil {
			return nil, err
		}
		if len(vals)%2 != 0 {
			return nil, decodeErrorf(node, "yaku holds an odd number of values")
		}
		for i := 0; i < len(vals); i += 2 {
			yaku = append(yaku, Yaku{ID: vals[i], Han: vals[i+1]})
		}
	}
	var yakuman []int32
	if val, ok := node.Attr["yakuman"]; ok {
		if yakuman, err = splitInts(node, "yakuman", val); err != nil {
			return nil, err
		}
	}
	tenVals, err := intListAttr(node, "ten")
	if err != nil {
		return nil, err
	}
	if len(tenVals) != 3 {
		return nil, decodeErrorf(node, "ten must hold 3 values, got %d", len(tenVals))
	}
	ba, err := parseBa(node)
	if err != nil {
		return nil, err
	}
	scores, gains, err := parseSc(node)
	if err != nil {
		return nil, err
	}
	final, err := parseOwari(node)
	if err != nil {
		return nil, err
	}
	loser := mahjong.SeatNull
	if fromWho != winner {
		loser = fromWho
	}
	return &Agari{
		AgariData: mahjong.AgariData{
			Winner: winner,
			Loser:  loser,
			Hand:   hand,
			Machi:  machi,
			Ba:     ba,
			Scores: scores,
			Gains:  gains,
			Final:  final,
		},
		Dora:    dora,
		UraDora: uraDora,
		Yaku:    yaku,
		Yakuman: yakuman,
		Ten:     Ten{Fu: tenVals[0], Point: tenVals[1], Limit: tenVals[2]},
	}, nil
}

func parseRyuukyoku(node Node) (Event, error) {
	hands := make([][]mahjong.Tile, 4)
	for i, key := range []string{"hai0", "hai1", "hai2", "hai3"} {
		if _, ok := node.Attr[key]; !ok {
			continue
		}
		hand, err := tileListAttr(node, key)
		if err != nil {
			return nil, err
		}
		hands[i] = hand
	}
	ba, err := parseBa(node)
	if err != nil {
		return nil, err
	}
	scores, gains, err := parseSc(node)
	if err != nil {
		return nil, err
	}
	final, err := parseOwari(node)
	if err != nil {
		return nil, err
	}
	return &Ryuukyoku{RyuukyokuData: mahjong.RyuukyokuData{
		Reason: node.Attr["type"],
		Hands:  hands,
		Ba:     ba,
		Scores: scores,
		Gains:  gains,
		Final:  final,
	}}, nil
}

func parseBye(node Node) (Event, error) {
	who, err := intAttr(node, "who")
	if err != nil {
		return nil, err
	}
	return &Bye{Player: who}, nil
}
