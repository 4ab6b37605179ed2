package mjlog

import "github.com/kevin-chtw/tw_mjlog/mahjong"

// Bit layouts of the packed meld integer follow tenhou's own client
// (tenhou.net/img/tehai.js). Bits 0-1 hold the relative seat of the
// player the tile was claimed from; 0 means self-declared.

func decodeChi(m int32) []mahjong.Tile {
	t := (m & 0xfc00) >> 10
	r := t % 3
	t /= 3
	t = 9*(t/7) + t%7
	t *= 4
	h := []mahjong.Tile{
		mahjong.Tile(t + 0 + (m&0x0018)>>3),
		mahjong.Tile(t + 4 + (m&0x0060)>>5),
		mahjong.Tile(t + 8 + (m&0x0180)>>7),
	}
	switch r {
	case 1:
		h[0], h[1] = h[1], h[0]
	case 2:
		h[0], h[1], h[2] = h[2], h[0], h[1]
	}
	return h
}

func decodePon(m int32) []mahjong.Tile {
	unused := (m & 0x0060) >> 5
	t := (m & 0xfe00) >> 9
	r := t % 3
	t = (t / 3) * 4
	h := []mahjong.Tile{mahjong.Tile(t), mahjong.Tile(t), mahjong.Tile(t)}
	switch unused {
	case 0:
		h[0], h[1], h[2] = h[0]+1, h[1]+2, h[2]+3
	case 1:
		h[1], h[2] = h[1]+2, h[2]+3
	case 2:
		h[1], h[2] = h[1]+1, h[2]+3
	case 3:
		h[1], h[2] = h[1]+1, h[2]+2
	}
	switch r {
	case 1:
		h[0], h[1] = h[1], h[0]
	case 2:
		h[0], h[1], h[2] = h[2], h[0], h[1]
	}
	kui := m & 0x3
	if kui < 3 {
		h[0], h[1], h[2] = h[2], h[0], h[1]
	}
	if kui < 2 {
		h[0], h[1], h[2] = h[2], h[0], h[1]
	}
	return h
}

func decodeKaKan(m int32) []mahjong.Tile {
	added := (m & 0x0060) >> 5
	t := (m & 0xfe00) >> 9
	r := t % 3
	t = (t / 3) * 4
	h := []mahjong.Tile{mahjong.Tile(t), mahjong.Tile(t), mahjong.Tile(t)}
	switch added {
	case 0:
		h[0], h[1], h[2] = h[0]+1, h[1]+2, h[2]+3
	case 1:
		h[1], h[2] = h[1]+2, h[2]+3
	case 2:
		h[1], h[2] = h[1]+1, h[2]+3
	case 3:
		h[1], h[2] = h[1]+1, h[2]+2
	}
	switch r {
	case 1:
		h[0], h[1] = h[1], h[0]
	case 2:
		h[0], h[1], h[2] = h[2], h[0], h[1]
	}
	tile := mahjong.Tile(t + added)
	switch m & 0x3 {
	case 3:
		return []mahjong.Tile{tile, h[0], h[1], h[2]}
	case 2:
		return []mahjong.Tile{h[1], tile, h[0], h[2]}
	case 1:
		return []mahjong.Tile{h[2], h[1], tile, h[0]}
	}
	return h
}

// decodeKan returns 4 tiles for a claimed quad and only the revealed
// pair for a concealed one. A concealed quad omits the copy-index
// bits, so copy 3 is forced onto the encoded tile.
func decodeKan(m int32) []mahjong.Tile {
	hai0 := (m & 0xff00) >> 8
	kui := m & 0x3
	if kui == 0 {
		hai0 = (hai0 &^ 3) + 3
	}
	t := (hai0 / 4) * 4
	h := []mahjong.Tile{mahjong.Tile(t), mahjong.Tile(t), mahjong.Tile(t)}
	switch hai0 % 4 {
	case 0:
		h[0], h[1], h[2] = h[0]+1, h[1]+2, h[2]+3
	case 1:
		h[1], h[2] = h[1]+2, h[2]+3
	case 2:
		h[1], h[2] = h[1]+1, h[2]+3
	default:
		h[1], h[2] = h[1]+1, h[2]+2
	}
	taken := mahjong.Tile(hai0)
	if kui == 1 {
		taken, h[2] = h[2], taken
	}
	if kui == 2 {
		taken, h[0] = h[0], taken
	}
	if kui != 0 {
		return append([]mahjong.Tile{taken}, h...)
	}
	return h[:2]
}

func parseCall(node Node) (Event, error) {
	caller, err := intAttr(node, "who")
	if err != nil {
		return nil, err
	}
	m, err := intAttr(node, "m")
	if err != nil {
		return nil, err
	}
	rel := m & 0x3
	var callType mahjong.CallType
	var mentsu []mahjong.Tile
	switch {
	case m&(1<<2) != 0:
		callType = mahjong.CallChi
		mentsu = decodeChi(m)
	case m&(1<<3) != 0:
		callType = mahjong.CallPon
		mentsu = decodePon(m)
	case m&(1<<4) != 0:
		callType = mahjong.CallKaKan
		mentsu = decodeKaKan(m)
	case m&(1<<5) != 0:
		callType = mahjong.CallNuki
		mentsu = []mahjong.Tile{mahjong.Tile(m >> 8)}
	default:
		if rel == 0 {
			callType = mahjong.CallAnKan
		} else {
			callType = mahjong.CallMinKan
		}
		mentsu = decodeKan(m)
	}
	return &Call{
		Caller: caller,
		Callee: (caller + rel) % 4,
		Type:   callType,
		Mentsu: mentsu,
	}, nil
}
