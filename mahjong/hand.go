package mahjong

// Meld 一组副露
type Meld struct {
	Type  CallType
	Tiles *Tiles
	From  int32 // 被鸣牌的座位, 自己形成时为SeatNull
}

// Hand 手牌: 暗牌 + 副露 + 拔牌
type Hand struct {
	closed *Tiles
	melds  []*Meld
	nuki   *Tiles
	menzen bool
	reach  bool
}

func NewHand(tiles []Tile) (*Hand, error) {
	closed, err := NewTiles(tiles, true)
	if err != nil {
		return nil, err
	}
	nuki, err := NewTiles(nil, true)
	if err != nil {
		return nil, err
	}
	return &Hand{closed: closed, nuki: nuki, menzen: true}, nil
}

func (h *Hand) Closed() *Tiles {
	return h.closed
}

func (h *Hand) Melds() []*Meld {
	return h.melds
}

func (h *Hand) Nuki() *Tiles {
	return h.nuki
}

func (h *Hand) Menzen() bool {
	return h.menzen
}

func (h *Hand) Reach() bool {
	return h.reach
}

func (h *Hand) Add(tile Tile) error {
	return h.closed.Add(tile)
}

func (h *Hand) Remove(tile Tile) error {
	return h.closed.Remove(tile)
}

// SetReach 立直宣言, 重复宣言视为时序错误
func (h *Hand) SetReach() error {
	if h.reach {
		return seqErrorf("reach", "reach already declared")
	}
	h.reach = true
	return nil
}

// Expose 根据副露类型把牌从暗牌移入副露区
func (h *Hand) Expose(callType CallType, mentsu []Tile, from int32) error {
	switch callType {
	case CallChi, CallPon, CallMinKan:
		return h.exposeClaimed(callType, mentsu, from)
	case CallAnKan:
		return h.exposeAnKan(mentsu)
	case CallKaKan:
		return h.promoteKan(mentsu)
	case CallNuki:
		return h.exposeNuki(mentsu)
	default:
		return seqErrorf("call", "unhandled call type %v: %v", callType, mentsu)
	}
}

// 鸣他家舍牌: 面子中恰有一张不在暗牌中(即所鸣的那张)
func (h *Hand) exposeClaimed(callType CallType, mentsu []Tile, from int32) error {
	missing := 0
	for _, tile := range mentsu {
		if !h.closed.Contains(tile) {
			missing++
		}
	}
	if missing != 1 {
		return seqErrorf("call",
			"exactly one tile of mentsu must be missing from hand; missing %d of %v",
			missing, mentsu)
	}
	for _, tile := range mentsu {
		if h.closed.Contains(tile) {
			if err := h.closed.Remove(tile); err != nil {
				return err
			}
		}
	}
	tiles, err := NewTiles(mentsu, true)
	if err != nil {
		return err
	}
	h.melds = append(h.melds, &Meld{Type: callType, Tiles: tiles, From: from})
	h.menzen = false
	return nil
}

// 暗杠: 事件只亮出2张, 由其推出同种4张并全部移出暗牌
func (h *Hand) exposeAnKan(mentsu []Tile) error {
	if len(mentsu) != 2 {
		return seqErrorf("call", "unexpected mentsu for AnKan: %v", mentsu)
	}
	base := mentsu[0].BaseTile()
	full := []Tile{base, base + 1, base + 2, base + 3}
	if err := h.closed.Remove(full...); err != nil {
		return err
	}
	tiles, err := NewTiles(full, true)
	if err != nil {
		return err
	}
	// 暗杠不破门清
	h.melds = append(h.melds, &Meld{Type: CallAnKan, Tiles: tiles, From: SeatNull})
	return nil
}

// 加杠: 找到已有的碰, 从暗牌补上第4张
func (h *Hand) promoteKan(mentsu []Tile) error {
	if len(mentsu) == 0 {
		return seqErrorf("call", "empty mentsu for KaKan")
	}
	base := mentsu[0].BaseTile()
	meld := h.findPon(base)
	if meld == nil {
		return seqErrorf("call", "no corresponding Pon meld was found for %v", base)
	}
	for _, tile := range mentsu {
		if meld.Tiles.Contains(tile) {
			continue
		}
		if err := h.closed.Remove(tile); err != nil {
			return err
		}
		if err := meld.Tiles.Add(tile); err != nil {
			return err
		}
	}
	meld.Type = CallKaKan
	return nil
}

func (h *Hand) exposeNuki(mentsu []Tile) error {
	if len(mentsu) != 1 {
		return seqErrorf("call", "unexpected mentsu for Nuki: %v", mentsu)
	}
	if err := h.closed.Remove(mentsu[0]); err != nil {
		return err
	}
	return h.nuki.Add(mentsu[0])
}

func (h *Hand) findPon(base Tile) *Meld {
	for _, meld := range h.melds {
		if meld.Type != CallPon {
			continue
		}
		for _, tile := range meld.Tiles.Slice() {
			if tile.BaseTile() == base {
				return meld
			}
		}
	}
	return nil
}

func (h *Hand) Contains(tile Tile) bool {
	if h.closed.Contains(tile) {
		return true
	}
	for _, meld := range h.melds {
		if meld.Tiles.Contains(tile) {
			return true
		}
	}
	return false
}
