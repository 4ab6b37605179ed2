package mahjong

import "slices"

// Tiles 一组牌, sorted时保持升序(手牌), 否则保持插入顺序(牌河)
type Tiles struct {
	tiles  []Tile
	sorted bool
}

func NewTiles(tiles []Tile, sorted bool) (*Tiles, error) {
	for _, t := range tiles {
		if !t.Valid() {
			return nil, seqErrorf("tiles", "invalid tile value %d", t)
		}
	}
	ts := &Tiles{tiles: slices.Clone(tiles), sorted: sorted}
	if sorted {
		slices.Sort(ts.tiles)
	}
	return ts, nil
}

func (ts *Tiles) Add(tile Tile) error {
	if !tile.Valid() {
		return seqErrorf("tiles", "invalid tile value %d", tile)
	}
	ts.tiles = append(ts.tiles, tile)
	if ts.sorted {
		slices.Sort(ts.tiles)
	}
	return nil
}

func (ts *Tiles) Remove(tiles ...Tile) error {
	for _, tile := range tiles {
		i := slices.Index(ts.tiles, tile)
		if i < 0 {
			return seqErrorf("tiles", "cannot remove %v from %v", tile, ts.tiles)
		}
		ts.tiles = slices.Delete(ts.tiles, i, i+1)
	}
	return nil
}

func (ts *Tiles) Contains(tile Tile) bool {
	return slices.Contains(ts.tiles, tile)
}

func (ts *Tiles) Len() int {
	return len(ts.tiles)
}

// Slice 返回内部切片的拷贝
func (ts *Tiles) Slice() []Tile {
	return slices.Clone(ts.tiles)
}

// EqualTiles 忽略顺序比较
func (ts *Tiles) EqualTiles(tiles []Tile) bool {
	if len(ts.tiles) != len(tiles) {
		return false
	}
	a := slices.Clone(ts.tiles)
	b := slices.Clone(tiles)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func (ts *Tiles) String() string {
	return GetTilesName(ts.tiles)
}
