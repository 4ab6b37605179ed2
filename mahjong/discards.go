package mahjong

// Discards 牌河: 舍牌序列及每张被谁鸣走
type Discards struct {
	tiles *Tiles
	taken []int32 // 未被鸣走为SeatNull
}

func NewDiscards() *Discards {
	tiles, _ := NewTiles(nil, false)
	return &Discards{tiles: tiles}
}

func (d *Discards) Add(tile Tile) error {
	if err := d.tiles.Add(tile); err != nil {
		return err
	}
	d.taken = append(d.taken, SeatNull)
	return nil
}

// MarkTaken 只有最近一张舍牌可能被鸣走
func (d *Discards) MarkTaken(seat int32) error {
	if len(d.taken) == 0 {
		return seqErrorf("discards", "no discarded tile to take")
	}
	d.taken[len(d.taken)-1] = seat
	return nil
}

func (d *Discards) Tiles() *Tiles {
	return d.tiles
}

func (d *Discards) Taken() []int32 {
	return d.taken
}
