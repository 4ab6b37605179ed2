package mahjong

import (
	"strconv"
	"strings"
)

// Tile 采用天凤牌值编码: [0,135], 每种牌4张
type Tile int32

const (
	TileNull  Tile  = -1
	TileCount int32 = 136
	KindCount int32 = 34
)

const (
	SeatNull int32 = -1
	NP4      int32 = 4
	NP3      int32 = 3
)

// Kind 牌种 [0,33]: 0-8万 9-17筒 18-26条 27-30风 31-33箭
func (t Tile) Kind() int32 {
	return int32(t) / 4
}

// Copy 同种牌的第几张 [0,3], 某些规则下0号位是红宝牌
func (t Tile) Copy() int32 {
	return int32(t) % 4
}

func (t Tile) Valid() bool {
	return t >= 0 && int32(t) < TileCount
}

// BaseTile 同种4张中的第一张
func (t Tile) BaseTile() Tile {
	return t - t%4
}

var windNames = []string{"东", "南", "西", "北"}
var dragonNames = []string{"白", "发", "中"}

// KindName 牌面名, 不含副本序号
func (t Tile) KindName() string {
	if !t.Valid() {
		return "??"
	}
	kind := t.Kind()
	switch {
	case kind < 9:
		return strconv.Itoa(int(kind)+1) + "万"
	case kind < 18:
		return strconv.Itoa(int(kind)-9+1) + "筒"
	case kind < 27:
		return strconv.Itoa(int(kind)-18+1) + "条"
	case kind < 31:
		return windNames[kind-27]
	default:
		return dragonNames[kind-31]
	}
}

func (t Tile) String() string {
	if !t.Valid() {
		return "??"
	}
	return t.KindName() + "(" + strconv.Itoa(int(t.Copy())) + ")"
}

func GetTilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.String())
	}
	return strings.Join(tileNames, ", ")
}
