package mahjong

// 副露类型
type CallType int32

const (
	CallChi    CallType = iota // 吃
	CallPon                    // 碰
	CallMinKan                 // 明杠
	CallAnKan                  // 暗杠
	CallKaKan                  // 加杠
	CallNuki                   // 拔北
)

var callNames = map[CallType]string{
	CallChi:    "Chi",
	CallPon:    "Pon",
	CallMinKan: "MinKan",
	CallAnKan:  "AnKan",
	CallKaKan:  "KaKan",
	CallNuki:   "Nuki",
}

func (c CallType) String() string {
	if name, ok := callNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Claimed 该副露是否来自他家舍牌
func (c CallType) Claimed() bool {
	return c == CallChi || c == CallPon || c == CallMinKan
}

const (
	// ReachStake 立直押注
	ReachStake int64 = 1000
	// ScoreScale 日志中的分数以百点为单位
	ScoreScale int64 = 100
)

// Ba 场况计数: 本场数与场上立直棒数
type Ba struct {
	Combo int32
	Reach int32
}

// FinalResult 终局结算: 最终分与顺位马
type FinalResult struct {
	Scores []int64
	Uma    []float64
}

// Config 对局规则开关
type Config struct {
	Red    bool // 有无赤宝牌
	Kui    bool // 可否鸣牌
	TonNan bool // 东南战/东风战
	Sanma  bool // 三麻
	Soku   bool // 速卓
}

// PlayerMeta 玩家元信息
type PlayerMeta struct {
	Name string
	Dan  int32
	Rate float64
	Sex  string
}

// RoundInit 一局开始时的全部初始状态
type RoundInit struct {
	Round  int32 // 场风局数指示值
	Combo  int32
	Reach  int32
	Dice   [2]int32
	Dora   Tile
	Oya    int32
	Hands  [][]Tile
	Scores []int64
}

// AgariData 和牌事件中状态机关心的部分
type AgariData struct {
	Winner int32
	Loser  int32 // 自摸时为SeatNull
	Hand   []Tile
	Machi  []Tile
	Ba     Ba
	Scores []int64
	Gains  []int64
	Final  *FinalResult
}

// RyuukyokuData 流局事件中状态机关心的部分
type RyuukyokuData struct {
	Reason string
	Hands  [][]Tile // 未亮牌的玩家为nil
	Ba     Ba
	Scores []int64
	Gains  []int64
	Final  *FinalResult
}
