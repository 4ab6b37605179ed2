package mjlog

import "github.com/kevin-chtw/tw_mjlog/mahjong"

// Event is one decoded mjlog element. The concrete types below form a
// closed set; Parse never produces anything else.
type Event interface {
	Tag() string
	event()
}

// Shuffle carries the server-side shuffle seed, kept verbatim.
type Shuffle struct {
	Seed string
	Ref  string
}

// GameConfig is the decoded GO element: table tier plus rule switches.
type GameConfig struct {
	Table  string
	Config mahjong.Config
	Lobby  int32 // -1 when absent
}

// Roster is the decoded UN element with all seated players.
type Roster struct {
	Players []mahjong.PlayerMeta
}

// Resume is the single-attribute UN shape: a disconnected player
// returning to the game.
type Resume struct {
	Index int32
	Name  string
}

type Taikyoku struct {
	Oya int32
}

// Init starts a round.
type Init struct {
	mahjong.RoundInit
}

type Draw struct {
	Player int32
	Tile   mahjong.Tile
}

type Discard struct {
	Player int32
	Tile   mahjong.Tile
}

// Call is a decoded meld declaration. Mentsu holds 3 tiles for
// Chi/Pon, 4 for MinKan/KaKan, 2 for AnKan and 1 for Nuki.
type Call struct {
	Caller int32
	Callee int32
	Type   mahjong.CallType
	Mentsu []mahjong.Tile
}

// Reach step 1 is the declaration, step 2 the stake. Scores is the
// optional post-stake snapshot; old logs omit it.
type Reach struct {
	Player int32
	Step   int32
	Scores []int64
}

type Dora struct {
	Indicator mahjong.Tile
}

// Yaku is a scoring element reported with its han value.
type Yaku struct {
	ID  int32
	Han int32
}

// Ten is the reported fu/point/limit triple.
type Ten struct {
	Fu    int32
	Point int32
	Limit int32
}

// Agari is a win. The embedded AgariData is what the state machine
// consumes; the rest is recorded scoring detail.
type Agari struct {
	mahjong.AgariData
	Dora    []mahjong.Tile
	UraDora []mahjong.Tile
	Yaku    []Yaku
	Yakuman []int32
	Ten     Ten
}

// Ryuukyoku is an exhausted or aborted round.
type Ryuukyoku struct {
	mahjong.RyuukyokuData
}

type Bye struct {
	Player int32
}

func (*Shuffle) Tag() string    { return "SHUFFLE" }
func (*GameConfig) Tag() string { return "GO" }
func (*Roster) Tag() string     { return "UN" }
func (*Resume) Tag() string     { return "RESUME" }
func (*Taikyoku) Tag() string   { return "TAIKYOKU" }
func (*Init) Tag() string       { return "INIT" }
func (*Draw) Tag() string       { return "DRAW" }
func (*Discard) Tag() string    { return "DISCARD" }
func (*Call) Tag() string       { return "CALL" }
func (*Reach) Tag() string      { return "REACH" }
func (*Dora) Tag() string       { return "DORA" }
func (*Agari) Tag() string      { return "AGARI" }
func (*Ryuukyoku) Tag() string  { return "RYUUKYOKU" }
func (*Bye) Tag() string        { return "BYE" }

func (*Shuffle) event()    {}
func (*GameConfig) event() {}
func (*Roster) event()     {}
func (*Resume) event()     {}
func (*Taikyoku) event()   {}
func (*Init) event()       {}
func (*Draw) event()       {}
func (*Discard) event()    {}
func (*Call) event()       {}
func (*Reach) event()      {}
func (*Dora) event()       {}
func (*Agari) event()      {}
func (*Ryuukyoku) event()  {}
func (*Bye) event()        {}
