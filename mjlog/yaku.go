package mjlog

import "strconv"

// Reported scoring codes. The engine never recomputes them; the names
// exist only for rendering.

var yakuNames = []string{
	// 1 han
	"Tsumo",
	"Reach",
	"Ippatsu",
	"Chankan",
	"Rinshan-kaihou",
	"Hai-tei-rao-yue",
	"Hou-tei-rao-yui",
	"Pin-fu",
	"Tan-yao-chu",
	"Ii-pei-ko",
	// seat winds
	"Ton",
	"Nan",
	"Xia",
	"Pei",
	// field winds
	"Ton",
	"Nan",
	"Xia",
	"Pei",
	"Haku",
	"Hatsu",
	"Chun",
	// 2 han
	"Double reach",
	"Chii-toi-tsu",
	"Chanta",
	"Ikki-tsuukan",
	"San-shoku-dou-jun",
	"San-shoku-dou-kou",
	"San-kan-tsu",
	"Toi-Toi-hou",
	"San-ankou",
	"Shou-sangen",
	"Hon-rou-tou",
	// 3 han
	"Ryan-pei-kou",
	"Junchan",
	"Hon-itsu",
	// 6 han
	"Chin-itsu",
	// mangan
	"Ren-hou",
	// yakuman
	"Ten-hou",
	"Chi-hou",
	"Dai-sangen",
	"Suu-ankou",
	"Suu-ankou Tanki",
	"Tsu-iisou",
	"Ryu-iisou",
	"Chin-routo",
	"Chuuren-poutou",
	"Jyunsei Chuuren-poutou 9",
	"Kokushi-musou",
	"Kokushi-musou 13",
	"Dai-suushi",
	"Shou-suushi",
	"Su-kantsu",
	// bonus counters
	"Dora",
	"Ura-dora",
	"Aka-dora",
}

var limitNames = []string{
	"No limit",
	"Mangan",
	"Haneman",
	"Baiman",
	"Sanbaiman",
	"Yakuman",
}

var reasonNames = map[string]string{
	"nm":     "Nagashi Mangan",
	"yao9":   "9-Shu 9-Hai",
	"kaze4":  "4 Fu",
	"reach4": "4 Reach",
	"ron3":   "3 Ron",
	"kan4":   "4 Kan",
}

func YakuName(id int32) string {
	if id >= 0 && int(id) < len(yakuNames) {
		return yakuNames[id]
	}
	return "Yaku-" + strconv.Itoa(int(id))
}

func LimitName(limit int32) string {
	if limit >= 0 && int(limit) < len(limitNames) {
		return limitNames[limit]
	}
	return "Limit-" + strconv.Itoa(int(limit))
}

// ReasonName names a ryuukyoku reason code; unknown codes pass through.
func ReasonName(code string) string {
	if name, ok := reasonNames[code]; ok {
		return name
	}
	return code
}
