package content

import "regexp"

// 列表项识别被解析器（拒绝把列表行当标题）与折行引擎（拆分 marker 与正文）共用，
// 所以放在 content 包统一维护。

var (
	numericMarkerPattern = regexp.MustCompile(`^\s*(\d{1,2}[.)、）．]|\(\d{1,2}\)|（\d{1,2}）)\s*(.*)$`)
	cjkMarkerPattern     = regexp.MustCompile(`^\s*([一二三四五六七八九十]{1,3}[、.．)）]|（[一二三四五六七八九十]{1,3}）)\s*(.*)$`)
	glyphMarkerPattern   = regexp.MustCompile(`^\s*([-*•·▪◦▸►–—]|[🔸🔹🔺✅⭐🌟✨💡📌👉🎯🔥❗🚀❶❷❸❹❺])\s*(.*)$`)
)

// SplitListMarker 尝试把一行拆成列表 marker 与正文。
// 装饰性符号后若紧跟数字编号，则丢弃装饰符号、保留数字编号，
// 避免出现 "🔸1）" 这样的双重 marker。
func SplitListMarker(line string) (marker, rest string, ok bool) {
	if m := numericMarkerPattern.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	if m := cjkMarkerPattern.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	if m := glyphMarkerPattern.FindStringSubmatch(line); m != nil {
		if n := numericMarkerPattern.FindStringSubmatch(m[2]); n != nil {
			return n[1], n[2], true
		}
		return m[1], m[2], true
	}
	return "", "", false
}

// IsListLine 报告一行是否像列表项。
func IsListLine(line string) bool {
	_, _, ok := SplitListMarker(line)
	return ok
}
