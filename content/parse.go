package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ParsedContent 是结构推断的结果，每次渲染调用都重新计算，不做缓存。
type ParsedContent struct {
	Kicker string   `json:"kicker,omitempty"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Tags   []string `json:"tags,omitempty"`
}

// PlaceholderTitle 是兜底标题：输入为空或无法推断标题时使用。
const PlaceholderTitle = "精彩内容"

const (
	maxShortTitleRunes = 28 // 首行可直接作为标题的长度上限
	maxGeneratedRunes  = 20 // 从正文生成标题时的截断长度
	maxKickerRunes     = 20 // kicker 清理后的长度上限
	maxAudienceRunes   = 40 // 人群标签行的长度上限
)

var (
	explicitTitlePattern = regexp.MustCompile(`(?i)^\s*(?:标题|题目|title)\s*[:：]\s*(.+)$`)
	audiencePattern      = regexp.MustCompile(`^(?:适合|适用|人群|对象|场景)`)
	leadingMarkPattern   = regexp.MustCompile(`^[\s\-*•·▪◦▸►–—🔸🔹🔺✅⭐🌟✨💡📌👉🎯🔥❗🚀]+`)
	titlePrefixPattern   = regexp.MustCompile(`(?i)^(?:标题|题目|title)\s*[:：]\s*`)
	headingHashPattern   = regexp.MustCompile(`^#+\s*`)
	enumPrefixPattern    = regexp.MustCompile(`^(?:\d{1,2}[.、）)．]|（[一二三四五六七八九十]{1,3}）|\([一二三四五六七八九十]{1,3}\)|[一二三四五六七八九十]{1,3}[、.．])\s*`)
	clauseSplitPattern   = regexp.MustCompile(`[。！？!?.，,\n]`)
	blankRunPattern      = regexp.MustCompile(`\n{3,}`)
)

// Parse 把自由文本推断为 {kicker, title, body, tags} 结构。
// 永不失败：空白输入返回占位标题与空正文。
//
// 推断由一组有序的启发式步骤组成（显式标题行 → 首个短行 → 正文首个分句 →
// 占位标题），每一步都是纯函数，便于单独测试。
func Parse(raw string) ParsedContent {
	raw = normalizeNewlines(raw)
	tags, working := ExtractTags(raw)

	lines := strings.Split(working, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	removed := make(map[int]bool)

	title, titleIdx, explicit := matchExplicitTitle(lines)
	if explicit {
		removed[titleIdx] = true
	} else {
		title, titleIdx = matchFirstShortLine(lines)
		if titleIdx >= 0 {
			removed[titleIdx] = true
		}
	}

	kicker := ""
	if explicit && titleIdx > 0 {
		if idx, ok := matchPrecedingLabel(lines, titleIdx); ok {
			kicker = cleanKicker(lines[idx])
			removed[idx] = true
		}
	}
	if kicker == "" {
		if idx, ok := matchAudienceLabel(lines, removed); ok {
			kicker = cleanKicker(lines[idx])
			removed[idx] = true
		}
	}

	body := assembleBody(lines, removed)

	if title == "" {
		title = generateTitle(body)
	}
	if title == "" {
		title = PlaceholderTitle
	}

	return ParsedContent{Kicker: kicker, Title: title, Body: body, Tags: tags}
}

// matchExplicitTitle 查找 "标题：xxx" / "Title: xxx" 形式的显式标题行。
func matchExplicitTitle(lines []string) (string, int, bool) {
	for i, line := range lines {
		if m := explicitTitlePattern.FindStringSubmatch(line); m != nil {
			if t := CleanTitle(m[1]); t != "" {
				return t, i, true
			}
		}
	}
	return "", -1, false
}

// matchFirstShortLine 在没有显式标题时，尝试把首个非空行当作标题：
// 必须不像列表项且不超过 28 个字符。
func matchFirstShortLine(lines []string) (string, int) {
	for i, line := range lines {
		if line == "" {
			continue
		}
		if IsListLine(line) || utf8.RuneCountInString(line) > maxShortTitleRunes {
			return "", -1
		}
		if t := CleanTitle(line); t != "" {
			return t, i
		}
		return "", -1
	}
	return "", -1
}

// matchPrecedingLabel 在显式标题行之前查找最近的短标签行（≤20 字符、以冒号结尾）。
func matchPrecedingLabel(lines []string, titleIdx int) (int, bool) {
	for i := titleIdx - 1; i >= 0; i-- {
		line := lines[i]
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) <= maxKickerRunes &&
			(strings.HasSuffix(line, "：") || strings.HasSuffix(line, ":")) {
			return i, true
		}
		return -1, false
	}
	return -1, false
}

// matchAudienceLabel 在正文首个剩余行上查找 "适合/适用/人群/对象/场景" 式标签。
func matchAudienceLabel(lines []string, removed map[int]bool) (int, bool) {
	for i, line := range lines {
		if removed[i] || line == "" {
			continue
		}
		if audiencePattern.MatchString(line) && utf8.RuneCountInString(line) <= maxAudienceRunes {
			return i, true
		}
		return -1, false
	}
	return -1, false
}

func assembleBody(lines []string, removed map[int]bool) string {
	var kept []string
	for i, line := range lines {
		if removed[i] {
			continue
		}
		kept = append(kept, line)
	}
	body := strings.Join(kept, "\n")
	body = blankRunPattern.ReplaceAllString(body, "\n\n")
	return strings.TrimSpace(body)
}

// generateTitle 取正文的第一个非列表分句并截断到 20 字符（带省略号）。
// 列表项的文字不做标题：正文只剩列表时交给占位标题兜底。
func generateTitle(body string) string {
	for _, clause := range clauseSplitPattern.Split(body, -1) {
		if IsListLine(clause) {
			continue
		}
		clause = CleanTitle(clause)
		if clause == "" {
			continue
		}
		runes := []rune(clause)
		if len(runes) > maxGeneratedRunes {
			return string(runes[:maxGeneratedRunes]) + "…"
		}
		return clause
	}
	return ""
}

// CleanTitle 依次剥离：前导符号/emoji、显式标题前缀、markdown 井号、
// 数字/中文编号前缀、末尾冒号。
func CleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = leadingMarkPattern.ReplaceAllString(s, "")
	s = titlePrefixPattern.ReplaceAllString(s, "")
	s = headingHashPattern.ReplaceAllString(s, "")
	s = enumPrefixPattern.ReplaceAllString(s, "")
	s = strings.TrimRight(s, ":：")
	return strings.TrimSpace(s)
}

func cleanKicker(s string) string {
	s = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ":："))
	runes := []rune(s)
	if len(runes) > maxKickerRunes {
		runes = runes[:maxKickerRunes]
	}
	return string(runes)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
