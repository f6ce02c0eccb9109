package content

import "strings"

// MaxTags 限制单张卡片最多渲染的标签数。
const MaxTags = 10

// ExtractTags 提取文本中的 #话题 标签，并返回去除标签后的剩余文本。
// 标签保留首次出现的顺序，大小写不敏感地去重。
func ExtractTags(text string) ([]string, string) {
	var tags []string
	var rest strings.Builder
	for _, tok := range Scan(text) {
		if tok.Kind == TokenHashtag {
			tags = append(tags, strings.TrimPrefix(tok.Text, "#"))
			continue
		}
		if tok.Kind == TokenNewline {
			rest.WriteByte('\n')
			continue
		}
		rest.WriteString(tok.Text)
	}
	return MergeTags(tags), rest.String()
}

// MergeTags 合并多组标签：大小写不敏感去重、保留首次出现顺序，
// 超过 MaxTags 的部分丢弃。空白与前导 # 会被清理。
func MergeTags(groups ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, group := range groups {
		for _, tag := range group {
			tag = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
			if tag == "" {
				continue
			}
			key := strings.ToLower(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, tag)
			if len(out) >= MaxTags {
				return out
			}
		}
	}
	return out
}
