package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// 内容插值：在进入结构推断之前，把文案中的 ${path.to[0].value}
// 占位符替换为调用方提供的 JSON 数据。解析不到的占位符原样保留，
// 渲染永远不会因为数据缺失而失败。

var (
	placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	segmentPattern     = regexp.MustCompile(`([^.\[\]]+)|\[(\d+)\]`)
)

// Interpolate 替换文本中的全部 ${...} 占位符。data 通常来自
// encoding/json 反序列化的 map[string]interface{} / []interface{} 结构。
func Interpolate(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := Resolve(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Resolve 沿点号与下标逐段下钻：字段名走 map，[n] 走数组。
// 任意一段不匹配即视为解析失败。
func Resolve(data any, path string) (any, bool) {
	current := data
	for _, m := range segmentPattern.FindAllStringSubmatch(path, -1) {
		if m[1] != "" {
			obj, ok := current.(map[string]interface{})
			if !ok {
				return nil, false
			}
			if current, ok = obj[m[1]]; !ok {
				return nil, false
			}
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, false
		}
		arr, ok := current.([]interface{})
		if !ok || idx < 0 || idx >= len(arr) {
			return nil, false
		}
		current = arr[idx]
	}
	return current, true
}
