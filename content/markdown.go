package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Markdown 预处理：渲染引擎只理解松散的纯文本行，用户粘贴的 markdown
// 先在这里拍平成纯文本，再交给结构推断。

var (
	fencePattern    = regexp.MustCompile("(?m)^```")
	mdHeadPattern   = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	emphasisPattern = regexp.MustCompile(`\*\*[^*\n]+\*\*`)
	linkPattern     = regexp.MustCompile(`\[[^\]\n]+\]\([^)\n]+\)`)
)

// LooksLikeMarkdown 用强信号（围栏代码、# 标题、**加粗**、[链接](url)）
// 判断内容是否需要先拍平。普通的 "- xxx" 列表行不算：纯文本卡片内容本来就常用。
func LooksLikeMarkdown(s string) bool {
	return fencePattern.MatchString(s) || mdHeadPattern.MatchString(s) ||
		emphasisPattern.MatchString(s) || linkPattern.MatchString(s)
}

// FlattenMarkdown 把 markdown 拍平为结构推断可理解的纯文本行：
//   - 一级标题变成 "标题：xxx" 显式标题行；
//   - 其余标题变成 "xxx：" 短标签行（折行引擎会识别为 heading）；
//   - 列表项降级为 "- " / "1. " 前缀行；
//   - 强调、链接等行内标记丢弃，只保留文字。
func FlattenMarkdown(src string) string {
	source := []byte(src)
	parser := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	doc := parser.Parse(text.NewReader(source))

	var out []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			line := inlineText(node, source)
			if line == "" {
				return ast.WalkSkipChildren, nil
			}
			if node.Level == 1 {
				out = append(out, "标题："+line)
			} else if strings.HasSuffix(line, "：") || strings.HasSuffix(line, ":") {
				out = append(out, line)
			} else {
				out = append(out, line+"：")
			}
			out = append(out, "")
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if insideListItem(node) {
				return ast.WalkSkipChildren, nil
			}
			if line := inlineText(node, source); line != "" {
				out = append(out, line, "")
			}
			return ast.WalkSkipChildren, nil
		case *ast.List:
			out = append(out, flattenList(node, source)...)
			out = append(out, "")
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			out = append(out, codeLines(node.Lines(), source)...)
			out = append(out, "")
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			out = append(out, codeLines(node.Lines(), source)...)
			out = append(out, "")
			return ast.WalkSkipChildren, nil
		case *ast.Blockquote:
			if line := inlineText(node, source); line != "" {
				out = append(out, line, "")
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	joined := strings.Join(out, "\n")
	joined = blankRunPattern.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}

func flattenList(list *ast.List, source []byte) []string {
	var out []string
	index := list.Start
	if !list.IsOrdered() || index == 0 {
		index = 1
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		li, ok := item.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", index)
			index++
		}
		var texts []string
		var nested []string
		for child := li.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *ast.List:
				nested = append(nested, flattenList(c, source)...)
			default:
				if line := inlineText(child, source); line != "" {
					texts = append(texts, line)
				}
			}
		}
		if len(texts) > 0 {
			out = append(out, marker+strings.Join(texts, " "))
		}
		out = append(out, nested...)
	}
	return out
}

// inlineText 收集节点下全部文本段，忽略行内标记。
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func insideListItem(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			return true
		}
	}
	return false
}

func codeLines(lines *text.Segments, source []byte) []string {
	var out []string
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(source)), "\n"))
	}
	return out
}
