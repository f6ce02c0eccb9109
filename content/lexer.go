package content

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// 该文件定义正文与标签共用的词法切分：排版折行与话题标签提取
// 都基于同一份词元序列，避免两处各自维护一套切分规则。

// TokenKind 标识词元类别。
type TokenKind int

const (
	// TokenWord 是连续的拉丁字母/数字串（含撇号与连字符连接），折行时作为整体处理。
	TokenWord TokenKind = iota
	// TokenSpace 是行内空白，扫描时折叠为单个空格。
	TokenSpace
	// TokenNewline 是换行符。
	TokenNewline
	// TokenHashtag 是 #话题 标签（拉丁/数字/下划线/CJK）。
	TokenHashtag
	// TokenRune 是单个其他字符：CJK、标点、emoji 等，折行时逐字处理。
	TokenRune
)

// Token 是一个最小切分单元。
type Token struct {
	Kind TokenKind
	Text string
}

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Newline", Pattern: `\n`},
	{Name: "Space", Pattern: `[ \t\r]+`},
	{Name: "Hashtag", Pattern: `#[\p{L}\p{N}_]+`},
	{Name: "Word", Pattern: `[A-Za-z0-9]+(?:['\-][A-Za-z0-9]+)*`},
	{Name: "Rune", Pattern: `.`},
})

var tokenKinds = func() map[lexer.TokenType]TokenKind {
	syms := textLexer.Symbols()
	return map[lexer.TokenType]TokenKind{
		syms["Newline"]: TokenNewline,
		syms["Space"]:   TokenSpace,
		syms["Hashtag"]: TokenHashtag,
		syms["Word"]:    TokenWord,
		syms["Rune"]:    TokenRune,
	}
}()

// Scan 将文本切分为词元序列。词法器意外失败时退回逐字符切分，
// 保证任意输入都能得到可用的结果。
func Scan(text string) []Token {
	lx, err := textLexer.LexString("", text)
	if err != nil {
		return scanFallback(text)
	}
	var tokens []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return scanFallback(text)
		}
		if tok.EOF() {
			break
		}
		kind, ok := tokenKinds[tok.Type]
		if !ok {
			kind = TokenRune
		}
		value := tok.Value
		if kind == TokenSpace {
			value = " "
		}
		tokens = append(tokens, Token{Kind: kind, Text: value})
	}
	return tokens
}

func scanFallback(text string) []Token {
	var tokens []Token
	for _, r := range text {
		switch r {
		case '\n':
			tokens = append(tokens, Token{Kind: TokenNewline, Text: "\n"})
		case ' ', '\t', '\r':
			tokens = append(tokens, Token{Kind: TokenSpace, Text: " "})
		default:
			tokens = append(tokens, Token{Kind: TokenRune, Text: string(r)})
		}
	}
	return tokens
}
