package content

import (
	"strings"
	"testing"
)

func TestParseExplicitTitle(t *testing.T) {
	got := Parse("标题：三步搭好开发环境\n适合：零基础新手\n1. 安装工具\n2. 配置环境变量\n3. 验证安装")
	if got.Title != "三步搭好开发环境" {
		t.Fatalf("显式标题解析错误: %q", got.Title)
	}
	if !strings.Contains(got.Kicker, "零基础新手") {
		t.Fatalf("应把人群标签提升为 kicker: %q", got.Kicker)
	}
	lines := strings.Split(got.Body, "\n")
	if len(lines) != 3 {
		t.Fatalf("正文应保留 3 行编号列表，实际 %d 行: %q", len(lines), got.Body)
	}
	for i, line := range lines {
		if !IsListLine(line) {
			t.Fatalf("第 %d 行应是列表行: %q", i, line)
		}
	}
}

func TestParseTitleNeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n  ",
		"#只有 #标签",
		"标题：",
		"这是一段没有明显标题的长文本，先讲一件事再讲另一件事，内容超过二十八个字符以免被当作短标题",
	}
	for _, in := range inputs {
		if got := Parse(in); got.Title == "" {
			t.Fatalf("输入 %q 解析出空标题", in)
		}
	}
}

func TestParseFirstShortLineAsTitle(t *testing.T) {
	got := Parse("周末去爬山\n带好水和防晒，早点出发。")
	if got.Title != "周末去爬山" {
		t.Fatalf("首个短行应作为标题: %q", got.Title)
	}
	if strings.Contains(got.Body, "周末去爬山") {
		t.Fatalf("标题行应从正文移除: %q", got.Body)
	}
}

func TestParseFirstLineTooLongGeneratesTitle(t *testing.T) {
	body := "这一行特别长完全不适合直接当作卡片标题因为它超过了二十八个字符的限制，后面还有内容。"
	got := Parse(body)
	if got.Title == "" || got.Title == PlaceholderTitle {
		t.Fatalf("应从正文首个分句生成标题: %q", got.Title)
	}
	if !strings.HasSuffix(got.Title, "…") {
		t.Fatalf("超长分句生成的标题应以省略号收尾: %q", got.Title)
	}
	if n := len([]rune(strings.TrimSuffix(got.Title, "…"))); n != 20 {
		t.Fatalf("生成标题应截断到 20 字，实际 %d: %q", n, got.Title)
	}
}

func TestParseListFirstLineNotTitle(t *testing.T) {
	got := Parse("- 第一条\n- 第二条")
	if got.Title != PlaceholderTitle {
		t.Fatalf("纯列表正文应使用占位标题，实际 %q", got.Title)
	}
	if !strings.Contains(got.Body, "- 第一条") {
		t.Fatalf("列表行应保留在正文: %q", got.Body)
	}
}

func TestParseListThenProseGeneratesFromProse(t *testing.T) {
	got := Parse("- 先热身\n然后开始正式训练，循序渐进地增加强度避免受伤拉伤")
	if got.Title != "然后开始正式训练" {
		t.Fatalf("应跳过列表分句、从首个非列表分句生成标题: %q", got.Title)
	}
}

func TestParseKickerBeforeExplicitTitle(t *testing.T) {
	got := Parse("新手指南：\n标题：快速上手\n先做这个，再做那个。")
	if got.Kicker != "新手指南" {
		t.Fatalf("显式标题前的短标签行应成为 kicker: %q", got.Kicker)
	}
	if got.Title != "快速上手" {
		t.Fatalf("标题解析错误: %q", got.Title)
	}
}

func TestParseHashtagOnlyBodyEmpty(t *testing.T) {
	got := Parse("#foo #bar")
	if got.Body != "" {
		t.Fatalf("纯标签输入的正文应为空: %q", got.Body)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("应提取 2 个标签: %v", got.Tags)
	}
}

func TestParseCollapsesBlankRuns(t *testing.T) {
	got := Parse("一个足够长超过二十八个字符限制的标题行不会被提升所以留在正文里\n\n\n\n第二段")
	if strings.Contains(got.Body, "\n\n\n") {
		t.Fatalf("连续空行应折叠: %q", got.Body)
	}
}

func TestCleanTitle(t *testing.T) {
	cases := []struct{ in, want string }{
		{"🔸 标题：今日要点：", "今日要点"},
		{"## 三个小技巧", "三个小技巧"},
		{"1. 开始之前", "开始之前"},
		{"（一）背景介绍", "背景介绍"},
		{"• Title: Hello", "Hello"},
	}
	for _, c := range cases {
		if got := CleanTitle(c.in); got != c.want {
			t.Fatalf("CleanTitle(%q) = %q，期望 %q", c.in, got, c.want)
		}
	}
}
