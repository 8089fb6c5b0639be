package segment

import (
	"strings"
	"testing"

	"github.com/riverfjs/chatify-go/internal/types"
)

// reassemble 按顺序拼接片段内容并在边界重新插入标签定界符
func reassemble(segments []types.Segment, config *types.RenderConfig) string {
	var b strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case types.SegmentThink:
			b.WriteString(config.ThinkOpenTag)
			b.WriteString(seg.Content)
			b.WriteString(config.ThinkCloseTag)
		case types.SegmentToolCall:
			b.WriteString(config.ToolCallOpenTag)
			b.WriteString(seg.Content)
			b.WriteString(config.ToolCallCloseTag)
		default:
			b.WriteString(seg.Content)
		}
	}
	return b.String()
}

// TestSplit_Basic 测试基本的 Text/Think 切分
func TestSplit_Basic(t *testing.T) {
	segments := Split("Hello <think>reasoning</think> World", nil)

	want := []types.Segment{
		{Kind: types.SegmentText, Content: "Hello "},
		{Kind: types.SegmentThink, Content: "reasoning"},
		{Kind: types.SegmentText, Content: " World"},
	}
	if len(segments) != len(want) {
		t.Fatalf("Split() returned %d segments, want %d: %+v", len(segments), len(want), segments)
	}
	for i, seg := range segments {
		if seg != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, seg, want[i])
		}
	}
}

// TestSplit_UnterminatedThink 测试流式输出中未闭合的 think 标签
func TestSplit_UnterminatedThink(t *testing.T) {
	segments := Split("<think>partial", nil)

	if len(segments) != 1 {
		t.Fatalf("Split() returned %d segments, want 1: %+v", len(segments), segments)
	}
	if segments[0].Kind != types.SegmentThink || segments[0].Content != "partial" {
		t.Errorf("segment[0] = %+v, want Think(partial)", segments[0])
	}
}

// TestSplit_UnterminatedToolCall 测试未闭合的工具调用标签
func TestSplit_UnterminatedToolCall(t *testing.T) {
	segments := Split(`x<tool_call>{"name":`, nil)

	want := []types.Segment{
		{Kind: types.SegmentText, Content: "x"},
		{Kind: types.SegmentToolCall, Content: `{"name":`},
	}
	if len(segments) != len(want) {
		t.Fatalf("Split() returned %d segments, want %d", len(segments), len(want))
	}
	for i, seg := range segments {
		if seg != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, seg, want[i])
		}
	}
}

// TestSplit_InterleavedSpans 测试 Think 与 ToolCall 交错
func TestSplit_InterleavedSpans(t *testing.T) {
	raw := `<think>plan</think> <tool_call>{"name":"search"}</tool_call>done`
	segments := Split(raw, nil)

	want := []types.Segment{
		{Kind: types.SegmentThink, Content: "plan"},
		{Kind: types.SegmentText, Content: " "},
		{Kind: types.SegmentToolCall, Content: `{"name":"search"}`},
		{Kind: types.SegmentText, Content: "done"},
	}
	if len(segments) != len(want) {
		t.Fatalf("Split() returned %d segments, want %d: %+v", len(segments), len(want), segments)
	}
	for i, seg := range segments {
		if seg != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, seg, want[i])
		}
	}
}

// TestSplit_InteriorWhitespacePreserved 片段之间的纯空白 Text 原样保留
func TestSplit_InteriorWhitespacePreserved(t *testing.T) {
	segments := Split("<think>a</think>\n\n<think>b</think>end", nil)

	if len(segments) != 4 {
		t.Fatalf("Split() returned %d segments, want 4: %+v", len(segments), segments)
	}
	if segments[1].Kind != types.SegmentText || segments[1].Content != "\n\n" {
		t.Errorf("interior whitespace segment = %+v, want Text(\"\\n\\n\")", segments[1])
	}
}

// TestSplit_TrailingWhitespaceDropped 尾部纯空白 Text 被丢弃
func TestSplit_TrailingWhitespaceDropped(t *testing.T) {
	segments := Split("<think>a</think>\n  ", nil)

	if len(segments) != 1 {
		t.Fatalf("Split() returned %d segments, want 1: %+v", len(segments), segments)
	}
	if segments[0].Kind != types.SegmentThink {
		t.Errorf("segment[0].Kind = %v, want Think", segments[0].Kind)
	}
}

// TestSplit_NoTags 无标签的纯文本
func TestSplit_NoTags(t *testing.T) {
	segments := Split("hello world", nil)
	if len(segments) != 1 || segments[0].Content != "hello world" {
		t.Errorf("Split() = %+v, want single Text(hello world)", segments)
	}

	if got := Split("", nil); len(got) != 0 {
		t.Errorf("Split(\"\") = %+v, want empty", got)
	}
	if got := Split("   ", nil); len(got) != 0 {
		t.Errorf("Split(whitespace) = %+v, want empty", got)
	}
}

// TestSplit_RoundTrip 对平衡标签的输入，拼接片段并重插定界符应还原原文
func TestSplit_RoundTrip(t *testing.T) {
	config := types.DefaultRenderConfig()
	inputs := []string{
		"Hello <think>reasoning</think> World",
		`<think>plan</think> <tool_call>{"name":"a"}</tool_call> mid <think>more</think>tail`,
		"no tags at all",
		"<think></think>after",
		"lead<tool_call>payload</tool_call>trail",
	}

	for _, input := range inputs {
		got := reassemble(Split(input, config), config)
		if got != input {
			t.Errorf("round trip mismatch:\n input: %q\noutput: %q", input, got)
		}
	}
}

// TestSplit_PrefixExtension 流式前缀扩展不会使已闭合的片段失效
func TestSplit_PrefixExtension(t *testing.T) {
	full := "Hello <think>reasoning</think> World"
	final := Split(full, nil)

	for i := len("Hello <think>r"); i < len(full); i++ {
		partial := Split(full[:i], nil)
		// 已闭合的片段在更长的缓冲区上重新切分后保持不变
		for j, seg := range partial {
			if j >= len(final) {
				break
			}
			if seg.Kind != final[j].Kind {
				continue // 末尾片段仍在增长
			}
			if j < len(partial)-1 && seg != final[j] {
				t.Errorf("prefix %d: closed segment[%d] = %+v, want %+v", i, j, seg, final[j])
			}
		}
	}
}

// TestSplit_CustomTags 自定义标签对
func TestSplit_CustomTags(t *testing.T) {
	config := types.DefaultRenderConfig()
	config.ThinkOpenTag = "<reasoning>"
	config.ThinkCloseTag = "</reasoning>"

	segments := Split("a<reasoning>b</reasoning>c", config)
	if len(segments) != 3 {
		t.Fatalf("Split() returned %d segments, want 3: %+v", len(segments), segments)
	}
	if segments[1].Kind != types.SegmentThink || segments[1].Content != "b" {
		t.Errorf("segment[1] = %+v, want Think(b)", segments[1])
	}
}
