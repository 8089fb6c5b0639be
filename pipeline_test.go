package chatify

import (
	"context"
	"strings"
	"testing"
)

// TestProcessMessage_FullPipeline 完整管道：正文、推理、工具调用与结果匹配
func TestProcessMessage_FullPipeline(t *testing.T) {
	raw := `Intro <think>plan</think> ` +
		`<tool_call>{"name":"fs___read","arguments":{"path":"a"}}</tool_call>` +
		` result is \(x\)`
	results := []ToolResult{
		{ID: "r1", Server: "fs", Tool: "read", Result: "data", DurationMs: 5},
	}

	contents, err := ProcessMessage(context.Background(), raw, results, nil)
	if err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if len(contents) != 5 {
		t.Fatalf("ProcessMessage() returned %d contents, want 5: %+v", len(contents), contents)
	}

	text, ok := contents[0].(*Text)
	if !ok || text.Text != "Intro " {
		t.Errorf("contents[0] = %+v, want Text(Intro )", contents[0])
	}
	think, ok := contents[1].(*Think)
	if !ok || think.Text != "plan" {
		t.Errorf("contents[1] = %+v, want Think(plan)", contents[1])
	}
	call, ok := contents[3].(*ToolCall)
	if !ok {
		t.Fatalf("contents[3] = %+v, want ToolCall", contents[3])
	}
	if call.ID != "r1" {
		t.Errorf("ToolCall.ID = %q, want result ID r1", call.ID)
	}
	if call.Record == nil || call.Record.Server != "fs" || call.Record.Tool != "read" {
		t.Errorf("ToolCall.Record = %+v, want fs/read", call.Record)
	}
	if call.Result == nil || call.Result.Result != "data" {
		t.Errorf("ToolCall.Result = %+v, want matched result", call.Result)
	}
	tail, ok := contents[4].(*Text)
	if !ok || tail.Text != " result is $x$" {
		t.Errorf("contents[4] = %+v, want normalized tail", contents[4])
	}
}

// TestProcessMessage_CallWithoutResult 没有后端结果的调用生成关联 ID
func TestProcessMessage_CallWithoutResult(t *testing.T) {
	raw := `<tool_call>{"name":"search","arguments":{"q":"go"}}</tool_call>`
	contents, err := ProcessMessage(context.Background(), raw, nil, nil)
	if err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("ProcessMessage() returned %d contents, want 1", len(contents))
	}

	call := contents[0].(*ToolCall)
	if call.Result != nil {
		t.Errorf("Result = %+v, want nil", call.Result)
	}
	if call.ID == "" {
		t.Error("ID should be generated when no result carries one")
	}
}

// TestProcessMessage_UnparseablePayload 畸形载荷保留原文供回退显示
func TestProcessMessage_UnparseablePayload(t *testing.T) {
	raw := `<tool_call>broken payload</tool_call>`
	contents, err := ProcessMessage(context.Background(), raw, nil, nil)
	if err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}

	call := contents[0].(*ToolCall)
	if call.Record != nil {
		t.Errorf("Record = %+v, want nil", call.Record)
	}
	if call.Raw != "broken payload" {
		t.Errorf("Raw = %q, want original payload", call.Raw)
	}
}

// TestProcessMessage_FileExtraction 超过行数阈值的代码块提取为 File
func TestProcessMessage_FileExtraction(t *testing.T) {
	var b strings.Builder
	b.WriteString("See the code:\n```go\n")
	for i := 0; i < 60; i++ {
		b.WriteString("line\n")
	}
	b.WriteString("```\n")

	contents, err := ProcessMessage(context.Background(), b.String(), nil, nil)
	if err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if len(contents) != 2 {
		t.Fatalf("ProcessMessage() returned %d contents, want Text+File: %+v", len(contents), contents)
	}

	file, ok := contents[1].(*File)
	if !ok {
		t.Fatalf("contents[1] = %+v, want File", contents[1])
	}
	if file.FileName != "snippet.go" {
		t.Errorf("FileName = %q, want snippet.go", file.FileName)
	}
	if file.Language != "go" {
		t.Errorf("Language = %q, want go", file.Language)
	}
	if got := file.GetContentTrace().Extra["lines"]; got != 60 {
		t.Errorf("Extra[lines] = %v, want 60", got)
	}
	if !strings.HasPrefix(string(file.FileData), "line\n") {
		t.Errorf("FileData = %q, want code body", file.FileData)
	}
}

// TestProcessMessage_SmallBlockNotExtracted 阈值以内的代码块不生成 File
func TestProcessMessage_SmallBlockNotExtracted(t *testing.T) {
	raw := "short:\n```go\nx := 1\n```\n"
	contents, err := ProcessMessage(context.Background(), raw, nil, nil)
	if err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	for _, c := range contents {
		if c.GetContentType() == ContentTypeFile {
			t.Errorf("unexpected File content: %+v", c)
		}
	}
}

// TestProcessMessage_ContextCanceled 取消的上下文中止管道
func TestProcessMessage_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	contents, err := ProcessMessage(ctx, "hello", nil, nil)
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if contents != nil {
		t.Errorf("contents = %+v, want nil", contents)
	}
}

// TestChatify_Delegates 顶层入口与 ProcessMessage 行为一致
func TestChatify_Delegates(t *testing.T) {
	contents, err := Chatify(context.Background(), "hi <think>t</think>", nil, nil)
	if err != nil {
		t.Fatalf("Chatify() error: %v", err)
	}
	if len(contents) != 2 {
		t.Fatalf("Chatify() returned %d contents, want 2", len(contents))
	}
	if contents[0].GetContentType() != ContentTypeText {
		t.Errorf("contents[0] type = %v, want text", contents[0].GetContentType())
	}
	if contents[1].GetContentType() != ContentTypeThink {
		t.Errorf("contents[1] type = %v, want think", contents[1].GetContentType())
	}
}

// TestContentType_String 内容类型字符串表示
func TestContentType_String(t *testing.T) {
	tests := []struct {
		ct   ContentType
		want string
	}{
		{ContentTypeText, "text"},
		{ContentTypeThink, "think"},
		{ContentTypeToolCall, "tool_call"},
		{ContentTypeFile, "file"},
		{ContentType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("ContentType(%d).String() = %q, want %q", tt.ct, got, tt.want)
		}
	}
}
