package toolcall

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/riverfjs/chatify-go/internal/types"
)

const (
	// LargePayloadThreshold 超过该字节数的载荷直接跳过结构化解析，
	// 避免粘贴的大段工具结果拖垮调用线程
	LargePayloadThreshold = 32 << 10

	// serverToolSeparator 组合名称 "server___tool" 的保留分隔符
	serverToolSeparator = "___"

	unknown = "unknown"
)

// structuredParse 可在测试中替换，用于验证大负载守卫不会触发结构化解析
var structuredParse = parseStructured

// Parse 将工具调用片段的载荷解析为规范化的 ParsedToolCall
//
// 名称解析顺序：统一的 name 字段 → 历史遗留的 tool_name 字段 → "unknown"。
// 名称中含 "___" 分隔符时按首次出现拆分为 server + tool；否则使用显式的
// server 字段（如存在）。参数解析顺序：arguments → parameters → tool_args
// → 空 map。
//
// 载荷畸形时返回 nil，调用方回退到显示原始文本。超过大负载阈值时返回
// 标记 LargePayload 的哨兵记录并附带原文。
func Parse(payload string) *types.ParsedToolCall {
	if len(payload) > LargePayloadThreshold {
		return &types.ParsedToolCall{
			Server:       unknown,
			Tool:         unknown,
			Arguments:    map[string]interface{}{},
			Raw:          payload,
			LargePayload: true,
		}
	}
	return structuredParse(payload)
}

func parseStructured(payload string) *types.ParsedToolCall {
	trimmed := strings.TrimSpace(payload)
	if !gjson.Valid(trimmed) {
		return nil
	}
	root := gjson.Parse(trimmed)
	if !root.IsObject() {
		return nil
	}

	name := resolveName(root)
	server, tool := splitCombinedName(name)
	if server == "" {
		if s := root.Get("server"); s.Type == gjson.String && s.Str != "" {
			server = s.Str
		} else {
			server = unknown
		}
	}

	call := &types.ParsedToolCall{
		Server:    server,
		Tool:      tool,
		Arguments: resolveArguments(root),
		Raw:       payload,
	}
	if id := root.Get("id"); id.Type == gjson.String {
		call.ID = id.Str
	}
	return call
}

// resolveName 按优先级解析工具名称
func resolveName(root gjson.Result) string {
	for _, field := range []string{"name", "tool_name"} {
		if v := root.Get(field); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return unknown
}

// splitCombinedName 拆分 "server___tool" 组合名称
//
// 无分隔符时 server 返回空串，由调用方决定回退值。
func splitCombinedName(name string) (server, tool string) {
	if idx := strings.Index(name, serverToolSeparator); idx >= 0 {
		return name[:idx], name[idx+len(serverToolSeparator):]
	}
	return "", name
}

// resolveArguments 按优先级解析参数对象
func resolveArguments(root gjson.Result) map[string]interface{} {
	for _, field := range []string{"arguments", "parameters", "tool_args"} {
		v := root.Get(field)
		if !v.IsObject() {
			continue
		}
		if m, ok := v.Value().(map[string]interface{}); ok {
			return m
		}
	}
	return map[string]interface{}{}
}
