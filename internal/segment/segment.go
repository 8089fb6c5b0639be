package segment

import (
	"strings"

	"github.com/riverfjs/chatify-go/internal/types"
)

// Split 将消息缓冲区切分为有序的 Text / Think / ToolCall 片段
//
// 从左到右扫描下一个出现的开始标签（think 或 tool_call，取更靠前者）。
// 标签之前的文本作为 Text 片段输出；找到匹配的结束标签则输出对应类型的
// 片段并继续扫描；找不到结束标签（流式输出尚未结束）则把剩余内容整体
// 作为该类型的片段输出并停止。
//
// 这是流式安全的关键行为：调用方可以在每次追加 token 后重新调用 Split，
// 得到逐渐增长的合理结果，而不是一团未渲染的标记。标签不嵌套，按首次
// 出现匹配，不做通用解析。
//
// 尾部的 Text 片段只有在含非空白内容时才输出；片段之间的 Text 原样保留
// （包括纯空白），渲染层的间距约定依赖这一点。
func Split(buffer string, config *types.RenderConfig) []types.Segment {
	if config == nil {
		config = types.DefaultRenderConfig()
	}

	var segments []types.Segment
	rest := buffer

	for rest != "" {
		thinkIdx := strings.Index(rest, config.ThinkOpenTag)
		toolIdx := strings.Index(rest, config.ToolCallOpenTag)

		kind, openIdx, openTag, closeTag := nextTag(thinkIdx, toolIdx, config)
		if openIdx < 0 {
			break
		}

		// 标签前的文本（可能是纯空白，原样输出）
		if openIdx > 0 {
			segments = append(segments, types.Segment{
				Kind:    types.SegmentText,
				Content: rest[:openIdx],
			})
		}

		inner := rest[openIdx+len(openTag):]
		closeIdx := strings.Index(inner, closeTag)
		if closeIdx < 0 {
			// 结束标签还没到达 — 剩余内容整体作为未闭合片段
			segments = append(segments, types.Segment{
				Kind:    kind,
				Content: inner,
			})
			return segments
		}

		segments = append(segments, types.Segment{
			Kind:    kind,
			Content: inner[:closeIdx],
		})
		rest = inner[closeIdx+len(closeTag):]
	}

	// 尾部文本：纯空白丢弃
	if strings.TrimSpace(rest) != "" {
		segments = append(segments, types.Segment{
			Kind:    types.SegmentText,
			Content: rest,
		})
	}

	return segments
}

// nextTag 在两个候选开始标签中选择更靠前的一个
func nextTag(thinkIdx, toolIdx int, config *types.RenderConfig) (types.SegmentKind, int, string, string) {
	if thinkIdx < 0 && toolIdx < 0 {
		return types.SegmentText, -1, "", ""
	}
	if toolIdx < 0 || (thinkIdx >= 0 && thinkIdx < toolIdx) {
		return types.SegmentThink, thinkIdx, config.ThinkOpenTag, config.ThinkCloseTag
	}
	return types.SegmentToolCall, toolIdx, config.ToolCallOpenTag, config.ToolCallCloseTag
}
