package chatify

import (
	"github.com/riverfjs/chatify-go/internal/latex"
	"github.com/riverfjs/chatify-go/internal/segment"
	"github.com/riverfjs/chatify-go/internal/toolcall"
)

// Convert 将原始消息缓冲区转换为有序的类型化片段
//
// 对缓冲区做标签切分，然后对每个 Text 片段做数学记号规范化
// （定界符规范化 + boxed/货币改写）。Think 与 ToolCall 片段内容
// 原样保留。缓冲区可以是仍在流式追加的前缀 — 未闭合的尾部标签
// 会产生一个包含剩余内容的片段。
//
// 参数:
//   - raw: 到目前为止的原始模型输出
//   - normalizeMath: 是否规范化数学记号
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - []Segment: 有序片段列表
func Convert(raw string, normalizeMath bool, config *RenderConfig) []Segment {
	if config == nil {
		config = DefaultConfig()
	}

	segments := segment.Split(raw, config)
	if normalizeMath {
		for i := range segments {
			if segments[i].Kind == SegmentText {
				segments[i].Content = NormalizeMath(segments[i].Content)
			}
		}
	}
	return segments
}

// ConvertWithOptions 使用函数式选项的 Convert 变体
func ConvertWithOptions(raw string, opts ...Option) []Segment {
	options := applyOptions(opts...)
	return Convert(raw, options.NormalizeMath, options.Config)
}

// ConvertWithToolCalls 类似 Convert()，但额外返回每个 ToolCall 片段
// 解析后的记录，与片段顺序对应
//
// 返回的记录列表长度等于 ToolCall 片段数量；载荷畸形的位置为 nil，
// 调用方回退到显示原始文本。
func ConvertWithToolCalls(raw string, normalizeMath bool, config *RenderConfig) ([]Segment, []*ParsedToolCall) {
	segments := Convert(raw, normalizeMath, config)

	var records []*ParsedToolCall
	for _, seg := range segments {
		if seg.Kind == SegmentToolCall {
			records = append(records, toolcall.Parse(seg.Content))
		}
	}
	return segments, records
}

// NormalizeMath 对一段正文做完整的数学记号规范化
//
// 先把四种记号变体重写为规范的 $/$$ 定界，再做 boxed/货币改写。
// 代码区域与已有定界的数学在整个过程中字节不变。幂等。
func NormalizeMath(text string) string {
	return latex.RewriteBoxed(latex.Normalize(text))
}

// ParseToolCall 将单个工具调用载荷解析为规范化记录
//
// 载荷畸形时返回 nil。超过大负载阈值的载荷返回标记 LargePayload
// 的哨兵记录，不做结构化解析。
func ParseToolCall(payload string) *ParsedToolCall {
	return toolcall.Parse(payload)
}
