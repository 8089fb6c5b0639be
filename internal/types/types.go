package types

// SegmentKind 表示消息片段的类型
type SegmentKind int

const (
	// SegmentText 可见正文
	SegmentText SegmentKind = iota
	// SegmentThink 推理/思考内容（渲染层折叠显示）
	SegmentThink
	// SegmentToolCall 工具调用载荷
	SegmentToolCall
)

// String returns the string representation of SegmentKind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentText:
		return "text"
	case SegmentThink:
		return "think"
	case SegmentToolCall:
		return "tool_call"
	default:
		return "unknown"
	}
}

// Segment 消息缓冲区切分后的一个有序片段
//
// 片段按插入顺序排列，即文档顺序。把所有片段内容按顺序拼接并在边界处
// 重新插入标签定界符，可以精确还原原始缓冲区（尾部被丢弃的纯空白除外）。
type Segment struct {
	Kind    SegmentKind
	Content string
}

// ParsedToolCall 规范化后的工具调用记录
//
// 只读派生数据。Server/Tool 缺省为 "unknown"。
type ParsedToolCall struct {
	ID           string
	Server       string
	Tool         string
	Arguments    map[string]interface{}
	Raw          string
	LargePayload bool
}

// ToolResult 后端提供的已执行工具调用结果
//
// 与缓冲区中解析出的工具调用片段按位置顺序匹配。
type ToolResult struct {
	ID         string
	Server     string
	Tool       string
	Arguments  map[string]interface{}
	Result     string
	IsError    bool
	DurationMs int64
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// Think 片段的标签对
	ThinkOpenTag  string
	ThinkCloseTag string

	// 工具调用片段的标签对
	ToolCallOpenTag  string
	ToolCallCloseTag string

	// NormalizeMath 是否将数学记号规范化为 $/$$ 定界符
	NormalizeMath bool

	// CodeFileLineThreshold 超过该行数的代码块会被提取为 File 内容
	CodeFileLineThreshold int
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		ThinkOpenTag:          "<think>",
		ThinkCloseTag:         "</think>",
		ToolCallOpenTag:       "<tool_call>",
		ToolCallCloseTag:      "</tool_call>",
		NormalizeMath:         true,
		CodeFileLineThreshold: 50,
	}
}
