package chatify

import (
	"sync"

	"github.com/riverfjs/chatify-go/internal/types"
)

// 导出类型别名
type (
	Segment        = types.Segment
	SegmentKind    = types.SegmentKind
	ParsedToolCall = types.ParsedToolCall
	ToolResult     = types.ToolResult
	RenderConfig   = types.RenderConfig
)

// 片段类型常量
const (
	SegmentText     = types.SegmentText
	SegmentThink    = types.SegmentThink
	SegmentToolCall = types.SegmentToolCall
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
