// Package chatify 将大模型的原始聊天输出切分为类型化片段并规范化数学记号
//
// 这个包处理可能仍在流式输出中的原始模型文本，把它拆分为可见正文、
// 推理（think）内容和工具调用载荷三类片段，并把不一致的数学记号统一
// 重写为规范的 $/$$ 定界形式，同时保证代码和已正确定界的区域字节不变。
//
// 核心功能：
//   - 流式安全的标签切分（未闭合的尾部标签产生增长中的片段）
//   - 工具调用载荷解析，兼容多种历史字段命名
//   - LaTeX 定界符规范化与保护区间跟踪
//   - \boxed{...} 与货币美元符号的按内容改写
//   - 大代码块提取为附件
//
// 主要 API：
//   - Convert(): 同步转换，返回有序片段列表
//   - ConvertWithToolCalls(): 额外返回解析后的工具调用记录
//   - Chatify(): 完整管道，返回渲染就绪的内容列表
//
// 示例：
//
//	// 简单转换
//	segments := chatify.Convert(raw, true, nil)
//
//	// 完整处理（含工具结果匹配、附件提取）
//	contents, err := chatify.Chatify(ctx, raw, results, nil)
//	for _, content := range contents {
//	    switch c := content.(type) {
//	    case *chatify.Text:
//	        // 渲染正文
//	    case *chatify.Think:
//	        // 折叠显示推理内容
//	    case *chatify.ToolCall:
//	        // 渲染工具调用详情视图
//	    case *chatify.File:
//	        // 提供附件下载
//	    }
//	}
//
// 所有操作都是同步、无副作用的纯函数；每次流式更新时在完整的累积
// 缓冲区上重新运行整个管道，调用之间不保留解析状态。
package chatify

import (
	"context"
)

// Chatify 将原始模型输出转换为渲染就绪的内容片段
//
// 这是主要的管道入口，包括片段切分、数学规范化、工具结果匹配和
// 大代码块提取。对于较低级别的纯切分，使用 Convert()。
//
// 参数：
//   - ctx: 上下文，片段之间检查取消
//   - content: 到目前为止的原始模型输出
//   - results: 后端已执行的工具调用结果，按位置与调用片段匹配
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回：
//   - []Content: Text、Think、ToolCall 或 File 对象的有序列表
//   - error: 仅在上下文取消时返回
func Chatify(
	ctx context.Context,
	content string,
	results []ToolResult,
	config *RenderConfig,
) ([]Content, error) {
	return ProcessMessage(ctx, content, results, config)
}
