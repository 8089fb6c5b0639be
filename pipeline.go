package chatify

import (
	"context"

	"github.com/google/uuid"

	"github.com/riverfjs/chatify-go/internal/extract"
	"github.com/riverfjs/chatify-go/internal/toolcall"
	"github.com/riverfjs/chatify-go/internal/util"
)

// ProcessMessage 完整管道：原始缓冲区 → 渲染就绪的内容列表
//
// 步骤：
//  1. 切分缓冲区并规范化 Text 片段（Convert）
//  2. 按顺序遍历片段：
//     - Think → Think 内容
//     - ToolCall → 解析记录，与后端结果按位置匹配
//     - Text → Text 内容；超过行数阈值的代码块额外提取为 File
//  3. 返回 Text | Think | ToolCall | File 的有序列表
//
// 后端结果（已执行的工具调用）按出现顺序与缓冲区中的工具调用片段
// 一一对应。没有对应结果的片段 Result 为 nil；后端未提供 ID 时生成
// 一个，供渲染层折叠视图关联使用。
//
// 整个管道每次在完整的累积缓冲区上重新运行，调用之间不保留任何解析
// 状态；流式下的正确性来自切分器的"未闭合标签 → 尾部片段"规则。
func ProcessMessage(ctx context.Context, content string, results []ToolResult, config *RenderConfig) ([]Content, error) {
	if config == nil {
		config = DefaultConfig()
	}

	segments := Convert(content, config.NormalizeMath, config)

	out := make([]Content, 0, len(segments))
	resultIdx := 0

	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch seg.Kind {
		case SegmentThink:
			out = append(out, &Think{
				Text:         seg.Content,
				ContentTrace: ContentTrace{SourceType: "think"},
			})

		case SegmentToolCall:
			record := toolcall.Parse(seg.Content)
			if record == nil {
				Logger.Printf("tool call payload unparsed, falling back to raw display")
			}

			var result *ToolResult
			if resultIdx < len(results) {
				r := results[resultIdx]
				result = &r
			}
			resultIdx++

			out = append(out, &ToolCall{
				ID:           toolCallID(record, result),
				Record:       record,
				Result:       result,
				Raw:          seg.Content,
				ContentTrace: ContentTrace{SourceType: "tool_call"},
			})

		case SegmentText:
			out = append(out, &Text{
				Text:         seg.Content,
				ContentTrace: ContentTrace{SourceType: "text"},
			})
			appendExtractedFiles(&out, seg.Content, config.CodeFileLineThreshold)
		}
	}

	if resultIdx < len(results) {
		Logger.Printf("tool result count mismatch: %d results, %d call spans", len(results), resultIdx)
	}

	return out, nil
}

// toolCallID 选择渲染层使用的关联 ID：后端结果 ID 优先，
// 其次载荷自带的 ID，都没有时生成一个
func toolCallID(record *ParsedToolCall, result *ToolResult) string {
	if result != nil && result.ID != "" {
		return result.ID
	}
	if record != nil && record.ID != "" {
		return record.ID
	}
	return uuid.NewString()
}

// appendExtractedFiles 将超过行数阈值的代码块提取为 File 内容
//
// Text 内容本身保持完整；File 是补充附件，渲染层可以折叠正文中的
// 大代码块并提供下载。
func appendExtractedFiles(out *[]Content, text string, lineThreshold int) {
	if lineThreshold <= 0 {
		return
	}
	for _, block := range extract.Blocks(text) {
		if block.Lines <= lineThreshold {
			continue
		}
		lang := block.Language
		if lang == "" {
			lang = "txt"
		}
		*out = append(*out, &File{
			FileName: util.GetFilename(block.Code, lang),
			FileData: []byte(block.Code),
			Language: lang,
			ContentTrace: ContentTrace{
				SourceType: "file",
				Extra: map[string]interface{}{
					"language": lang,
					"lines":    block.Lines,
					"mermaid":  block.Mermaid,
				},
			},
		})
	}
}
