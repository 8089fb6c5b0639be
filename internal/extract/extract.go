package extract

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gtext "github.com/yuin/goldmark/text"
)

// CodeBlock 从 Text 片段内容中提取出的围栏代码块
type CodeBlock struct {
	Language string
	Code     string
	Mermaid  bool
	Lines    int
}

// markdown goldmark 解析器，只用于定位代码块，不做渲染
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Blocks 解析一段已规范化的正文，按出现顺序收集其中的围栏代码块。
//
// 管道用它决定哪些大块代码应提取为 File 内容；检测通过 goldmark AST
// 完成，与正文的数学规范化互不干扰（代码内容在规范化时已受保护区间
// 约束，字节不变）。
func Blocks(content string) []CodeBlock {
	source := []byte(content)
	reader := gtext.NewReader(source)
	node := markdown.Parser().Parse(reader)

	var blocks []CodeBlock
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch cb := n.(type) {
		case *ast.FencedCodeBlock:
			blocks = append(blocks, newBlock(cb, string(cb.Language(source)), source))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			blocks = append(blocks, newBlock(cb, "", source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

func newBlock(n ast.Node, lang string, source []byte) CodeBlock {
	var parts []string
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		parts = append(parts, string(line.Value(source)))
	}
	code := strings.Join(parts, "")
	code = strings.TrimSuffix(code, "\n")

	// 语言标注可能带逗号参数，取第一段
	lang = strings.TrimSpace(strings.Split(lang, ",")[0])

	lineCount := 0
	if code != "" {
		lineCount = strings.Count(code, "\n") + 1
	}

	return CodeBlock{
		Language: lang,
		Code:     code,
		Mermaid:  strings.EqualFold(lang, "mermaid"),
		Lines:    lineCount,
	}
}
