package latex

import "strings"

const boxedMarker = `\boxed{`

// 扫描器的两个状态变量：代码模式与数学模式
type codeState int

const (
	codeNone codeState = iota
	codeInline
	codeFenced
)

type mathState int

const (
	mathNone mathState = iota
	mathInline
	mathDisplay
)

// RewriteBoxed 单趟从左到右的字符扫描器：
// 解析 \boxed{...} 为字面强调块或规范的盒装数学，
// 并把数学模式之外像货币的裸美元符号转义为字面形式。
//
// 每个位置上的规则按优先级：围栏/反引号切换代码模式（代码模式内
// 逐字复制，绝不进入数学逻辑）；\$ 原样复制且不切换数学模式；
// $$/$ 切换数学模式并原样复制；数学模式外 $ 后紧跟数字视为货币。
//
// 任何在输入末尾未闭合的构造都回退为逐字复制，而不是报错 —
// 这个改写器永远不会让整体渲染失败。
func RewriteBoxed(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 16)
	code := codeNone
	math := mathNone

	i := 0
	for i < len(text) {
		if code == codeFenced {
			if strings.HasPrefix(text[i:], "```") {
				code = codeNone
				b.WriteString("```")
				i += 3
				continue
			}
			b.WriteByte(text[i])
			i++
			continue
		}
		if code == codeInline {
			if text[i] == '`' {
				code = codeNone
			}
			b.WriteByte(text[i])
			i++
			continue
		}
		if strings.HasPrefix(text[i:], "```") {
			code = codeFenced
			b.WriteString("```")
			i += 3
			continue
		}
		if text[i] == '`' {
			code = codeInline
			b.WriteByte('`')
			i++
			continue
		}
		// 转义美元符号原样复制，不切换数学模式
		if strings.HasPrefix(text[i:], `\$`) {
			b.WriteString(`\$`)
			i += 2
			continue
		}
		if math == mathInline && text[i] == '$' {
			math = mathNone
			b.WriteByte('$')
			i++
			continue
		}
		if strings.HasPrefix(text[i:], "$$") {
			if math == mathDisplay {
				math = mathNone
			} else if math == mathNone {
				math = mathDisplay
			}
			b.WriteString("$$")
			i += 2
			continue
		}
		if text[i] == '$' {
			if math == mathNone {
				if currencyDollar(text, i) {
					b.WriteString(`\$`)
					i++
					continue
				}
				math = mathInline
			}
			// display 模式中的孤立 $ 原样复制
			b.WriteByte('$')
			i++
			continue
		}
		if math == mathNone && strings.HasPrefix(text[i:], boxedMarker) {
			if out, next, ok := resolveBoxed(text, i); ok {
				b.WriteString(out)
				i = next
				continue
			}
			// 花括号未闭合（流式中）— 字面复制标记后继续
			b.WriteString(boxedMarker)
			i += len(boxedMarker)
			continue
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// currencyDollar 判断数学模式外的 $ 是货币而不是数学起始。
//
// $ 后紧跟数字且同一行内没有能构成 $42$ 这类无空格数学片段的
// 闭合 $ 时，按货币处理。
func currencyDollar(text string, i int) bool {
	if i+1 >= len(text) || !isDigit(text[i+1]) {
		return false
	}
	for j := i + 1; j < len(text); j++ {
		if text[j] == '\n' {
			break
		}
		if text[j] == ' ' {
			return true
		}
		if text[j] == '$' && !escapedAt(text, j) {
			return false
		}
	}
	return true
}

// resolveBoxed 解析 \boxed{...}，按内容判定渲染形式。
//
// 花括号按深度计数向前扫描（跳过转义字符）找到匹配的 }。
// 内容不含反斜杠命令、含空格且没有算术/结构符号时按散文处理，
// 包裹为字面强调块；否则视为真正的数学，包裹为 $\boxed{...}$。
func resolveBoxed(text string, start int) (string, int, bool) {
	depth := 1
	i := start + len(boxedMarker)
	for i < len(text) {
		switch text[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				inner := text[start+len(boxedMarker) : i]
				if proseBoxed(inner) {
					return "**" + inner + "**", i + 1, true
				}
				return `$\boxed{` + inner + `}$`, i + 1, true
			}
		}
		i++
	}
	return "", 0, false
}

// proseBoxed 含空格、不含反斜杠命令或算术/结构符号的内容按散文处理。
// 符号集里包含 \ 和 {}，所以命令加花括号的模式也被一并排除。
func proseBoxed(inner string) bool {
	if !strings.Contains(inner, " ") {
		return false
	}
	return !strings.ContainsAny(inner, `+-*/=^_<>\|{}`)
}
