package latex

import (
	"sort"
	"strings"
)

// candidateSizeCeiling 裸括号/圆括号候选的长度上限（字节）。
// 真正的公式远小于这个值；超过的更可能是数组或 JSON 形状的内容。
const candidateSizeCeiling = 320

// rewrite 计划写入工作字符串的一次替换，始终落在所有保护区间之外。
// 替换按 start 降序（从右到左）应用，保证前面的偏移量保持有效。
type rewrite struct {
	start int
	end   int
	text  string
}

// Normalize 将四种数学记号变体重写为规范的 $/$$ 定界形式
//
// 四个有序子趟，每趟幂等，且各自基于当前工作字符串重新计算保护区间：
//  1. 转义定界 \[..\] → $$..$$、\(..\) → $..$
//  2. 裸方括号数学 [..] → $$..$$
//  3. 裸圆括号数学 (..) → $..$
//  4. 完全无定界的命令串包裹为 $..$
//
// 整体前置守卫：修剪后以 [ 或 { 开头且含带引号键模式的文本视为
// 结构化数据（如误入正文的序列化载荷），整个规范化直接跳过。
// 这是对大段结构化文本上灾难性匹配开销的主要防线。
func Normalize(text string) string {
	if looksStructured(text) {
		return text
	}
	text = rewriteEscapedDelimiters(text)
	text = rewriteBareBrackets(text)
	text = rewriteBareParens(text)
	text = wrapBareCommands(text)
	return text
}

// looksStructured 判断文本是否像序列化数据而不是散文
func looksStructured(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	if t[0] != '[' && t[0] != '{' {
		return false
	}
	return strings.Contains(t, `":`) || strings.Contains(t, `':`)
}

// --- 子趟 1：转义定界符 ---

func rewriteEscapedDelimiters(text string) string {
	text = rewriteEscapedPair(text, `\[`, `\]`, "$$")
	return rewriteEscapedPair(text, `\(`, `\)`, "$")
}

// rewriteEscapedPair 非贪婪、从左到右、先到先得地匹配 open..close，
// 内容原样保留，只替换定界符本身
func rewriteEscapedPair(text, open, close, delim string) string {
	spans := FindProtected(text)
	var rws []rewrite
	i := 0
	for {
		openIdx := strings.Index(text[i:], open)
		if openIdx < 0 {
			break
		}
		openIdx += i
		closeIdx := strings.Index(text[openIdx+len(open):], close)
		if closeIdx < 0 {
			break
		}
		closeIdx += openIdx + len(open)
		end := closeIdx + len(close)
		if !intersects(spans, openIdx, end) {
			inner := text[openIdx+len(open) : closeIdx]
			rws = append(rws, rewrite{openIdx, end, delim + inner + delim})
		}
		i = end
	}
	return applyRewrites(text, rws)
}

// --- 子趟 2：裸方括号数学 ---

func rewriteBareBrackets(text string) string {
	spans := FindProtected(text)
	var rws []rewrite
	for i := 0; i < len(text); {
		if text[i] != '[' || covered(spans, i) || escapedAt(text, i) {
			i++
			continue
		}
		// 跳过 [[..]] 之类的双括号构造
		if (i > 0 && text[i-1] == '[') || (i+1 < len(text) && text[i+1] == '[') {
			i++
			continue
		}
		close := matchBracket(text, i, '[', ']')
		if close < 0 {
			i++
			continue
		}
		// markdown 链接 [text](url)
		if close+1 < len(text) && text[close+1] == '(' {
			i = close + 1
			continue
		}
		inner := text[i+1 : close]
		if len(inner) > 0 && len(inner) <= candidateSizeCeiling &&
			!intersects(spans, i, close+1) && bracketMathCandidate(inner) {
			rws = append(rws, rewrite{i, close + 1, "$$" + inner + "$$"})
			i = close + 1
			continue
		}
		i++
	}
	return applyRewrites(text, rws)
}

// bracketMathCandidate 内含词汇表命令，或上下标记号与命令组合
func bracketMathCandidate(inner string) bool {
	if containsMathCommand(inner) {
		return true
	}
	return strings.ContainsAny(inner, "_^") && strings.Contains(inner, `\`)
}

// --- 子趟 3：裸圆括号数学 ---

func rewriteBareParens(text string) string {
	spans := FindProtected(text)
	var rws []rewrite
	for i := 0; i < len(text); {
		if text[i] != '(' || covered(spans, i) || escapedAt(text, i) {
			i++
			continue
		}
		close := matchBracket(text, i, '(', ')')
		if close < 0 {
			i++
			continue
		}
		inner := text[i+1 : close]
		if len(inner) > 0 && len(inner) <= candidateSizeCeiling &&
			!intersects(spans, i, close+1) &&
			parenMathCandidate(inner) && !looksLikePath(inner) {
			rws = append(rws, rewrite{i, close + 1, "$" + inner + "$"})
			i = close + 1
			continue
		}
		i++
	}
	return applyRewrites(text, rws)
}

// parenMathCandidate 多字母命令，或上下标与反斜杠组合，或科学计数法
func parenMathCandidate(inner string) bool {
	if containsMultiLetterCommand(inner) {
		return true
	}
	if strings.ContainsAny(inner, "_^") && strings.Contains(inner, `\`) {
		return true
	}
	return strings.Contains(inner, `\times 10^`)
}

// looksLikePath 无空格且含斜杠的内容更像文件路径或 URL
func looksLikePath(inner string) bool {
	if !strings.Contains(inner, "/") {
		return false
	}
	return !strings.Contains(inner, " ") || strings.Contains(inner, "://")
}

// --- 子趟 4：无定界命令串 ---

func wrapBareCommands(text string) string {
	spans := FindProtected(text)
	var rws []rewrite
	for i := 0; i < len(text); {
		if text[i] != '\\' || covered(spans, i) {
			i++
			continue
		}
		word, wend := commandAt(text, i)
		if word == "" || !mathCommands[word] {
			i = wend
			continue
		}
		end := scanCommandRun(text, i)
		if end > i && !intersects(spans, i, end) && !overlapsScheduled(rws, i, end) {
			rws = append(rws, rewrite{i, end, "$" + text[i:end] + "$"})
			i = end
			continue
		}
		i = wend
	}
	return applyRewrites(text, rws)
}

// scanCommandRun 从 start（指向已识别命令的反斜杠）向前扩展出最小的
// 数学运行区间：连续的命令、花括号参数、上下标、短操作数与运算符。
// 空格只在后面紧跟另一个命令、数字或运算符时才纳入运行。
func scanCommandRun(text string, start int) int {
	i := start
	end := start
	for i < len(text) {
		c := text[i]
		switch {
		case c == '\\':
			word, wend := commandAt(text, i)
			if word == "" || !mathCommands[word] {
				return trimRunEnd(text, start, end)
			}
			i = wend
			end = i
		case c == '{':
			close := matchBracket(text, i, '{', '}')
			if close < 0 {
				return trimRunEnd(text, start, end)
			}
			i = close + 1
			end = i
		case c == '^' || c == '_':
			i++
			if i < len(text) && text[i] == '{' {
				close := matchBracket(text, i, '{', '}')
				if close < 0 {
					return trimRunEnd(text, start, end)
				}
				i = close + 1
			} else if i < len(text) && text[i] == '\\' {
				word, wend := commandAt(text, i)
				if word == "" || !mathCommands[word] {
					return trimRunEnd(text, start, end)
				}
				i = wend
			} else if i < len(text) {
				i++
			}
			end = i
		case isLetter(c) || isDigit(c):
			j := i
			for j < len(text) && (isLetter(text[j]) || isDigit(text[j])) {
				j++
			}
			// 长字母串是普通单词，不属于数学运行
			token := text[i:j]
			if len(token) > 2 && !allDigits(token) {
				return trimRunEnd(text, start, end)
			}
			i = j
			end = i
		case strings.IndexByte("+-=*/<>()|,", c) >= 0:
			i++
			end = i
		case c == ' ':
			j := i
			for j < len(text) && text[j] == ' ' {
				j++
			}
			if j >= len(text) {
				return trimRunEnd(text, start, end)
			}
			n := text[j]
			if n == '\\' {
				word, _ := commandAt(text, j)
				if word != "" && mathCommands[word] {
					i = j
					continue
				}
				return trimRunEnd(text, start, end)
			}
			if isDigit(n) || strings.IndexByte("+-=*/<>", n) >= 0 {
				i = j
				continue
			}
			return trimRunEnd(text, start, end)
		default:
			return trimRunEnd(text, start, end)
		}
	}
	return trimRunEnd(text, start, end)
}

// trimRunEnd 去掉运行末尾悬挂的空格、运算符和逗号
func trimRunEnd(text string, start, end int) int {
	for end > start {
		c := text[end-1]
		if c == ' ' || strings.IndexByte("+-=*/<>,", c) >= 0 {
			end--
		} else {
			break
		}
	}
	return end
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

// --- 公共工具 ---

// matchBracket 从 open 开始按深度计数查找匹配的闭括号，跳过转义字符。
// 手动索引推进，线性开销，没有会退化的模式匹配。
func matchBracket(text string, open int, oc, cc byte) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case oc:
			depth++
		case cc:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// overlapsScheduled 判断区间是否与本趟已排定的替换重叠
func overlapsScheduled(rws []rewrite, start, end int) bool {
	for _, rw := range rws {
		if start < rw.end && end > rw.start {
			return true
		}
	}
	return false
}

// applyRewrites 按 start 降序应用替换，使前面的偏移量保持有效
func applyRewrites(text string, rws []rewrite) string {
	if len(rws) == 0 {
		return text
	}
	sort.Slice(rws, func(i, j int) bool { return rws[i].start > rws[j].start })
	for _, rw := range rws {
		text = text[:rw.start] + rw.text + text[rw.end:]
	}
	return text
}
