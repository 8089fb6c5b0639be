package latex

import "sort"

// Span 原始字符串上的半开保护区间 [Start, End)
//
// 落在任意保护区间内的偏移量绝不能被规范化改写。
type Span struct {
	Start int
	End   int
}

// FindProtected 定位不可改写的区域：围栏代码块、行内代码、
// 以及已有 $$/$ 定界的数学。
//
// 四类区间合并为一个集合。扫描是无状态的，整体 O(n)，没有会指数分支的
// 贪婪模式。每个规范化子趟开始前都要在当前工作字符串上重新计算，
// 因为前面的改写会移动偏移量。
func FindProtected(text string) []Span {
	spans := scanFencedCode(text)
	spans = append(spans, scanInlineCode(text, spans)...)
	spans = append(spans, scanDisplayMath(text, spans)...)
	spans = append(spans, scanInlineMath(text, spans)...)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// scanFencedCode 匹配对称的 ``` 围栏，不重叠，先到先得
func scanFencedCode(text string) []Span {
	var spans []Span
	i := 0
	for {
		open := indexFrom(text, "```", i)
		if open < 0 {
			break
		}
		close := indexFrom(text, "```", open+3)
		if close < 0 {
			break
		}
		spans = append(spans, Span{open, close + 3})
		i = close + 3
	}
	return spans
}

// scanInlineCode 匹配对称的单反引号，内容不跨行
func scanInlineCode(text string, existing []Span) []Span {
	var spans []Span
	for i := 0; i < len(text); {
		if text[i] != '`' || covered(existing, i) {
			i++
			continue
		}
		// 连续的多个反引号属于围栏扫描的范畴
		run := backtickRun(text, i)
		if run > 1 {
			i += run
			continue
		}
		close := -1
		for j := i + 1; j < len(text); j++ {
			if text[j] == '\n' {
				break
			}
			if text[j] == '`' {
				close = j
				break
			}
		}
		if close < 0 {
			i++
			continue
		}
		spans = append(spans, Span{i, close + 1})
		i = close + 1
	}
	return spans
}

// scanDisplayMath 匹配对称的 $$ 定界（允许跨行）
func scanDisplayMath(text string, existing []Span) []Span {
	var spans []Span
	i := 0
	for {
		open := indexDollarPair(text, existing, i)
		if open < 0 {
			break
		}
		close := indexDollarPair(text, existing, open+2)
		if close < 0 {
			break
		}
		spans = append(spans, Span{open, close + 2})
		i = close + 2
	}
	return spans
}

// scanInlineMath 匹配不以第二个 $ 开头的单 $ 对，内容不跨行
func scanInlineMath(text string, existing []Span) []Span {
	var spans []Span
	for i := 0; i < len(text); {
		if text[i] != '$' || covered(existing, i) || escapedAt(text, i) {
			i++
			continue
		}
		if i+1 < len(text) && text[i+1] == '$' {
			i += 2
			continue
		}
		close := -1
		for j := i + 1; j < len(text); j++ {
			if text[j] == '\n' {
				break
			}
			if text[j] == '$' && !escapedAt(text, j) && !covered(existing, j) {
				close = j
				break
			}
		}
		if close < 0 {
			i++
			continue
		}
		spans = append(spans, Span{i, close + 1})
		i = close + 1
	}
	return spans
}

// covered 判断偏移量是否落在任意区间内
func covered(spans []Span, pos int) bool {
	for _, s := range spans {
		if pos >= s.Start && pos < s.End {
			return true
		}
	}
	return false
}

// intersects 判断半开区间 [start, end) 是否与任意保护区间相交
func intersects(spans []Span, start, end int) bool {
	for _, s := range spans {
		if start < s.End && end > s.Start {
			return true
		}
	}
	return false
}

func indexFrom(text, sub string, from int) int {
	if from >= len(text) {
		return -1
	}
	for i := from; i+len(sub) <= len(text); i++ {
		if text[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// indexDollarPair 从 from 开始查找不在既有区间内的 "$$"
func indexDollarPair(text string, existing []Span, from int) int {
	for i := from; i+1 < len(text); i++ {
		if text[i] == '$' && text[i+1] == '$' && !covered(existing, i) && !escapedAt(text, i) {
			return i
		}
	}
	return -1
}

// escapedAt 判断 text[i] 是否被反斜杠转义
func escapedAt(text string, i int) bool {
	backslashes := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		backslashes++
	}
	return backslashes%2 == 1
}

func backtickRun(text string, i int) int {
	n := 0
	for i+n < len(text) && text[i+n] == '`' {
		n++
	}
	return n
}
