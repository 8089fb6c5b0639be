package latex

// mathCommands 识别为数学内容的命令词汇表：希腊字母、运算符、
// 三角/对数函数、集合/逻辑符号、箭头、重音与文本样式命令。
// 数据驱动，便于扩充。
//
// \boxed 故意不在表内 — 它由 RewriteBoxed 按内容判定处理，
// 提前包裹会让散文内容失去字面渲染的机会。
var mathCommands = map[string]bool{
	// 希腊字母（小写）
	"alpha": true, "beta": true, "gamma": true, "delta": true,
	"epsilon": true, "varepsilon": true, "zeta": true, "eta": true,
	"theta": true, "vartheta": true, "iota": true, "kappa": true,
	"lambda": true, "mu": true, "nu": true, "xi": true, "pi": true,
	"varpi": true, "rho": true, "varrho": true, "sigma": true,
	"varsigma": true, "tau": true, "upsilon": true, "phi": true,
	"varphi": true, "chi": true, "psi": true, "omega": true,
	// 希腊字母（大写）
	"Gamma": true, "Delta": true, "Theta": true, "Lambda": true,
	"Xi": true, "Pi": true, "Sigma": true, "Upsilon": true,
	"Phi": true, "Psi": true, "Omega": true,
	// 运算符
	"frac": true, "sqrt": true, "sum": true, "prod": true, "int": true,
	"oint": true, "lim": true, "limsup": true, "liminf": true,
	"sup": true, "inf": true, "max": true, "min": true,
	"cdot": true, "times": true, "div": true, "pm": true, "mp": true,
	"ast": true, "star": true, "circ": true, "oplus": true,
	"ominus": true, "otimes": true, "binom": true,
	// 三角 / 对数函数
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true,
	"csc": true, "arcsin": true, "arccos": true, "arctan": true,
	"sinh": true, "cosh": true, "tanh": true, "coth": true,
	"exp": true, "log": true, "ln": true, "lg": true,
	// 关系符号
	"le": true, "leq": true, "ge": true, "geq": true, "ne": true,
	"neq": true, "approx": true, "sim": true, "simeq": true,
	"equiv": true, "propto": true, "ll": true, "gg": true,
	// 集合 / 逻辑
	"in": true, "notin": true, "subset": true, "supset": true,
	"subseteq": true, "supseteq": true, "cup": true, "cap": true,
	"setminus": true, "emptyset": true, "varnothing": true,
	"forall": true, "exists": true, "nexists": true, "neg": true,
	"lnot": true, "land": true, "wedge": true, "lor": true,
	"vee": true, "implies": true, "iff": true,
	"therefore": true, "because": true,
	// 箭头
	"to": true, "rightarrow": true, "leftarrow": true,
	"Rightarrow": true, "Leftarrow": true, "leftrightarrow": true,
	"Leftrightarrow": true, "mapsto": true, "longrightarrow": true,
	// 杂项
	"infty": true, "partial": true, "nabla": true, "hbar": true,
	"ell": true, "aleph": true, "angle": true, "perp": true,
	"parallel": true, "prime": true, "pmod": true, "bmod": true,
	"gcd": true, "det": true, "dim": true, "ker": true, "deg": true,
	"arg": true, "mod": true,
	// 文本样式
	"text": true, "mathbf": true, "mathrm": true, "mathbb": true,
	"mathcal": true, "mathfrak": true, "mathit": true, "mathsf": true,
	"operatorname": true, "textbf": true, "textit": true,
	// 重音
	"hat": true, "bar": true, "vec": true, "dot": true, "ddot": true,
	"tilde": true, "widehat": true, "widetilde": true,
	"overline": true, "underline": true,
}

// commandAt 解析 text[i]（必须指向反斜杠）处的命令字母序列。
// 返回不含反斜杠的命令词和命令结束偏移量；非字母命令返回空串。
func commandAt(text string, i int) (string, int) {
	j := i + 1
	for j < len(text) && isLetter(text[j]) {
		j++
	}
	if j == i+1 {
		return "", i + 1
	}
	return text[i+1 : j], j
}

// containsMathCommand 判断内容是否含词汇表中的命令
func containsMathCommand(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			continue
		}
		word, end := commandAt(s, i)
		if word != "" && mathCommands[word] {
			return true
		}
		i = end - 1
	}
	return false
}

// containsMultiLetterCommand 判断内容是否含至少两个字母的词汇表命令
func containsMultiLetterCommand(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			continue
		}
		word, end := commandAt(s, i)
		if len(word) >= 2 && mathCommands[word] {
			return true
		}
		i = end - 1
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
