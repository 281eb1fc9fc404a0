package corpus

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// destinations whose text is not part of the document body
var rtfSkip = map[string]bool{
	"fonttbl": true, "colortbl": true, "stylesheet": true, "info": true,
	"pict": true, "object": true, "header": true, "footer": true,
	"headerl": true, "headerr": true, "footerl": true, "footerr": true,
	"listtable": true, "listoverridetable": true, "rsidtbl": true,
	"generator": true, "xmlnstbl": true, "themedata": true, "colorschememapping": true,
	"datastore": true, "latentstyles": true, "fldinst": true, "filetbl": true,
}

var rtfWords = map[string]string{
	"par": "\n", "line": "\n", "sect": "\n", "page": "\n", "row": "\n",
	"tab": "\t", "cell": " ",
	"emdash": "—", "endash": "–", "bullet": "•",
	"lquote": "‘", "rquote": "’", "ldblquote": "“", "rdblquote": "”",
}

type rtfGroup struct {
	skip bool
	uc   int
}

// RTFText returns the body text of an RTF document. Control words that
// carry no text are dropped, \'hh escapes are read as windows-1252 and \u
// escapes as unicode code points.
func RTFText(src string) (string, error) {
	if !strings.HasPrefix(strings.TrimSpace(src), `{\rtf`) {
		return "", errors.New("missing {\\rtf header")
	}

	var out strings.Builder
	stack := []rtfGroup{{uc: 1}}
	// characters still to drop after a \u escape
	pending := 0

	emit := func(s string) {
		if stack[len(stack)-1].skip {
			return
		}
		if pending > 0 {
			pending--
			return
		}
		out.WriteString(s)
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		top := &stack[len(stack)-1]

		switch c {
		case '{':
			stack = append(stack, *top)
			pending = 0
		case '}':
			if len(stack) == 1 {
				return "", errors.New("unbalanced braces")
			}
			stack = stack[:len(stack)-1]
			pending = 0
		case '\r', '\n':
		case '\\':
			if i+1 >= len(src) {
				return "", errors.New("truncated control word")
			}
			i++
			c = src[i]

			switch {
			case c == '\\' || c == '{' || c == '}':
				emit(string(c))
			case c == '~':
				emit(" ")
			case c == '_':
				emit("-")
			case c == '-':
			case c == '*':
				top.skip = true
			case c == '\'':
				if i+2 >= len(src) {
					return "", errors.New("truncated hex escape")
				}
				b, err := strconv.ParseUint(src[i+1:i+3], 16, 8)
				if err != nil {
					return "", err
				}
				i += 2
				emit(string(charmap.Windows1252.DecodeByte(byte(b))))
			case isASCIILetter(c):
				start := i
				for i < len(src) && isASCIILetter(src[i]) {
					i++
				}
				word := src[start:i]

				numStart := i
				if i < len(src) && src[i] == '-' {
					i++
				}
				for i < len(src) && src[i] >= '0' && src[i] <= '9' {
					i++
				}
				param, hasParam := 0, i > numStart
				if hasParam {
					n, err := strconv.Atoi(src[numStart:i])
					if err != nil {
						return "", err
					}
					param = n
				}

				// a single space delimits the control word
				if i >= len(src) || src[i] != ' ' {
					i--
				}

				switch {
				case rtfSkip[word]:
					top.skip = true
				case word == "uc" && hasParam:
					top.uc = param
				case word == "u" && hasParam:
					if param < 0 {
						param += 65536
					}
					emit(string(rune(param)))
					pending = top.uc
				default:
					if s, ok := rtfWords[word]; ok {
						emit(s)
					}
				}
			}
		default:
			emit(string(c))
		}
	}

	if len(stack) != 1 {
		return "", errors.New("unbalanced braces")
	}
	return out.String(), nil
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
