package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var languageSeeds = []string{
	"",
	"pass\n",
	"extends Node\nclass_name Player\n",
	"tool\nsignal hit(damage, source)\nconst MAX = 10\n",
	"enum State {IDLE, RUN = 2, JUMP}\nexport(int) var speed = 5\nonready var _sprite = $Sprite\n",
	"func _ready():\n\tvar x = 1 + 2 * 3\n\tif x > 2:\n\t\tprint(x)\n\telif x == 0:\n\t\tpass\n\telse:\n\t\treturn\n",
	"func f(a, b = 2):\n\tfor i in range(10):\n\t\twhile a < b:\n\t\t\ta += 1\n\t\t\tcontinue\n\t\tbreak\n",
	"class Inner:\n\tvar y\n\tfunc g():\n\t\treturn self.y.z(1, [2, 3], {\"k\": 4})\n",
	"var s = \"unterminated\n",
	"func f(:\n",
	"func f():\n\tpass\n  pass\n",
	"var a = (1 +\n\t2)\n# trailing comment\n",
	"func f():\n\tvar l = func(x): return x\n",
	"var x = not a and b or -c\nvar n = null if a else 0x1F\n",
	"\r\nvar crlf = 1\r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
