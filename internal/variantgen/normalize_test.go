package variantgen

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizePlainJSON(t *testing.T) {
	out := Normalize(`{"generated":[{"question":"What is 2+2?","answer":"4","difficulty":"easy"}]}`)
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q (err: %v)", out.Status, out.ParseErr)
	}
	if len(out.Result.Generated) != 1 {
		t.Fatalf("items = %d, want 1", len(out.Result.Generated))
	}
	item := out.Result.Generated[0]
	if item.Question != "What is 2+2?" || item.Answer != "4" {
		t.Fatalf("item = %+v", item)
	}
	if item.Difficulty != DifficultyEasy {
		t.Fatalf("difficulty = %q", item.Difficulty)
	}
}

func TestNormalizeStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"generated\":[]}\n```"
	out := Normalize(raw)
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q (err: %v)", out.Status, out.ParseErr)
	}
}

func TestNormalizeSurroundingProse(t *testing.T) {
	raw := "Here are your problems:\n{\"generated\":[]}\nHope this helps!"
	out := Normalize(raw)
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q (err: %v)", out.Status, out.ParseErr)
	}
}

func TestNormalizeNoJSONObject(t *testing.T) {
	out := Normalize("I cannot generate problems right now.")
	if out.Status != OutcomeMalformed {
		t.Fatalf("status = %q, want malformed", out.Status)
	}
	if out.ParseErr == nil {
		t.Fatal("malformed outcome carries no parse error")
	}
	if out.RawExcerpt == "" {
		t.Fatal("malformed outcome carries no excerpt")
	}
}

func TestNormalizeRepairsUnescapedFormulas(t *testing.T) {
	// Single-backslash MathJax inside JSON strings is invalid escaping; the
	// repair isolates the spans and the round trip must preserve them.
	raw := `{"generated":[{"question":"Solve \(x^2 + 3x = 0\) for x.","answer":"\(x = 0\) or \(x = -3\)","difficulty":"medium"}]}`

	out := Normalize(raw)
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q (err: %v)", out.Status, out.ParseErr)
	}
	item := out.Result.Generated[0]
	if !strings.Contains(item.Question, `\(x^2 + 3x = 0\)`) {
		t.Fatalf("question lost its formula span: %q", item.Question)
	}
	if !strings.Contains(item.Answer, `\(x = -3\)`) {
		t.Fatalf("answer lost its formula span: %q", item.Answer)
	}
}

func TestNormalizeRepairsDisplayFormulas(t *testing.T) {
	raw := `{"generated":[{"question":"Evaluate \[\frac{1}{2} + \frac{1}{3}\]","answer":"5/6","difficulty":"easy"}]}`

	out := Normalize(raw)
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q (err: %v)", out.Status, out.ParseErr)
	}
	if !strings.Contains(out.Result.Generated[0].Question, `\[\frac{1}{2} + \frac{1}{3}\]`) {
		t.Fatalf("display span not preserved: %q", out.Result.Generated[0].Question)
	}
}

func TestNormalizeProperlyEscapedPassesThrough(t *testing.T) {
	// Double-escaped input parses on the first try; no repair involved.
	raw := `{"generated":[{"question":"Solve \\(x^2 = 4\\)","answer":"\\(x = \\pm 2\\)","difficulty":"easy"}]}`

	out := Normalize(raw)
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q (err: %v)", out.Status, out.ParseErr)
	}
	if out.Result.Generated[0].Question != `Solve \(x^2 = 4\)` {
		t.Fatalf("question = %q", out.Result.Generated[0].Question)
	}
}

func TestNormalizeUnrepairableReportsOriginalError(t *testing.T) {
	// Broken JSON with no formula spans at all: repair has nothing to
	// isolate, so the original parse error surfaces.
	out := Normalize(`{"generated": [{"question": "q", }]}`)
	if out.Status != OutcomeMalformed {
		t.Fatalf("status = %q, want malformed", out.Status)
	}
	if out.ParseErr == nil {
		t.Fatal("expected parse error")
	}
}

func TestNormalizeMissingGeneratedField(t *testing.T) {
	out := Normalize(`{"problems":[]}`)
	if out.Status != OutcomeMalformed {
		t.Fatalf("status = %q, want malformed", out.Status)
	}
	if !strings.Contains(out.ParseErr.Error(), "generated") {
		t.Fatalf("parse error %q does not name the missing field", out.ParseErr)
	}
}

func TestNormalizeGeneratedNotArray(t *testing.T) {
	out := Normalize(`{"generated":{"question":"q"}}`)
	if out.Status != OutcomeMalformed {
		t.Fatalf("status = %q, want malformed", out.Status)
	}
}

func TestNormalizeTopLevelArrayRejected(t *testing.T) {
	out := Normalize(`[{"question":"q"}]`)
	if out.Status != OutcomeMalformed {
		t.Fatalf("status = %q, want malformed", out.Status)
	}
}

func TestExcerptCapsLength(t *testing.T) {
	long := strings.Repeat("x", maxDiagnosticLen*3)
	got := excerpt(long)
	if len(got) > maxDiagnosticLen {
		t.Fatalf("excerpt length = %d, cap is %d", len(got), maxDiagnosticLen)
	}

	short := "short response"
	if excerpt(short) != short {
		t.Fatal("short input must pass through unchanged")
	}
}

func TestExcerptValidUTF8AtCut(t *testing.T) {
	// Fill up to just below the cap, then place a multi-byte rune across
	// the cut point.
	s := strings.Repeat("a", maxDiagnosticLen-1) + "數學"
	got := excerpt(s)
	if !utf8.ValidString(got) {
		t.Fatalf("excerpt is not valid UTF-8: %q", got)
	}
}
