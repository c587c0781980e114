package codegen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sharebot0/sharebot/internal/lang"
	"github.com/sharebot0/sharebot/internal/log"
)

// fakeModel scripts completions in call order. A nil entry simulates a
// service failure.
type fakeModel struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (f *fakeModel) Complete(_ context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var text string
	if i < len(f.replies) {
		text = f.replies[i]
	}
	return text, err
}

func newService(t *testing.T, model Completer) *Service {
	t.Helper()
	s, err := New(Config{Model: model, Logger: log.NewNop()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Logger: log.NewNop()}); err == nil {
		t.Error("New() without a model should fail")
	}
	if _, err := New(Config{Model: &fakeModel{}}); err == nil {
		t.Error("New() without a logger should fail")
	}
}

func TestGenerateFirstPass(t *testing.T) {
	t.Parallel()

	model := &fakeModel{replies: []string{"تفضل:\n```py\nprint('hi')\n```"}}
	s := newService(t, model)

	a, ok := s.Generate(context.Background(), "اكتب كود python يطبع hi", lang.PY)
	if !ok {
		t.Fatal("Generate() reported no artifact")
	}
	if a.Language != lang.PY {
		t.Errorf("Language = %q, want py", a.Language)
	}
	if a.Code != "print('hi')" {
		t.Errorf("Code = %q, want print('hi')", a.Code)
	}
	if model.calls != 1 {
		t.Errorf("model calls = %d, want 1 (no retry on success)", model.calls)
	}
	if !strings.Contains(model.prompts[0], "```py") {
		t.Errorf("first-pass prompt %q should carry the language fence", model.prompts[0])
	}
}

func TestGenerateRetriesOnce(t *testing.T) {
	t.Parallel()

	model := &fakeModel{replies: []string{
		"آسف، ما قدرت.",
		"```py\nprint('second try')\n```",
	}}
	s := newService(t, model)

	a, ok := s.Generate(context.Background(), "اكتب كود يطبع", lang.PY)
	if !ok {
		t.Fatal("Generate() should succeed on the strict retry")
	}
	if a.Code != "print('second try')" {
		t.Errorf("Code = %q, want the retry output", a.Code)
	}
	if model.calls != 2 {
		t.Errorf("model calls = %d, want exactly 2", model.calls)
	}
	if !strings.HasPrefix(model.prompts[1], "STRICT OUTPUT:") {
		t.Errorf("retry prompt %q should use the strict format", model.prompts[1])
	}
}

func TestGenerateBothAttemptsFail(t *testing.T) {
	t.Parallel()

	model := &fakeModel{replies: []string{"لا كود هنا", "ولا هنا"}}
	s := newService(t, model)

	if a, ok := s.Generate(context.Background(), "كود", lang.PY); ok || a != nil {
		t.Errorf("Generate() = %+v, %v, want nil, false", a, ok)
	}
	if model.calls != 2 {
		t.Errorf("model calls = %d, want exactly 2", model.calls)
	}
}

func TestGenerateModelErrorFoldsToEmpty(t *testing.T) {
	t.Parallel()

	model := &fakeModel{
		replies: []string{"", "```py\nok = True\n```"},
		errs:    []error{errors.New("service unavailable"), nil},
	}
	s := newService(t, model)

	a, ok := s.Generate(context.Background(), "كود", lang.PY)
	if !ok {
		t.Fatal("a failed first call should still allow the retry to succeed")
	}
	if a.Code != "ok = True" {
		t.Errorf("Code = %q, want the retry output", a.Code)
	}
	if model.calls != 2 {
		t.Errorf("model calls = %d, want 2", model.calls)
	}
}

func TestGenerateGuessesLanguageWithoutHint(t *testing.T) {
	t.Parallel()

	model := &fakeModel{replies: []string{"```py\nprint(1)\n```"}}
	s := newService(t, model)

	a, ok := s.Generate(context.Background(), "اكتب كود python", "")
	if !ok {
		t.Fatal("Generate() reported no artifact")
	}
	if a.Language != lang.PY {
		t.Errorf("Language = %q, want py (guessed from the question)", a.Language)
	}
	if !strings.Contains(model.prompts[0], "```py") {
		t.Errorf("prompt %q should target the guessed language", model.prompts[0])
	}
}

func TestImproveSingleCall(t *testing.T) {
	t.Parallel()

	model := &fakeModel{replies: []string{"```js\nconsole.log('better')\n```"}}
	s := newService(t, model)

	a, ok := s.Improve(context.Background(), lang.JS, "console.log('old')", "وصف", "تعديلات")
	if !ok {
		t.Fatal("Improve() reported no artifact")
	}
	if a.Code != "console.log('better')" {
		t.Errorf("Code = %q, want the improved output", a.Code)
	}
	if model.calls != 1 {
		t.Errorf("model calls = %d, want exactly 1 (improve never retries)", model.calls)
	}
	if !strings.Contains(model.prompts[0], "console.log('old')") {
		t.Errorf("improve prompt %q should embed the original code", model.prompts[0])
	}
}

func TestImproveFailureNoRetry(t *testing.T) {
	t.Parallel()

	model := &fakeModel{replies: []string{"نص بدون كتلة"}}
	s := newService(t, model)

	if a, ok := s.Improve(context.Background(), lang.JS, "x", "d", "c"); ok || a != nil {
		t.Errorf("Improve() = %+v, %v, want nil, false", a, ok)
	}
	if model.calls != 1 {
		t.Errorf("model calls = %d, want exactly 1", model.calls)
	}
}
