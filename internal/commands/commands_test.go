package commands

import (
	"errors"
	"flag"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line   string
		want   []string
		wantOK bool
	}{
		{"cmd spawn --preset crate", []string{"spawn", "--preset", "crate"}, true},
		{"cmd   pause  ", []string{"pause"}, true},
		{"cmd ", nil, true},
		{"spawn crate", nil, false},
		{"CMD pause", nil, false},
	}
	for _, c := range cases {
		got, ok := Parse(c.line)
		if ok != c.wantOK || !reflect.DeepEqual(got, c.want) {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", c.line, got, ok, c.want, c.wantOK)
		}
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("step", flag.ContinueOnError)
	n := fs.Int("n", 1, "steps")
	var gotN int
	var gotRest []string
	r.Register("step", "advance n steps", fs, func(rest []string) error {
		gotN, gotRest = *n, rest
		return nil
	})

	if err := r.Execute([]string{"step", "--n", "3", "extra"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if gotN != 3 || !reflect.DeepEqual(gotRest, []string{"extra"}) {
		t.Errorf("run saw n=%d rest=%v", gotN, gotRest)
	}
	if err := r.Execute([]string{"step"}); err != nil || gotN != 1 {
		t.Errorf("second run saw n=%d (err %v), want the default 1", gotN, err)
	}
	if err := r.Execute([]string{"step", "--n", "x"}); err == nil {
		t.Error("expected a flag parse error")
	}
	if err := r.Execute([]string{"nope"}); err == nil {
		t.Error("expected an unknown command error")
	}
	if err := r.Execute(nil); err == nil {
		t.Error("expected a missing subcommand error")
	}
}

func TestHandle(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	calls := 0
	r.Register("pause", "toggle pause", nil, func([]string) error {
		calls++
		return nil
	})
	r.Register("fail", "always fails", nil, func([]string) error { return boom })

	if handled, err := r.Handle("cmd pause"); !handled || err != nil {
		t.Errorf("Handle(cmd pause) = %v, %v", handled, err)
	}
	if calls != 1 {
		t.Errorf("pause ran %d times, want 1", calls)
	}
	if handled, _ := r.Handle("hello"); handled {
		t.Error("plain text should not be handled")
	}
	if _, err := r.Handle("cmd fail"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestHelp(t *testing.T) {
	r := NewRegistry()
	r.Register("step", "advance", nil, func([]string) error { return nil })
	r.Register("clear", "remove bodies", nil, func([]string) error { return nil })
	want := []string{"clear: remove bodies", "step: advance"}
	if got := r.Help(); !reflect.DeepEqual(got, want) {
		t.Errorf("Help() = %v, want %v", got, want)
	}
}

func TestOptionalFloat(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("gravity", flag.ContinueOnError)
	var x, y OptionalFloat
	fs.Var(&x, "x", "gravity x")
	fs.Var(&y, "y", "gravity y")
	var gotX, gotY float64
	r.Register("gravity", "gravity [--x] [--y]", fs, func([]string) error {
		gotX, gotY = x.Or(7), y.Or(8)
		return nil
	})

	if err := r.Execute([]string{"gravity", "--x", "1"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if gotX != 1 || gotY != 8 {
		t.Errorf("got %v, %v; want 1, 8", gotX, gotY)
	}
	// The earlier --x must not leak into this run.
	if err := r.Execute([]string{"gravity", "--y", "-2"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if gotX != 7 || gotY != -2 {
		t.Errorf("got %v, %v; want 7, -2", gotX, gotY)
	}
	if err := r.Execute([]string{"gravity", "--x", "up"}); err == nil {
		t.Error("expected a parse error")
	}
}
