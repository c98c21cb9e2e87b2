package console

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func waitDone(t *testing.T, c *Console) {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("console did not finish reading")
	}
}

func TestConsole_Drain(t *testing.T) {
	c := Start(strings.NewReader("cmd pause\n\n  cmd step --n 2  \n"))
	waitDone(t, c)

	got := c.Drain()
	want := []string{"cmd pause", "cmd step --n 2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Drain() = %v, want %v", got, want)
	}
	if more := c.Drain(); len(more) != 0 {
		t.Errorf("second Drain() = %v, want nothing", more)
	}
	if err := c.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("closed") }

func TestConsole_ReadError(t *testing.T) {
	c := Start(failingReader{})
	waitDone(t, c)
	if c.Err() == nil {
		t.Error("expected the read error to be reported")
	}
}
