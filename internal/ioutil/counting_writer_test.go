package ioutil_test

import (
	"bytes"
	"errors"
	"testing"

	"braces.dev/errtrace"

	"github.com/ghettovoice/mediatype/internal/ioutil"
)

var errWriteFailed = errors.New("write failed")

type errorWriter struct {
	failAfter int
	written   int
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	if ew.written >= ew.failAfter {
		return 0, errtrace.Wrap(errWriteFailed)
	}
	n = len(p)
	if ew.written+n > ew.failAfter {
		n = ew.failAfter - ew.written
	}
	ew.written += n
	if n < len(p) {
		return n, errtrace.Wrap(errWriteFailed)
	}
	return n, nil
}

func TestCountingWriter_Write(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	n, err := cw.Write([]byte("text/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}

	n, err = cw.WriteString("plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}
	if num, _ := cw.Result(); num != 10 {
		t.Errorf("expected count 10, got %d", num)
	}
	if got := buf.String(); got != "text/plain" {
		t.Errorf("buf = %q, want %q", got, "text/plain")
	}
}

func TestCountingWriter_WriteStrings(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)

	num, err := cw.WriteStrings("text", "/", "html", ";", "charset=utf-8").Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := len("text/html;charset=utf-8"); num != want {
		t.Errorf("num = %d, want %d", num, want)
	}
	if got, want := buf.String(), "text/html;charset=utf-8"; got != want {
		t.Errorf("buf = %q, want %q", got, want)
	}
}

func TestCountingWriter_StopsAfterError(t *testing.T) {
	t.Parallel()

	ew := &errorWriter{failAfter: 7}
	cw := ioutil.NewCountingWriter(ew)

	num, err := cw.WriteStrings("text/", "plain", ";a=b").Result()
	if !errors.Is(err, errWriteFailed) {
		t.Fatalf("err = %v, want %v", err, errWriteFailed)
	}
	if num != 7 {
		t.Errorf("num = %d, want 7", num)
	}

	if n, err := cw.WriteString("more"); n != 0 || err == nil {
		t.Errorf("cw.WriteString() after error = (%d, %v), want (0, error)", n, err)
	}
	if ew.written != 7 {
		t.Errorf("underlying writer got %d bytes, want 7", ew.written)
	}
}
