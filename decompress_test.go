package exprset

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
	"strings"
	"testing"
)

func TestMaybeDecompressGzip(t *testing.T) {
	plain := "gene\ts1\ts2\ng1\t12\t15\n"

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(plain)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := MaybeDecompress(&buf)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != plain {
		t.Fatalf("Got %q, want %q", got, plain)
	}
}

func TestMaybeDecompressPassthrough(t *testing.T) {
	plain := "gene,s1,s2\ng1,12,15\n"

	r, err := MaybeDecompress(strings.NewReader(plain))
	if err != nil {
		t.Fatal(err)
	}
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != plain {
		t.Fatalf("Got %q, want %q", got, plain)
	}
}

func TestDetermineDelimiter(t *testing.T) {
	for _, v := range []struct {
		contents string
		want     rune
	}{
		{"gene,s1,s2\ng1,12,15\ng2,11,2\n", ','},
		{"gene\ts1\ts2\ng1\t12\t15\ng2\t11\t2\n", '\t'},
	} {
		if got := DetermineDelimiter(strings.NewReader(v.contents)); got != v.want {
			t.Fatalf("DetermineDelimiter(%q): got %q, want %q", v.contents, got, v.want)
		}
	}
}
