package pdfmeta_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"printflow/pkg/pdfmeta"

	"github.com/stretchr/testify/assert"
)

// makePDF builds a minimal but well-formed PDF with the given number of
// empty pages, computing the xref offsets as it goes.
func makePDF(t *testing.T, pages int) []byte {
	t.Helper()
	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	objs := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), pages),
	}
	for i := 0; i < pages; i++ {
		objs = append(objs, fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n", 3+i))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		buf.WriteString(o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, pdfmeta.PageCount(makePDF(t, 1)))
	assert.Equal(t, 3, pdfmeta.PageCount(makePDF(t, 3)))
}

func TestPageCountUnparseable(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("this is not a pdf at all")},
		{"header only", []byte("%PDF-1.4\n")},
		{"truncated", makePDF(t, 2)[:40]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Parse failures degrade to zero pages; they never error.
			assert.Equal(t, 0, pdfmeta.PageCount(tc.data))
		})
	}
}
