// Package pdfmeta answers one question: how many pages does this PDF have.
package pdfmeta

import (
	"bytes"
	"log"

	"github.com/ledongthuc/pdf"
)

// PageCount parses the document and returns its page count. Anything that
// fails to parse counts as zero pages; intake still succeeds for such files,
// so this never returns an error.
func PageCount(data []byte) (n int) {
	// The reader panics on some malformed files instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PDF] parse panic: %v", r)
			n = 0
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Printf("[PDF] parse failed: %v", err)
		return 0
	}
	return r.NumPage()
}
