package documents

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// pageCount returns the number of pages in a PDF payload, or 0 when the
// bytes are not parseable PDF. Intake never fails on a bad page count.
func pageCount(data []byte) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
