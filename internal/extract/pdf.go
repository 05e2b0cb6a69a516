package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"ats/internal/domain"
)

// PDF concatenates the plain text of every page in order and lowercases it.
// A page whose text cannot be read contributes an empty string.
func PDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", extractionError("pdf", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", extractionError("pdf", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		b.WriteString(pageText(reader.Page(i)))
	}
	return domain.Normalize(b.String()), nil
}

func pageText(page pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
