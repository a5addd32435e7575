package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytes_DocxParagraphs(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Motion to Dismiss</w:t></w:r></w:p><w:p><w:r><w:t>Filed by respondent mother.</w:t></w:r></w:p></w:body></w:document>`)

	text, err := TextFromBytes(context.Background(), data, mimeDOCX, "motion.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	want := "Motion to Dismiss\nFiled by respondent mother."
	if text != want {
		t.Fatalf("got %q, want %q", text, want)
	}
}

func TestTextFromBytes_ExtensionFallback(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>case plan</w:t></w:r></w:p></w:body></w:document>`)

	// Browsers sometimes report docx uploads as application/zip.
	text, err := TextFromBytes(context.Background(), data, "application/zip", "plan.docx")
	if err != nil {
		t.Fatalf("expected extension fallback to kick in: %v", err)
	}
	if text != "case plan" {
		t.Fatalf("got %q", text)
	}
}

func TestTextFromBytes_PlainTextPassthrough(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("visitation notes"), "text/plain; charset=utf-8", "notes.txt")
	if err != nil {
		t.Fatalf("extract txt: %v", err)
	}
	if text != "visitation notes" {
		t.Fatalf("got %q", text)
	}
}

func TestTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
