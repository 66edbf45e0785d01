package forms

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"
)

const (
	MaxCertificateBytes = 10 << 20
	MaxPhotoBytes       = 5 << 20
)

var pdfMagic = []byte("%PDF-")

// CheckCertificate accepts only PDF files: extension, magic bytes and size.
// head holds the first bytes of the upload.
func CheckCertificate(filename string, head []byte, size int64) error {
	if size <= 0 {
		return &ValidationError{Field: "certificate", Message: msgEmptyFile}
	}
	if size > MaxCertificateBytes {
		return &ValidationError{Field: "certificate", Message: msgFileTooLarge}
	}
	if !IsPDFName(filename) || !bytes.HasPrefix(head, pdfMagic) {
		return &ValidationError{Field: "certificate", Message: msgOnlyPDF}
	}
	return nil
}

// CheckPhoto accepts JPEG and PNG images and returns the sniffed content type.
func CheckPhoto(head []byte, size int64) (string, error) {
	if size <= 0 {
		return "", &ValidationError{Field: "photo", Message: msgEmptyFile}
	}
	if size > MaxPhotoBytes {
		return "", &ValidationError{Field: "photo", Message: msgFileTooLarge}
	}
	ct := http.DetectContentType(head)
	switch ct {
	case "image/jpeg", "image/png":
		return ct, nil
	}
	return "", &ValidationError{Field: "photo", Message: msgOnlyImages}
}

// IsPDFName reports whether the base name ends in .pdf, ignoring case.
func IsPDFName(name string) bool {
	return strings.HasSuffix(strings.ToLower(filepath.Base(name)), ".pdf")
}
