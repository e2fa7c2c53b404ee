// Package ingest turns uploaded .eml files into interaction-log fields:
// it reads the message, then extracts the insured name, event type, CNPJ and
// policy number from the subject line. Extraction functions are pure and
// independent of the normalization core.
package ingest

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// Email is the parsed content of one .eml file.
type Email struct {
	Subject string
	// Date is the message date; HasDate is false when the header is
	// missing or malformed.
	Date    time.Time
	HasDate bool
	Body    string
}

// wordDecoder handles RFC 2047 encoded words in headers, including the
// Latin-1 charsets common in Brazilian mail.
var wordDecoder = mime.WordDecoder{CharsetReader: charsetReader}

// ReadEML parses a raw RFC 5322 message. A text/plain part is preferred for
// the body; the first text/html part is the fallback. Transfer encodings
// (quoted-printable, base64) and ISO-8859-1 / Windows-1252 charsets are
// decoded.
func ReadEML(r io.Reader) (Email, error) {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return Email{}, fmt.Errorf("reading message: %w", err)
	}

	var email Email
	if subject, err := wordDecoder.DecodeHeader(msg.Header.Get("Subject")); err == nil {
		email.Subject = strings.TrimSpace(subject)
	} else {
		email.Subject = strings.TrimSpace(msg.Header.Get("Subject"))
	}

	if date, err := msg.Header.Date(); err == nil {
		email.Date = date
		email.HasDate = true
	}

	body, err := readBody(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	if err != nil {
		return Email{}, err
	}
	email.Body = strings.TrimSpace(body)
	return email, nil
}

func readBody(contentType, transferEncoding string, r io.Reader) (string, error) {
	if contentType == "" {
		return readText(r, transferEncoding, "")
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return readText(r, transferEncoding, "")
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return readMultipart(r, params["boundary"])
	}
	return readText(r, transferEncoding, params["charset"])
}

// readMultipart walks the parts and keeps the first text/plain body, falling
// back to the first text/html one.
func readMultipart(r io.Reader, boundary string) (string, error) {
	if boundary == "" {
		return "", fmt.Errorf("multipart message without boundary")
	}

	var plain, html string
	mr := multipart.NewReader(r, boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading part: %w", err)
		}

		mediaType, params, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}
		switch {
		case mediaType == "text/plain" && plain == "":
			plain, _ = readText(part, part.Header.Get("Content-Transfer-Encoding"), params["charset"])
		case mediaType == "text/html" && html == "":
			html, _ = readText(part, part.Header.Get("Content-Transfer-Encoding"), params["charset"])
		case strings.HasPrefix(mediaType, "multipart/"):
			if nested, err := readMultipart(part, params["boundary"]); err == nil && plain == "" {
				plain = nested
			}
		}
	}

	if plain != "" {
		return plain, nil
	}
	return html, nil
}

func readText(r io.Reader, transferEncoding, charset string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(transferEncoding)) {
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	}

	if decoded, err := charsetReader(charset, r); err == nil {
		r = decoded
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(data), nil
}

// charsetReader decodes the legacy Latin charsets into UTF-8; anything else
// passes through untouched.
func charsetReader(charset string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	default:
		return r, nil
	}
}
