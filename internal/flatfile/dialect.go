// Package flatfile reads the delimited exports that make up the Adventure
// Works sample database. The exports do not share a single CSV dialect: some
// are single-byte tab-delimited files, others are UTF-16LE pipe-delimited
// files whose embedded delimiters force an extra trailing byte onto every
// field. A Dialect captures everything needed to tokenize one file.
package flatfile

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies the character encoding of a source file.
type Encoding int

const (
	// EncodingSingleByte covers the plain ASCII exports. The files carry a
	// handful of high-bit characters in free-text columns, so they are
	// decoded as Windows-1252 rather than rejected.
	EncodingSingleByte Encoding = iota

	// EncodingUTF16LE covers the wide-character exports. A BOM, when
	// present, is consumed and never surfaces in field values.
	EncodingUTF16LE
)

// NewDecoder returns the x/text decoder for the encoding.
func (e Encoding) NewDecoder() *encoding.Decoder {
	switch e {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	default:
		return charmap.Windows1252.NewDecoder()
	}
}

// NewEncoder returns the matching x/text encoder. The preprocess step uses
// it to write patched files back in their original encoding.
func (e Encoding) NewEncoder() *encoding.Encoder {
	switch e {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	default:
		return charmap.Windows1252.NewEncoder()
	}
}

// Dialect describes how to tokenize one source file.
type Dialect struct {
	// Encoding is the character encoding of the file on disk.
	Encoding Encoding

	// FieldDelimiter separates fields within a row.
	FieldDelimiter rune

	// RowDelimiter separates rows. The reader accepts both CRLF and bare
	// LF terminators regardless, so this is informational for dialects
	// that deviate from the CRLF norm.
	RowDelimiter string

	// Columns names the fields of every row, in file order. A row that
	// does not produce exactly this many fields is a parse error.
	Columns []string

	// StripTrailingByte removes the final character of every non-empty
	// field before trimming. The wide-character exports encode embedded
	// delimiters as multi-byte sequences whose trailing byte is noise
	// under UTF-16 decoding. Dialects with this flag also carry one extra
	// unnamed column at the end of every row; it is read and discarded.
	StripTrailingByte bool
}

// fieldCount is the number of physical fields the reader expects per row.
func (d Dialect) fieldCount() int {
	if d.StripTrailingByte {
		return len(d.Columns) + 1
	}
	return len(d.Columns)
}

// SingleByteTabbed is the dialect shared by most of the exports:
// single-byte encoding, tab-delimited, CRLF rows, no stripping.
func SingleByteTabbed(columns ...string) Dialect {
	return Dialect{
		Encoding:       EncodingSingleByte,
		FieldDelimiter: '\t',
		RowDelimiter:   "\r\n",
		Columns:        columns,
	}
}

// UTF16Piped is the wide-character dialect: UTF-16LE, pipe-delimited,
// CRLF rows, trailing-byte stripping with the extra ignore column.
func UTF16Piped(columns ...string) Dialect {
	return Dialect{
		Encoding:          EncodingUTF16LE,
		FieldDelimiter:    '|',
		RowDelimiter:      "\r\n",
		Columns:           columns,
		StripTrailingByte: true,
	}
}
