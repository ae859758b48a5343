// Package preprocess patches the two raw exports the tokenizer cannot
// survive as-is. ProductModel.csv embeds multi-line XML documents in its
// instructions column and ProductDescription.csv carries unbalanced double
// quotes; both are scrubbed up front and written back next to the originals
// with a ".2.csv" suffix, which is the name the dataset loader reads.
package preprocess

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pveller/adventureworks-moltin/internal/flatfile"
)

// productModelPatches removes the embedded XML from ProductModel.csv: the
// catalog-description documents, the per-row ProductDescription fragments,
// and the XML processing instructions.
var productModelPatches = []*regexp.Regexp{
	regexp.MustCompile(`(?s)<root[^>]*>.*?</root>`),
	regexp.MustCompile(`(?s)<p1:ProductDescription[^>]*>.*?</p1:ProductDescription>`),
	regexp.MustCompile(`<\?.*?\?>`),
}

// productDescriptionPatches drops every double quote; the description
// bodies quote inches and model names in ways no CSV quoting rule accepts.
var productDescriptionPatches = []*regexp.Regexp{
	regexp.MustCompile(`"`),
}

// Patch reads a file under the given encoding, deletes every match of
// every pattern, and writes the result alongside the input with the .csv
// suffix replaced by .2.csv, re-encoded the same way.
func Patch(path string, enc flatfile.Encoding, patterns []*regexp.Regexp) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("preprocess %s: %w", path, err)
	}

	text, err := enc.NewDecoder().String(string(raw))
	if err != nil {
		return fmt.Errorf("preprocess %s: decode: %w", path, err)
	}

	for _, pattern := range patterns {
		text = pattern.ReplaceAllString(text, "")
	}

	out, err := enc.NewEncoder().String(text)
	if err != nil {
		return fmt.Errorf("preprocess %s: encode: %w", path, err)
	}

	patched := strings.TrimSuffix(path, ".csv") + ".2.csv"
	if err := os.WriteFile(patched, []byte(out), 0o644); err != nil {
		return fmt.Errorf("preprocess %s: %w", path, err)
	}
	return nil
}

// Run applies the fixed patch sets to the catalog directory, producing
// ProductModel.2.csv and ProductDescription.2.csv.
func Run(dir string) error {
	if err := Patch(filepath.Join(dir, "ProductModel.csv"), flatfile.EncodingUTF16LE, productModelPatches); err != nil {
		return err
	}
	return Patch(filepath.Join(dir, "ProductDescription.csv"), flatfile.EncodingUTF16LE, productDescriptionPatches)
}
