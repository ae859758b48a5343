// Package recommend serializes the assembled catalog into the two flat
// files the recommendation service ingests: a catalog file with one line
// per variant and a usage file with one purchase line per order detail.
// The service wants bare comma-separated values with CRLF terminators and
// no quoting, so commas inside fields are scrubbed rather than escaped.
package recommend

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pveller/adventureworks-moltin/internal/catalog"
)

const (
	// CatalogFile lists every published variant with its category and
	// description.
	CatalogFile = "recommendations-catalog.csv"

	// UsageFile lists historical purchases, one per order line item.
	UsageFile = "recommendations-usage.csv"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// scrub makes a field safe for the unquoted format: commas become spaces
// and whitespace runs collapse to a single space.
func scrub(field string) string {
	return whitespaceRuns.ReplaceAllString(strings.ReplaceAll(field, ",", " "), " ")
}

// timestamp converts the export's "YYYY-MM-DD HH:MM:SS" order dates to the
// ISO-ish form the service expects.
func timestamp(date string) string {
	return strings.Replace(date, " ", "T", 1)
}

// WriteCatalog writes the catalog file into dir. Products carry one line
// per variant; products without variants produce no lines.
func WriteCatalog(dir string, c *catalog.Catalog) error {
	return writeFile(filepath.Join(dir, CatalogFile), func(w *bufio.Writer) error {
		for _, product := range c.Inventory {
			for _, v := range product.Variants {
				_, err := fmt.Fprintf(w, "%s,%s,%s,%s\r\n",
					v.SKU,
					scrub(v.Name),
					scrub(v.Category.Name),
					scrub(product.Description),
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// WriteUsage writes the usage file into dir, one Purchase event per order
// line item.
func WriteUsage(dir string, c *catalog.Catalog) error {
	return writeFile(filepath.Join(dir, UsageFile), func(w *bufio.Writer) error {
		for _, order := range c.Transactions {
			for _, line := range order.Details {
				_, err := fmt.Fprintf(w, "%s,%s,%s,Purchase\r\n",
					order.Customer,
					line.SKU,
					timestamp(order.OrderDate),
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeFile(path string, write func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("recommend %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("recommend %s: %w", path, err)
	}
	return f.Close()
}
