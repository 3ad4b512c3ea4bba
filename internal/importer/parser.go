package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/kaminoclone/cobranca/internal/domain"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FirstDataRow is the 1-based line number of the first record after the
// header, as spreadsheet users count it.
const FirstDataRow = 2

// HeaderKey folds a column name for lookup: accents, case and separators
// are ignored, so "Tipo Tributação" and "tipo_tributacao" match.
func HeaderKey(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	return domain.ColumnKey(folded)
}

// Parse reads a comma separated file whose first record is the header.
//
// The payload is decoded as UTF-8; a byte order mark is dropped (UTF-16 with
// a BOM is decoded as well). Double-quoted fields may contain commas. Quote
// handling is lenient: a stray quote in an unquoted field is kept literally
// instead of failing the batch. Data records whose cells are all blank are
// dropped before numbering.
//
// Every error returned wraps domain.ErrBatchParse.
func Parse(r io.Reader, expectedColumns []string) ([]*domain.ImportRow, error) {
	decoded := transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var header []string
	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrBatchParse, err)
		}
		if header == nil {
			header = record
			continue
		}
		if blank(record) {
			continue
		}
		records = append(records, record)
	}

	if header == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBatchParse, domain.ErrEmptyPayload)
	}

	names := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.Trim(strings.TrimSpace(name), `"`))
		names[i] = name
		if name != "" {
			present[HeaderKey(name)] = true
		}
	}
	if len(present) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrBatchParse, domain.ErrMissingHeader)
	}

	var missing []string
	for _, col := range expectedColumns {
		if !present[HeaderKey(col)] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrBatchParse, domain.ErrMissingColumns, strings.Join(missing, ", "))
	}

	rows := make([]*domain.ImportRow, 0, len(records))
	for i, record := range records {
		fields := domain.NewFields(HeaderKey)
		for j, name := range names {
			if name == "" {
				continue
			}
			value := ""
			if j < len(record) {
				value = record[j]
			}
			fields.Set(name, value)
		}

		rows = append(rows, &domain.ImportRow{
			RowNumber: i + FirstDataRow,
			Fields:    fields,
		})
	}

	return rows, nil
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
