// Package ingest reads tabular files into the domain table the profiling
// engine consumes. It owns every format and encoding concern so the engine
// never touches files.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"datascope/domain/core"
	"datascope/domain/table"
)

// DataReader handles reading CSV, Excel, JSON, and delimited text files
type DataReader struct {
	filePath string
	fileType string // "csv", "xlsx", "json" or "txt"
}

// NewDataReader creates a reader for the given file, inferring the format
// from the extension
func NewDataReader(filePath string) *DataReader {
	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadTable reads the file into a validated table
func (r *DataReader) ReadTable() (*table.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readDelimited(',')
	case "xlsx":
		return r.readExcel()
	case "json":
		return r.readJSON()
	case "txt":
		// Tab-separated first, space-separated as fallback
		t, err := r.readDelimited('\t')
		if err == nil && t.ColumnCount() > 1 {
			return t, nil
		}
		return r.readDelimited(' ')
	case "xls":
		// excelize reads OOXML only, not the legacy OLE container
		return nil, fmt.Errorf("%w: legacy .xls workbooks cannot be read, save as .xlsx", core.ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: .%s", core.ErrUnsupportedFormat, r.fileType)
	}
}

// readDelimited reads CSV-shaped data with the given separator
func (r *DataReader) readDelimited(comma rune) (*table.Table, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // rows are padded to the header below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read delimited data: %w", err)
	}
	if len(records) == 0 {
		return nil, core.ErrEmptyFile
	}

	return rowsToTable(records[0], records[1:])
}

// readExcel reads the first sheet, first row as headers
func (r *DataReader) readExcel() (*table.Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, core.ErrEmptyFile
	}

	return rowsToTable(rows[0], rows[1:])
}

// readJSON reads an array of flat objects. Column order follows the key
// order of the first object; rows missing a key get the missing marker.
func (r *DataReader) readJSON() (*table.Table, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	headers, err := firstObjectKeys(data)
	if err != nil {
		return nil, err
	}

	var objects []map[string]interface{}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&objects); err != nil {
		return nil, fmt.Errorf("failed to decode JSON records: %w", err)
	}

	columns := make([]table.Column, len(headers))
	for i, name := range headers {
		cells := make([]table.Cell, len(objects))
		for rowIdx, obj := range objects {
			cells[rowIdx] = jsonCell(obj[name])
		}
		columns[i] = table.Column{Name: name, Cells: cells}
	}
	return table.New(columns...)
}

// firstObjectKeys tokenizes the first array element to recover its key
// order, which encoding/json maps discard
func firstObjectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('[') {
		return nil, fmt.Errorf("JSON file must contain an array of objects")
	}
	if !dec.More() {
		return nil, core.ErrEmptyFile
	}
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, fmt.Errorf("JSON array elements must be objects")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to scan JSON keys: %w", err)
		}
		keys = append(keys, tok.(string))
		// Skip the value, whatever its shape
		var discard interface{}
		if err := dec.Decode(&discard); err != nil {
			return nil, fmt.Errorf("failed to scan JSON values: %w", err)
		}
	}
	return keys, nil
}

// jsonCell resolves one decoded JSON value into a cell
func jsonCell(v interface{}) table.Cell {
	switch val := v.(type) {
	case nil:
		return table.MissingCell()
	case json.Number:
		// Through ParseCell so the source literal survives for frequency
		// counting ("1.0" stays "1.0")
		return table.ParseCell(val.String())
	case string:
		return table.ParseCell(val)
	case bool:
		if val {
			return table.TextCell("true")
		}
		return table.TextCell("false")
	default:
		// Nested arrays/objects are not tabular; keep a textual rendition
		rendered, err := json.Marshal(val)
		if err != nil {
			return table.MissingCell()
		}
		return table.TextCell(string(rendered))
	}
}

// rowsToTable converts header + data rows into columns, padding short rows
// with the missing marker
func rowsToTable(headers []string, rows [][]string) (*table.Table, error) {
	names := make([]string, len(headers))
	for i, h := range headers {
		names[i] = strings.TrimSpace(h)
	}

	columns := make([]table.Column, len(names))
	for i, name := range names {
		cells := make([]table.Cell, len(rows))
		for rowIdx, row := range rows {
			if i < len(row) {
				cells[rowIdx] = table.ParseCell(row[i])
			} else {
				cells[rowIdx] = table.MissingCell()
			}
		}
		columns[i] = table.Column{Name: name, Cells: cells}
	}
	return table.New(columns...)
}

// ReadTableFrom drains an already-open stream with a filename hint, staging
// it through a temp file so seekable-format readers (xlsx) work
func ReadTableFrom(src io.Reader, filename, tempDir string) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	tmp, err := os.CreateTemp(tempDir, "datascope_upload_*"+ext)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}
	return NewDataReader(tmp.Name()).ReadTable()
}
