package petfinder

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// Table is a flattened, tabular view of one or more API records.
// Nested objects become dotted column paths (e.g. "contact.address.city");
// columns are the sorted union of paths across all records.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Flatten coerces a record or slice of records into a Table. Records
// are any JSON-marshalable values; nested arrays are rendered as
// compact JSON in their cell.
func Flatten(records interface{}) (*Table, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshaling records: %w", err)
	}

	var rows []map[string]interface{}

	if err := json.Unmarshal(raw, &rows); err != nil {
		// A single record marshals to an object rather than an array.
		var row map[string]interface{}
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("flattening records: %w", err)
		}

		rows = []map[string]interface{}{row}
	}

	flattened := make([]map[string]string, len(rows))
	columns := map[string]bool{}

	for i, row := range rows {
		flat := map[string]string{}
		flattenInto(flat, "", row)
		flattened[i] = flat

		for column := range flat {
			columns[column] = true
		}
	}

	headers := make([]string, 0, len(columns))
	for column := range columns {
		headers = append(headers, column)
	}

	sort.Strings(headers)

	table := &Table{Headers: headers}
	for _, flat := range flattened {
		cells := make([]string, len(headers))
		for i, header := range headers {
			cells[i] = flat[header]
		}

		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

// Render writes the table in text form.
func (t *Table) Render(w io.Writer) error {
	writer := tablewriter.NewWriter(w)
	writer.Header(t.Headers)

	for _, row := range t.Rows {
		if err := writer.Append(row); err != nil {
			return fmt.Errorf("appending table row: %w", err)
		}
	}

	if err := writer.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func flattenInto(flat map[string]string, prefix string, value interface{}) {
	switch typed := value.(type) {
	case map[string]interface{}:
		for key, nested := range typed {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}

			flattenInto(flat, path, nested)
		}
	case nil:
		flat[prefix] = ""
	case string:
		flat[prefix] = typed
	case float64:
		flat[prefix] = formatNumber(typed)
	case bool:
		flat[prefix] = fmt.Sprintf("%t", typed)
	default:
		// Arrays and anything else render as compact JSON.
		raw, err := json.Marshal(typed)
		if err != nil {
			flat[prefix] = fmt.Sprint(typed)

			return
		}

		flat[prefix] = string(raw)
	}
}

// formatNumber renders integral values without a decimal point, since
// JSON numbers always decode as float64.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%g", v)
}
