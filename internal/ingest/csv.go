package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"renewal-ab-lab/internal/domain"
)

// Expected CSV header, matching the original data file layout.
var expectedHeader = []string{"Customer_ID", "Test_Group", "Renewal_Status", "Discounted_ARR"}

// ErrBadHeader is returned when the CSV header does not match the
// expected column layout.
var ErrBadHeader = errors.New("unexpected csv header")

// RowError describes a row that could not be parsed.
type RowError struct {
	Line   int // 1-based line number, header is line 1
	Field  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("csv line %d: field %s: %s", e.Line, e.Field, e.Reason)
}

// ReadFile loads observations from a CSV file. In strict mode the first
// malformed row aborts the load; otherwise malformed rows are skipped
// and returned alongside the parsed observations.
func ReadFile(path string, strict bool) ([]*domain.Observation, []*RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	return Read(f, strict)
}

// Read loads observations from CSV data.
func Read(r io.Reader, strict bool) ([]*domain.Observation, []*RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, nil, err
	}

	var (
		observations []*domain.Observation
		rowErrors    []*RowError
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		obs, rerr := parseRow(record, line)
		if rerr != nil {
			if strict {
				return nil, nil, rerr
			}
			rowErrors = append(rowErrors, rerr)
			continue
		}
		observations = append(observations, obs)
	}

	return observations, rowErrors, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrBadHeader, len(header), len(expectedHeader))
	}
	for i, name := range expectedHeader {
		if strings.TrimSpace(header[i]) != name {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, header[i], name)
		}
	}
	return nil
}

func parseRow(record []string, line int) (*domain.Observation, *RowError) {
	if len(record) != len(expectedHeader) {
		return nil, &RowError{Line: line, Field: "", Reason: fmt.Sprintf("got %d columns, want %d", len(record), len(expectedHeader))}
	}

	customerID := strings.TrimSpace(record[0])
	if customerID == "" {
		return nil, &RowError{Line: line, Field: "Customer_ID", Reason: "empty"}
	}

	group := strings.TrimSpace(record[1])
	if group == "" {
		return nil, &RowError{Line: line, Field: "Test_Group", Reason: "empty"}
	}

	renewed, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, &RowError{Line: line, Field: "Renewal_Status", Reason: fmt.Sprintf("not an integer: %q", record[2])}
	}

	arr, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return nil, &RowError{Line: line, Field: "Discounted_ARR", Reason: fmt.Sprintf("not a number: %q", record[3])}
	}

	return &domain.Observation{
		CustomerID:    customerID,
		Group:         group,
		Renewed:       renewed,
		DiscountedARR: arr,
	}, nil
}
