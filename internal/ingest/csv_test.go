package ingest

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, src RowSource) []Row {
	t.Helper()
	var rows []Row
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return rows
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		rows = append(rows, row)
	}
}

func TestCSVSource_Next(t *testing.T) {
	input := "Neuron 1,Neuron 2,Type,Nbr\nADAL,ADAR,EJ,1\nADAL,AVBL,Sp,2.5\n"

	rows := readAll(t, NewCSVSource(strings.NewReader(input), DefaultCSVOptions()))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := Row{Source: "ADAL", Target: "ADAR", Code: "EJ", Weight: "1"}
	if rows[0] != want {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}
	if rows[1].Weight != "2.5" {
		t.Errorf("rows[1].Weight = %q, want 2.5", rows[1].Weight)
	}
}

func TestCSVSource_NoHeader(t *testing.T) {
	input := "N1,N2,EJ,2.0\n"
	opts := DefaultCSVOptions()
	opts.Header = false

	rows := readAll(t, NewCSVSource(strings.NewReader(input), opts))
	if len(rows) != 1 || rows[0].Source != "N1" {
		t.Errorf("rows = %+v, want single row starting at N1", rows)
	}
}

func TestCSVSource_TabDelimited(t *testing.T) {
	input := "N1\tN2\tR\t0.5\n"
	opts := CSVOptions{Comma: '\t', Header: false}

	rows := readAll(t, NewCSVSource(strings.NewReader(input), opts))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Code != "R" || rows[0].Weight != "0.5" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}

func TestCSVSource_WrongFieldCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "too few fields",
			input: "a,b,c,d\nN1,N2,EJ\n",
		},
		{
			name:  "too many fields",
			input: "a,b,c,d\nN1,N2,EJ,1,extra\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewCSVSource(strings.NewReader(tt.input), DefaultCSVOptions())

			_, err := src.Next()
			if err == nil {
				t.Fatal("Next() succeeded on malformed record")
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("error %v is not a *RowError", err)
			}
			if rowErr.Line != 2 {
				t.Errorf("RowError.Line = %d, want 2", rowErr.Line)
			}
		})
	}
}

func TestCSVSource_FieldsKeptVerbatim(t *testing.T) {
	input := "N1, N2,EJ, 2.0\n"
	opts := DefaultCSVOptions()
	opts.Header = false

	rows := readAll(t, NewCSVSource(strings.NewReader(input), opts))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Target != " N2" || rows[0].Weight != " 2.0" {
		t.Errorf("rows[0] = %+v, want leading spaces preserved", rows[0])
	}
}

func TestCSVSource_ErrorLineAfterMultilineField(t *testing.T) {
	// The first record's quoted field spans two physical lines, so the
	// malformed record sits on line 4, not logical record 2.
	input := "a,b,c,d\n\"N1\ncont\",N2,EJ,1\nN1,N2,EJ\n"
	src := NewCSVSource(strings.NewReader(input), DefaultCSVOptions())

	if _, err := src.Next(); err != nil {
		t.Fatalf("Next() error = %v on well-formed record", err)
	}

	_, err := src.Next()
	if err == nil {
		t.Fatal("Next() succeeded on malformed record")
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("error %v is not a *RowError", err)
	}
	if rowErr.Line != 4 {
		t.Errorf("RowError.Line = %d, want 4", rowErr.Line)
	}
}

func TestCSVSource_HeaderOnly(t *testing.T) {
	src := NewCSVSource(strings.NewReader("a,b,c,d\n"), DefaultCSVOptions())
	if _, err := src.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestCSVSource_Empty(t *testing.T) {
	src := NewCSVSource(strings.NewReader(""), DefaultCSVOptions())
	if _, err := src.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestCSVSource_LoaderIntegration(t *testing.T) {
	input := strings.Join([]string{
		"Neuron 1,Neuron 2,Type,Nbr",
		"N1,N2,EJ,2.0",
		"N2,N1,R,1.5",
		"N1,N3,Sp,x",
	}, "\n") + "\n"

	g, err := NewLoader(nil).Load(NewCSVSource(strings.NewReader(input), DefaultCSVOptions()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if g.NeuronCount() != 3 || g.ConnectionCount() != 3 {
		t.Errorf("graph = %d neurons, %d connections; want 3, 3", g.NeuronCount(), g.ConnectionCount())
	}
}
