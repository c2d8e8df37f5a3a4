package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLoadCmd(t *testing.T) {
	isolateHome(t)
	path := writeTable(t, sampleTable)

	out, err := execute(t, newLoadCmd(), "load", path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	for _, want := range []string{
		"Loaded 3 neurons",
		"Loaded 3 connections",
		"Conn 0: N1 -> N2 (type=gap-junction, weight=2)",
		"Conn 1: N2 -> N1 (type=chemical-receive(excitatory), weight=1.5)",
		"Conn 2: N1 -> N3 (type=chemical-send(excitatory), weight=1)",
		"1 rows used the default weight",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoadCmd_JSON(t *testing.T) {
	isolateHome(t)
	path := writeTable(t, sampleTable)

	out, err := execute(t, newLoadCmd(), "load", "--json", path)
	if err != nil {
		t.Fatalf("load --json failed: %v", err)
	}

	var payload struct {
		Neurons     int `json:"neurons"`
		Connections int `json:"connections"`
		Report      struct {
			Rows           int `json:"rows"`
			DefaultedWghts int `json:"defaulted_weights"`
		} `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output not JSON: %v\n%s", err, out)
	}
	if payload.Neurons != 3 || payload.Connections != 3 {
		t.Errorf("payload = %+v, want 3 neurons and 3 connections", payload)
	}
	if payload.Report.Rows != 3 || payload.Report.DefaultedWghts != 1 {
		t.Errorf("report = %+v", payload.Report)
	}
}

func TestLoadCmd_PreviewLimit(t *testing.T) {
	isolateHome(t)
	path := writeTable(t, sampleTable)

	out, err := execute(t, newLoadCmd(), "load", "--preview", "1", path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !strings.Contains(out, "Conn 0:") {
		t.Errorf("preview missing first connection:\n%s", out)
	}
	if strings.Contains(out, "Conn 1:") {
		t.Errorf("preview exceeded limit:\n%s", out)
	}
}

func TestLoadCmd_NoHeader(t *testing.T) {
	isolateHome(t)
	path := writeTable(t, "N1,N2,EJ,2.0\n")

	out, err := execute(t, newLoadCmd(), "load", "--no-header", path)
	if err != nil {
		t.Fatalf("load --no-header failed: %v", err)
	}
	if !strings.Contains(out, "Loaded 2 neurons") {
		t.Errorf("output:\n%s", out)
	}
}

func TestLoadCmd_MalformedRow(t *testing.T) {
	isolateHome(t)
	path := writeTable(t, "a,b,c,d\nN1,N2,EJ\n")

	if _, err := execute(t, newLoadCmd(), "load", path); err == nil {
		t.Error("load succeeded on malformed table, want error")
	}
}

func TestLoadCmd_MissingFile(t *testing.T) {
	isolateHome(t)
	if _, err := execute(t, newLoadCmd(), "load", "/does/not/exist.csv"); err == nil {
		t.Error("load succeeded on missing file, want error")
	}
}
