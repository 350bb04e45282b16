package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateScanReformatsDriverTime(t *testing.T) {
	// Postgres date columns come back from the driver as time.Time;
	// scanning must yield the plain calendar date, not RFC3339.
	var d Date
	if err := d.Scan(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if d != "2026-03-10" {
		t.Fatalf("scanned date = %q, want 2026-03-10", d)
	}
}

func TestDateScanPassesStringsThrough(t *testing.T) {
	var d Date
	if err := d.Scan("2026-03-10"); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if d != "2026-03-10" {
		t.Fatalf("scanned date = %q, want 2026-03-10", d)
	}

	if err := d.Scan([]byte("2026-03-11")); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if d != "2026-03-11" {
		t.Fatalf("scanned date = %q, want 2026-03-11", d)
	}
}

func TestDateScanRejectsUnknownTypes(t *testing.T) {
	var d Date
	if err := d.Scan(42); err == nil {
		t.Fatalf("Scan accepted an int")
	}
}

func TestDateValueIsPlainString(t *testing.T) {
	v, err := Date("2026-03-10").Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if s, ok := v.(string); !ok || s != "2026-03-10" {
		t.Fatalf("value = %#v, want the string 2026-03-10", v)
	}
}

func TestDateJSONWireFormat(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	sale := Sale{Date: d}
	data, err := json.Marshal(sale)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["date"] != "2026-03-10" {
		t.Fatalf("date over the wire = %q, want 2026-03-10", decoded["date"])
	}
}
