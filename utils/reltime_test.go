package utils

import (
	"testing"
)

func TestRelativeFormatter(t *testing.T) {

	formatter := NewRelativeFormatterAt(1000)

	if s := formatter.Format(1500); s != "500" {
		t.Fatal("Expected 500 but got", s)
	}

	// Same timestamp hits the cache
	if s := formatter.Format(1500); s != "500" {
		t.Fatal("Expected cached 500 but got", s)
	}

	// New timestamp recomputes
	if s := formatter.Format(3000); s != "2000" {
		t.Fatal("Expected 2000 but got", s)
	}

	// Events before start render negative, not garbage
	if s := formatter.Format(500); s != "-500" {
		t.Fatal("Expected -500 but got", s)
	}
}

func TestRelativeFormatterZeroTimestamp(t *testing.T) {

	formatter := NewRelativeFormatterAt(1000)

	if s := formatter.Format(1000); s != "0" {
		t.Fatal("Expected 0 but got", s)
	}
}
