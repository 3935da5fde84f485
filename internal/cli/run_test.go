package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestUnsupportedTypes(t *testing.T) {
	intervals := map[string]time.Duration{
		"GGA": 10 * time.Second,
		"ZDA": 10 * time.Second,
		"HDT": time.Second,
		"XDR": time.Minute,
	}
	got := unsupportedTypes(intervals)
	if want := []string{"XDR", "ZDA"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unsupportedTypes=%v want %v", got, want)
	}
}

func TestUnsupportedTypes_AllKnown(t *testing.T) {
	intervals := map[string]time.Duration{
		"GGA": 10 * time.Second,
		"RMC": 10 * time.Second,
	}
	if got := unsupportedTypes(intervals); len(got) != 0 {
		t.Fatalf("unsupportedTypes=%v want none", got)
	}
}
