package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestResolveRegions(t *testing.T) {
	enabled := []string{"eu-west-1", "us-east-1", "us-west-2"}

	tests := []struct {
		name      string
		requested []string
		want      []string
		wantErr   string
	}{
		{
			name:      "explicit regions keep requested order",
			requested: []string{"us-east-1", "eu-west-1"},
			want:      []string{"us-east-1", "eu-west-1"},
		},
		{
			name:      "ALL selects every enabled region",
			requested: []string{"ALL"},
			want:      []string{"eu-west-1", "us-east-1", "us-west-2"},
		},
		{
			name:      "duplicates dropped",
			requested: []string{"us-east-1", "us-east-1", "eu-west-1"},
			want:      []string{"us-east-1", "eu-west-1"},
		},
		{
			name:      "disabled region rejected",
			requested: []string{"ap-east-1"},
			wantErr:   "invalid or disabled region",
		},
		{
			name:    "empty request rejected",
			wantErr: "no target regions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveRegions(tt.requested, enabled)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveRegions() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("resolveRegions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveRegions_ALLReturnsCopy(t *testing.T) {
	enabled := []string{"us-east-1", "eu-west-1"}

	targets, err := resolveRegions([]string{"ALL"}, enabled)
	if err != nil {
		t.Fatal(err)
	}

	targets[0] = "mutated"
	if enabled[0] != "us-east-1" {
		t.Error("resolveRegions must not alias the enabled slice")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"us-east-1,eu-west-1", []string{"us-east-1", "eu-west-1"}},
		{" us-east-1 , eu-west-1 ", []string{"us-east-1", "eu-west-1"}},
		{"us-east-1,,", []string{"us-east-1"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := splitList(tt.value); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestPrintStats_SkipsNil(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, []string{"us-east-1"}, nil)
	if buf.Len() != 0 {
		t.Error("nil stats must print nothing")
	}
}
