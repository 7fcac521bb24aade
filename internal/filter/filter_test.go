package filter

import (
	"reflect"
	"testing"
)

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name         string
		include      []string
		exclude      []string
		resourceType string
		want         bool
	}{
		{
			name:         "no patterns passes everything",
			resourceType: "AWS::EC2::Instance",
			want:         true,
		},
		{
			name:         "include wildcard matches",
			include:      []string{"AWS::EC2::*"},
			resourceType: "AWS::EC2::Instance",
			want:         true,
		},
		{
			name:         "include wildcard rejects other services",
			include:      []string{"AWS::EC2::*"},
			resourceType: "AWS::IAM::Role",
			want:         false,
		},
		{
			name:         "exclude wins over include",
			include:      []string{"AWS::EC2::*"},
			exclude:      []string{"AWS::EC2::DHCPOptions"},
			resourceType: "AWS::EC2::DHCPOptions",
			want:         false,
		},
		{
			name:         "exclude only drops matches",
			exclude:      []string{"AWS::IAM::*"},
			resourceType: "AWS::IAM::Role",
			want:         false,
		},
		{
			name:         "exclude only passes the rest",
			exclude:      []string{"AWS::IAM::*"},
			resourceType: "AWS::S3::Bucket",
			want:         true,
		},
		{
			name:         "matching is case sensitive",
			include:      []string{"aws::ec2::*"},
			resourceType: "AWS::EC2::Instance",
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.include, tt.exclude)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := f.Match(tt.resourceType); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.resourceType, got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	catalog := []string{
		"AWS::EC2::DHCPOptions",
		"AWS::EC2::Instance",
		"AWS::EC2::RouteTable",
		"AWS::IAM::Role",
		"AWS::S3::Bucket",
	}

	f, err := New([]string{"AWS::EC2::*"}, []string{"AWS::EC2::DHCPOptions"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := f.Apply(catalog)
	want := []string{"AWS::EC2::Instance", "AWS::EC2::RouteTable"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestFilter_ApplyEmptyFilterKeepsInput(t *testing.T) {
	catalog := []string{"AWS::S3::Bucket", "AWS::EC2::Instance"}

	f, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := f.Apply(catalog)
	if !reflect.DeepEqual(got, catalog) {
		t.Errorf("Apply() = %v, want %v", got, catalog)
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	if _, err := New([]string{"AWS::[EC2"}, nil); err == nil {
		t.Error("New() with malformed pattern should fail")
	}
}
