package exclusions

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTable_Matches(t *testing.T) {
	table := Builtin()

	tests := []struct {
		name         string
		resourceType string
		identifier   string
		want         bool
	}{
		{"default event bus", "AWS::Events::EventBus", "default", true},
		{"custom event bus", "AWS::Events::EventBus", "orders", false},
		{"service linked role", "AWS::IAM::Role", "AWSServiceRoleForSupport", true},
		{"user role", "AWS::IAM::Role", "deploy-role", false},
		{"aws managed kms alias", "AWS::KMS::Alias", "alias/aws/s3", true},
		{"customer kms alias", "AWS::KMS::Alias", "alias/app-data", false},
		{"managed ram permission arn", "AWS::RAM::Permission", "arn:aws:ram::aws:permission/AWSRAMDefaultPermissionVPCSubnet", true},
		{"default rds parameter group", "AWS::RDS::DBParameterGroup", "default.postgres16", true},
		{"unknown type", "AWS::S3::Bucket", "default", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Matches(tt.resourceType, tt.identifier); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.resourceType, tt.identifier, got, tt.want)
			}
		})
	}
}

func TestTable_ApplyIsIdempotent(t *testing.T) {
	table := Builtin()
	identifiers := []string{
		"alias/app-data",
		"alias/aws/s3",
		"alias/aws/ebs",
		"alias/backup-key",
	}

	once := table.Apply("AWS::KMS::Alias", identifiers)
	twice := table.Apply("AWS::KMS::Alias", once)

	want := []string{"alias/app-data", "alias/backup-key"}
	if !reflect.DeepEqual(once, want) {
		t.Errorf("Apply() = %v, want %v", once, want)
	}
	if !reflect.DeepEqual(twice, once) {
		t.Errorf("second Apply() = %v, want unchanged %v", twice, once)
	}
}

func TestLoad(t *testing.T) {
	content := `
rules:
  - resource_type: "AWS::Events::EventBus"
    identifier: "default"
  - resource_type: "AWS::Custom::*"
    identifier: "legacy-*"
    note: "internal migration leftovers"
`
	path := filepath.Join(t.TempDir(), "exclusions.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(table.Rules) != 2 {
		t.Fatalf("Rules count = %d, want 2", len(table.Rules))
	}
	if !table.Matches("AWS::Custom::Thing", "legacy-a1") {
		t.Error("loaded wildcard rule should match")
	}
	if table.Matches("AWS::KMS::Alias", "alias/aws/s3") {
		t.Error("external table replaces the built-in one")
	}
}

func TestLoad_InvalidRule(t *testing.T) {
	content := `
rules:
  - identifier: "default"
`
	path := filepath.Join(t.TempDir(), "exclusions.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with missing resource_type should fail")
	}
}

func TestCompileGlob_CrossesSlashes(t *testing.T) {
	re, err := compileGlob("arn:*:ram::aws:permission/*")
	if err != nil {
		t.Fatal(err)
	}
	if !re.MatchString("arn:aws:ram::aws:permission/AWSRAMDefaultPermissionS3Bucket") {
		t.Error("glob * should match across slashes")
	}
	if re.MatchString("arn:aws:ram::123456789012:permission/custom") {
		t.Error("glob should stay anchored")
	}
}
