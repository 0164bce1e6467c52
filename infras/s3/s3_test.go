package s3

import (
	"encoding/json"
	"testing"
)

func TestPublicReadPolicy(t *testing.T) {
	var policy struct {
		Version   string `json:"Version"`
		Statement []struct {
			Effect    string `json:"Effect"`
			Principal struct {
				AWS []string `json:"AWS"`
			} `json:"Principal"`
			Action   []string `json:"Action"`
			Resource []string `json:"Resource"`
		} `json:"Statement"`
	}

	raw := publicReadPolicy("restaurant-images")

	if err := json.Unmarshal([]byte(raw), &policy); err != nil {
		t.Fatalf("policy is not valid JSON: %v", err)
	}

	if policy.Version != "2012-10-17" {
		t.Errorf("expected policy version 2012-10-17, got %s", policy.Version)
	}

	if len(policy.Statement) != 1 {
		t.Fatalf("expected a single statement, got %d", len(policy.Statement))
	}

	statement := policy.Statement[0]

	if statement.Effect != "Allow" {
		t.Errorf("expected Allow effect, got %s", statement.Effect)
	}

	if len(statement.Principal.AWS) != 1 || statement.Principal.AWS[0] != "*" {
		t.Errorf("expected wildcard principal, got %v", statement.Principal.AWS)
	}

	if len(statement.Action) != 1 || statement.Action[0] != "s3:GetObject" {
		t.Errorf("expected s3:GetObject action only, got %v", statement.Action)
	}

	if len(statement.Resource) != 1 || statement.Resource[0] != "arn:aws:s3:::restaurant-images/*" {
		t.Errorf("expected bucket-scoped object resource, got %v", statement.Resource)
	}
}
