package track

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/watercooler-labs/toggl-cli/internal/git"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	doc := `
["*"]
billable = false

["^feature-.*"]
billable = true
description = "feature"

["feature"]
description = "unanchored"

["^feature-42$"]
description = "too late"
`
	cfg := parseString(t, doc)

	tests := []struct {
		name     string
		branch   string
		ok       bool
		wantDesc string
		wantBill bool
		wantPat  string
	}{
		{"no branch", "", false, "", false, "*"},
		{"first of several matches", "feature-42", true, "feature", true, "^feature-.*"},
		{"unanchored match", "my-feature", true, "unanchored", false, "feature"},
		{"no match", "main", true, "", false, "*"},
		{"empty branch name", "", true, "", false, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := cfg.Select(tt.branch, tt.ok)
			desc := ""
			if got.Description != nil {
				desc = *got.Description
			}
			if desc != tt.wantDesc || got.Billable != tt.wantBill {
				t.Errorf("Select(%q, %v) = {%q, %v}, want {%q, %v}", tt.branch, tt.ok, desc, got.Billable, tt.wantDesc, tt.wantBill)
			}
			if pat := cfg.Match(tt.branch, tt.ok); pat != tt.wantPat {
				t.Errorf("Match(%q, %v) = %q, want %q", tt.branch, tt.ok, pat, tt.wantPat)
			}
		})
	}
}

func TestSelect_EarlierWinsRegardlessOfSpecificity(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{
		"[\".\"]\nproject = \"first\"\n[\"^release/2024-01-15-hotfix$\"]\nproject = \"second\"\n",
		"[\"^release/2024-01-15-hotfix$\"]\nproject = \"first\"\n[\".\"]\nproject = \"second\"\n",
	} {
		cfg := parseString(t, doc)
		got := cfg.Select("release/2024-01-15-hotfix", true)
		if got.Project == nil || *got.Project != "first" {
			t.Errorf("Select picked %v, want first declared rule\n%s", got.Project, doc)
		}
	}
}

func TestSelect_DefaultOnly(t *testing.T) {
	t.Parallel()
	cfg := parseString(t, "[\"*\"]\nbillable = false\n")
	for _, branch := range []string{"feature-x", "main", ""} {
		if diff := cmp.Diff(cfg.Default, cfg.Select(branch, true)); diff != "" {
			t.Errorf("Select(%q) mismatch (-default +got):\n%s", branch, diff)
		}
	}
	if cfg.Default.Workspace != nil || cfg.Default.Billable {
		t.Errorf("Default = %+v, want zero workspace and billable false", cfg.Default)
	}
}

func TestActive(t *testing.T) {
	t.Parallel()
	cfg := parseString(t, "[\"*\"]\nproject = \"default\"\n[\"^feature-\"]\nproject = \"feature\"\n")

	tests := []struct {
		name       string
		q          git.Querier
		wantProj   string
		wantBranch string
	}{
		{"matching branch", &fakeGit{branch: "feature-1"}, "feature", "feature-1"},
		{"other branch", &fakeGit{branch: "main"}, "default", "main"},
		{"detached", &fakeGit{}, "default", ""},
		{"not a repository", &fakeGit{err: git.ErrNotRepository}, "default", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, branch := cfg.Active(context.Background(), tt.q, "/work")
			if got.Project == nil || *got.Project != tt.wantProj {
				t.Errorf("Active project = %v, want %q", got.Project, tt.wantProj)
			}
			if branch != tt.wantBranch {
				t.Errorf("Active branch = %q, want %q", branch, tt.wantBranch)
			}
		})
	}
}
