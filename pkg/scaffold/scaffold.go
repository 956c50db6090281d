// Package scaffold generates new skill directories from a SKILL.md template
// so contributions start with well-formed frontmatter.
package scaffold

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"text/template"

	"github.com/jingkaihe/skillsync/pkg/logger"
	"github.com/jingkaihe/skillsync/pkg/skills"
	"github.com/pkg/errors"
)

const skillTemplate = `---
name: {{ .Name }}
description: >
  {{ .Description }}
metadata:
  author: {{ .Author }}
---

# {{ .Name }}

## Overview

Describe what this skill teaches the assistant.

## Guidelines

- Add concrete, framework-specific guidance here.
- Include examples of the patterns the assistant should follow.
`

// Config holds the parameters for a new skill directory
type Config struct {
	// Root is the community directory the skill is created under
	Root string
	// Name is the skill's directory and display name
	Name string
	// Description is the frontmatter description; defaults to the
	// placeholder the README pipeline would fall back to anyway
	Description string
	// Author is the frontmatter metadata.author value
	Author string
}

// Create scaffolds a new skill directory and returns the path to the
// generated SKILL.md. It refuses to overwrite an existing skill.
func Create(ctx context.Context, config Config) (string, error) {
	if config.Name == "" {
		return "", errors.New("skill name must not be empty")
	}
	if config.Description == "" {
		config.Description = skills.FallbackDescription
	}
	if config.Author == "" {
		config.Author = skills.FallbackAuthor
	}

	skillDir := filepath.Join(config.Root, config.Name)
	if _, err := os.Stat(skillDir); err == nil {
		return "", errors.Errorf("skill directory %s already exists", skillDir)
	}

	tmpl, err := template.New("skill").Parse(skillTemplate)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse skill template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, config); err != nil {
		return "", errors.Wrap(err, "failed to render skill template")
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create skill directory %s", skillDir)
	}

	skillPath := filepath.Join(skillDir, "SKILL.md")
	if err := os.WriteFile(skillPath, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", skillPath)
	}

	logger.G(ctx).WithField("path", skillPath).Debug("Scaffolded new skill")

	return skillPath, nil
}
