package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Sim\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, confirm(strings.NewReader(tt.input), &out, "Delete?"), "input %q", tt.input)
		assert.Equal(t, "Delete? [y/N] ", out.String())
	}
}

func TestPrintIncidents(t *testing.T) {
	var out bytes.Buffer
	printIncidents(&out, []models.Incident{
		{ID: "1", Protocol: "2025-0001", Category: models.CategoryFire, Priority: models.PriorityHigh, Status: models.StatusOpen, Address: "Rua A"},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "PROTOCOL")
	assert.Contains(t, lines[1], "Incêndio")
	assert.Contains(t, lines[1], "Aberta")
}
