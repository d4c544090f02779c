package ui

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	table := NewTable("Approved Policies", []string{"ID", "Name", "Status"})
	table.AddRow("1.2.3", "Membership", "approved")
	table.AddRow("1.10.1", "Elections", "draft")

	view := table.View(DefaultStyles())

	if !strings.Contains(view, "Approved Policies") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "1.10.1") {
		t.Error("View missing cell content")
	}
	if !strings.Contains(view, "Status") {
		t.Error("View missing header")
	}
}

func TestTableEmpty(t *testing.T) {
	table := NewTable("Suggestions", []string{"ID", "Email"})
	view := table.View(DefaultStyles())

	if !strings.Contains(view, "nothing to show") {
		t.Error("empty table should render the placeholder")
	}
	if strings.Contains(view, "Email") {
		t.Error("empty table should not render bare headers")
	}
}

func TestTableTruncatesLongCells(t *testing.T) {
	table := NewTable("", []string{"Name"})
	long := strings.Repeat("x", 200)
	table.AddRow(long)

	view := table.View(DefaultStyles())

	if strings.Contains(view, long) {
		t.Error("oversized cell should be truncated")
	}
	if !strings.Contains(view, "…") {
		t.Error("truncated cell should end with an ellipsis")
	}
}
