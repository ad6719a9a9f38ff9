// Package ui provides UI styling and output functions for the CLI.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// SuccessStyle is the style for success messages
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	// InfoStyle is the style for informational messages
	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0099FF"))

	// DimStyle is the style for dimmed text
	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// BoldStyle is the style for bold text
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// HeaderStyle is the style for headers
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))

	// AddedStyle is the style for added diff lines
	AddedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	// RemovedStyle is the style for removed diff lines
	RemovedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))

	// RepoIcon is the icon for repositories
	RepoIcon = "📁"

	// BranchIcon is the icon for branches
	BranchIcon = "🌿"

	// CommitIcon is the icon for commits
	CommitIcon = "📝"

	// SnapshotIcon is the icon for snapshots
	SnapshotIcon = "📸"

	// SuccessIcon is the icon for success messages
	SuccessIcon = "✅"

	// InfoIcon is the icon for informational messages
	InfoIcon = "ⓘ"
)
