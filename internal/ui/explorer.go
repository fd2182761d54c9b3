// Copyright 2024-2026 Firefly Software Solutions Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// BundleItem is one row of the interactive bundle explorer: enough to render
// a list entry and, in its description, the bundles it loads.
type BundleItem struct {
	Label  string
	Size   int
	Shared bool
	Loads  []string
}

func (i BundleItem) FilterValue() string { return i.Label }

func (i BundleItem) Title() string {
	kind := "bundle"
	if i.Shared {
		kind = "shared"
	}
	return fmt.Sprintf("[%s] %s", kind, i.Label)
}

func (i BundleItem) Description() string {
	if len(i.Loads) == 0 {
		return fmt.Sprintf("%d bytes · no further requests", i.Size)
	}
	return fmt.Sprintf("%d bytes · loads %s", i.Size, strings.Join(i.Loads, ", "))
}

// explorerModel is a minimal bubbletea program: a scrollable list of
// bundles, each listed with what it pulls in alongside it.
type explorerModel struct {
	list  list.Model
	title string
}

// NewBundleExplorer builds the bubbletea model for `bundlectl bundle --watch`.
func NewBundleExplorer(title string, items []BundleItem) tea.Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ColorPrimary).BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(ColorMuted)

	l := list.New(listItems, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = l.Styles.Title.Foreground(ColorPrimary).Bold(true)
	l.SetShowHelp(true)

	return explorerModel{list: l, title: title}
}

func (m explorerModel) Init() tea.Cmd {
	return nil
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m explorerModel) View() string {
	return m.list.View()
}

// RunBundleExplorer blocks until the user quits the interactive list.
func RunBundleExplorer(title string, items []BundleItem) error {
	_, err := tea.NewProgram(NewBundleExplorer(title, items), tea.WithAltScreen()).Run()
	return err
}
