package scene

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Build a tabular representation of the scene contents.
func (m *Model) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Category", "Count", "Entries"})
	table.Append([]string{"Views", fmt.Sprint(m.Views.Len()), joinIDs(m.Views.Keys, m.DefaultView)})
	table.Append([]string{"Lights", fmt.Sprint(m.Lights.Len()), fmt.Sprintf("%d active", len(m.ActiveLights()))})
	table.Append([]string{"Textures", fmt.Sprint(m.Textures.Len()), joinIDs(m.Textures.Keys, "")})
	table.Append([]string{"Materials", fmt.Sprint(m.Materials.Len()), joinIDs(m.Materials.Keys, "")})
	table.Append([]string{"Transformations", fmt.Sprint(m.Transforms.Len()), joinIDs(m.Transforms.Keys, "")})
	table.Append([]string{"Animations", fmt.Sprint(m.Animations.Len()), fmt.Sprintf("%d keyframes", m.keyframeCount())})
	table.Append([]string{"Primitives", fmt.Sprint(m.Primitives.Len()), m.primitiveHistogram()})
	table.Append([]string{"Components", fmt.Sprint(m.Components.Len()), "root: " + m.RootID})
	table.SetFooter([]string{"Total", fmt.Sprint(m.entityCount()), " "})

	table.Render()
	return buf.String()
}

func (m *Model) entityCount() int {
	return m.Views.Len() + m.Lights.Len() + m.Textures.Len() + m.Materials.Len() +
		m.Transforms.Len() + m.Animations.Len() + m.Primitives.Len() + m.Components.Len()
}

func (m *Model) keyframeCount() int {
	count := 0
	for _, anim := range m.Animations.Values {
		count += len(anim.Keyframes)
	}
	return count
}

// Count primitives per kind, e.g. "2 rectangle, 1 torus".
func (m *Model) primitiveHistogram() string {
	var counts [len(primitiveKindNames)]int
	for _, prim := range m.Primitives.Values {
		counts[prim.Geometry.Kind()]++
	}

	parts := make([]string, 0)
	for kind, count := range counts {
		if count > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count, PrimitiveKind(kind)))
		}
	}
	return strings.Join(parts, ", ")
}

// Join ids for display; the highlighted id is marked with an asterisk.
func joinIDs(ids []string, highlight string) string {
	const maxShown = 6

	out := make([]string, 0, maxShown+1)
	for index, id := range ids {
		if index == maxShown {
			out = append(out, fmt.Sprintf("(+%d more)", len(ids)-maxShown))
			break
		}
		if id == highlight {
			id += "*"
		}
		out = append(out, id)
	}
	return strings.Join(out, ", ")
}
