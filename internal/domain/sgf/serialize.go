package sgf

import "strings"

// Serialize рендерит документ в текст без завершающего перевода строки
func Serialize(s *SGF) string {
	var builder strings.Builder
	builder.WriteString("(")
	if s != nil && s.Root != nil {
		serializeGameTree(&builder, s.Root)
	}
	builder.WriteString(")")
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, tree *GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")
		for _, prop := range node.Properties {
			writeProperty(builder, prop)
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

func writeProperty(builder *strings.Builder, prop Property) {
	builder.WriteString(prop.Key)
	if len(prop.Values) == 0 {
		builder.WriteString("[]")
		return
	}
	for _, v := range prop.Values {
		builder.WriteString("[")
		builder.WriteString(Escape(v))
		builder.WriteString("]")
	}
}
