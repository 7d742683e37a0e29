package sgf

import "strings"

// Letters - алфавит координат SGF: сначала строчные, затем заглавные (доски до 52x52)
const Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GameTree представляет одно дерево в SGF (узел + варианты)
type GameTree struct {
	Nodes    []*Node     // Последовательность узлов (основная линия)
	Children []*GameTree // Варианты (вариативные линии)
}

// Node представляет один узел SGF (набор свойств, таких как B[pd], W[dd], C[...])
type Node struct {
	Properties []Property // Порядок добавления сохраняется при сериализации
}

// Property - одно свойство узла, значения могут повторяться (например, AB[aa][bb])
type Property struct {
	Key    string
	Values []string
}

// SGF представляет корневой элемент SGF-файла
type SGF struct {
	Root *GameTree
}

// New создаёт документ с пустым корневым узлом
func New() *SGF {
	return &SGF{Root: &GameTree{Nodes: []*Node{{}}}}
}

// RootNode возвращает первый узел основной линии
func (s *SGF) RootNode() *Node {
	if s.Root == nil || len(s.Root.Nodes) == 0 {
		return nil
	}
	return s.Root.Nodes[0]
}

// AppendNode добавляет узел в конец основной линии
func (s *SGF) AppendNode(props ...Property) *Node {
	node := &Node{Properties: props}
	s.Root.Nodes = append(s.Root.Nodes, node)
	return node
}

// Add добавляет свойство в конец узла. Уже добавленные свойства не меняются.
func (n *Node) Add(key string, values ...string) {
	n.Properties = append(n.Properties, Property{Key: key, Values: values})
}

// Get возвращает значения первого свойства с ключом key
func (n *Node) Get(key string) ([]string, bool) {
	for _, p := range n.Properties {
		if p.Key == key {
			return p.Values, true
		}
	}
	return nil, false
}

// Escape экранирует закрывающую скобку, других спецсимволов не трогает
func Escape(text string) string {
	return strings.ReplaceAll(text, "]", `\]`)
}

// Coord переводит пару индексов в две буквы SGF. Для индексов вне алфавита возвращает false.
func Coord(x, y int) (string, bool) {
	if x < 0 || y < 0 || x >= len(Letters) || y >= len(Letters) {
		return "", false
	}
	return string([]byte{Letters[x], Letters[y]}), true
}
