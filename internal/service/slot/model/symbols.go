package model

// Symbol символ барабана
type Symbol uint8

const (
	Cherry Symbol = iota
	Bell
	Lemon
	Seven
	Star
	Diamond
	Watermelon
	Orange
)

const (
	// Размер сетки
	GridRows = 7
	GridCols = 7

	// SymbolCount размер алфавита
	SymbolCount = 8

	// Wild заменяет любой символ на линии и он же бонусный символ
	Wild = Diamond
)

// Symbols алфавит в фиксированном порядке, из него идет равномерный выбор
var Symbols = [SymbolCount]Symbol{Cherry, Bell, Lemon, Seven, Star, Diamond, Watermelon, Orange}

type symbolInfo struct {
	name       string
	emoji      string
	multiplier int
	fruit      bool
}

// symbolTable имена и множители выплат символов
var symbolTable = [SymbolCount]symbolInfo{
	Cherry:     {name: "Cherry", emoji: "🍒", multiplier: 1, fruit: true},
	Bell:       {name: "Bell", emoji: "🔔", multiplier: 2},
	Lemon:      {name: "Lemon", emoji: "🍋", multiplier: 1, fruit: true},
	Seven:      {name: "Seven", emoji: "7️⃣", multiplier: 4},
	Star:       {name: "Star", emoji: "⭐", multiplier: 3},
	Diamond:    {name: "Diamond", emoji: "💎", multiplier: 6},
	Watermelon: {name: "Watermelon", emoji: "🍉", multiplier: 1, fruit: true},
	Orange:     {name: "Orange", emoji: "🍊", multiplier: 1, fruit: true},
}

func (s Symbol) Name() string {
	if int(s) >= SymbolCount {
		return "Unknown"
	}
	return symbolTable[s].name
}

func (s Symbol) Emoji() string {
	if int(s) >= SymbolCount {
		return "?"
	}
	return symbolTable[s].emoji
}

// Multiplier базовый множитель выплаты символа
func (s Symbol) Multiplier() int {
	if int(s) >= SymbolCount {
		return 0
	}
	return symbolTable[s].multiplier
}

// IsLowFruit один из четырех фруктов низшего уровня
func (s Symbol) IsLowFruit() bool {
	return int(s) < SymbolCount && symbolTable[s].fruit
}

func (s Symbol) String() string {
	return s.Name()
}

// SymbolByName ищет символ по имени (Cherry, Bell, ...)
func SymbolByName(name string) (Symbol, bool) {
	for _, s := range Symbols {
		if symbolTable[s].name == name {
			return s, true
		}
	}
	return 0, false
}

// Grid сетка 7x7, передается по значению и после генерации не меняется
type Grid [GridRows][GridCols]Symbol

// At символ по координате
func (g *Grid) At(row, col int) Symbol {
	return g[row][col]
}

// RowIs все ячейки строки равны символу
func (g *Grid) RowIs(row int, sym Symbol) bool {
	for col := 0; col < GridCols; col++ {
		if g[row][col] != sym {
			return false
		}
	}
	return true
}

// Names сетка в виде имен символов (для ответа клиенту)
func (g *Grid) Names() [][]string {
	out := make([][]string, GridRows)
	for r := 0; r < GridRows; r++ {
		out[r] = make([]string, GridCols)
		for c := 0; c < GridCols; c++ {
			out[r][c] = g[r][c].Name()
		}
	}
	return out
}
