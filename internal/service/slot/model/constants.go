package model

const (
	// FreeSpinCount количество бесплатных спинов в бонусе
	FreeSpinCount = 5

	// Ставка
	MinBet = 1
	MaxBet = 100

	// Джекпот
	JackpotBase      = 1000
	JackpotIncrement = 1
	// JackpotOdds шанс джекпота 1 к JackpotOdds, выигрыш если выпало JackpotWinDraw
	JackpotOdds    = 1000
	JackpotWinDraw = 0

	// BonusRow строка, которая запускает бонус в обычном режиме (средняя)
	BonusRow = 3

	// Диапазон бонусных кредитов за каждую выигрышную линию
	BonusCreditsMin = 1
	BonusCreditsMax = 50

	// FullLineLength длина полной линии, короче считается короткой
	FullLineLength = 7
)
